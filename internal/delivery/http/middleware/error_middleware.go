// Package middleware contains the gateway's echo middlewares.
package middleware

import (
	"log/slog"
	"net/http"

	"refuge/internal/delivery/http/response"
	domainerrors "refuge/internal/domain/errors"
	"refuge/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Identity failures the gateway reports with their own status.
const (
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeEmailInUse         = "EMAIL_IN_USE"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Every use case
// error maps to exactly one kind: IMAGE_TOO_LARGE 413, VALIDATION_FAILED 400,
// NOT_FOUND 404 and BACKING_SERVICE 502.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Identity failures are backing service errors the caller can act on
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		m.write(c, http.StatusUnauthorized, "Email ou mot de passe incorrect", CodeInvalidCredentials, "")

		return
	case errors.Is(err, service.ErrEmailInUse):
		m.write(c, http.StatusConflict, "Cet email est déjà utilisé", CodeEmailInUse, "")

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		m.write(c, httpErr.Code, message, "HTTP_ERROR", "")

		return
	}

	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.NewBackingServiceError("gateway", c.Request().Method+" "+c.Path(), err).(domainerrors.AppError)
	}

	if appErr.HTTPCode() >= http.StatusInternalServerError {
		m.logger.Error("Backing service failure",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
	}

	m.write(c, appErr.HTTPCode(), appErr.Message(), appErr.ErrorCode(), appErr.Details())
}

func (m *ErrorMiddleware) write(c echo.Context, status int, message, code, details string) {
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)

		return
	}

	_ = response.Error(c, status, code, message, details)
}
