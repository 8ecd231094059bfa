// Package response writes the gateway's JSON envelopes and event streams.
package response

import (
	"net/http"

	domainerrors "refuge/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Response is the envelope of every JSON answer.
type Response = domainerrors.Response

// ErrorInfo carries the machine-readable error code.
type ErrorInfo = domainerrors.ErrorInfo

// Success writes data with an optional message; "Success" when empty.
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error writes a failed envelope. An empty message uses the status text.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Code:    statusCode,
		Message: message,
		Error:   &ErrorInfo{Code: errorCode, Details: details},
	})
}

// BadRequest rejects malformed query parameters.
func BadRequest(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BindingError rejects a body echo could not bind.
func BindingError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

func Unauthorized(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

func Forbidden(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, "")
}
