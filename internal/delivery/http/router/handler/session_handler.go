// Package handler contains the HTTP handlers for the gateway.
package handler

import (
	"log/slog"
	"net/http"

	"refuge/internal/delivery/http/response"
	"refuge/internal/domain/entity"
	"refuge/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler serves registration, sign-in and the signed-in views.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

// SessionOutput is returned by register and login. The ID token authenticates
// later requests as a Bearer token.
type SessionOutput struct {
	Principal *entity.Principal `json:"principal"`
	IDToken   string            `json:"idToken"`
}

// Register handles account creation for both roles.
func (h *SessionHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	principal, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newSessionOutput(principal), "Account created successfully")
}

// Login handles the email and password sign-in.
func (h *SessionHandler) Login(c echo.Context) error {
	var input *usecase.SignInInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	principal, err := h.uc.SignIn(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSessionOutput(principal), "Login successful")
}

// Logout signs the current principal out.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.uc.SignOut(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// GetProfile returns the signed-in profile, or null while it is not loaded.
func (h *SessionHandler) GetProfile(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.CurrentProfile(), "")
}

func (h *SessionHandler) StreamProfile(c echo.Context) error {
	return response.Stream(c, h.uc.Profile(c.Request().Context()))
}

func (h *SessionHandler) StreamPrincipal(c echo.Context) error {
	return response.Stream(c, h.uc.Principal(c.Request().Context()))
}

func (h *SessionHandler) StreamIsShelter(c echo.Context) error {
	return response.Stream(c, h.uc.IsShelter(c.Request().Context()))
}

func (h *SessionHandler) StreamIsUser(c echo.Context) error {
	return response.Stream(c, h.uc.IsUser(c.Request().Context()))
}

func newSessionOutput(principal *entity.Principal) *SessionOutput {
	return &SessionOutput{Principal: principal, IDToken: principal.IDToken}
}

// HealthCheck reports that the gateway is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
