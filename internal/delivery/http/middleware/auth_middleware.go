package middleware

import (
	"strings"

	"refuge/internal/delivery/http/response"
	"refuge/internal/domain/entity"
	"refuge/internal/domain/service"
	"refuge/internal/usecase"

	"github.com/labstack/echo/v4"
)

// principalKey is the echo.Context key holding the authenticated principal.
const principalKey = "principal"

// AuthMiddleware checks the bearer ID token against the signed-in principal.
type AuthMiddleware struct {
	identity service.IdentityProvider
	session  usecase.SessionUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity service.IdentityProvider, session usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{identity: identity, session: session}
}

// Authenticate accepts a request only when its bearer token was issued to the
// principal currently signed in on this device.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		uid, err := m.identity.VerifyToken(c.Request().Context(), token)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		principal := m.session.CurrentPrincipal()
		if principal == nil || principal.UID != uid {
			return response.Unauthorized(c, "STALE_SESSION", "Token does not belong to the signed-in account")
		}

		c.Set(principalKey, principal)

		return next(c)
	}
}

// RequireRole rejects requests whose signed-in profile does not carry role.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !m.session.CurrentProfile().HasRole(role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+role.String()+"' role")
			}

			return next(c)
		}
	}
}

// Principal returns the principal set by Authenticate, or nil.
func Principal(c echo.Context) *entity.Principal {
	principal, _ := c.Get(principalKey).(*entity.Principal)

	return principal
}
