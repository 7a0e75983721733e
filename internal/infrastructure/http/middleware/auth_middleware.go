package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-copilot/internal/domain/entities"
	ucErrors "github.com/johnquangdev/meeting-copilot/internal/usecase/errors"
)

const (
	// UserContextKey holds the *entities.Principal on the echo context
	UserContextKey = "user"
	// UserIDContextKey holds the principal's uuid.UUID
	UserIDContextKey = "user_id"

	accessTokenCookie = "access_token"
)

// SessionValidator resolves an access token into the caller's identity
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (*entities.Principal, error)
}

// EchoAuth returns an Echo middleware that validates the bearer token and sets
// "user" (*entities.Principal) and "user_id" (uuid.UUID) on the echo context.
// Failures are returned to the HTTP error handler, which renders the 401 envelope.
func EchoAuth(sessions SessionValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return ucErrors.ErrUnauthorized
			}

			principal, err := sessions.ValidateSession(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set(UserContextKey, principal)
			c.Set(UserIDContextKey, principal.ID)

			return next(c)
		}
	}
}

// PrincipalFrom returns the principal set by EchoAuth
func PrincipalFrom(c echo.Context) (*entities.Principal, bool) {
	principal, ok := c.Get(UserContextKey).(*entities.Principal)
	return principal, ok && principal != nil
}

// extractToken reads "Authorization: Bearer <token>", falling back to the access_token cookie
func extractToken(c echo.Context) string {
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		parts := strings.Fields(authHeader)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}

	if cookie, err := c.Cookie(accessTokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}
