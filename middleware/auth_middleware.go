package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ElliottBolan/stock-news-sentiment/domain"
	"github.com/ElliottBolan/stock-news-sentiment/port/auth_port"
)

const sessionCookieName = "session_token"

// AuthMiddleware resolves the session token on each request into a user
// context via the external identity provider. The token is read from the
// session cookie, with an Authorization bearer token as fallback for
// non-browser clients.
type AuthMiddleware struct {
	authGateway auth_port.AuthPort
	logger      *slog.Logger
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(authGateway auth_port.AuthPort, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authGateway: authGateway,
		logger:      logger,
	}
}

// RequireAuth rejects requests without a valid session and stores the
// resolved user context on the request context for downstream handlers.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := m.extractSessionToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
			}

			user, err := m.authGateway.ValidateSession(c.Request().Context(), token)
			if err != nil {
				if m.logger != nil {
					m.logger.Warn("session validation failed",
						"path", c.Request().URL.Path,
						"error", err)
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			if !user.IsValid() {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}

			ctx := domain.SetUserContext(c.Request().Context(), user)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func (m *AuthMiddleware) extractSessionToken(c echo.Context) string {
	if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}

	return ""
}
