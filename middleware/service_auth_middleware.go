package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/ElliottBolan/stock-news-sentiment/config"
)

const serviceTokenHeader = "X-Service-Token"

var (
	errMissingToken    = errors.New("missing service token")
	errInvalidToken    = errors.New("invalid service token")
	errInvalidClaims   = errors.New("invalid claims")
	errInvalidIssuer   = errors.New("invalid issuer")
	errInvalidAudience = errors.New("invalid audience")
)

// ServiceClaims represents the JWT claims for service-to-service calls
type ServiceClaims struct {
	Service string `json:"service"`
	jwt.RegisteredClaims
}

// ServiceAuthMiddleware validates signed service tokens on internal
// endpoints such as catalog reload. Session-based user auth never reaches
// these routes.
type ServiceAuthMiddleware struct {
	logger   *slog.Logger
	secret   []byte
	issuer   string
	audience string
}

// NewServiceAuthMiddleware constructs a ServiceAuthMiddleware instance.
func NewServiceAuthMiddleware(logger *slog.Logger, cfg *config.Config) *ServiceAuthMiddleware {
	secret := []byte(cfg.ServiceToken.Secret)
	if len(secret) == 0 {
		if logger != nil {
			logger.Warn("SERVICE_TOKEN_SECRET not set, service auth will deny all requests")
		}
	}

	return &ServiceAuthMiddleware{
		logger:   logger,
		secret:   secret,
		issuer:   cfg.ServiceToken.Issuer,
		audience: cfg.ServiceToken.Audience,
	}
}

// RequireServiceAuth ensures that the X-Service-Token header carries a
// valid signed token before allowing the request to proceed.
func (m *ServiceAuthMiddleware) RequireServiceAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := m.validateToken(c)
			if err != nil {
				switch {
				case errors.Is(err, errMissingToken):
					return echo.NewHTTPError(http.StatusUnauthorized, "missing service token")
				case errors.Is(err, errInvalidToken), errors.Is(err, errInvalidClaims):
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid service token")
				case errors.Is(err, errInvalidIssuer), errors.Is(err, errInvalidAudience):
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token issuer or audience")
				default:
					if m.logger != nil {
						m.logger.Error("service token validation error", "error", err)
					}
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
				}
			}

			if m.logger != nil {
				m.logger.Debug("service auth successful",
					"service", claims.Service,
					"path", c.Request().URL.Path)
			}

			c.Set("service.authenticated", true)

			return next(c)
		}
	}
}

func (m *ServiceAuthMiddleware) validateToken(c echo.Context) (*ServiceClaims, error) {
	tokenStr := c.Request().Header.Get(serviceTokenHeader)
	if tokenStr == "" {
		return nil, errMissingToken
	}

	if len(m.secret) == 0 {
		return nil, fmt.Errorf("service token secret not configured")
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &ServiceClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidToken, err)
	}

	if !parsed.Valid {
		return nil, errInvalidToken
	}

	claims, ok := parsed.Claims.(*ServiceClaims)
	if !ok {
		return nil, errInvalidClaims
	}

	if claims.Issuer != m.issuer {
		return nil, errInvalidIssuer
	}

	audienceMatch := false
	for _, aud := range claims.Audience {
		if aud == m.audience {
			audienceMatch = true
			break
		}
	}
	if !audienceMatch {
		return nil, errInvalidAudience
	}

	return claims, nil
}
