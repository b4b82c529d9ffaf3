package auth_gateway

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ElliottBolan/stock-news-sentiment/domain"
	"github.com/ElliottBolan/stock-news-sentiment/driver/auth"
	"github.com/ElliottBolan/stock-news-sentiment/port/auth_port"
	"github.com/ElliottBolan/stock-news-sentiment/utils/errors"
)

// AuthGateway implements the auth port interface using the auth driver
type AuthGateway struct {
	authClient auth.AuthClient
	logger     *slog.Logger
}

// NewAuthGateway creates a new auth gateway
func NewAuthGateway(authClient auth.AuthClient, logger *slog.Logger) auth_port.AuthPort {
	return &AuthGateway{
		authClient: authClient,
		logger:     logger,
	}
}

func (g *AuthGateway) ValidateSession(ctx context.Context, sessionToken string) (*domain.UserContext, error) {
	tokenPrefix := sessionToken
	if len(sessionToken) > 10 {
		tokenPrefix = sessionToken[:10] + "..."
	}
	g.logger.Debug("validating session", "token_prefix", tokenPrefix)

	response, err := g.authClient.ValidateSession(ctx, sessionToken)
	if err != nil {
		return nil, errors.NewAuthContextError(
			"session validation failed",
			"gateway",
			"AuthGateway",
			"ValidateSession",
			err,
			nil,
		)
	}

	if !response.Valid {
		return nil, errors.NewAuthContextError(
			"session is invalid",
			"gateway",
			"AuthGateway",
			"ValidateSession",
			domain.ErrUnauthorized,
			nil,
		)
	}

	userID, err := uuid.Parse(response.UserID)
	if err != nil {
		return nil, errors.NewAuthContextError(
			"invalid user ID format",
			"gateway",
			"AuthGateway",
			"ValidateSession",
			err,
			map[string]interface{}{"user_id": response.UserID},
		)
	}

	loginAt := response.LoginAt
	if loginAt.IsZero() {
		loginAt = time.Now()
	}
	expiresAt := response.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(24 * time.Hour)
	}

	sessionID := response.SessionID
	if sessionID == "" {
		sessionID = sessionToken
	}

	userContext := &domain.UserContext{
		UserID:    userID,
		Email:     response.Email,
		Role:      domain.UserRole(response.Role),
		SessionID: sessionID,
		LoginAt:   loginAt,
		ExpiresAt: expiresAt,
	}

	g.logger.Debug("session validated",
		"user_id", userContext.UserID,
		"role", userContext.Role)

	return userContext, nil
}
