package auth_port

//go:generate go run go.uber.org/mock/mockgen -source=auth_port.go -destination=../../mocks/mock_auth_port.go -package=mocks

import (
	"context"

	"github.com/ElliottBolan/stock-news-sentiment/domain"
)

// AuthPort resolves a session token from the external identity provider
// into an authenticated user context. Sign-in, sign-up and sign-out flows
// belong to the identity provider, not this service.
type AuthPort interface {
	ValidateSession(ctx context.Context, sessionToken string) (*domain.UserContext, error)
}
