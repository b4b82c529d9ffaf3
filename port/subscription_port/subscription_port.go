package subscription_port

//go:generate go run go.uber.org/mock/mockgen -source=subscription_port.go -destination=../../mocks/mock_subscription_port.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
)

// SubscriptionPort defines operations for managing user ticker subscriptions.
// All mutations are idempotent: duplicate adds and removals of absent
// tickers are no-ops, never errors.
type SubscriptionPort interface {
	// ListSubscriptions returns the user's tickers in insertion order, or an
	// empty slice when no record exists.
	ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]string, error)
	Subscribe(ctx context.Context, userID uuid.UUID, ticker string) error
	Unsubscribe(ctx context.Context, userID uuid.UUID, ticker string) error
}
