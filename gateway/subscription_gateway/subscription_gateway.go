package subscription_gateway

import (
	"context"

	"github.com/google/uuid"

	"github.com/ElliottBolan/stock-news-sentiment/driver/subscription_db"
	"github.com/ElliottBolan/stock-news-sentiment/port/subscription_port"
	"github.com/ElliottBolan/stock-news-sentiment/utils/errors"
	"github.com/ElliottBolan/stock-news-sentiment/utils/metrics"
)

// SubscriptionGateway implements the subscription port over the Postgres
// repository, translating store failures into the application error
// taxonomy and recording mutation metrics.
type SubscriptionGateway struct {
	repo    *subscription_db.SubscriptionDBRepository
	metrics *metrics.Collector
}

func NewSubscriptionGateway(repo *subscription_db.SubscriptionDBRepository, collector *metrics.Collector) subscription_port.SubscriptionPort {
	return &SubscriptionGateway{
		repo:    repo,
		metrics: collector,
	}
}

func (g *SubscriptionGateway) ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]string, error) {
	tickers, err := g.repo.FetchSubscriptions(ctx, userID)
	if err != nil {
		return nil, g.wrapStoreError(err, "ListSubscriptions", userID)
	}
	return tickers, nil
}

func (g *SubscriptionGateway) Subscribe(ctx context.Context, userID uuid.UUID, ticker string) error {
	err := g.repo.InsertSubscription(ctx, userID, ticker)
	g.recordMutation("subscribe", err)
	if err != nil {
		return g.wrapStoreError(err, "Subscribe", userID)
	}
	return nil
}

func (g *SubscriptionGateway) Unsubscribe(ctx context.Context, userID uuid.UUID, ticker string) error {
	err := g.repo.DeleteSubscription(ctx, userID, ticker)
	g.recordMutation("unsubscribe", err)
	if err != nil {
		return g.wrapStoreError(err, "Unsubscribe", userID)
	}
	return nil
}

func (g *SubscriptionGateway) recordMutation(operation string, err error) {
	if g.metrics != nil {
		g.metrics.RecordMutation(operation, err)
	}
}

func (g *SubscriptionGateway) wrapStoreError(err error, operation string, userID uuid.UUID) error {
	return errors.NewAppContextError(
		string(errors.ErrCodeSubscriptionStore),
		"subscription store operation failed",
		"gateway",
		"SubscriptionGateway",
		operation,
		err,
		map[string]interface{}{"user_id": userID.String()},
	)
}
