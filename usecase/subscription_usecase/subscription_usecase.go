package subscription_usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/ElliottBolan/stock-news-sentiment/domain"
	"github.com/ElliottBolan/stock-news-sentiment/port/stock_catalog_port"
	"github.com/ElliottBolan/stock-news-sentiment/port/subscription_port"
	"github.com/ElliottBolan/stock-news-sentiment/utils/cache"
	"github.com/ElliottBolan/stock-news-sentiment/utils/errors"
	"github.com/ElliottBolan/stock-news-sentiment/utils/logger"
)

// SubscriptionUsecase manages a user's ticker subscriptions. Mutations are
// idempotent and invalidate the user's cached news aggregates so the next
// read reflects the new ticker set.
type SubscriptionUsecase struct {
	subscriptionGateway subscription_port.SubscriptionPort
	catalogGateway      stock_catalog_port.StockCatalogPort
	newsCache           *cache.NewsCache
}

func NewSubscriptionUsecase(subscriptionGateway subscription_port.SubscriptionPort, catalogGateway stock_catalog_port.StockCatalogPort, newsCache *cache.NewsCache) *SubscriptionUsecase {
	return &SubscriptionUsecase{
		subscriptionGateway: subscriptionGateway,
		catalogGateway:      catalogGateway,
		newsCache:           newsCache,
	}
}

func (u *SubscriptionUsecase) Execute(ctx context.Context, user *domain.UserContext) ([]string, error) {
	if err := validateUser(user, "Execute"); err != nil {
		return nil, err
	}
	return u.subscriptionGateway.ListSubscriptions(ctx, user.UserID)
}

// ExecuteSubscribe adds a ticker to the user's subscriptions. The ticker
// must exist in the catalog; subscribing twice is a no-op.
func (u *SubscriptionUsecase) ExecuteSubscribe(ctx context.Context, user *domain.UserContext, ticker string) error {
	if err := validateUser(user, "ExecuteSubscribe"); err != nil {
		return err
	}

	normalized, err := u.normalizeKnownTicker(ctx, ticker)
	if err != nil {
		return err
	}

	if err := u.subscriptionGateway.Subscribe(ctx, user.UserID, normalized); err != nil {
		return err
	}

	u.invalidateCache(ctx, user.UserID)
	return nil
}

// ExecuteUnsubscribe removes a ticker from the user's subscriptions.
// Removing an absent ticker is a no-op; the ticker does not have to exist
// in the catalog, so stale subscriptions can always be cleaned up.
func (u *SubscriptionUsecase) ExecuteUnsubscribe(ctx context.Context, user *domain.UserContext, ticker string) error {
	if err := validateUser(user, "ExecuteUnsubscribe"); err != nil {
		return err
	}

	normalized := domain.NormalizeTicker(ticker)
	if !domain.IsValidTicker(normalized) {
		return errors.NewValidationContextError(
			"invalid ticker symbol",
			"usecase",
			"SubscriptionUsecase",
			"ExecuteUnsubscribe",
			map[string]interface{}{"ticker": ticker},
		)
	}

	if err := u.subscriptionGateway.Unsubscribe(ctx, user.UserID, normalized); err != nil {
		return err
	}

	u.invalidateCache(ctx, user.UserID)
	return nil
}

func (u *SubscriptionUsecase) normalizeKnownTicker(ctx context.Context, ticker string) (string, error) {
	normalized := domain.NormalizeTicker(ticker)
	if !domain.IsValidTicker(normalized) {
		return "", errors.NewValidationContextError(
			"invalid ticker symbol",
			"usecase",
			"SubscriptionUsecase",
			"ExecuteSubscribe",
			map[string]interface{}{"ticker": ticker},
		)
	}

	stocks, err := u.catalogGateway.Search(ctx, normalized)
	if err != nil {
		return "", err
	}
	for _, stock := range stocks {
		if stock.Ticker == normalized {
			return normalized, nil
		}
	}

	return "", errors.NewValidationContextError(
		"unknown ticker symbol",
		"usecase",
		"SubscriptionUsecase",
		"ExecuteSubscribe",
		map[string]interface{}{"ticker": normalized},
	)
}

func (u *SubscriptionUsecase) invalidateCache(ctx context.Context, userID uuid.UUID) {
	if u.newsCache == nil {
		return
	}
	u.newsCache.Invalidate(userID)
	logger.SafeInfoContext(ctx, "invalidated news cache after subscription change",
		"user_id", userID)
}

func validateUser(user *domain.UserContext, operation string) error {
	if user == nil || !user.IsValid() {
		return errors.NewAuthContextError(
			"valid user session required",
			"usecase",
			"SubscriptionUsecase",
			operation,
			domain.ErrUnauthorized,
			nil,
		)
	}
	return nil
}
