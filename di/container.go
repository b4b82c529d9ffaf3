package di

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ElliottBolan/stock-news-sentiment/config"
	"github.com/ElliottBolan/stock-news-sentiment/driver/auth"
	"github.com/ElliottBolan/stock-news-sentiment/driver/news"
	"github.com/ElliottBolan/stock-news-sentiment/driver/sentiment"
	"github.com/ElliottBolan/stock-news-sentiment/driver/stock_catalog"
	"github.com/ElliottBolan/stock-news-sentiment/driver/subscription_db"
	"github.com/ElliottBolan/stock-news-sentiment/gateway/auth_gateway"
	"github.com/ElliottBolan/stock-news-sentiment/gateway/fetch_news_gateway"
	"github.com/ElliottBolan/stock-news-sentiment/gateway/stock_catalog_gateway"
	"github.com/ElliottBolan/stock-news-sentiment/gateway/subscription_gateway"
	"github.com/ElliottBolan/stock-news-sentiment/port/auth_port"
	"github.com/ElliottBolan/stock-news-sentiment/usecase/fetch_news_usecase"
	"github.com/ElliottBolan/stock-news-sentiment/usecase/fetch_stock_usecase"
	"github.com/ElliottBolan/stock-news-sentiment/usecase/subscription_usecase"
	"github.com/ElliottBolan/stock-news-sentiment/utils/cache"
	"github.com/ElliottBolan/stock-news-sentiment/utils/logger"
	"github.com/ElliottBolan/stock-news-sentiment/utils/metrics"
	"github.com/ElliottBolan/stock-news-sentiment/utils/rate_limiter"
)

type ApplicationComponents struct {
	FetchStockUsecase    *fetch_stock_usecase.FetchStockUsecase
	FetchNewsUsecase     *fetch_news_usecase.FetchNewsUsecase
	SubscriptionUsecase  *subscription_usecase.SubscriptionUsecase
	AuthGateway          auth_port.AuthPort
	StockCatalogDriver   *stock_catalog.StockCatalogDriver
	Metrics              *metrics.Collector
	NewsCache            *cache.NewsCache
}

func NewApplicationComponents(pool *pgxpool.Pool, cfg *config.Config) *ApplicationComponents {
	collector := metrics.NewCollector()
	newsCache := cache.NewNewsCache(cfg.News.CacheTTL)

	catalogDriver := stock_catalog.NewStockCatalogDriver()
	catalogGateway := stock_catalog_gateway.NewStockCatalogGateway(catalogDriver)

	newsGateway := fetch_news_gateway.NewFetchNewsGateway(
		newsProvider(cfg),
		sentimentAnnotator(cfg),
		collector,
	)

	subscriptionRepo := subscription_db.NewSubscriptionDBRepository(pool)
	subscriptionGatewayImpl := subscription_gateway.NewSubscriptionGateway(subscriptionRepo, collector)

	authClient := auth.NewClient(cfg, logger.Logger)
	authGatewayImpl := auth_gateway.NewAuthGateway(authClient, logger.Logger)

	return &ApplicationComponents{
		FetchStockUsecase:   fetch_stock_usecase.NewFetchStockUsecase(catalogGateway),
		FetchNewsUsecase:    fetch_news_usecase.NewFetchNewsUsecase(newsGateway, newsCache, collector, cfg.News.PerTickerTimeout),
		SubscriptionUsecase: subscription_usecase.NewSubscriptionUsecase(subscriptionGatewayImpl, catalogGateway, newsCache),
		AuthGateway:         authGatewayImpl,
		StockCatalogDriver:  catalogDriver,
		Metrics:             collector,
		NewsCache:           newsCache,
	}
}

// newsProvider selects the configured news source driver.
func newsProvider(cfg *config.Config) fetch_news_gateway.NewsProvider {
	if cfg.News.Provider == "rss" {
		httpClient := &http.Client{
			Timeout: cfg.HTTP.ClientTimeout,
			Transport: &http.Transport{
				TLSHandshakeTimeout: cfg.HTTP.TLSHandshakeTimeout,
				IdleConnTimeout:     cfg.HTTP.IdleConnTimeout,
			},
		}
		limiter := rate_limiter.NewHostRateLimiter(cfg.News.RateLimitInterval)
		return news.NewRSSNewsDriver(httpClient, cfg.News.FeedURLTemplate, cfg.News.ArticlesPerTicker, limiter)
	}
	return news.NewMockNewsDriver(cfg.News.ArticlesPerTicker)
}

// sentimentAnnotator is only wired for providers that carry no sentiment
// of their own. The mock provider generates coherent scores itself.
func sentimentAnnotator(cfg *config.Config) fetch_news_gateway.SentimentAnnotator {
	if cfg.News.Provider == "rss" && cfg.Sentiment.Enabled && cfg.Sentiment.APIKey != "" {
		return sentiment.NewOpenAIAnnotator(cfg.Sentiment.APIKey, cfg.Sentiment.Model)
	}
	return nil
}
