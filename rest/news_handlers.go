package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ElliottBolan/stock-news-sentiment/di"
	"github.com/ElliottBolan/stock-news-sentiment/domain"
	middleware_custom "github.com/ElliottBolan/stock-news-sentiment/middleware"
	"github.com/ElliottBolan/stock-news-sentiment/utils/logger"
)

func registerNewsRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	authMiddleware := middleware_custom.NewAuthMiddleware(container.AuthGateway, logger.Logger)

	news := v1.Group("/news", authMiddleware.RequireAuth())
	news.GET("", handleSubscribedNews(container))
	news.GET("/:ticker", handleTickerNews(container))
}

// maxStaleRefetches bounds how often an aggregate is re-issued when a
// subscription mutation lands while the fetch is in flight.
const maxStaleRefetches = 2

// handleSubscribedNews aggregates news across the authenticated user's
// subscribed tickers, newest first. When the subscription set changes
// mid-fetch the result is discarded and the aggregate is re-issued against
// the current ticker set.
func handleSubscribedNews(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := domain.GetUserFromContext(c.Request().Context())
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}

		for attempt := 0; ; attempt++ {
			var generation uint64
			if container.NewsCache != nil {
				generation = container.NewsCache.Generation(user.UserID)
			}

			tickers, err := container.SubscriptionUsecase.Execute(c.Request().Context(), user)
			if err != nil {
				return handleError(c, err, "fetch_subscribed_news")
			}

			articles, err := container.FetchNewsUsecase.ExecuteMany(c.Request().Context(), user.UserID, tickers)
			if err != nil {
				return handleError(c, err, "fetch_subscribed_news")
			}

			if container.NewsCache != nil &&
				container.NewsCache.Generation(user.UserID) != generation &&
				attempt < maxStaleRefetches {
				logger.SafeInfoContext(c.Request().Context(), "subscriptions changed mid-fetch, refetching",
					"user_id", user.UserID.String())
				continue
			}

			return c.JSON(http.StatusOK, NewsResponse{Articles: articles})
		}
	}
}

func handleTickerNews(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ticker := c.Param("ticker")
		if ticker == "" {
			return handleValidationError(c, "ticker is required", "ticker", ticker)
		}

		articles, err := container.FetchNewsUsecase.Execute(c.Request().Context(), ticker)
		if err != nil {
			return handleError(c, err, "fetch_ticker_news")
		}
		return c.JSON(http.StatusOK, NewsResponse{Articles: articles})
	}
}
