package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ElliottBolan/stock-news-sentiment/di"
	"github.com/ElliottBolan/stock-news-sentiment/domain"
	middleware_custom "github.com/ElliottBolan/stock-news-sentiment/middleware"
	"github.com/ElliottBolan/stock-news-sentiment/utils/logger"
)

func registerSubscriptionRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	authMiddleware := middleware_custom.NewAuthMiddleware(container.AuthGateway, logger.Logger)

	subscriptions := v1.Group("/subscriptions", authMiddleware.RequireAuth())
	subscriptions.GET("", handleListSubscriptions(container))
	subscriptions.POST("", handleSubscribe(container))
	subscriptions.DELETE("/:ticker", handleUnsubscribe(container))
}

func handleListSubscriptions(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := domain.GetUserFromContext(c.Request().Context())
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}

		tickers, err := container.SubscriptionUsecase.Execute(c.Request().Context(), user)
		if err != nil {
			return handleError(c, err, "list_subscriptions")
		}
		return c.JSON(http.StatusOK, SubscriptionsResponse{Tickers: tickers})
	}
}

func handleSubscribe(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := domain.GetUserFromContext(c.Request().Context())
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}

		var payload SubscribePayload
		if err := c.Bind(&payload); err != nil {
			return handleValidationError(c, "invalid request body", "body", nil)
		}
		if payload.Ticker == "" {
			return handleValidationError(c, "ticker is required", "ticker", payload.Ticker)
		}

		if err := container.SubscriptionUsecase.ExecuteSubscribe(c.Request().Context(), user, payload.Ticker); err != nil {
			return handleError(c, err, "subscribe")
		}
		return c.JSON(http.StatusCreated, MessageResponse{Message: "subscribed"})
	}
}

func handleUnsubscribe(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := domain.GetUserFromContext(c.Request().Context())
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}

		ticker := c.Param("ticker")
		if ticker == "" {
			return handleValidationError(c, "ticker is required", "ticker", ticker)
		}

		if err := container.SubscriptionUsecase.ExecuteUnsubscribe(c.Request().Context(), user, ticker); err != nil {
			return handleError(c, err, "unsubscribe")
		}
		return c.JSON(http.StatusOK, MessageResponse{Message: "unsubscribed"})
	}
}
