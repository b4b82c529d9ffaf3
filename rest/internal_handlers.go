package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ElliottBolan/stock-news-sentiment/config"
	"github.com/ElliottBolan/stock-news-sentiment/di"
	"github.com/ElliottBolan/stock-news-sentiment/domain"
	middleware_custom "github.com/ElliottBolan/stock-news-sentiment/middleware"
	"github.com/ElliottBolan/stock-news-sentiment/utils/logger"
)

func registerInternalRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	serviceAuth := middleware_custom.NewServiceAuthMiddleware(logger.Logger, cfg)

	internal := e.Group("/internal", serviceAuth.RequireServiceAuth())
	internal.POST("/catalog/reload", handleCatalogReload(container))
}

// handleCatalogReload atomically replaces the in-memory stock catalog.
// Requests in flight keep reading the previous snapshot.
func handleCatalogReload(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload CatalogReloadPayload
		if err := c.Bind(&payload); err != nil {
			return handleValidationError(c, "invalid request body", "body", nil)
		}
		if len(payload.Stocks) == 0 {
			return handleValidationError(c, "at least one stock is required", "stocks", nil)
		}

		for i, stock := range payload.Stocks {
			normalized := domain.NormalizeTicker(stock.Ticker)
			if !domain.IsValidTicker(normalized) {
				return handleValidationError(c, "invalid ticker symbol", "stocks", stock.Ticker)
			}
			if stock.Name == "" {
				return handleValidationError(c, "stock name is required", "stocks", stock.Ticker)
			}
			payload.Stocks[i].Ticker = normalized
		}

		container.StockCatalogDriver.Replace(payload.Stocks)

		logger.Logger.Info("stock catalog reloaded",
			"stocks", len(payload.Stocks))

		return c.JSON(http.StatusOK, CatalogReloadResponse{Loaded: len(payload.Stocks)})
	}
}
