package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ElliottBolan/stock-news-sentiment/di"
)

func registerStockRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	// Catalog endpoints are public reference data
	stocks := v1.Group("/stocks")
	stocks.GET("", handleListStocks(container))
	stocks.GET("/search", handleSearchStocks(container))
	stocks.GET("/filter", handleFilterStocks(container))
	stocks.GET("/sectors", handleListSectors(container))
	stocks.GET("/industries", handleListIndustries(container))
}

func handleListStocks(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		stocks, err := container.FetchStockUsecase.Execute(c.Request().Context())
		if err != nil {
			return handleError(c, err, "list_stocks")
		}
		return c.JSON(http.StatusOK, StocksResponse{Stocks: stocks})
	}
}

func handleSearchStocks(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		query := c.QueryParam("q")

		stocks, err := container.FetchStockUsecase.ExecuteSearch(c.Request().Context(), query)
		if err != nil {
			return handleError(c, err, "search_stocks")
		}
		return c.JSON(http.StatusOK, StocksResponse{Stocks: stocks})
	}
}

func handleFilterStocks(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		sector := c.QueryParam("sector")
		industry := c.QueryParam("industry")

		stocks, err := container.FetchStockUsecase.ExecuteFilter(c.Request().Context(), sector, industry)
		if err != nil {
			return handleError(c, err, "filter_stocks")
		}
		return c.JSON(http.StatusOK, StocksResponse{Stocks: stocks})
	}
}

func handleListSectors(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		sectors, err := container.FetchStockUsecase.ExecuteSectors(c.Request().Context())
		if err != nil {
			return handleError(c, err, "list_sectors")
		}
		return c.JSON(http.StatusOK, SectorsResponse{Sectors: sectors})
	}
}

func handleListIndustries(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		industries, err := container.FetchStockUsecase.ExecuteIndustries(c.Request().Context())
		if err != nil {
			return handleError(c, err, "list_industries")
		}
		return c.JSON(http.StatusOK, IndustriesResponse{Industries: industries})
	}
}
