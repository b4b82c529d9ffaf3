package stock_catalog_gateway

import (
	"context"

	"github.com/ElliottBolan/stock-news-sentiment/domain"
	"github.com/ElliottBolan/stock-news-sentiment/driver/stock_catalog"
	"github.com/ElliottBolan/stock-news-sentiment/port/stock_catalog_port"
	"github.com/ElliottBolan/stock-news-sentiment/utils/errors"
)

// StockCatalogGateway implements the catalog port over the in-memory
// catalog driver. The driver is synchronous; the gateway only checks the
// context so cancelled requests do not return data.
type StockCatalogGateway struct {
	catalog *stock_catalog.StockCatalogDriver
}

func NewStockCatalogGateway(catalog *stock_catalog.StockCatalogDriver) stock_catalog_port.StockCatalogPort {
	return &StockCatalogGateway{catalog: catalog}
}

func (g *StockCatalogGateway) ListAll(ctx context.Context) ([]domain.Stock, error) {
	if err := g.checkContext(ctx, "ListAll"); err != nil {
		return nil, err
	}
	return g.catalog.ListAll(), nil
}

func (g *StockCatalogGateway) Search(ctx context.Context, query string) ([]domain.Stock, error) {
	if err := g.checkContext(ctx, "Search"); err != nil {
		return nil, err
	}
	return g.catalog.Search(query), nil
}

func (g *StockCatalogGateway) Filter(ctx context.Context, sector, industry string) ([]domain.Stock, error) {
	if err := g.checkContext(ctx, "Filter"); err != nil {
		return nil, err
	}
	return g.catalog.Filter(sector, industry), nil
}

func (g *StockCatalogGateway) DistinctSectors(ctx context.Context) ([]string, error) {
	if err := g.checkContext(ctx, "DistinctSectors"); err != nil {
		return nil, err
	}
	return g.catalog.DistinctSectors(), nil
}

func (g *StockCatalogGateway) DistinctIndustries(ctx context.Context) ([]string, error) {
	if err := g.checkContext(ctx, "DistinctIndustries"); err != nil {
		return nil, err
	}
	return g.catalog.DistinctIndustries(), nil
}

func (g *StockCatalogGateway) checkContext(ctx context.Context, operation string) error {
	if err := ctx.Err(); err != nil {
		return errors.NewAppContextError(
			string(errors.ErrCodeTimeout),
			"request cancelled",
			"gateway",
			"StockCatalogGateway",
			operation,
			err,
			nil,
		)
	}
	return nil
}
