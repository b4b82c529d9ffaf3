package stock_catalog_port

//go:generate go run go.uber.org/mock/mockgen -source=stock_catalog_port.go -destination=../../mocks/mock_stock_catalog_port.go -package=mocks

import (
	"context"

	"github.com/ElliottBolan/stock-news-sentiment/domain"
)

// StockCatalogPort defines read operations over the stock reference data.
type StockCatalogPort interface {
	// ListAll returns the full catalog in stable insertion order.
	ListAll(ctx context.Context) ([]domain.Stock, error)
	// Search matches query case-insensitively against ticker or name.
	// An empty query returns an empty result, not the full catalog.
	Search(ctx context.Context, query string) ([]domain.Stock, error)
	// Filter returns stocks matching sector and industry exactly; an empty
	// value places no constraint on that axis.
	Filter(ctx context.Context, sector, industry string) ([]domain.Stock, error)
	DistinctSectors(ctx context.Context) ([]string, error)
	DistinctIndustries(ctx context.Context) ([]string, error)
}
