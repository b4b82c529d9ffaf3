package fetch_stock_usecase

import (
	"context"
	"strings"

	"github.com/ElliottBolan/stock-news-sentiment/domain"
	"github.com/ElliottBolan/stock-news-sentiment/port/stock_catalog_port"
)

// FetchStockUsecase serves catalog reads. The catalog is reference data;
// all operations are read-only and need no authentication.
type FetchStockUsecase struct {
	catalogGateway stock_catalog_port.StockCatalogPort
}

func NewFetchStockUsecase(catalogGateway stock_catalog_port.StockCatalogPort) *FetchStockUsecase {
	return &FetchStockUsecase{catalogGateway: catalogGateway}
}

func (u *FetchStockUsecase) Execute(ctx context.Context) ([]domain.Stock, error) {
	return u.catalogGateway.ListAll(ctx)
}

// ExecuteSearch returns an empty result for blank queries rather than the
// full catalog.
func (u *FetchStockUsecase) ExecuteSearch(ctx context.Context, query string) ([]domain.Stock, error) {
	if strings.TrimSpace(query) == "" {
		return []domain.Stock{}, nil
	}
	return u.catalogGateway.Search(ctx, query)
}

func (u *FetchStockUsecase) ExecuteFilter(ctx context.Context, sector, industry string) ([]domain.Stock, error) {
	return u.catalogGateway.Filter(ctx, sector, industry)
}

func (u *FetchStockUsecase) ExecuteSectors(ctx context.Context) ([]string, error) {
	return u.catalogGateway.DistinctSectors(ctx)
}

func (u *FetchStockUsecase) ExecuteIndustries(ctx context.Context) ([]string, error) {
	return u.catalogGateway.DistinctIndustries(ctx)
}
