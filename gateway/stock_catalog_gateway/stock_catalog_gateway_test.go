package stock_catalog_gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElliottBolan/stock-news-sentiment/driver/stock_catalog"
	"github.com/ElliottBolan/stock-news-sentiment/utils/errors"
)

func TestStockCatalogGateway_ListAll(t *testing.T) {
	gateway := NewStockCatalogGateway(stock_catalog.NewStockCatalogDriver())

	stocks, err := gateway.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, stocks, len(stock_catalog.DefaultStocks))
}

func TestStockCatalogGateway_Search(t *testing.T) {
	gateway := NewStockCatalogGateway(stock_catalog.NewStockCatalogDriver())

	stocks, err := gateway.Search(context.Background(), "apple")
	require.NoError(t, err)
	require.Len(t, stocks, 1)
	assert.Equal(t, "AAPL", stocks[0].Ticker)
}

func TestStockCatalogGateway_CancelledContext(t *testing.T) {
	gateway := NewStockCatalogGateway(stock_catalog.NewStockCatalogDriver())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.ListAll(ctx)
	require.Error(t, err)

	var contextErr *errors.AppContextError
	require.ErrorAs(t, err, &contextErr)
	assert.Equal(t, string(errors.ErrCodeTimeout), contextErr.Code)
}
