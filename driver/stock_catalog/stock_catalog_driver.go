// Package stock_catalog holds the in-memory stock reference data. The
// catalog is static per deployment but can be swapped atomically through
// the internal reload endpoint.
package stock_catalog

import (
	"sort"
	"strings"
	"sync"

	"github.com/ElliottBolan/stock-news-sentiment/domain"
)

// DefaultStocks is the reference dataset served until a reload replaces it.
var DefaultStocks = []domain.Stock{
	{Ticker: "AAPL", Name: "Apple Inc.", Industry: "Consumer Electronics", Sector: "Technology"},
	{Ticker: "MSFT", Name: "Microsoft Corporation", Industry: "Software", Sector: "Technology"},
	{Ticker: "GOOGL", Name: "Alphabet Inc.", Industry: "Internet Services", Sector: "Technology"},
	{Ticker: "AMZN", Name: "Amazon.com Inc.", Industry: "E-commerce", Sector: "Consumer Cyclical"},
	{Ticker: "TSLA", Name: "Tesla Inc.", Industry: "Auto Manufacturers", Sector: "Consumer Cyclical"},
	{Ticker: "JPM", Name: "JPMorgan Chase & Co.", Industry: "Banking", Sector: "Financial Services"},
	{Ticker: "V", Name: "Visa Inc.", Industry: "Credit Services", Sector: "Financial Services"},
	{Ticker: "JNJ", Name: "Johnson & Johnson", Industry: "Pharmaceuticals", Sector: "Healthcare"},
	{Ticker: "WMT", Name: "Walmart Inc.", Industry: "Retail", Sector: "Consumer Defensive"},
	{Ticker: "PG", Name: "Procter & Gamble", Industry: "Consumer Goods", Sector: "Consumer Defensive"},
}

type StockCatalogDriver struct {
	mu     sync.RWMutex
	stocks []domain.Stock
}

// NewStockCatalogDriver creates a catalog backed by the default dataset.
func NewStockCatalogDriver() *StockCatalogDriver {
	return NewStockCatalogDriverWithStocks(DefaultStocks)
}

// NewStockCatalogDriverWithStocks creates a catalog backed by the given
// dataset, preserving its order.
func NewStockCatalogDriverWithStocks(stocks []domain.Stock) *StockCatalogDriver {
	d := &StockCatalogDriver{}
	d.Replace(stocks)
	return d
}

// Replace swaps the catalog dataset atomically.
func (d *StockCatalogDriver) Replace(stocks []domain.Stock) {
	copied := make([]domain.Stock, len(stocks))
	copy(copied, stocks)

	d.mu.Lock()
	d.stocks = copied
	d.mu.Unlock()
}

// ListAll returns the catalog in insertion order.
func (d *StockCatalogDriver) ListAll() []domain.Stock {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]domain.Stock, len(d.stocks))
	copy(out, d.stocks)
	return out
}

// Search matches query case-insensitively as a substring of ticker or name.
// The empty query yields an empty result so that search-as-you-type starts
// blank instead of dumping the whole catalog.
func (d *StockCatalogDriver) Search(query string) []domain.Stock {
	if strings.TrimSpace(query) == "" {
		return []domain.Stock{}
	}

	lowered := strings.ToLower(query)

	d.mu.RLock()
	defer d.mu.RUnlock()

	matches := []domain.Stock{}
	for _, s := range d.stocks {
		if strings.Contains(strings.ToLower(s.Ticker), lowered) ||
			strings.Contains(strings.ToLower(s.Name), lowered) {
			matches = append(matches, s)
		}
	}
	return matches
}

// Filter returns stocks matching sector and industry exactly. An empty
// value puts no constraint on that axis; both axes are ANDed.
func (d *StockCatalogDriver) Filter(sector, industry string) []domain.Stock {
	d.mu.RLock()
	defer d.mu.RUnlock()

	matches := []domain.Stock{}
	for _, s := range d.stocks {
		if sector != "" && s.Sector != sector {
			continue
		}
		if industry != "" && s.Industry != industry {
			continue
		}
		matches = append(matches, s)
	}
	return matches
}

// DistinctSectors returns the deduplicated sector values, sorted.
func (d *StockCatalogDriver) DistinctSectors() []string {
	return d.distinct(func(s domain.Stock) string { return s.Sector })
}

// DistinctIndustries returns the deduplicated industry values, sorted.
func (d *StockCatalogDriver) DistinctIndustries() []string {
	return d.distinct(func(s domain.Stock) string { return s.Industry })
}

func (d *StockCatalogDriver) distinct(pick func(domain.Stock) string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	seen := make(map[string]struct{}, len(d.stocks))
	values := []string{}
	for _, s := range d.stocks {
		v := pick(s)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
