package fetch_news_usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ElliottBolan/stock-news-sentiment/domain"
	"github.com/ElliottBolan/stock-news-sentiment/port/fetch_news_port"
	"github.com/ElliottBolan/stock-news-sentiment/utils/cache"
	"github.com/ElliottBolan/stock-news-sentiment/utils/errors"
	"github.com/ElliottBolan/stock-news-sentiment/utils/logger"
	"github.com/ElliottBolan/stock-news-sentiment/utils/metrics"
)

// FetchNewsUsecase aggregates sentiment-annotated news across tickers.
//
// Multi-ticker fetches run concurrently with a per-ticker timeout. A failed
// ticker is dropped from the aggregate and logged; the remaining tickers
// still produce a result. Only when every ticker fails does the aggregate
// itself fail.
type FetchNewsUsecase struct {
	newsGateway      fetch_news_port.FetchNewsPort
	newsCache        *cache.NewsCache
	metrics          *metrics.Collector
	perTickerTimeout time.Duration
}

func NewFetchNewsUsecase(newsGateway fetch_news_port.FetchNewsPort, newsCache *cache.NewsCache, collector *metrics.Collector, perTickerTimeout time.Duration) *FetchNewsUsecase {
	return &FetchNewsUsecase{
		newsGateway:      newsGateway,
		newsCache:        newsCache,
		metrics:          collector,
		perTickerTimeout: perTickerTimeout,
	}
}

// Execute fetches articles for a single ticker, newest first.
func (u *FetchNewsUsecase) Execute(ctx context.Context, ticker string) ([]domain.NewsArticle, error) {
	normalized, err := normalizeTicker(ticker)
	if err != nil {
		return nil, err
	}

	fetchCtx, cancel := context.WithTimeout(ctx, u.perTickerTimeout)
	defer cancel()

	articles, err := u.newsGateway.FetchNews(fetchCtx, normalized)
	if err != nil {
		return nil, err
	}

	sortNewestFirst(articles)
	return articles, nil
}

// ExecuteMany fetches articles for all tickers concurrently and returns the
// merged aggregate, newest first. Results are cached per user and ticker
// set; a subscription change during the fetch prevents the stale aggregate
// from entering the cache.
func (u *FetchNewsUsecase) ExecuteMany(ctx context.Context, userID uuid.UUID, tickers []string) ([]domain.NewsArticle, error) {
	normalized, err := normalizeTickers(tickers)
	if err != nil {
		return nil, err
	}
	if len(normalized) == 0 {
		return []domain.NewsArticle{}, nil
	}

	key := cache.Key(userID, normalized)
	if u.newsCache != nil {
		if cached, ok := u.newsCache.Get(key); ok {
			u.recordCacheHit()
			return cached, nil
		}
		u.recordCacheMiss()
	}

	generation := u.cacheGeneration(userID)

	results := make([][]domain.NewsArticle, len(normalized))
	failures := make([]error, len(normalized))

	g, groupCtx := errgroup.WithContext(ctx)
	for i, ticker := range normalized {
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(groupCtx, u.perTickerTimeout)
			defer cancel()

			articles, err := u.newsGateway.FetchNews(fetchCtx, ticker)
			if err != nil {
				failures[i] = err
				logger.SafeWarnContext(ctx, "dropping ticker from aggregate",
					"ticker", ticker,
					"error", err)
				return nil
			}
			results[i] = articles
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]domain.NewsArticle, 0)
	succeeded := 0
	for i := range normalized {
		if failures[i] == nil {
			succeeded++
			merged = append(merged, results[i]...)
		}
	}

	if succeeded == 0 {
		return nil, errors.NewAppContextError(
			string(errors.ErrCodeNewsProvider),
			"all tickers failed to fetch",
			"usecase",
			"FetchNewsUsecase",
			"ExecuteMany",
			failures[0],
			map[string]interface{}{"tickers": normalized},
		)
	}

	sortNewestFirst(merged)

	if u.newsCache != nil && u.cacheGeneration(userID) == generation {
		u.newsCache.Set(key, merged)
	}

	return merged, nil
}

func normalizeTicker(ticker string) (string, error) {
	normalized := domain.NormalizeTicker(ticker)
	if !domain.IsValidTicker(normalized) {
		return "", errors.NewValidationContextError(
			"invalid ticker symbol",
			"usecase",
			"FetchNewsUsecase",
			"normalizeTicker",
			map[string]interface{}{"ticker": ticker},
		)
	}
	return normalized, nil
}

// normalizeTickers validates every ticker and removes duplicates while
// keeping first-seen order.
func normalizeTickers(tickers []string) ([]string, error) {
	seen := make(map[string]bool, len(tickers))
	normalized := make([]string, 0, len(tickers))
	for _, ticker := range tickers {
		n, err := normalizeTicker(ticker)
		if err != nil {
			return nil, err
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		normalized = append(normalized, n)
	}
	return normalized, nil
}

// sortNewestFirst orders articles by publication time descending. The sort
// is stable so same-timestamp articles keep their per-ticker order.
func sortNewestFirst(articles []domain.NewsArticle) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
}

func (u *FetchNewsUsecase) cacheGeneration(userID uuid.UUID) uint64 {
	if u.newsCache == nil {
		return 0
	}
	return u.newsCache.Generation(userID)
}

func (u *FetchNewsUsecase) recordCacheHit() {
	if u.metrics != nil {
		u.metrics.RecordCacheHit()
	}
}

func (u *FetchNewsUsecase) recordCacheMiss() {
	if u.metrics != nil {
		u.metrics.RecordCacheMiss()
	}
}
