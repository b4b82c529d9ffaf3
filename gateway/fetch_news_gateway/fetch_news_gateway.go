package fetch_news_gateway

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/ElliottBolan/stock-news-sentiment/domain"
	"github.com/ElliottBolan/stock-news-sentiment/port/fetch_news_port"
	"github.com/ElliottBolan/stock-news-sentiment/utils/errors"
	"github.com/ElliottBolan/stock-news-sentiment/utils/logger"
	"github.com/ElliottBolan/stock-news-sentiment/utils/metrics"
)

// NewsProvider fetches raw articles for one ticker.
type NewsProvider interface {
	FetchNews(ctx context.Context, ticker string) ([]domain.NewsArticle, error)
}

// SentimentAnnotator scores a batch of articles. A nil annotator means the
// provider's own sentiment is kept as-is.
type SentimentAnnotator interface {
	Annotate(ctx context.Context, articles []domain.NewsArticle) ([]domain.NewsArticle, error)
}

// FetchNewsGateway implements the news port over a provider driver plus an
// optional sentiment annotator, translating driver failures into the
// application error taxonomy and recording fetch metrics.
type FetchNewsGateway struct {
	provider  NewsProvider
	annotator SentimentAnnotator
	metrics   *metrics.Collector
}

func NewFetchNewsGateway(provider NewsProvider, annotator SentimentAnnotator, collector *metrics.Collector) fetch_news_port.FetchNewsPort {
	return &FetchNewsGateway{
		provider:  provider,
		annotator: annotator,
		metrics:   collector,
	}
}

func (g *FetchNewsGateway) FetchNews(ctx context.Context, ticker string) ([]domain.NewsArticle, error) {
	start := time.Now()

	articles, err := g.provider.FetchNews(ctx, ticker)
	if err != nil {
		g.recordFetch("failure", start)
		return nil, g.wrapProviderError(err, ticker)
	}

	if g.annotator != nil {
		annotated, err := g.annotator.Annotate(ctx, articles)
		if err != nil {
			// Scoring failure is not a fetch failure. Keep the articles
			// with provider sentiment rather than dropping the ticker.
			logger.SafeWarnContext(ctx, "sentiment annotation failed, keeping provider sentiment",
				"ticker", ticker,
				"error", err)
		} else {
			articles = annotated
		}
	}

	g.recordFetch("success", start)
	return articles, nil
}

func (g *FetchNewsGateway) recordFetch(result string, start time.Time) {
	if g.metrics != nil {
		g.metrics.RecordNewsFetch(result, time.Since(start))
	}
}

func (g *FetchNewsGateway) wrapProviderError(err error, ticker string) error {
	code := errors.ErrCodeNewsProvider
	message := "news provider request failed"

	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		code = errors.ErrCodeTimeout
		message = "news provider request timed out"
	case stderrors.Is(err, context.Canceled):
		code = errors.ErrCodeTimeout
		message = "news provider request cancelled"
	}

	return errors.NewAppContextError(
		string(code),
		message,
		"gateway",
		"FetchNewsGateway",
		"FetchNews",
		err,
		map[string]interface{}{"ticker": ticker},
	)
}
