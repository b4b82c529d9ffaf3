package fetch_news_port

//go:generate go run go.uber.org/mock/mockgen -source=fetch_news_port.go -destination=../../mocks/mock_fetch_news_port.go -package=mocks

import (
	"context"

	"github.com/ElliottBolan/stock-news-sentiment/domain"
)

// FetchNewsPort fetches sentiment-annotated articles for one ticker.
// Ordering is provider-defined; sentiment assignment is a provider
// responsibility and is passed through unchanged by the aggregator.
type FetchNewsPort interface {
	FetchNews(ctx context.Context, ticker string) ([]domain.NewsArticle, error)
}
