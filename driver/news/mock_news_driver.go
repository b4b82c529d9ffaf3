// Package news contains the news provider drivers. The contract is the
// article shape only; transport is provider-specific and opaque to the
// rest of the system.
package news

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/ElliottBolan/stock-news-sentiment/domain"
)

var mockTitles = []string{
	"%s reports strong quarterly earnings",
	"Analysts upgrade %s stock rating",
	"%s announces new product launch",
	"Market volatility affects %s performance",
	"%s CEO discusses future strategy",
	"New partnership announced for %s",
	"%s faces regulatory challenges",
	"Innovation drives %s growth",
}

var mockSources = []string{"Reuters", "Bloomberg", "CNBC", "WSJ"}

// MockNewsDriver generates synthetic sentiment-annotated articles. The
// sentiment label is drawn first and the score second, from a range
// coherent with the label, so label/score pairs are consistent by
// construction. Articles are published within the last seven days in no
// particular order.
type MockNewsDriver struct {
	count int

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewMockNewsDriver(articlesPerTicker int) *MockNewsDriver {
	return NewSeededMockNewsDriver(articlesPerTicker, time.Now().UnixNano())
}

// NewSeededMockNewsDriver creates a generator with a fixed seed for
// reproducible output.
func NewSeededMockNewsDriver(articlesPerTicker int, seed int64) *MockNewsDriver {
	return &MockNewsDriver{
		count: articlesPerTicker,
		rng:   rand.New(rand.NewSource(seed)),
		now:   time.Now,
	}
}

func (d *MockNewsDriver) FetchNews(ctx context.Context, ticker string) ([]domain.NewsArticle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	articles := make([]domain.NewsArticle, 0, d.count)
	for i := 0; i < d.count; i++ {
		sentiment, score := d.drawSentiment()

		articles = append(articles, domain.NewsArticle{
			ID:             fmt.Sprintf("%s-%d-%d", ticker, i, now.UnixNano()),
			Title:          fmt.Sprintf(mockTitles[d.rng.Intn(len(mockTitles))], ticker),
			Description:    fmt.Sprintf("This is a news article about %s. %s for the company.", ticker, sentimentBlurb(sentiment)),
			URL:            fmt.Sprintf("https://example.com/news/%s/%d", ticker, i),
			PublishedAt:    now.Add(-time.Duration(d.rng.Int63n(int64(7 * 24 * time.Hour)))),
			Source:         mockSources[d.rng.Intn(len(mockSources))],
			Sentiment:      sentiment,
			SentimentScore: score,
			Ticker:         ticker,
		})
	}

	return articles, nil
}

func (d *MockNewsDriver) drawSentiment() (domain.Sentiment, float64) {
	switch d.rng.Intn(3) {
	case 0:
		return domain.SentimentPositive, 0.7 + d.rng.Float64()*0.3
	case 1:
		return domain.SentimentNegative, -0.7 - d.rng.Float64()*0.3
	default:
		return domain.SentimentNeutral, -0.3 + d.rng.Float64()*0.6
	}
}

func sentimentBlurb(s domain.Sentiment) string {
	switch s {
	case domain.SentimentPositive:
		return "Positive developments"
	case domain.SentimentNegative:
		return "Challenges ahead"
	default:
		return "Mixed signals"
	}
}
