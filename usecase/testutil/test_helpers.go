package testutil

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ElliottBolan/stock-news-sentiment/domain"
)

// Common test data generators
func CreateMockArticles(ticker string, count int, newest time.Time) []domain.NewsArticle {
	articles := make([]domain.NewsArticle, 0, count)
	for i := 0; i < count; i++ {
		articles = append(articles, domain.NewsArticle{
			ID:             ticker + "-" + string(rune('a'+i)),
			Title:          "Article about " + ticker,
			Description:    "Test description for " + ticker,
			URL:            "https://test.com/" + ticker,
			PublishedAt:    newest.Add(-time.Duration(i) * time.Hour),
			Source:         "Reuters",
			Sentiment:      domain.SentimentNeutral,
			SentimentScore: 0.1,
			Ticker:         ticker,
		})
	}
	return articles
}

func CreateMockStocks() []domain.Stock {
	return []domain.Stock{
		{Ticker: "AAPL", Name: "Apple Inc.", Industry: "Consumer Electronics", Sector: "Technology"},
		{Ticker: "MSFT", Name: "Microsoft Corporation", Industry: "Software - Infrastructure", Sector: "Technology"},
	}
}

func CreateMockUser() *domain.UserContext {
	return &domain.UserContext{
		UserID:    uuid.MustParse("4a58ed9a-cfb8-4f89-9d4a-27b1a0b1a9ce"),
		Email:     "user@example.com",
		Role:      domain.UserRoleUser,
		SessionID: "sess-1",
		LoginAt:   time.Now().Add(-time.Hour),
		ExpiresAt: time.Now().Add(23 * time.Hour),
	}
}

// Common error instances
var (
	ErrMockStore    = errors.New("mock store error")
	ErrMockProvider = errors.New("mock provider error")
)

// Context utilities
func CreateCancelledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}
