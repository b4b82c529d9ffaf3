package news

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElliottBolan/stock-news-sentiment/domain"
)

func TestMockNewsDriver_FetchNews(t *testing.T) {
	driver := NewSeededMockNewsDriver(5, 42)

	articles, err := driver.FetchNews(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Len(t, articles, 5)

	now := time.Now()
	for _, a := range articles {
		assert.Equal(t, "AAPL", a.Ticker)
		assert.NotEmpty(t, a.ID)
		assert.NotEmpty(t, a.Title)
		assert.Contains(t, a.Title, "AAPL")
		assert.NotEmpty(t, a.URL)
		assert.Contains(t, mockSources, a.Source)
		assert.True(t, a.PublishedAt.After(now.Add(-7*24*time.Hour-time.Minute)),
			"published more than seven days ago: %v", a.PublishedAt)
		assert.True(t, a.PublishedAt.Before(now.Add(time.Minute)),
			"published in the future: %v", a.PublishedAt)
	}
}

func TestMockNewsDriver_SentimentCoherence(t *testing.T) {
	driver := NewSeededMockNewsDriver(200, 7)

	articles, err := driver.FetchNews(context.Background(), "MSFT")
	require.NoError(t, err)

	for _, a := range articles {
		assert.Equal(t, domain.SentimentFromScore(a.SentimentScore), a.Sentiment,
			"label %q incoherent with score %f", a.Sentiment, a.SentimentScore)
		assert.GreaterOrEqual(t, a.SentimentScore, -1.0)
		assert.LessOrEqual(t, a.SentimentScore, 1.0)
	}
}

func TestMockNewsDriver_ArticleCountConfigurable(t *testing.T) {
	driver := NewSeededMockNewsDriver(3, 1)

	articles, err := driver.FetchNews(context.Background(), "GOOGL")
	require.NoError(t, err)
	assert.Len(t, articles, 3)
}

func TestMockNewsDriver_Reproducible(t *testing.T) {
	first := NewSeededMockNewsDriver(5, 99)
	second := NewSeededMockNewsDriver(5, 99)

	a1, err := first.FetchNews(context.Background(), "TSLA")
	require.NoError(t, err)
	a2, err := second.FetchNews(context.Background(), "TSLA")
	require.NoError(t, err)

	require.Len(t, a2, len(a1))
	for i := range a1 {
		assert.Equal(t, a1[i].Title, a2[i].Title)
		assert.Equal(t, a1[i].Sentiment, a2[i].Sentiment)
		assert.Equal(t, a1[i].SentimentScore, a2[i].SentimentScore)
	}
}

func TestMockNewsDriver_ContextCancelled(t *testing.T) {
	driver := NewSeededMockNewsDriver(5, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := driver.FetchNews(ctx, "AAPL")
	assert.ErrorIs(t, err, context.Canceled)
}
