package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/ElliottBolan/stock-news-sentiment/domain"
	"github.com/ElliottBolan/stock-news-sentiment/utils/logger"
	"github.com/ElliottBolan/stock-news-sentiment/utils/rate_limiter"
)

// RSSNewsDriver pulls headlines for a ticker from a per-ticker RSS feed.
// The feed URL is derived from a template with a single %s placeholder for
// the ticker symbol. Articles come back without sentiment; the gateway
// layer annotates them.
type RSSNewsDriver struct {
	parser      *gofeed.Parser
	urlTemplate string
	limit       int
	limiter     *rate_limiter.HostRateLimiter
}

func NewRSSNewsDriver(httpClient *http.Client, urlTemplate string, articlesPerTicker int, limiter *rate_limiter.HostRateLimiter) *RSSNewsDriver {
	parser := gofeed.NewParser()
	parser.Client = httpClient
	parser.UserAgent = "stock-news-sentiment/1.0"

	return &RSSNewsDriver{
		parser:      parser,
		urlTemplate: urlTemplate,
		limit:       articlesPerTicker,
		limiter:     limiter,
	}
}

func (d *RSSNewsDriver) FetchNews(ctx context.Context, ticker string) ([]domain.NewsArticle, error) {
	feedURL := fmt.Sprintf(d.urlTemplate, url.QueryEscape(ticker))

	if d.limiter != nil {
		if err := d.limiter.WaitForHost(ctx, feedURL); err != nil {
			return nil, fmt.Errorf("%w: rate limit wait for %s: %v", domain.ErrNewsProvider, ticker, err)
		}
	}

	feed, err := d.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to parse news feed",
			"ticker", ticker,
			"error", err)
		return nil, fmt.Errorf("%w: fetch feed for %s: %v", domain.ErrNewsProvider, ticker, err)
	}

	articles := make([]domain.NewsArticle, 0, d.limit)
	for _, item := range feed.Items {
		if len(articles) >= d.limit {
			break
		}
		if item == nil || item.Title == "" {
			continue
		}
		articles = append(articles, d.toArticle(item, ticker, feed.Title))
	}

	logger.SafeInfoContext(ctx, "fetched news feed",
		"ticker", ticker,
		"articles", len(articles))

	return articles, nil
}

func (d *RSSNewsDriver) toArticle(item *gofeed.Item, ticker, feedTitle string) domain.NewsArticle {
	publishedAt := time.Now()
	if item.PublishedParsed != nil {
		publishedAt = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		publishedAt = *item.UpdatedParsed
	}

	id := item.GUID
	if id == "" {
		id = item.Link
	}

	source := feedTitle
	if item.Author != nil && item.Author.Name != "" {
		source = item.Author.Name
	}

	return domain.NewsArticle{
		ID:             id,
		Title:          item.Title,
		Description:    item.Description,
		URL:            item.Link,
		PublishedAt:    publishedAt,
		Source:         source,
		Sentiment:      domain.SentimentNeutral,
		SentimentScore: 0,
		Ticker:         ticker,
	}
}
