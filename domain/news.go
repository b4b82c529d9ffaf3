package domain

import "time"

// Sentiment is the categorical tone of a news article toward its ticker.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Score thresholds separating the neutral band from the signed labels.
// Providers report a signed score; the label is always derived from it
// rather than trusted independently.
const (
	PositiveScoreThreshold = 0.35
	NegativeScoreThreshold = -0.35
)

// SentimentFromScore maps a signed score onto its categorical label.
func SentimentFromScore(score float64) Sentiment {
	switch {
	case score >= PositiveScoreThreshold:
		return SentimentPositive
	case score <= NegativeScoreThreshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// NewsArticle is one provider-produced article annotated with sentiment.
// Articles are immutable once produced.
type NewsArticle struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	URL            string    `json:"url"`
	PublishedAt    time.Time `json:"published_at"`
	Source         string    `json:"source"`
	Sentiment      Sentiment `json:"sentiment"`
	SentimentScore float64   `json:"sentiment_score"`
	Ticker         string    `json:"ticker"`
}
