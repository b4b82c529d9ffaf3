// Package sentiment scores news articles. The OpenAI annotator is used when
// the news provider itself carries no sentiment signal; the score drives
// the label so the two can never disagree.
package sentiment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/ElliottBolan/stock-news-sentiment/domain"
	"github.com/ElliottBolan/stock-news-sentiment/utils/logger"
)

type scoredArticle struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

type scoringResponse struct {
	Articles []scoredArticle `json:"articles"`
}

// OpenAIAnnotator scores article headlines in a single batched chat
// completion per fetch. Articles the model does not return keep a neutral
// score.
type OpenAIAnnotator struct {
	client openai.Client
	model  string
}

func NewOpenAIAnnotator(apiKey, model string, opts ...option.RequestOption) *OpenAIAnnotator {
	return &OpenAIAnnotator{
		client: openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...),
		model:  model,
	}
}

func (a *OpenAIAnnotator) Annotate(ctx context.Context, articles []domain.NewsArticle) ([]domain.NewsArticle, error) {
	if len(articles) == 0 {
		return articles, nil
	}

	prompt := buildScoringPrompt(articles)

	response, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: a.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You are a financial news sentiment analyst. Score each article from -1.0 (very negative) to 1.0 (very positive) for the company mentioned. Respond with JSON only."),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(0.1),
		MaxTokens:   openai.Int(1000),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: sentiment scoring: %v", domain.ErrNewsProvider, err)
	}
	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("%w: sentiment scoring: empty response", domain.ErrNewsProvider)
	}

	var scored scoringResponse
	if err := json.Unmarshal([]byte(response.Choices[0].Message.Content), &scored); err != nil {
		return nil, fmt.Errorf("%w: parse sentiment response: %v", domain.ErrNewsProvider, err)
	}

	scores := make(map[string]float64, len(scored.Articles))
	for _, s := range scored.Articles {
		scores[s.ID] = clampScore(s.Score)
	}

	annotated := make([]domain.NewsArticle, len(articles))
	for i, article := range articles {
		score, ok := scores[article.ID]
		if !ok {
			logger.SafeWarnContext(ctx, "article missing from sentiment response, keeping neutral",
				"article_id", article.ID)
			score = 0
		}
		article.SentimentScore = score
		article.Sentiment = domain.SentimentFromScore(score)
		annotated[i] = article
	}

	return annotated, nil
}

func buildScoringPrompt(articles []domain.NewsArticle) string {
	type promptArticle struct {
		ID     string `json:"id"`
		Ticker string `json:"ticker"`
		Title  string `json:"title"`
	}

	input := make([]promptArticle, len(articles))
	for i, a := range articles {
		input[i] = promptArticle{ID: a.ID, Ticker: a.Ticker, Title: a.Title}
	}

	// Marshalling the fixed struct above cannot fail.
	payload, _ := json.Marshal(input)

	return fmt.Sprintf(`Score the sentiment of each headline for its ticker.

Articles:
%s

Respond with JSON in exactly this shape:
{"articles": [{"id": "...", "score": 0.0}]}`, payload)
}

func clampScore(score float64) float64 {
	if score > 1.0 {
		return 1.0
	}
	if score < -1.0 {
		return -1.0
	}
	return score
}
