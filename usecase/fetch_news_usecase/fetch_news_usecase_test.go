package fetch_news_usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ElliottBolan/stock-news-sentiment/domain"
	"github.com/ElliottBolan/stock-news-sentiment/mocks"
	"github.com/ElliottBolan/stock-news-sentiment/usecase/testutil"
	"github.com/ElliottBolan/stock-news-sentiment/utils/cache"
	"github.com/ElliottBolan/stock-news-sentiment/utils/errors"
)

const perTickerTimeout = 5 * time.Second

func TestFetchNewsUsecase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	unsorted := []domain.NewsArticle{
		{ID: "old", Ticker: "AAPL", PublishedAt: now.Add(-48 * time.Hour)},
		{ID: "new", Ticker: "AAPL", PublishedAt: now},
		{ID: "mid", Ticker: "AAPL", PublishedAt: now.Add(-24 * time.Hour)},
	}

	mockGateway := mocks.NewMockFetchNewsPort(ctrl)
	mockGateway.EXPECT().FetchNews(gomock.Any(), "AAPL").Return(unsorted, nil).Times(1)

	usecase := NewFetchNewsUsecase(mockGateway, nil, nil, perTickerTimeout)

	articles, err := usecase.Execute(context.Background(), "aapl")
	require.NoError(t, err)
	require.Len(t, articles, 3)
	assert.Equal(t, "new", articles[0].ID)
	assert.Equal(t, "mid", articles[1].ID)
	assert.Equal(t, "old", articles[2].ID)
}

func TestFetchNewsUsecase_ExecuteInvalidTicker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := mocks.NewMockFetchNewsPort(ctrl)
	usecase := NewFetchNewsUsecase(mockGateway, nil, nil, perTickerTimeout)

	_, err := usecase.Execute(context.Background(), "not a ticker!")
	require.Error(t, err)

	var contextErr *errors.AppContextError
	require.ErrorAs(t, err, &contextErr)
	assert.Equal(t, string(errors.ErrCodeValidation), contextErr.Code)
}

func TestFetchNewsUsecase_ExecuteManyMergesNewestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	appleArticles := testutil.CreateMockArticles("AAPL", 3, now)
	microsoftArticles := testutil.CreateMockArticles("MSFT", 3, now.Add(-30*time.Minute))

	mockGateway := mocks.NewMockFetchNewsPort(ctrl)
	mockGateway.EXPECT().FetchNews(gomock.Any(), "AAPL").Return(appleArticles, nil).Times(1)
	mockGateway.EXPECT().FetchNews(gomock.Any(), "MSFT").Return(microsoftArticles, nil).Times(1)

	usecase := NewFetchNewsUsecase(mockGateway, nil, nil, perTickerTimeout)

	articles, err := usecase.ExecuteMany(context.Background(), uuid.New(), []string{"AAPL", "MSFT"})
	require.NoError(t, err)
	require.Len(t, articles, 6)

	for i := 1; i < len(articles); i++ {
		assert.False(t, articles[i].PublishedAt.After(articles[i-1].PublishedAt),
			"articles not in newest-first order at index %d", i)
	}
	assert.Equal(t, "AAPL", articles[0].Ticker)
	assert.Equal(t, "MSFT", articles[1].Ticker)
}

func TestFetchNewsUsecase_ExecuteManySingleTickerMatchesExecute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	articles := testutil.CreateMockArticles("AAPL", 3, now)

	mockGateway := mocks.NewMockFetchNewsPort(ctrl)
	mockGateway.EXPECT().FetchNews(gomock.Any(), "AAPL").Return(articles, nil).Times(2)

	usecase := NewFetchNewsUsecase(mockGateway, nil, nil, perTickerTimeout)

	single, err := usecase.Execute(context.Background(), "AAPL")
	require.NoError(t, err)
	many, err := usecase.ExecuteMany(context.Background(), uuid.New(), []string{"AAPL"})
	require.NoError(t, err)

	assert.Equal(t, single, many)
}

func TestFetchNewsUsecase_ExecuteManyDropsFailedTickers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	appleArticles := testutil.CreateMockArticles("AAPL", 3, now)

	mockGateway := mocks.NewMockFetchNewsPort(ctrl)
	mockGateway.EXPECT().FetchNews(gomock.Any(), "AAPL").Return(appleArticles, nil).Times(1)
	mockGateway.EXPECT().FetchNews(gomock.Any(), "MSFT").Return(nil, testutil.ErrMockProvider).Times(1)

	usecase := NewFetchNewsUsecase(mockGateway, nil, nil, perTickerTimeout)

	articles, err := usecase.ExecuteMany(context.Background(), uuid.New(), []string{"AAPL", "MSFT"})
	require.NoError(t, err)
	require.Len(t, articles, 3)
	for _, a := range articles {
		assert.Equal(t, "AAPL", a.Ticker)
	}
}

func TestFetchNewsUsecase_ExecuteManyAllFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := mocks.NewMockFetchNewsPort(ctrl)
	mockGateway.EXPECT().FetchNews(gomock.Any(), gomock.Any()).Return(nil, testutil.ErrMockProvider).Times(2)

	usecase := NewFetchNewsUsecase(mockGateway, nil, nil, perTickerTimeout)

	_, err := usecase.ExecuteMany(context.Background(), uuid.New(), []string{"AAPL", "MSFT"})
	require.Error(t, err)

	var contextErr *errors.AppContextError
	require.ErrorAs(t, err, &contextErr)
	assert.Equal(t, string(errors.ErrCodeNewsProvider), contextErr.Code)
}

func TestFetchNewsUsecase_ExecuteManyDeduplicatesTickers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	articles := testutil.CreateMockArticles("AAPL", 3, now)

	mockGateway := mocks.NewMockFetchNewsPort(ctrl)
	mockGateway.EXPECT().FetchNews(gomock.Any(), "AAPL").Return(articles, nil).Times(1)

	usecase := NewFetchNewsUsecase(mockGateway, nil, nil, perTickerTimeout)

	got, err := usecase.ExecuteMany(context.Background(), uuid.New(), []string{"aapl", "AAPL"})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestFetchNewsUsecase_ExecuteManyEmptyTickers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGateway := mocks.NewMockFetchNewsPort(ctrl)
	usecase := NewFetchNewsUsecase(mockGateway, nil, nil, perTickerTimeout)

	articles, err := usecase.ExecuteMany(context.Background(), uuid.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestFetchNewsUsecase_ExecuteManyCachesResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	articles := testutil.CreateMockArticles("AAPL", 3, now)
	userID := uuid.New()

	mockGateway := mocks.NewMockFetchNewsPort(ctrl)
	mockGateway.EXPECT().FetchNews(gomock.Any(), "AAPL").Return(articles, nil).Times(1)

	newsCache := cache.NewNewsCache(5 * time.Minute)
	usecase := NewFetchNewsUsecase(mockGateway, newsCache, nil, perTickerTimeout)

	first, err := usecase.ExecuteMany(context.Background(), userID, []string{"AAPL"})
	require.NoError(t, err)
	second, err := usecase.ExecuteMany(context.Background(), userID, []string{"AAPL"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFetchNewsUsecase_ExecuteManySkipsCacheOnInvalidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	articles := testutil.CreateMockArticles("AAPL", 3, now)
	userID := uuid.New()

	newsCache := cache.NewNewsCache(5 * time.Minute)

	mockGateway := mocks.NewMockFetchNewsPort(ctrl)
	// Invalidation lands mid-fetch: the finished aggregate must not be
	// cached, so the second call fetches again.
	mockGateway.EXPECT().FetchNews(gomock.Any(), "AAPL").
		DoAndReturn(func(ctx context.Context, ticker string) ([]domain.NewsArticle, error) {
			newsCache.Invalidate(userID)
			return articles, nil
		}).Times(1)
	mockGateway.EXPECT().FetchNews(gomock.Any(), "AAPL").Return(articles, nil).Times(1)

	usecase := NewFetchNewsUsecase(mockGateway, newsCache, nil, perTickerTimeout)

	_, err := usecase.ExecuteMany(context.Background(), userID, []string{"AAPL"})
	require.NoError(t, err)
	_, err = usecase.ExecuteMany(context.Background(), userID, []string{"AAPL"})
	require.NoError(t, err)
}
