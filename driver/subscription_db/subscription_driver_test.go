package subscription_db

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUserID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

func TestFetchSubscriptions_ReturnsTickersInOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubscriptionDBRepository(mock)

	mock.ExpectQuery(`SELECT tickers FROM subscriptions WHERE user_id = \$1`).
		WithArgs(testUserID).
		WillReturnRows(pgxmock.NewRows([]string{"tickers"}).AddRow([]string{"AAPL", "MSFT"}))

	tickers, err := repo.FetchSubscriptions(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "MSFT"}, tickers)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchSubscriptions_NoRecordIsEmptySet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubscriptionDBRepository(mock)

	// No rows: the user never subscribed. That is an empty set, not an error.
	mock.ExpectQuery(`SELECT tickers FROM subscriptions WHERE user_id = \$1`).
		WithArgs(testUserID).
		WillReturnRows(pgxmock.NewRows([]string{"tickers"}))

	tickers, err := repo.FetchSubscriptions(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Empty(t, tickers)
	assert.NotNil(t, tickers)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchSubscriptions_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubscriptionDBRepository(mock)

	mock.ExpectQuery(`SELECT tickers FROM subscriptions WHERE user_id = \$1`).
		WithArgs(testUserID).
		WillReturnError(errors.New("connection reset"))

	_, err = repo.FetchSubscriptions(context.Background(), testUserID)
	require.Error(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchSubscriptions_NilPool(t *testing.T) {
	repo := &SubscriptionDBRepository{pool: nil}

	_, err := repo.FetchSubscriptions(context.Background(), testUserID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database connection not available")
}

func TestInsertSubscription_AtomicGuardedAppend(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubscriptionDBRepository(mock)

	// The whole union happens in one statement: upsert with a guarded
	// array_append, never a read-modify-write cycle.
	mock.ExpectExec(`INSERT INTO subscriptions .*ON CONFLICT \(user_id\) DO UPDATE.*array_append.*WHERE NOT subscriptions\.tickers @>`).
		WithArgs(testUserID, "AAPL").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.InsertSubscription(context.Background(), testUserID, "AAPL"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertSubscription_DuplicateAddIsNoOp(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubscriptionDBRepository(mock)

	// The guard clause filters the update; zero affected rows is success.
	mock.ExpectExec(`INSERT INTO subscriptions`).
		WithArgs(testUserID, "AAPL").
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	require.NoError(t, repo.InsertSubscription(context.Background(), testUserID, "AAPL"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertSubscription_StoreError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubscriptionDBRepository(mock)

	mock.ExpectExec(`INSERT INTO subscriptions`).
		WithArgs(testUserID, "AAPL").
		WillReturnError(errors.New("store down"))

	require.Error(t, repo.InsertSubscription(context.Background(), testUserID, "AAPL"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSubscription_AtomicRemove(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubscriptionDBRepository(mock)

	mock.ExpectExec(`UPDATE subscriptions SET tickers = array_remove\(tickers, \$2::text\) WHERE user_id = \$1`).
		WithArgs(testUserID, "AAPL").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.DeleteSubscription(context.Background(), testUserID, "AAPL"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSubscription_MissingRecordIsNoOp(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubscriptionDBRepository(mock)

	mock.ExpectExec(`UPDATE subscriptions SET tickers = array_remove`).
		WithArgs(testUserID, "AAPL").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.NoError(t, repo.DeleteSubscription(context.Background(), testUserID, "AAPL"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSubscription_NilPool(t *testing.T) {
	repo := &SubscriptionDBRepository{pool: nil}

	err := repo.DeleteSubscription(context.Background(), testUserID, "AAPL")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database connection not available")
}
