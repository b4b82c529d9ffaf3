package subscription_db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ElliottBolan/stock-news-sentiment/utils/logger"
)

// FetchSubscriptions returns the user's tickers in insertion order. A
// missing record is an empty subscription set, not an error.
func (r *SubscriptionDBRepository) FetchSubscriptions(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if r.pool == nil {
		return nil, errors.New("database connection not available")
	}

	query := `SELECT tickers FROM subscriptions WHERE user_id = $1`

	var tickers []string
	err := r.pool.QueryRow(ctx, query, userID).Scan(&tickers)
	if errors.Is(err, pgx.ErrNoRows) {
		return []string{}, nil
	}
	if err != nil {
		logger.SafeErrorContext(ctx, "error fetching subscriptions", "error", err, "user_id", userID)
		return nil, errors.New("error fetching subscriptions")
	}

	if tickers == nil {
		tickers = []string{}
	}
	return tickers, nil
}

// InsertSubscription adds ticker to the user's set with a single atomic
// upsert. The guarded array_append makes duplicate adds no-ops without a
// read-modify-write cycle, so concurrent sessions cannot lose updates.
func (r *SubscriptionDBRepository) InsertSubscription(ctx context.Context, userID uuid.UUID, ticker string) error {
	if r.pool == nil {
		return errors.New("database connection not available")
	}

	query := `
		INSERT INTO subscriptions (user_id, tickers)
		VALUES ($1, ARRAY[$2::text])
		ON CONFLICT (user_id) DO UPDATE
		SET tickers = array_append(subscriptions.tickers, $2::text)
		WHERE NOT subscriptions.tickers @> ARRAY[$2::text]`

	_, err := r.pool.Exec(ctx, query, userID, ticker)
	if err != nil {
		logger.SafeErrorContext(ctx, "error inserting subscription", "error", err, "user_id", userID, "ticker", ticker)
		return errors.New("error inserting subscription")
	}

	return nil
}

// DeleteSubscription removes ticker from the user's set atomically. Absent
// records and absent tickers are no-ops; removing the last ticker retains
// the record with an empty array.
func (r *SubscriptionDBRepository) DeleteSubscription(ctx context.Context, userID uuid.UUID, ticker string) error {
	if r.pool == nil {
		return errors.New("database connection not available")
	}

	query := `UPDATE subscriptions SET tickers = array_remove(tickers, $2::text) WHERE user_id = $1`

	_, err := r.pool.Exec(ctx, query, userID, ticker)
	if err != nil {
		logger.SafeErrorContext(ctx, "error deleting subscription", "error", err, "user_id", userID, "ticker", ticker)
		return errors.New("error deleting subscription")
	}

	return nil
}
