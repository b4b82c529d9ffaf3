// Package subscription_db is the only code allowed to touch the external
// subscription document store. Documents are keyed by user id and hold the
// ticker array:
//
//	CREATE TABLE subscriptions (
//	    user_id UUID PRIMARY KEY,
//	    tickers TEXT[] NOT NULL DEFAULT '{}'
//	);
package subscription_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBPool is the subset of pgxpool.Pool used by the repository. pgxmock's
// pool satisfies it in tests.
type DBPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Close()
}

type SubscriptionDBRepository struct {
	pool DBPool
}

func NewSubscriptionDBRepository(pool DBPool) *SubscriptionDBRepository {
	return &SubscriptionDBRepository{pool: pool}
}
