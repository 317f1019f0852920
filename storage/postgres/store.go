// Package postgres implements the identity and tracker storage interfaces
// on a pgx connection pool. Storage-level failures are mapped to the domain
// sentinels: unique violations to taken errors, missing rows to not-found,
// and foreign-key violations to dependency conflicts.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is the subset of pgxpool.Pool the repositories use. Tests
// substitute a mock pool through it.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Store bundles the repositories over one connection pool.
type Store struct {
	Users   *UsersStore
	Tracker *TrackerStore
}

// New creates repositories over the given pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{
		Users:   NewUsersStore(pool),
		Tracker: NewTrackerStore(pool),
	}
}
