package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Querier is the subset of *sql.DB and *sql.Tx the repositories run on.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// InTx runs fn inside a single transaction. One facade operation maps to
// exactly one InTx call; this is where staged writes become durable and
// where constraint failures surface, classified via MapError.
func (db *DB) InTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return MapError(err)
	}

	if err := tx.Commit(); err != nil {
		return MapError(err)
	}
	return nil
}
