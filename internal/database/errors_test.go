package database_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warblerhq/warbler/internal/database"
)

func openTestDB(t *testing.T) (*database.DB, context.Context) {
	t.Helper()
	ctx := context.Background()

	db, err := database.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(ctx))
	return db, ctx
}

func insertUser(t *testing.T, ctx context.Context, db *database.DB, username, email string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, password_hash, created_at)
		 VALUES ($1, $2, $3, 'x', $4)`,
		id, username, email, time.Now().UTC(),
	)
	require.NoError(t, err)
	return id
}

func TestMapErrorUniqueViolation(t *testing.T) {
	db, ctx := openTestDB(t)
	insertUser(t, ctx, db, "testuser", "test@test.com")

	_, err := db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, password_hash, created_at)
		 VALUES ($1, 'testuser', 'other@test.com', 'x', $2)`,
		uuid.New(), time.Now().UTC(),
	)
	require.Error(t, err)
	assert.ErrorIs(t, database.MapError(err), database.ErrUniqueViolation)
}

func TestMapErrorForeignKeyViolation(t *testing.T) {
	db, ctx := openTestDB(t)

	_, err := db.ExecContext(ctx,
		`INSERT INTO messages (id, user_id, text, created_at)
		 VALUES ($1, $2, 'hello', $3)`,
		uuid.New(), uuid.New(), time.Now().UTC(),
	)
	require.Error(t, err)
	assert.ErrorIs(t, database.MapError(err), database.ErrForeignKeyViolation)
}

func TestMapErrorCheckViolation(t *testing.T) {
	db, ctx := openTestDB(t)
	userID := insertUser(t, ctx, db, "testuser", "test@test.com")

	_, err := db.ExecContext(ctx,
		`INSERT INTO messages (id, user_id, text, created_at)
		 VALUES ($1, $2, '', $3)`,
		uuid.New(), userID, time.Now().UTC(),
	)
	require.Error(t, err)
	assert.ErrorIs(t, database.MapError(err), database.ErrValidation)
}

func TestMapErrorNotNullViolation(t *testing.T) {
	db, ctx := openTestDB(t)

	_, err := db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, password_hash, created_at)
		 VALUES ($1, NULL, 'test@test.com', 'x', $2)`,
		uuid.New(), time.Now().UTC(),
	)
	require.Error(t, err)
	assert.ErrorIs(t, database.MapError(err), database.ErrValidation)
}

func TestMapErrorPassthrough(t *testing.T) {
	assert.NoError(t, database.MapError(nil))

	plain := sql.ErrNoRows
	assert.Equal(t, plain, database.MapError(plain))
}

func TestInTxSurfacesConstraintErrors(t *testing.T) {
	db, ctx := openTestDB(t)
	insertUser(t, ctx, db, "testuser", "test@test.com")

	err := db.InTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO users (id, username, email, password_hash, created_at)
			 VALUES ($1, 'testuser', 'dup@test.com', 'x', $2)`,
			uuid.New(), time.Now().UTC(),
		)
		return err
	})
	assert.ErrorIs(t, err, database.ErrUniqueViolation)

	// the failed transaction must leave nothing behind
	var n int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE email = 'dup@test.com'`).Scan(&n))
	assert.Zero(t, n)
}

func TestInTxRollsBackOnError(t *testing.T) {
	db, ctx := openTestDB(t)

	boom := assert.AnError
	err := db.InTx(ctx, func(tx *sql.Tx) error {
		_, execErr := tx.ExecContext(ctx,
			`INSERT INTO users (id, username, email, password_hash, created_at)
			 VALUES ($1, 'testuser', 'test@test.com', 'x', $2)`,
			uuid.New(), time.Now().UTC(),
		)
		require.NoError(t, execErr)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var n int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n))
	assert.Zero(t, n)
}
