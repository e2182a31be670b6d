package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
)

// Store error taxonomy. Constraint failures from either driver are
// classified into one of these; the driver error stays wrapped so
// callers can still inspect it.
var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
	ErrValidation          = errors.New("validation constraint violation")
)

// PostgreSQL SQLSTATE codes for integrity violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// SQLite extended result codes, kept as local constants instead of
// importing modernc.org/sqlite/lib for five integers.
const (
	sqliteConstraintCheck      = 275
	sqliteConstraintForeignKey = 787
	sqliteConstraintNotNull    = 1299
	sqliteConstraintPrimaryKey = 1555
	sqliteConstraintUnique     = 2067
)

// MapError classifies driver-level constraint failures. Errors that are
// not constraint failures pass through unmodified.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
		case pgNotNullViolation, pgCheckViolation:
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}
		return err
	}

	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		switch sqErr.Code() {
		case sqliteConstraintUnique, sqliteConstraintPrimaryKey:
			return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		case sqliteConstraintForeignKey:
			return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
		case sqliteConstraintNotNull, sqliteConstraintCheck:
			return fmt.Errorf("%w: %w", ErrValidation, err)
		}
	}

	return err
}
