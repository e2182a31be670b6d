// Package database owns the store handle: one *sql.DB opened at process
// start and closed at shutdown, with scoped transactions per operation.
// Two drivers are supported, server postgres and embedded sqlite.
package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/warblerhq/warbler/internal/config"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

type DB struct {
	*sql.DB
	driver string
}

func (db *DB) Driver() string { return db.driver }

func Connect(ctx context.Context, cfg *config.Config) (*DB, error) {
	if cfg.Driver == config.DriverSQLite {
		return OpenSQLite(ctx, cfg.SQLitePath)
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := sql.Open(DriverPostgres, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return &DB{DB: db, driver: DriverPostgres}, nil
}

// OpenSQLite opens an embedded sqlite store. Use ":memory:" for a
// throwaway database.
func OpenSQLite(ctx context.Context, path string) (*DB, error) {
	db, err := sql.Open(DriverSQLite, path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// sqlite reports busy errors under more than one writer connection
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = normal",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying %q: %w", pragma, err)
		}
	}

	return &DB{DB: db, driver: DriverSQLite}, nil
}
