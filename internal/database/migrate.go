package database

import (
	"context"
	"fmt"
)

// Schema: users own messages, follow edges, and like edges; deleting a
// user cascades through all three. Uniqueness and text-length rules live
// here so they hold regardless of which code path writes.

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username VARCHAR(30) NOT NULL UNIQUE CHECK (username <> ''),
		email VARCHAR(120) NOT NULL UNIQUE CHECK (email <> ''),
		password_hash TEXT NOT NULL CHECK (password_hash <> ''),
		image_url TEXT NOT NULL DEFAULT '/static/images/default-pic.png',
		header_image_url TEXT NOT NULL DEFAULT '/static/images/warbler-hero.jpg',
		bio TEXT,
		location TEXT,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		text VARCHAR(140) NOT NULL CHECK (length(text) BETWEEN 1 AND 140),
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_user_created
		ON messages (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS follows (
		follower_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		followed_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (follower_id, followed_id),
		CHECK (follower_id <> followed_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_follows_followed
		ON follows (followed_id)`,
	`CREATE TABLE IF NOT EXISTS likes (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		message_id UUID NOT NULL REFERENCES messages(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL,
		UNIQUE (user_id, message_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_likes_message
		ON likes (message_id)`,
}

// sqlite ignores VARCHAR lengths, so the CHECK clauses carry the bounds.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE CHECK (length(username) BETWEEN 1 AND 30),
		email TEXT NOT NULL UNIQUE CHECK (length(email) BETWEEN 1 AND 120),
		password_hash TEXT NOT NULL CHECK (password_hash <> ''),
		image_url TEXT NOT NULL DEFAULT '/static/images/default-pic.png',
		header_image_url TEXT NOT NULL DEFAULT '/static/images/warbler-hero.jpg',
		bio TEXT,
		location TEXT,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		text TEXT NOT NULL CHECK (length(text) BETWEEN 1 AND 140),
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_user_created
		ON messages (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS follows (
		follower_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		followed_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at TIMESTAMP NOT NULL,
		PRIMARY KEY (follower_id, followed_id),
		CHECK (follower_id <> followed_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_follows_followed
		ON follows (followed_id)`,
	`CREATE TABLE IF NOT EXISTS likes (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		message_id TEXT NOT NULL REFERENCES messages(id) ON DELETE CASCADE,
		created_at TIMESTAMP NOT NULL,
		UNIQUE (user_id, message_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_likes_message
		ON likes (message_id)`,
}

// Migrate creates the schema if it does not exist yet. Safe to run on
// every start.
func (db *DB) Migrate(ctx context.Context) error {
	schema := postgresSchema
	if db.driver == DriverSQLite {
		schema = sqliteSchema
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	return nil
}
