package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent;
// "duplicate column name" errors from re-run ALTER TABLE statements are
// tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// One row per committed session. Category is a denormalized name
	// copy; there is deliberately no foreign key into categories.
	`CREATE TABLE IF NOT EXISTS sessions (
		id          TEXT PRIMARY KEY,
		description TEXT NOT NULL,
		category    TEXT NOT NULL,
		duration_ms INTEGER NOT NULL CHECK(duration_ms >= 0),
		timestamp   TEXT NOT NULL,
		span_start  TEXT NOT NULL,
		span_end    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_timestamp ON sessions(timestamp)`,

	`CREATE TABLE IF NOT EXISTS categories (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		icon       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	// The single in-flight timer. At most one row, fixed id.
	`CREATE TABLE IF NOT EXISTS active_timer (
		id          INTEGER PRIMARY KEY CHECK(id = 1),
		running     INTEGER NOT NULL DEFAULT 0,
		started_at  TEXT,
		description TEXT NOT NULL DEFAULT '',
		category    TEXT NOT NULL DEFAULT ''
	)`,
}
