package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens/creates a SQLite DB file and ensures tables exist.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// Conservative pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is not great with many writers
	db.SetMaxIdleConns(1)

	for _, pragma := range pragmas {
		if _, err := db.Exec("PRAGMA " + pragma + ";"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set PRAGMA %s: %w", pragma, err)
		}
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const sqliteDriverName = "sqlite"

// pragmas applied to every connection for reliability under a single writer.
var pragmas = []string{
	"journal_mode = WAL",
	"foreign_keys = ON",
	"busy_timeout = 5000",
}

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL
);
`

const schemaViewState = `
CREATE TABLE IF NOT EXISTS view_state (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    page INTEGER NOT NULL,
    page_size INTEGER NOT NULL,
    sort_field TEXT NOT NULL DEFAULT '',
    sort_order TEXT NOT NULL DEFAULT 'asc',
    filter_text TEXT NOT NULL DEFAULT '',
    updated_at TIMESTAMP NOT NULL
);
`

const schemaActivityEvents = `
CREATE TABLE IF NOT EXISTS activity_events (
    id TEXT PRIMARY KEY,
    occurred_at TIMESTAMP NOT NULL,
    type TEXT NOT NULL,
    message TEXT NOT NULL,
    meta TEXT
);
`

const indexActivityOccurredAt = `
CREATE INDEX IF NOT EXISTS idx_activity_events_occurred_at ON activity_events (occurred_at);
`

// ensureSchema applies every CREATE statement in one transaction.
func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		// In case of panic, rollback to avoid leaving an open transaction
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaUsers,
		schemaViewState,
		schemaActivityEvents,
		indexActivityOccurredAt,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
