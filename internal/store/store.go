// Package store owns the sqlite handle and the versioned schema
// migrations applied before the store is opened for traffic.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/gatherhub/server/internal/store/migrations"
)

// Store wraps the shared sqlite pool. Writes are auto-committed per unit
// of work; the only multi-statement transactions are event deletion and
// migration application.
type Store struct {
	db *sql.DB
}

// Open connects to the sqlite database at path and applies pending
// migrations. A migration failure leaves the store unusable and must be
// treated as fatal by the caller.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path is required")
	}
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single writer avoids "database is locked" errors under concurrent
	// registration submissions.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := applyMigrations(db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// DB exposes the underlying pool for the repositories.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
