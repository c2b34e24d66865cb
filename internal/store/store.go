// Package store is the persistence layer: projects and work entries in
// a local SQLite database. The single-open-entry invariant is enforced
// here, inside transactions backed by a partial unique index, so it
// holds across separate process launches.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Sentinel errors surfaced to the tracker and CLI.
var (
	ErrOpenEntryExists = errors.New("an open work entry already exists")
	ErrNoOpenEntry     = errors.New("no open work entry")
	ErrProjectExists   = errors.New("project already exists")
	ErrProjectNotFound = errors.New("project not found")

	// ErrStorageUnavailable tags infrastructure failures: the database
	// could not be opened, read or written.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// storageError wraps an infrastructure failure so callers can detect
// it with errors.Is(err, ErrStorageUnavailable).
func storageError(msg string, err error) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrStorageUnavailable, err)
}

// Store wraps the SQLite database holding projects and work entries.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens (creating if necessary) the database at path and runs
// migrations.
func Open(path string, logger *zap.Logger) (*Store, error) {
	// modernc.org/sqlite applies pragmas via _pragma DSN parameters.
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, storageError("failed to open database", err)
	}

	if err := db.Ping(); err != nil {
		return nil, storageError("failed to ping database", err)
	}

	s := &Store{db: db, logger: logger}

	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Database connection established", zap.String("path", path))
	return s, nil
}

func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			billing TEXT NOT NULL DEFAULT 'flat',
			hourly_rate REAL NOT NULL DEFAULT 0
		)`,
		// project_id is deliberately not a foreign key: entries outlive
		// their project and report under the unknown-project bucket.
		`CREATE TABLE IF NOT EXISTS work_entries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			description TEXT NOT NULL,
			start_time INTEGER NOT NULL,
			end_time INTEGER
		)`,
		// At most one open entry in the whole table.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_work_entries_single_open
			ON work_entries ((1)) WHERE end_time IS NULL`,
		`CREATE INDEX IF NOT EXISTS idx_work_entries_start ON work_entries (start_time)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return storageError("migration failed", err)
		}
	}

	s.logger.Debug("Database migrations completed")
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	s.logger.Debug("Database connection closed")
	return nil
}
