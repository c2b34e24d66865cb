package store

import (
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/xolan/worklog/internal/model"
)

// Timestamps are stored as Unix seconds; the tool does not track
// sub-second precision.

// InsertWorkEntry creates a new open work entry. The open-entry check
// and the insert run in one transaction so two racing invocations
// cannot both open a session.
func (s *Store) InsertWorkEntry(projectID int64, description string, startAt time.Time) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, storageError("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	var existing int64
	err = tx.QueryRow(`SELECT id FROM work_entries WHERE end_time IS NULL`).Scan(&existing)
	if err == nil {
		return 0, ErrOpenEntryExists
	}
	if err != sql.ErrNoRows {
		return 0, storageError("failed to check for open entry", err)
	}

	res, err := tx.Exec(
		`INSERT INTO work_entries (project_id, description, start_time) VALUES (?, ?, ?)`,
		projectID, description, startAt.Unix(),
	)
	if err != nil {
		// A racing process may have opened an entry after the check;
		// the partial unique index catches it.
		if isUniqueViolation(err) {
			return 0, ErrOpenEntryExists
		}
		return 0, storageError("failed to insert work entry", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageError("failed to get entry id", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, storageError("failed to commit", err)
	}

	s.logger.Debug("Work entry created",
		zap.Int64("entry_id", id),
		zap.Int64("project_id", projectID),
	)
	return id, nil
}

// CloseWorkEntry sets the end time of an open entry. Fails with
// ErrNoOpenEntry if the entry does not exist or is already closed.
func (s *Store) CloseWorkEntry(id int64, endAt time.Time) error {
	res, err := s.db.Exec(
		`UPDATE work_entries SET end_time = ? WHERE id = ? AND end_time IS NULL`,
		endAt.Unix(), id,
	)
	if err != nil {
		return storageError("failed to close work entry", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return storageError("failed to get rows affected", err)
	}
	if affected == 0 {
		return ErrNoOpenEntry
	}

	s.logger.Debug("Work entry closed", zap.Int64("entry_id", id))
	return nil
}

// SwapOpenEntry atomically closes the currently open entry at `at` and
// opens a new one starting at the same instant. Used by start --force so
// no time is lost between the two sessions. Returns the closed entry and
// the id of the new one.
func (s *Store) SwapOpenEntry(projectID int64, description string, at time.Time) (*model.WorkEntry, int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, 0, storageError("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	closed, err := scanOpenEntry(tx.QueryRow(
		`SELECT id, project_id, description, start_time, end_time
		 FROM work_entries WHERE end_time IS NULL`,
	))
	if err != nil {
		return nil, 0, err
	}
	if closed == nil {
		return nil, 0, ErrNoOpenEntry
	}

	if _, err := tx.Exec(
		`UPDATE work_entries SET end_time = ? WHERE id = ?`,
		at.Unix(), closed.ID,
	); err != nil {
		return nil, 0, storageError("failed to close work entry", err)
	}
	end := time.Unix(at.Unix(), 0)
	closed.EndTime = &end

	res, err := tx.Exec(
		`INSERT INTO work_entries (project_id, description, start_time) VALUES (?, ?, ?)`,
		projectID, description, at.Unix(),
	)
	if err != nil {
		return nil, 0, storageError("failed to insert work entry", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, 0, storageError("failed to get entry id", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, storageError("failed to commit", err)
	}

	s.logger.Debug("Open work entry swapped",
		zap.Int64("closed_id", closed.ID),
		zap.Int64("entry_id", id),
	)
	return closed, id, nil
}

// FindOpenEntry returns the single open entry, or nil when idle.
func (s *Store) FindOpenEntry() (*model.WorkEntry, error) {
	return scanOpenEntry(s.db.QueryRow(
		`SELECT id, project_id, description, start_time, end_time
		 FROM work_entries WHERE end_time IS NULL`,
	))
}

// GetWorkEntry returns the entry with the given id, or nil when absent.
func (s *Store) GetWorkEntry(id int64) (*model.WorkEntry, error) {
	return scanOpenEntry(s.db.QueryRow(
		`SELECT id, project_id, description, start_time, end_time
		 FROM work_entries WHERE id = ?`, id,
	))
}

// FindEntriesInRange returns the closed entries whose start time falls
// in the half-open range [start, end), ordered by start time. Open
// entries are excluded by contract.
func (s *Store) FindEntriesInRange(start, end time.Time) ([]model.WorkEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, project_id, description, start_time, end_time
		 FROM work_entries
		 WHERE end_time IS NOT NULL AND start_time >= ? AND start_time < ?
		 ORDER BY start_time`,
		start.Unix(), end.Unix(),
	)
	if err != nil {
		return nil, storageError("failed to query work entries", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.WorkEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("error iterating rows", err)
	}

	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (model.WorkEntry, error) {
	var (
		e        model.WorkEntry
		startSec int64
		endSec   sql.NullInt64
	)
	if err := row.Scan(&e.ID, &e.ProjectID, &e.Description, &startSec, &endSec); err != nil {
		return model.WorkEntry{}, storageError("failed to scan work entry", err)
	}
	e.StartTime = time.Unix(startSec, 0)
	if endSec.Valid {
		end := time.Unix(endSec.Int64, 0)
		e.EndTime = &end
	}
	return e, nil
}

func scanOpenEntry(row *sql.Row) (*model.WorkEntry, error) {
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}
