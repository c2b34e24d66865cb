package store

import (
	"database/sql"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/xolan/worklog/internal/model"
)

// CreateProject creates a new project. Fails with ErrProjectExists when
// the name is already taken.
func (s *Store) CreateProject(name string, billing model.BillingMode, rate float64) (*model.Project, error) {
	res, err := s.db.Exec(
		`INSERT INTO projects (name, billing, hourly_rate) VALUES (?, ?, ?)`,
		name, string(billing), rate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrProjectExists
		}
		return nil, storageError("failed to create project", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, storageError("failed to get project id", err)
	}

	s.logger.Debug("Project created", zap.Int64("project_id", id), zap.String("name", name))
	return &model.Project{ID: id, Name: name, Billing: billing, HourlyRate: rate}, nil
}

// GetProject returns the project with the given id, or nil when absent.
func (s *Store) GetProject(id int64) (*model.Project, error) {
	return scanProject(s.db.QueryRow(
		`SELECT id, name, billing, hourly_rate FROM projects WHERE id = ?`, id,
	))
}

// GetProjectByName returns the project with the given name, or nil when absent.
func (s *Store) GetProjectByName(name string) (*model.Project, error) {
	return scanProject(s.db.QueryRow(
		`SELECT id, name, billing, hourly_rate FROM projects WHERE name = ?`, name,
	))
}

// ListProjects returns all projects ordered by name.
func (s *Store) ListProjects() ([]model.Project, error) {
	rows, err := s.db.Query(`SELECT id, name, billing, hourly_rate FROM projects ORDER BY name`)
	if err != nil {
		return nil, storageError("failed to query projects", err)
	}
	defer func() { _ = rows.Close() }()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		var billing string
		if err := rows.Scan(&p.ID, &p.Name, &billing, &p.HourlyRate); err != nil {
			return nil, storageError("failed to scan project", err)
		}
		p.Billing = model.BillingMode(billing)
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("error iterating rows", err)
	}

	return projects, nil
}

// UpdateProject updates a project's name, billing mode and rate.
// Fails with ErrProjectNotFound when the id is unknown and
// ErrProjectExists when the new name collides with another project.
func (s *Store) UpdateProject(p model.Project) error {
	res, err := s.db.Exec(
		`UPDATE projects SET name = ?, billing = ?, hourly_rate = ? WHERE id = ?`,
		p.Name, string(p.Billing), p.HourlyRate, p.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrProjectExists
		}
		return storageError("failed to update project", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return storageError("failed to get rows affected", err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	s.logger.Debug("Project updated", zap.Int64("project_id", p.ID))
	return nil
}

// DeleteProject removes a project. Its work entries survive and report
// under the unknown-project bucket.
func (s *Store) DeleteProject(id int64) error {
	res, err := s.db.Exec(`DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return storageError("failed to delete project", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return storageError("failed to get rows affected", err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	s.logger.Debug("Project deleted", zap.Int64("project_id", id))
	return nil
}

func scanProject(row *sql.Row) (*model.Project, error) {
	var p model.Project
	var billing string
	err := row.Scan(&p.ID, &p.Name, &billing, &p.HourlyRate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageError("failed to scan project", err)
	}
	p.Billing = model.BillingMode(billing)
	return &p, nil
}

// isUniqueViolation reports whether err is a SQLite unique constraint
// failure. modernc.org/sqlite does not export a typed error for this, so
// match on the driver's message.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
