// Package tracker owns the session state machine: starting, stopping
// and inspecting the single active work session.
package tracker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xolan/worklog/internal/clock"
	"github.com/xolan/worklog/internal/model"
	"github.com/xolan/worklog/internal/store"
)

// Tracker-specific errors, surfaced to the CLI as typed failures.
var (
	ErrUnknownProject   = errors.New("project not found")
	ErrSessionActive    = errors.New("a session is already active")
	ErrNoActiveSession  = errors.New("no active session")
	ErrInvalidTimeRange = errors.New("stop time is before the session start")
	ErrEmptyDescription = errors.New("description cannot be empty")
)

// Tracker enforces the single-active-session invariant and records
// session boundaries. It is stateless between calls: the open session
// lives in the store, so correctness survives process restarts.
type Tracker struct {
	store *store.Store
	clock clock.Clock
}

// New creates a Tracker backed by the given store and clock.
func New(s *store.Store, c clock.Clock) *Tracker {
	return &Tracker{store: s, clock: c}
}

// Session is an open work session together with its project and the
// time elapsed so far.
type Session struct {
	Entry   model.WorkEntry
	Project *model.Project // nil when the project has been deleted
	Elapsed time.Duration
}

// StoppedSession is a closed work session with its exact duration.
type StoppedSession struct {
	Entry    model.WorkEntry
	Project  *model.Project // nil when the project has been deleted
	Duration time.Duration
}

// Start opens a new work session on the project identified by ref
// (name or numeric id).
//
// If a session is already open the call fails with ErrSessionActive and
// returns the open entry, unless force is set, in which case the open
// session is closed at the same instant the new one starts. The second
// return value is the previously open entry (closed when force was
// used), nil otherwise.
func (t *Tracker) Start(ref, description string, force bool) (*model.WorkEntry, *model.WorkEntry, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, nil, ErrEmptyDescription
	}

	project, err := t.ResolveProject(ref)
	if err != nil {
		return nil, nil, err
	}

	now := t.now()

	existing, err := t.store.FindOpenEntry()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check for active session: %w", err)
	}

	if existing != nil {
		if !force {
			return nil, existing, ErrSessionActive
		}
		if now.Before(existing.StartTime) {
			return nil, existing, ErrInvalidTimeRange
		}

		closed, id, err := t.store.SwapOpenEntry(project.ID, description, now)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to swap session: %w", err)
		}
		return &model.WorkEntry{
			ID:          id,
			ProjectID:   project.ID,
			Description: description,
			StartTime:   now,
		}, closed, nil
	}

	id, err := t.store.InsertWorkEntry(project.ID, description, now)
	if err != nil {
		// A racing start may have opened a session between the check
		// and the insert; report it the same way.
		if errors.Is(err, store.ErrOpenEntryExists) {
			return nil, nil, ErrSessionActive
		}
		return nil, nil, fmt.Errorf("failed to create work entry: %w", err)
	}

	return &model.WorkEntry{
		ID:          id,
		ProjectID:   project.ID,
		Description: description,
		StartTime:   now,
	}, nil, nil
}

// Stop closes the open session at the current instant and returns it
// with its exact duration. Fails with ErrNoActiveSession when idle and
// ErrInvalidTimeRange when the clock reads earlier than the recorded
// start; nothing is written in either case.
func (t *Tracker) Stop() (*StoppedSession, error) {
	entry, err := t.store.FindOpenEntry()
	if err != nil {
		return nil, fmt.Errorf("failed to find active session: %w", err)
	}
	if entry == nil {
		return nil, ErrNoActiveSession
	}

	now := t.now()
	if now.Before(entry.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	if err := t.store.CloseWorkEntry(entry.ID, now); err != nil {
		if errors.Is(err, store.ErrNoOpenEntry) {
			return nil, ErrNoActiveSession
		}
		return nil, fmt.Errorf("failed to close work entry: %w", err)
	}
	entry.EndTime = &now

	project, err := t.store.GetProject(entry.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	return &StoppedSession{
		Entry:    *entry,
		Project:  project,
		Duration: now.Sub(entry.StartTime),
	}, nil
}

// Status returns the open session, or nil when idle. Side-effect-free.
func (t *Tracker) Status() (*Session, error) {
	entry, err := t.store.FindOpenEntry()
	if err != nil {
		return nil, fmt.Errorf("failed to find active session: %w", err)
	}
	if entry == nil {
		return nil, nil
	}

	project, err := t.store.GetProject(entry.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	return &Session{
		Entry:   *entry,
		Project: project,
		Elapsed: t.now().Sub(entry.StartTime),
	}, nil
}

// ResolveProject resolves a project reference, numeric id or name, to a
// project record. Fails with ErrUnknownProject when nothing matches.
func (t *Tracker) ResolveProject(ref string) (*model.Project, error) {
	ref = strings.TrimSpace(ref)

	var (
		project *model.Project
		err     error
	)
	if id, convErr := strconv.ParseInt(ref, 10, 64); convErr == nil {
		project, err = t.store.GetProject(id)
	} else {
		project, err = t.store.GetProjectByName(ref)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project: %w", err)
	}
	if project == nil {
		return nil, ErrUnknownProject
	}
	return project, nil
}

// now returns the clock reading truncated to whole seconds, the
// granularity the store records.
func (t *Tracker) now() time.Time {
	return t.clock.Now().Truncate(time.Second)
}
