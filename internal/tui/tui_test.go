package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/xolan/worklog/internal/model"
	"github.com/xolan/worklog/internal/report"
	"github.com/xolan/worklog/internal/tracker"
)

func TestView_Idle(t *testing.T) {
	m := NewModel(nil)

	view := m.View()
	if !strings.Contains(view, "No active session") {
		t.Errorf("Expected idle message in view, got: %s", view)
	}
	if !strings.Contains(view, "worklog start") {
		t.Errorf("Expected hint about starting a session, got: %s", view)
	}
}

func TestView_ActiveSession(t *testing.T) {
	m := NewModel(nil)
	m.session = &tracker.Session{
		Entry: model.WorkEntry{
			Description: "fixing authentication bug",
			StartTime:   time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local),
		},
		Project: &model.Project{ID: 1, Name: "acme", Billing: model.BillingHourly, HourlyRate: 125},
		Elapsed: 45 * time.Minute,
	}

	view := m.View()
	if !strings.Contains(view, "fixing authentication bug") {
		t.Errorf("Expected description in view, got: %s", view)
	}
	if !strings.Contains(view, "acme") {
		t.Errorf("Expected project name in view, got: %s", view)
	}
	if !strings.Contains(view, "45m") {
		t.Errorf("Expected elapsed time in view, got: %s", view)
	}
}

func TestView_DeletedProjectUsesSharedLabel(t *testing.T) {
	m := NewModel(nil)
	m.session = &tracker.Session{
		Entry: model.WorkEntry{
			Description: "orphaned work",
			StartTime:   time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local),
		},
		Elapsed: 10 * time.Minute,
	}

	view := m.View()
	if !strings.Contains(view, report.UnknownProjectName) {
		t.Errorf("Expected %q for a deleted project, got: %s", report.UnknownProjectName, view)
	}
}
