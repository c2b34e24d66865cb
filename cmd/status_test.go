package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/xolan/worklog/internal/model"
)

func TestShowStatus_Idle(t *testing.T) {
	env := setupTest(t)

	showStatus()

	if env.exited() {
		t.Fatalf("Unexpected exit, stderr: %s", env.stderr.String())
	}
	out := env.stdout.String()
	if !strings.Contains(out, "No active session") {
		t.Errorf("Expected idle message, got: %s", out)
	}
	if !strings.Contains(out, "worklog start") {
		t.Errorf("Expected hint about starting a session, got: %s", out)
	}
	if strings.Contains(out, "Elapsed:") {
		t.Errorf("Should not show elapsed time when idle, got: %s", out)
	}
}

func TestShowStatus_ActiveSession(t *testing.T) {
	env := setupTest(t)
	env.seedProject(t, "acme", model.BillingHourly, 125)

	startSession("acme", "fixing authentication bug")
	env.clock.Advance(45 * time.Minute)
	showStatus()

	if env.exited() {
		t.Fatalf("Unexpected exit, stderr: %s", env.stderr.String())
	}
	out := env.stdout.String()
	if !strings.Contains(out, "Session running: fixing authentication bug") {
		t.Errorf("Expected running session line, got: %s", out)
	}
	if !strings.Contains(out, "Project: acme") {
		t.Errorf("Expected project name, got: %s", out)
	}
	if !strings.Contains(out, "Started: today at 9:00 AM") {
		t.Errorf("Expected start time, got: %s", out)
	}
	if !strings.Contains(out, "Elapsed: 45m") {
		t.Errorf("Expected elapsed time, got: %s", out)
	}
}

func TestShowStatus_DoesNotModifySession(t *testing.T) {
	env := setupTest(t)
	env.seedProject(t, "acme", model.BillingFlat, 0)

	startSession("acme", "some task")
	env.clock.Advance(10 * time.Minute)
	showStatus()
	env.clock.Advance(10 * time.Minute)
	stopSession()

	if env.exited() {
		t.Fatalf("Unexpected exit, stderr: %s", env.stderr.String())
	}
	if !strings.Contains(env.stdout.String(), "Stopped: some task (20m)") {
		t.Errorf("Status should not have closed the session, got: %s", env.stdout.String())
	}
}
