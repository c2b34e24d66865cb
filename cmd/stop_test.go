package cmd

import (
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/model"
	"github.com/xolan/worklog/internal/store"
)

func TestStopSession_BillsHourlyProject(t *testing.T) {
	env := setupTest(t)
	env.seedProject(t, "acme", model.BillingHourly, 125)

	startSession("acme", "reviewing billing code")
	env.clock.Advance(2*time.Hour + 30*time.Minute)
	stopSession()

	if env.exited() {
		t.Fatalf("Unexpected exit, stderr: %s", env.stderr.String())
	}
	out := env.stdout.String()
	if !strings.Contains(out, "Stopped: reviewing billing code (2h 30m)") {
		t.Errorf("Expected stopped session with duration, got: %s", out)
	}
	if !strings.Contains(out, "Project: acme") {
		t.Errorf("Expected project name, got: %s", out)
	}
	if !strings.Contains(out, "Billed: 2.50h x $125.00/h = $312.50") {
		t.Errorf("Expected billing line, got: %s", out)
	}
}

func TestStopSession_FlatProjectNotBilled(t *testing.T) {
	env := setupTest(t)
	env.seedProject(t, "internal", model.BillingFlat, 0)

	startSession("internal", "standup")
	env.clock.Advance(15 * time.Minute)
	stopSession()

	if env.exited() {
		t.Fatalf("Unexpected exit, stderr: %s", env.stderr.String())
	}
	out := env.stdout.String()
	if !strings.Contains(out, "Stopped: standup (15m)") {
		t.Errorf("Expected stopped session, got: %s", out)
	}
	if strings.Contains(out, "Billed:") {
		t.Errorf("Flat project should not be billed, got: %s", out)
	}
}

func TestStopSession_ZeroDuration(t *testing.T) {
	env := setupTest(t)
	env.seedProject(t, "acme", model.BillingFlat, 0)

	startSession("acme", "blink")
	stopSession()

	if env.exited() {
		t.Fatalf("Unexpected exit, stderr: %s", env.stderr.String())
	}
	if !strings.Contains(env.stdout.String(), "Stopped: blink (0s)") {
		t.Errorf("Expected zero-duration stop, got: %s", env.stdout.String())
	}
}

func TestStopSession_StorageUnavailable(t *testing.T) {
	env := setupTest(t)

	// Hand the command a store whose connection is already gone.
	deps.OpenStore = func(cfg config.Config) (*store.Store, error) {
		st, err := store.Open(cfg.DatabasePath, zap.NewNop())
		if err != nil {
			return nil, err
		}
		_ = st.Close()
		return st, nil
	}

	stopSession()

	if !env.exited() {
		t.Fatal("Expected exit when storage is unavailable")
	}
	if !strings.Contains(env.stderr.String(), "Storage unavailable") {
		t.Errorf("Expected storage unavailable error, got: %s", env.stderr.String())
	}
}

func TestStopSession_NoActiveSession(t *testing.T) {
	env := setupTest(t)

	stopSession()

	if !env.exited() {
		t.Fatal("Expected exit when no session is active")
	}
	errOut := env.stderr.String()
	if !strings.Contains(errOut, "No active session") {
		t.Errorf("Expected no active session error, got: %s", errOut)
	}
	if !strings.Contains(errOut, "worklog start") {
		t.Errorf("Expected hint about starting a session, got: %s", errOut)
	}
}
