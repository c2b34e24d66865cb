package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/xolan/worklog/internal/clock"
	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/model"
	"github.com/xolan/worklog/internal/store"
)

// testEnv bundles the buffers, clock and database behind the test Deps.
type testEnv struct {
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	clock    *clock.TestClock
	exitCode *int // nil until Exit is called
	dbPath   string
}

// setupTest installs test Deps backed by a temporary database and a
// clock pinned to Friday 2024-03-15 09:00 local time.
func setupTest(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		clock:  &clock.TestClock{CurrentTime: time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)},
		dbPath: filepath.Join(t.TempDir(), "worklog.db"),
	}

	d := &Deps{
		Stdout: env.stdout,
		Stderr: env.stderr,
		Stdin:  strings.NewReader(""),
		Exit:   func(code int) { env.exitCode = &code },
		Clock:  env.clock,
		LoadConfig: func() (config.Config, error) {
			cfg := config.DefaultConfig()
			cfg.DatabasePath = env.dbPath
			return cfg, nil
		},
		OpenStore: func(cfg config.Config) (*store.Store, error) {
			return store.Open(cfg.DatabasePath, zap.NewNop())
		},
	}
	SetDeps(d)
	t.Cleanup(ResetDeps)
	t.Cleanup(resetFlags)

	return env
}

// resetFlags restores command flags between tests; command vars are
// package globals so flag state would otherwise leak.
func resetFlags() {
	forceFlag = false
	addHourlyFlag = false
	addRateFlag = 0
	updateNameFlag = ""
	updateHourlyFlag = false
	updateNoHourlyFlag = false
	updateRateFlag = 0
	deleteYesFlag = false

	for _, name := range []string{"name", "hourly", "no-hourly", "rate"} {
		if f := projectUpdateCmd.Flags().Lookup(name); f != nil {
			f.Changed = false
		}
	}
}

func (env *testEnv) exited() bool { return env.exitCode != nil }

// openTestStore opens the test database directly for seeding.
func (env *testEnv) openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(env.dbPath, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	return st
}

func (env *testEnv) seedProject(t *testing.T, name string, billing model.BillingMode, rate float64) *model.Project {
	t.Helper()
	st := env.openTestStore(t)
	defer func() { _ = st.Close() }()

	p, err := st.CreateProject(name, billing, rate)
	if err != nil {
		t.Fatalf("Failed to seed project %s: %v", name, err)
	}
	return p
}

func (env *testEnv) seedClosedEntry(t *testing.T, projectID int64, desc string, start time.Time, d time.Duration) {
	t.Helper()
	st := env.openTestStore(t)
	defer func() { _ = st.Close() }()

	id, err := st.InsertWorkEntry(projectID, desc, start)
	if err != nil {
		t.Fatalf("Failed to seed entry: %v", err)
	}
	if err := st.CloseWorkEntry(id, start.Add(d)); err != nil {
		t.Fatalf("Failed to close seeded entry: %v", err)
	}
}
