package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/xolan/worklog/internal/clock"
	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/store"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Stdin      io.Reader
	Exit       func(code int)
	Clock      clock.Clock
	LoadConfig func() (config.Config, error)
	OpenStore  func(cfg config.Config) (*store.Store, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
		Exit:   os.Exit,
		Clock:  clock.RealClock{},
		LoadConfig: func() (config.Config, error) {
			path, err := config.GetConfigPath()
			if err != nil {
				return config.Config{}, err
			}
			return config.LoadOrDefault(path)
		},
		OpenStore: func(cfg config.Config) (*store.Store, error) {
			path, err := cfg.ResolveDatabasePath()
			if err != nil {
				return nil, err
			}
			return store.Open(path, newLogger())
		},
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

// openStore loads the configuration and opens the database. On failure
// it prints the error, calls deps.Exit and returns ok=false; callers
// must return without using the store.
func openStore() (config.Config, *store.Store, bool) {
	cfg, err := deps.LoadConfig()
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		fmt.Fprintln(deps.Stderr, "Hint: Fix the config file or delete it to fall back to defaults")
		deps.Exit(1)
		return config.Config{}, nil, false
	}

	st, err := deps.OpenStore(cfg)
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Error: Failed to open the database")
		fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		fmt.Fprintln(deps.Stderr, "Hint: Check that the database path is writable")
		deps.Exit(1)
		return config.Config{}, nil, false
	}

	return cfg, st, true
}
