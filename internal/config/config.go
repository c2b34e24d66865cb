package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application name used for config directory
	AppName = "worklog"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// DatabaseFile is the default name of the SQLite database file
	DatabaseFile = "worklog.db"
)

// Config represents the application configuration
type Config struct {
	// DatabasePath is the path to the SQLite database file.
	// Empty means the default location under the user config directory.
	DatabasePath string `toml:"database_path"`
	// WeekStartDay defines which day starts the week (monday or sunday)
	WeekStartDay string `toml:"week_start_day"`
	// Currency is the symbol prefixed to billed amounts
	Currency string `toml:"currency"`
}

// DefaultConfig returns a Config with sensible defaults.
// - database_path: "" (resolved to the user config directory)
// - week_start_day: "monday" (ISO 8601 standard)
// - currency: "$"
func DefaultConfig() Config {
	return Config{
		DatabasePath: "",
		WeekStartDay: "monday",
		Currency:     "$",
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	appDir, err := appConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, ConfigFile), nil
}

// DefaultDatabasePath returns the default SQLite database location,
// creating the config directory if needed.
func DefaultDatabasePath() (string, error) {
	appDir, err := appConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, DatabaseFile), nil
}

func appConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return appDir, nil
}

// LoadOrDefault loads the config from the given path, falling back to
// defaults when the file doesn't exist. Missing keys keep their default
// value. Returns an error only when the file exists but cannot be parsed
// or fails validation.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Normalize fills empty fields with defaults.
func (c *Config) Normalize() {
	if c.WeekStartDay == "" {
		c.WeekStartDay = "monday"
	}
	if c.Currency == "" {
		c.Currency = "$"
	}
}

// Validate checks that the configuration values are usable.
func (c Config) Validate() error {
	if c.WeekStartDay != "monday" && c.WeekStartDay != "sunday" {
		return fmt.Errorf("week_start_day must be \"monday\" or \"sunday\", got %q", c.WeekStartDay)
	}
	return nil
}

// WeekStart returns the configured first day of the week.
func (c Config) WeekStart() time.Weekday {
	if c.WeekStartDay == "sunday" {
		return time.Sunday
	}
	return time.Monday
}

// ResolveDatabasePath returns the configured database path, or the
// default location when unset.
func (c Config) ResolveDatabasePath() (string, error) {
	if c.DatabasePath != "" {
		return c.DatabasePath, nil
	}
	return DefaultDatabasePath()
}
