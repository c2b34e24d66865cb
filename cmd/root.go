// Package cmd implements the worklog command line interface.
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "worklog",
	Short: "A single-user work session tracker",
	Long: `worklog tracks work sessions against projects and reports time
and billing by day and week.

At most one session is open at a time: start one, work, stop it.
Closed sessions roll up into reports; projects billed hourly are
multiplied by their configured rate.

Common commands:
  worklog start <project> <description>   Start a work session
  worklog stop                            Stop the active session
  worklog status                          Show the active session
  worklog today                           Report for today
  worklog week                            Report for this week
  worklog projects                        List projects`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(yesterdayCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(projectAddCmd)
	rootCmd.AddCommand(projectUpdateCmd)
	rootCmd.AddCommand(projectDeleteCmd)
	rootCmd.AddCommand(watchCmd)
}

// newLogger returns the database logger: a no-op unless --verbose is set.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"worklog version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
