package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/report"
	"github.com/xolan/worklog/internal/store"
	"github.com/xolan/worklog/internal/tracker"
)

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the active work session",
	Long: `Stop the active work session and record its duration.

For projects billed hourly the billed amount for the session is shown.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		stopSession()
	},
}

// stopSession closes the active work session
func stopSession() {
	cfg, st, ok := openStore()
	if !ok {
		return
	}
	defer func() { _ = st.Close() }()

	tr := tracker.New(st, deps.Clock)

	stopped, err := tr.Stop()
	if err != nil {
		switch {
		case errors.Is(err, tracker.ErrNoActiveSession):
			fmt.Fprintln(deps.Stderr, "Error: No active session")
			fmt.Fprintln(deps.Stderr, "Hint: Start one with 'worklog start <project> <description>'")
			deps.Exit(1)
		case errors.Is(err, tracker.ErrInvalidTimeRange):
			fmt.Fprintln(deps.Stderr, "Error: The session starts in the future; nothing was recorded")
			fmt.Fprintln(deps.Stderr, "Hint: Check the system clock")
			deps.Exit(1)
		case errors.Is(err, store.ErrStorageUnavailable):
			fmt.Fprintln(deps.Stderr, "Error: Storage unavailable")
			fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			fmt.Fprintln(deps.Stderr, "Hint: Check that the database file is accessible and writable")
			deps.Exit(1)
		default:
			fmt.Fprintln(deps.Stderr, "Error: Failed to stop session")
			fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			deps.Exit(1)
		}
		return
	}

	projectName := report.UnknownProjectName
	if stopped.Project != nil {
		projectName = stopped.Project.Name
	}

	fmt.Fprintf(deps.Stdout, "Stopped: %s (%s)\n", stopped.Entry.Description, cli.FormatDuration(stopped.Duration))
	fmt.Fprintf(deps.Stdout, "Project: %s\n", projectName)

	if stopped.Project != nil && stopped.Project.BilledHourly() {
		seconds := int64(stopped.Duration / time.Second)
		amount := stopped.Project.HourlyRate * float64(seconds) / 3600
		fmt.Fprintf(deps.Stdout, "Billed: %sh x %s = %s\n",
			cli.FormatHours(stopped.Duration),
			cli.FormatRate(cfg.Currency, stopped.Project.HourlyRate),
			cli.FormatMoney(cfg.Currency, amount))
	}
}
