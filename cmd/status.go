package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/report"
	"github.com/xolan/worklog/internal/tracker"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active work session",
	Long: `Show the active work session, its project, when it started and
how long it has been running. Read-only: the session is not modified.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showStatus()
	},
}

// showStatus displays the active session, if any
func showStatus() {
	_, st, ok := openStore()
	if !ok {
		return
	}
	defer func() { _ = st.Close() }()

	tr := tracker.New(st, deps.Clock)

	session, err := tr.Status()
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Error: Failed to read session state")
		fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if session == nil {
		fmt.Fprintln(deps.Stdout, "No active session")
		fmt.Fprintln(deps.Stdout, "Start one with 'worklog start <project> <description>'")
		return
	}

	projectName := report.UnknownProjectName
	if session.Project != nil {
		projectName = session.Project.Name
	}

	fmt.Fprintf(deps.Stdout, "Session running: %s\n", session.Entry.Description)
	fmt.Fprintf(deps.Stdout, "Project: %s\n", projectName)
	fmt.Fprintf(deps.Stdout, "Started: %s\n", cli.FormatStartTime(session.Entry.StartTime, deps.Clock.Now()))
	fmt.Fprintf(deps.Stdout, "Elapsed: %s\n", cli.FormatDuration(session.Elapsed))
}
