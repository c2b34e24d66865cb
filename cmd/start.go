package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/tracker"
)

var forceFlag bool

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start <project> <description>...",
	Short: "Start a work session",
	Long: `Start a new work session on a project.

The project may be given by name or by numeric id. Everything after
the project is the session description.

Only one session can be open at a time. If a session is already
running the command fails; pass --force to stop it and start the new
one at the same instant, so no time is lost between the two.

Example:
  worklog start acme "reviewing the billing code"
  worklog start acme fixing the login page --force`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		startSession(args[0], strings.Join(args[1:], " "))
	},
}

func init() {
	startCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "stop the active session before starting")
}

// startSession opens a new work session on the referenced project
func startSession(projectRef, description string) {
	_, st, ok := openStore()
	if !ok {
		return
	}
	defer func() { _ = st.Close() }()

	tr := tracker.New(st, deps.Clock)

	entry, previous, err := tr.Start(projectRef, description, forceFlag)
	if err != nil {
		switch {
		case errors.Is(err, tracker.ErrEmptyDescription):
			fmt.Fprintln(deps.Stderr, "Error: Description cannot be empty")
			deps.Exit(1)
		case errors.Is(err, tracker.ErrUnknownProject):
			fmt.Fprintf(deps.Stderr, "Error: Project '%s' not found\n", projectRef)
			fmt.Fprintln(deps.Stderr, "Hint: List projects with 'worklog projects' or create one with 'worklog project-add'")
			deps.Exit(1)
		case errors.Is(err, tracker.ErrSessionActive):
			fmt.Fprintln(deps.Stderr, "Error: A session is already active")
			if previous != nil {
				fmt.Fprintf(deps.Stderr, "Details: started %s: %s\n",
					cli.FormatStartTime(previous.StartTime, deps.Clock.Now()),
					previous.Description)
			}
			fmt.Fprintln(deps.Stderr, "Hint: Stop it with 'worklog stop', or pass --force to replace it")
			deps.Exit(1)
		case errors.Is(err, tracker.ErrInvalidTimeRange):
			fmt.Fprintln(deps.Stderr, "Error: The active session starts in the future")
			fmt.Fprintln(deps.Stderr, "Hint: Check the system clock")
			deps.Exit(1)
		default:
			fmt.Fprintln(deps.Stderr, "Error: Failed to start session")
			fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			deps.Exit(1)
		}
		return
	}

	if previous != nil {
		fmt.Fprintf(deps.Stdout, "Stopped: %s (%s)\n",
			previous.Description, cli.FormatDuration(previous.Duration()))
	}
	fmt.Fprintf(deps.Stdout, "Started: %s at %s\n",
		entry.Description, cli.FormatClock(entry.StartTime))
}
