package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/worklog/internal/tracker"
	"github.com/xolan/worklog/internal/tui"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the active session live",
	Long: `Open a full-screen view of the active session with a ticking
elapsed time. Press q to quit.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		watchSession()
	},
}

// watchSession runs the live session view
func watchSession() {
	_, st, ok := openStore()
	if !ok {
		return
	}
	defer func() { _ = st.Close() }()

	if err := tui.Run(tracker.New(st, deps.Clock)); err != nil {
		fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		deps.Exit(1)
	}
}
