package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/config"
	"github.com/xolan/worklog/internal/report"
	"github.com/xolan/worklog/internal/timeutil"
)

// todayCmd represents the today command
var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Report for today",
	Long:  `Show the per-project report for the current day, with totals and billing.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runDayReport(deps.Clock.Now())
	},
}

// yesterdayCmd represents the yesterday command
var yesterdayCmd = &cobra.Command{
	Use:   "yesterday",
	Short: "Report for yesterday",
	Long:  `Show the per-project report for the previous day, with totals and billing.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runDayReport(deps.Clock.Now().AddDate(0, 0, -1))
	},
}

// dayCmd represents the day command
var dayCmd = &cobra.Command{
	Use:   "day <date>",
	Short: "Report for a specific day",
	Long: `Show the per-project report for a specific calendar day.

The date must be in YYYY-MM-DD format.

Example:
  worklog day 2024-03-15`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		date, ok := parseDateArg(args[0])
		if !ok {
			return
		}
		runDayReport(date)
	},
}

// weekCmd represents the week command
var weekCmd = &cobra.Command{
	Use:   "week [date]",
	Short: "Report for a week",
	Long: `Show the report for the week containing the given date, or the
current week when no date is given. The week starts on the configured
week_start_day (monday by default) and covers seven days.

Example:
  worklog week
  worklog week 2024-03-15`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		date := deps.Clock.Now()
		if len(args) == 1 {
			var ok bool
			date, ok = parseDateArg(args[0])
			if !ok {
				return
			}
		}
		runWeekReport(date)
	},
}

// parseDateArg parses a YYYY-MM-DD argument, printing an error and
// exiting on failure.
func parseDateArg(arg string) (time.Time, bool) {
	date, err := timeutil.ParseDate(arg, time.Local)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Error: Invalid date '%s'\n", arg)
		fmt.Fprintln(deps.Stderr, "Hint: Use YYYY-MM-DD, e.g. 2024-03-15")
		deps.Exit(1)
		return time.Time{}, false
	}
	return date, true
}

// runDayReport computes and renders the report for one calendar day
func runDayReport(date time.Time) {
	cfg, st, ok := openStore()
	if !ok {
		return
	}
	defer func() { _ = st.Close() }()

	rep := report.New(st, deps.Clock, cfg.WeekStart())

	day, err := rep.Day(date)
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Error: Failed to build report")
		fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	renderDayReport(cfg, day)
}

// runWeekReport computes and renders the report for the week containing date
func runWeekReport(date time.Time) {
	cfg, st, ok := openStore()
	if !ok {
		return
	}
	defer func() { _ = st.Close() }()

	rep := report.New(st, deps.Clock, cfg.WeekStart())

	week, err := rep.Week(date)
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Error: Failed to build report")
		fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	renderWeekReport(cfg, week)
}

// renderDayReport writes a day report: one block per project with its
// entries, a subtotal line, and grand totals at the bottom.
func renderDayReport(cfg config.Config, day *report.DayReport) {
	fmt.Fprintf(deps.Stdout, "Report for %s\n", cli.FormatDate(day.Date))
	fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))

	if len(day.Projects) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries")
		return
	}

	for _, pt := range day.Projects {
		fmt.Fprintf(deps.Stdout, "%s\n", pt.Name)
		for _, line := range pt.Entries {
			fmt.Fprintf(deps.Stdout, "  %s-%s  %s (%s)\n",
				cli.FormatClock(line.Start),
				cli.FormatClock(line.End),
				line.Description,
				cli.FormatDuration(line.Duration))
		}
		fmt.Fprintf(deps.Stdout, "  Subtotal: %s%s\n",
			cli.FormatDuration(pt.Total), billingSuffix(cfg, pt))
	}

	fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	fmt.Fprintf(deps.Stdout, "Total: %s", cli.FormatDuration(day.Total))
	if day.Amount > 0 {
		fmt.Fprintf(deps.Stdout, "  Billed: %s", cli.FormatMoney(cfg.Currency, day.Amount))
	}
	fmt.Fprintln(deps.Stdout)
}

// renderWeekReport writes a week report as a project x weekday matrix:
// one row per project, one column per day, with a totals row and
// column, followed by the billing summary.
func renderWeekReport(cfg config.Config, week *report.WeekReport) {
	lastDay := week.End.AddDate(0, 0, -1)
	fmt.Fprintf(deps.Stdout, "Week of %s - %s\n",
		week.Start.Format("Mon Jan 2"), lastDay.Format("Mon Jan 2, 2006"))
	fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))

	if len(week.Projects) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries")
		return
	}

	fmt.Fprintf(deps.Stdout, "%-24s", "Project")
	for _, day := range week.Days {
		fmt.Fprintf(deps.Stdout, "%8s", day.Date.Format("Mon"))
	}
	fmt.Fprintf(deps.Stdout, "%10s\n", "Total")

	for _, pt := range week.Projects {
		fmt.Fprintf(deps.Stdout, "%-24s", pt.Name)
		for _, day := range week.Days {
			cell := "-"
			for _, dp := range day.Projects {
				if dp.Name == pt.Name {
					cell = cli.FormatDuration(dp.Total)
					break
				}
			}
			fmt.Fprintf(deps.Stdout, "%8s", cell)
		}
		fmt.Fprintf(deps.Stdout, "%10s\n", cli.FormatDuration(pt.Total))
	}

	fmt.Fprintf(deps.Stdout, "%-24s", "Total")
	for _, day := range week.Days {
		cell := "-"
		if day.Total > 0 {
			cell = cli.FormatDuration(day.Total)
		}
		fmt.Fprintf(deps.Stdout, "%8s", cell)
	}
	fmt.Fprintf(deps.Stdout, "%10s\n", cli.FormatDuration(week.Total))

	if week.Amount > 0 {
		fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
		fmt.Fprintln(deps.Stdout, "Billing:")
		for _, pt := range week.Projects {
			if !pt.Billable {
				continue
			}
			fmt.Fprintf(deps.Stdout, "  %-24s %sh x %s = %s\n",
				pt.Name,
				cli.FormatHours(pt.Total),
				cli.FormatRate(cfg.Currency, pt.Project.HourlyRate),
				cli.FormatMoney(cfg.Currency, pt.Amount))
		}
		fmt.Fprintf(deps.Stdout, "Total billed: %s\n", cli.FormatMoney(cfg.Currency, week.Amount))
	}
}

// billingSuffix formats the billing breakdown for a billable project
// total, or an empty string for flat projects and the unknown bucket.
func billingSuffix(cfg config.Config, pt report.ProjectTotal) string {
	if !pt.Billable {
		return ""
	}
	return fmt.Sprintf("  (%sh x %s = %s)",
		cli.FormatHours(pt.Total),
		cli.FormatRate(cfg.Currency, pt.Project.HourlyRate),
		cli.FormatMoney(cfg.Currency, pt.Amount))
}
