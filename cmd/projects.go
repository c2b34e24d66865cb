package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/model"
	"github.com/xolan/worklog/internal/store"
	"github.com/xolan/worklog/internal/tracker"
)

var (
	addHourlyFlag bool
	addRateFlag   float64

	updateNameFlag     string
	updateHourlyFlag   bool
	updateNoHourlyFlag bool
	updateRateFlag     float64

	deleteYesFlag bool
)

// projectsCmd represents the projects command
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects",
	Long:  `List all projects with their id, billing mode and hourly rate.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listProjects()
	},
}

// projectAddCmd represents the project-add command
var projectAddCmd = &cobra.Command{
	Use:   "project-add <name>",
	Short: "Create a project",
	Long: `Create a new project. Projects are flat (duration only) unless
--hourly is given, in which case --rate sets the hourly billing rate.

Example:
  worklog project-add internal
  worklog project-add acme --hourly --rate 125`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addProject(args[0])
	},
}

// projectUpdateCmd represents the project-update command
var projectUpdateCmd = &cobra.Command{
	Use:   "project-update <project>",
	Short: "Update a project",
	Long: `Update a project's name, billing mode or hourly rate. The project
may be given by name or numeric id. At least one flag is required.

Example:
  worklog project-update acme --rate 150
  worklog project-update acme --name 'acme corp'
  worklog project-update internal --hourly --rate 90
  worklog project-update acme --no-hourly`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		updateProject(cmd, args[0])
	},
}

// projectDeleteCmd represents the project-delete command
var projectDeleteCmd = &cobra.Command{
	Use:   "project-delete <project>",
	Short: "Delete a project",
	Long: `Delete a project by name or numeric id. Work entries tracked
against the project are kept; reports show them under "(unknown
project)" and they are never billed.

A confirmation prompt is shown unless --yes is specified.

Example:
  worklog project-delete acme
  worklog project-delete acme --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deleteProject(args[0])
	},
}

func init() {
	projectAddCmd.Flags().BoolVar(&addHourlyFlag, "hourly", false, "bill tracked time hourly")
	projectAddCmd.Flags().Float64Var(&addRateFlag, "rate", 0, "hourly rate (requires --hourly)")

	projectUpdateCmd.Flags().StringVar(&updateNameFlag, "name", "", "new project name")
	projectUpdateCmd.Flags().BoolVar(&updateHourlyFlag, "hourly", false, "switch to hourly billing")
	projectUpdateCmd.Flags().BoolVar(&updateNoHourlyFlag, "no-hourly", false, "switch to flat (unbilled) tracking")
	projectUpdateCmd.Flags().Float64Var(&updateRateFlag, "rate", 0, "new hourly rate")

	projectDeleteCmd.Flags().BoolVarP(&deleteYesFlag, "yes", "y", false, "skip confirmation prompt")
}

// listProjects prints all projects
func listProjects() {
	cfg, st, ok := openStore()
	if !ok {
		return
	}
	defer func() { _ = st.Close() }()

	projects, err := st.ListProjects()
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Error: Failed to list projects")
		fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if len(projects) == 0 {
		fmt.Fprintln(deps.Stdout, "No projects")
		fmt.Fprintln(deps.Stdout, "Create one with 'worklog project-add <name>'")
		return
	}

	for _, p := range projects {
		billing := "flat"
		if p.Billing == model.BillingHourly {
			billing = fmt.Sprintf("hourly %s", cli.FormatRate(cfg.Currency, p.HourlyRate))
		}
		fmt.Fprintf(deps.Stdout, "[%d] %-24s %s\n", p.ID, p.Name, billing)
	}
}

// addProject creates a new project
func addProject(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Fprintln(deps.Stderr, "Error: Project name cannot be empty")
		deps.Exit(1)
		return
	}
	if addRateFlag < 0 {
		fmt.Fprintln(deps.Stderr, "Error: Rate cannot be negative")
		deps.Exit(1)
		return
	}
	if addRateFlag > 0 && !addHourlyFlag {
		fmt.Fprintln(deps.Stderr, "Error: --rate requires --hourly")
		fmt.Fprintln(deps.Stderr, "Hint: Pass both flags, e.g. --hourly --rate 125")
		deps.Exit(1)
		return
	}

	cfg, st, ok := openStore()
	if !ok {
		return
	}
	defer func() { _ = st.Close() }()

	billing := model.BillingFlat
	if addHourlyFlag {
		billing = model.BillingHourly
	}

	project, err := st.CreateProject(name, billing, addRateFlag)
	if err != nil {
		if errors.Is(err, store.ErrProjectExists) {
			fmt.Fprintf(deps.Stderr, "Error: Project '%s' already exists\n", name)
			fmt.Fprintln(deps.Stderr, "Hint: List projects with 'worklog projects'")
			deps.Exit(1)
			return
		}
		fmt.Fprintln(deps.Stderr, "Error: Failed to create project")
		fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if project.Billing == model.BillingHourly {
		fmt.Fprintf(deps.Stdout, "Added project [%d] %s (hourly %s)\n",
			project.ID, project.Name, cli.FormatRate(cfg.Currency, project.HourlyRate))
	} else {
		fmt.Fprintf(deps.Stdout, "Added project [%d] %s (flat)\n", project.ID, project.Name)
	}
}

// updateProject modifies an existing project
func updateProject(cmd *cobra.Command, ref string) {
	nameSet := cmd.Flags().Changed("name")
	hourlySet := cmd.Flags().Changed("hourly")
	noHourlySet := cmd.Flags().Changed("no-hourly")
	rateSet := cmd.Flags().Changed("rate")

	if !nameSet && !hourlySet && !noHourlySet && !rateSet {
		fmt.Fprintln(deps.Stderr, "Error: At least one of --name, --hourly, --no-hourly or --rate is required")
		deps.Exit(1)
		return
	}
	if hourlySet && noHourlySet {
		fmt.Fprintln(deps.Stderr, "Error: --hourly and --no-hourly are mutually exclusive")
		deps.Exit(1)
		return
	}
	if rateSet && updateRateFlag < 0 {
		fmt.Fprintln(deps.Stderr, "Error: Rate cannot be negative")
		deps.Exit(1)
		return
	}

	cfg, st, ok := openStore()
	if !ok {
		return
	}
	defer func() { _ = st.Close() }()

	project, ok2 := resolveProjectRef(st, ref)
	if !ok2 {
		return
	}

	if nameSet {
		newName := strings.TrimSpace(updateNameFlag)
		if newName == "" {
			fmt.Fprintln(deps.Stderr, "Error: Project name cannot be empty")
			deps.Exit(1)
			return
		}
		project.Name = newName
	}
	if hourlySet {
		project.Billing = model.BillingHourly
	}
	if noHourlySet {
		project.Billing = model.BillingFlat
	}
	if rateSet {
		project.HourlyRate = updateRateFlag
	}

	if err := st.UpdateProject(*project); err != nil {
		switch {
		case errors.Is(err, store.ErrProjectNotFound):
			fmt.Fprintf(deps.Stderr, "Error: Project '%s' not found\n", ref)
			deps.Exit(1)
		case errors.Is(err, store.ErrProjectExists):
			fmt.Fprintf(deps.Stderr, "Error: A project named '%s' already exists\n", project.Name)
			deps.Exit(1)
		default:
			fmt.Fprintln(deps.Stderr, "Error: Failed to update project")
			fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			deps.Exit(1)
		}
		return
	}

	if project.Billing == model.BillingHourly {
		fmt.Fprintf(deps.Stdout, "Updated project [%d] %s (hourly %s)\n",
			project.ID, project.Name, cli.FormatRate(cfg.Currency, project.HourlyRate))
	} else {
		fmt.Fprintf(deps.Stdout, "Updated project [%d] %s (flat)\n", project.ID, project.Name)
	}
}

// deleteProject removes a project, keeping its work entries
func deleteProject(ref string) {
	_, st, ok := openStore()
	if !ok {
		return
	}
	defer func() { _ = st.Close() }()

	project, ok2 := resolveProjectRef(st, ref)
	if !ok2 {
		return
	}

	fmt.Fprintf(deps.Stdout, "Project to delete: [%d] %s\n", project.ID, project.Name)
	fmt.Fprintln(deps.Stdout, "Its work entries are kept and will be reported as \"(unknown project)\"")

	if !deleteYesFlag {
		if !promptConfirmation() {
			fmt.Fprintln(deps.Stdout, "Deletion cancelled")
			return
		}
	}

	if err := st.DeleteProject(project.ID); err != nil {
		fmt.Fprintln(deps.Stderr, "Error: Failed to delete project")
		fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	fmt.Fprintf(deps.Stdout, "Deleted project %s\n", project.Name)
}

// resolveProjectRef resolves a name or numeric id to a project,
// printing the error and exiting when nothing matches.
func resolveProjectRef(st *store.Store, ref string) (*model.Project, bool) {
	project, err := tracker.New(st, deps.Clock).ResolveProject(ref)
	if err != nil {
		if errors.Is(err, tracker.ErrUnknownProject) {
			fmt.Fprintf(deps.Stderr, "Error: Project '%s' not found\n", ref)
			fmt.Fprintln(deps.Stderr, "Hint: List projects with 'worklog projects'")
			deps.Exit(1)
			return nil, false
		}
		fmt.Fprintln(deps.Stderr, "Error: Failed to resolve project")
		fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return nil, false
	}
	return project, true
}

// promptConfirmation asks the user to confirm deletion
// Returns true if user confirms with 'y' or 'Y', false otherwise
func promptConfirmation() bool {
	fmt.Fprint(deps.Stdout, "Delete this project? [y/N]: ")

	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
