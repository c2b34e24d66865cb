package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains the styles used by the watch view
type Styles struct {
	App lipgloss.Style

	Title       lipgloss.Style
	Description lipgloss.Style
	Project     lipgloss.Style
	Label       lipgloss.Style
	Elapsed     lipgloss.Style
	Idle        lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles returns the default watch view styles
func DefaultStyles() Styles {
	primary := lipgloss.Color("99")   // Purple
	secondary := lipgloss.Color("39") // Cyan
	muted := lipgloss.Color("241")    // Gray
	danger := lipgloss.Color("196")   // Red
	warning := lipgloss.Color("214")  // Orange

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		Title:       lipgloss.NewStyle().Bold(true).Foreground(primary),
		Description: lipgloss.NewStyle().Bold(true),
		Project:     lipgloss.NewStyle().Foreground(secondary),
		Label:       lipgloss.NewStyle().Foreground(muted),
		Elapsed:     lipgloss.NewStyle().Bold(true).Foreground(warning),
		Idle:        lipgloss.NewStyle().Foreground(muted).Italic(true),
		Error:       lipgloss.NewStyle().Foreground(danger),
		Help:        lipgloss.NewStyle().Foreground(muted),
	}
}
