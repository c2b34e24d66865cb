// Package tui provides the live session view for `worklog watch`:
// a full-screen display of the active session with a ticking elapsed
// time, refreshed every second.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xolan/worklog/internal/cli"
	"github.com/xolan/worklog/internal/report"
	"github.com/xolan/worklog/internal/tracker"
)

// KeyMap defines the key bindings for the watch view
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the bubbletea model for the watch view
type Model struct {
	tracker *tracker.Tracker
	styles  Styles
	keys    KeyMap

	session *tracker.Session
	err     error
	width   int
	height  int
}

// NewModel creates a watch view model backed by the given tracker
func NewModel(tr *tracker.Tracker) Model {
	return Model{
		tracker: tr,
		styles:  DefaultStyles(),
		keys:    DefaultKeyMap(),
	}
}

// statusMsg carries a refreshed session status
type statusMsg struct {
	session *tracker.Session
	err     error
}

// tickMsg fires every second to refresh the elapsed time
type tickMsg time.Time

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadStatus(), tick())
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case statusMsg:
		m.session = msg.session
		m.err = msg.err

	case tickMsg:
		return m, tea.Batch(m.loadStatus(), tick())
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	var body string

	switch {
	case m.err != nil:
		body = m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))

	case m.session == nil:
		body = m.styles.Idle.Render("No active session") + "\n\n" +
			m.styles.Help.Render("Start one with: worklog start <project> <description>")

	default:
		projectName := report.UnknownProjectName
		if m.session.Project != nil {
			projectName = m.session.Project.Name
		}

		body = m.styles.Description.Render(m.session.Entry.Description) + "\n" +
			m.styles.Label.Render("Project: ") + m.styles.Project.Render(projectName) + "\n" +
			m.styles.Label.Render("Started: ") + m.session.Entry.StartTime.Format("3:04:05 PM") + "\n" +
			m.styles.Label.Render("Elapsed: ") + m.styles.Elapsed.Render(cli.FormatDuration(m.session.Elapsed))
	}

	return m.styles.App.Render(
		m.styles.Title.Render("worklog") + "\n\n" +
			body + "\n\n" +
			m.styles.Help.Render("q: quit"),
	)
}

func (m Model) loadStatus() tea.Cmd {
	return func() tea.Msg {
		session, err := m.tracker.Status()
		return statusMsg{session: session, err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the watch view and blocks until the user quits
func Run(tr *tracker.Tracker) error {
	p := tea.NewProgram(NewModel(tr), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run watch view: %w", err)
	}
	return nil
}
