// Package browse renders an interactive session browser using Bubble Tea.
package browse

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tokenwise/internal/store"
)

// fetchTimeout bounds each session list query.
const fetchTimeout = 5 * time.Second

// pageSize is the number of sessions loaded per refresh.
const pageSize = 100

// Model is the session browser UI model.
type Model struct {
	sessions *store.Sessions
	state    State
	table    table.Model
	noColor  bool
}

// Options configures the browser model.
type Options struct {
	NoColor bool
}

// NewModel constructs a browser over the session repository.
func NewModel(sessions *store.Sessions, opts Options) Model {
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		sessions: sessions,
		state:    State{},
		table:    t,
		noColor:  opts.NoColor,
	}
}

// Init loads the first page of sessions.
func (m Model) Init() tea.Cmd {
	return fetchSessions(m.sessions)
}

// Update consumes key presses and session loads.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(typed.Height-6, 1))
		return m, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, fetchSessions(m.sessions)
		}
	case SessionsMsg:
		m.state = applySessions(m.state, typed)
		m.table.SetRows(rowsForState(m.state))
		return m, nil
	case ErrMsg:
		m.state = applyError(m.state, typed)
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m Model) View() string {
	header := renderHeader(m.state, m.noColor)
	tableView := m.table.View()
	detail := renderDetail(m.state, m.table.Cursor(), m.noColor)
	footer := renderFooter(m.state, m.noColor)
	return lipgloss.JoinVertical(lipgloss.Left, header, tableView, detail, footer)
}

// SessionsMsg carries a loaded session page.
type SessionsMsg struct {
	Sessions []store.Session
	Total    int
}

// ErrMsg carries a load failure.
type ErrMsg struct {
	Err error
}

// fetchSessions loads the newest sessions from the repository.
func fetchSessions(sessions *store.Sessions) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		page, total, err := sessions.List(ctx, 0, pageSize)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return SessionsMsg{Sessions: page, Total: total}
	}
}
