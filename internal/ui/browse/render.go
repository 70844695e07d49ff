package browse

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// defaultColumns defines the session table layout.
func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 36},
		{Title: "Created", Width: 19},
		{Title: "Status", Width: 10},
		{Title: "Metadata", Width: 30},
	}
}

// tableStyles returns table styles for the browser.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	return styles
}

// rowsForState converts loaded sessions into table rows.
func rowsForState(state State) []table.Row {
	rows := make([]table.Row, 0, len(state.Sessions))
	for _, session := range state.Sessions {
		rows = append(rows, table.Row{
			session.ID,
			session.CreatedAt.Format(time.DateTime),
			session.Status,
			metadataSummary(session.Metadata),
		})
	}
	return rows
}

// renderHeader renders the total count line.
func renderHeader(state State, noColor bool) string {
	line := fmt.Sprintf("Sessions: %d total, showing %d", state.Total, len(state.Sessions))
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderDetail renders the selected session's metadata.
func renderDetail(state State, cursor int, noColor bool) string {
	if cursor < 0 || cursor >= len(state.Sessions) {
		return ""
	}
	session := state.Sessions[cursor]
	if len(session.Metadata) == 0 {
		return stylize("no metadata", noColor, lipgloss.Color("240"))
	}
	payload, err := json.MarshalIndent(session.Metadata, "", "  ")
	if err != nil {
		return stylize("metadata unavailable", noColor, lipgloss.Color("240"))
	}
	return stylize(string(payload), noColor, lipgloss.Color("240"))
}

// renderFooter renders the key hints or the last error.
func renderFooter(state State, noColor bool) string {
	if state.Err != nil {
		return stylize("load error: "+state.Err.Error(), noColor, lipgloss.Color("160"))
	}
	return stylize("r refresh | q quit", noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// metadataSummary flattens metadata to a single short cell.
func metadataSummary(metadata map[string]any) string {
	if len(metadata) == 0 {
		return ""
	}
	payload, err := json.Marshal(metadata)
	if err != nil {
		return ""
	}
	summary := string(payload)
	if len(summary) > 30 {
		summary = summary[:27] + "..."
	}
	return summary
}
