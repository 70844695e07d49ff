package console

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// TrimReport summarizes one trimming run for display.
type TrimReport struct {
	Model     string
	Provider  string
	MaxTokens int
	Before    int
	After     int
	Tokens    int
}

// PrintTrimReport renders the trim summary. Counts are messages; Tokens
// is the estimated size of the trimmed history.
func (p *Printer) PrintTrimReport(report TrimReport) {
	model := report.Model
	if report.Provider != "" {
		model = report.Provider + "/" + report.Model
	}
	line := fmt.Sprintf("%s | budget %d tokens", model, report.MaxTokens)
	fmt.Fprintln(p.out, p.stylize(line, lipgloss.Color("33")))

	if report.Before == report.After {
		fmt.Fprintf(p.out, "kept all %d messages (%d tokens)\n", report.After, report.Tokens)
		return
	}
	summary := fmt.Sprintf("trimmed %d → %d messages (%d tokens)",
		report.Before, report.After, report.Tokens)
	fmt.Fprintln(p.out, p.stylize(summary, lipgloss.Color("178")))
}
