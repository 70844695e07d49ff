// Package console renders styled terminal output for the CLI.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Printer writes styled output to a terminal, falling back to plain text
// when the writer is not a TTY or color is disabled.
type Printer struct {
	out     io.Writer
	noColor bool
}

// NewPrinter builds a Printer for the writer. Color is enabled only when
// the writer is a terminal and noColor is false.
func NewPrinter(out io.Writer, noColor bool) *Printer {
	if !noColor && !isTerminal(out) {
		noColor = true
	}
	return &Printer{out: out, noColor: noColor}
}

// StageHeader prints a horizontal rule with a centered stage title.
func (p *Printer) StageHeader(stage string) {
	title := strings.ToUpper(strings.TrimSpace(stage))
	width := 64
	pad := width - len(title) - 2
	if pad < 2 {
		pad = 2
	}
	left := strings.Repeat("─", pad/2)
	right := strings.Repeat("─", pad-pad/2)
	line := left + " " + title + " " + right
	fmt.Fprintln(p.out, p.stylize(line, lipgloss.Color("35")))
}

// Panel prints a bordered panel with a title and body.
func (p *Printer) Panel(title, body string) {
	if p.noColor {
		fmt.Fprintf(p.out, "[%s]\n%s\n", title, body)
		return
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("178")).
		Padding(0, 1)
	titled := lipgloss.NewStyle().Bold(true).Render(title) + "\n" + body
	fmt.Fprintln(p.out, style.Render(titled))
}

// Error prints an error line to the writer.
func (p *Printer) Error(message string) {
	fmt.Fprintln(p.out, p.stylize("error: "+message, lipgloss.Color("160")))
}

// stylize applies optional color styling.
func (p *Printer) stylize(text string, color lipgloss.Color) string {
	if p.noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// isTerminal reports whether the writer is an interactive terminal.
func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
