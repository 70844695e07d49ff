package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"tokenwise/internal/store"
	"tokenwise/internal/ui/browse"
)

// runProgram is a test seam for running the Bubble Tea program.
var runProgram = func(model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// runBrowse builds the handler for the browse command.
func runBrowse(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Config file path")
		dbPath := fs.String("db", "", "Session database path")
		noColor := fs.Bool("no-color", false, "Disable colored output")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}

		cfg, ok := loadConfig(*configPath, stderr)
		if !ok {
			return ExitError
		}
		if *dbPath != "" {
			cfg.Database.Path = *dbPath
		}

		ctx := context.Background()
		db, err := store.Open(ctx, cfg.Database.Path)
		if err != nil {
			fmt.Fprintf(stderr, "Database error: %v\n", err)
			return ExitError
		}
		defer db.Close()
		if err := store.EnsureSchema(ctx, db); err != nil {
			fmt.Fprintf(stderr, "Schema error: %v\n", err)
			return ExitError
		}

		model := browse.NewModel(store.NewSessions(db, nil), browse.Options{NoColor: *noColor})
		if err := runProgram(model); err != nil {
			fmt.Fprintf(stderr, "UI error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
