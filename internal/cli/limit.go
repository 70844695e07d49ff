package cli

import (
	"flag"
	"fmt"
	"io"

	"tokenwise/internal/limits"
)

// runLimit builds the handler for the limit command.
func runLimit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Config file path")
		role := fs.String("role", "default", "Agent role (default, research, planner)")
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
		logger := newLogger(stderr, cfg.Log.Level)

		settings := cfg.Settings()
		agentRole := limits.ParseRole(*role)
		provider, model := limits.ProviderModel(settings, agentRole)
		handle := &limits.ModelHandle{
			Model:           model,
			MaxOutputTokens: cfg.Trim.MaxOutputTokens,
		}

		limit, known := limits.Resolve(settings, agentRole, handle, limits.WithLogger(logger))
		identifier := model
		if provider != "" {
			identifier = provider + "/" + model
		}
		if !known {
			fmt.Fprintf(stdout, "%s: limit unknown\n", identifier)
			return ExitOK
		}
		fmt.Fprintf(stdout, "%s: %d input tokens\n", identifier, limit)
		return ExitOK
	}
}
