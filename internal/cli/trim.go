package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"tokenwise/internal/console"
	"tokenwise/internal/history"
	"tokenwise/internal/limits"
	"tokenwise/internal/tokens"
	"tokenwise/internal/trim"
)

// runTrim builds the handler for the trim command.
func runTrim(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Config file path")
		role := fs.String("role", "default", "Agent role (default, research, planner)")
		policy := fs.String("policy", "prefix", "Trim policy: prefix or first")
		maxTokens := fs.Int("max-tokens", 0, "Token budget override")
		keep := fs.Int("keep", 0, "Mandatory prefix length override")
		model := fs.String("model", "", "Model name override")
		outPath := fs.String("out", "", "Write the trimmed transcript to a file")
		noColor := fs.Bool("no-color", false, "Disable colored output")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() != 1 {
			fmt.Fprintln(stderr, "Expected exactly one <transcript.json>")
			return ExitUsage
		}
		if *policy != "prefix" && *policy != "first" {
			fmt.Fprintf(stderr, "Unknown policy: %s\n", *policy)
			return ExitUsage
		}

		cfg, ok := loadConfig(*configPath, stderr)
		if !ok {
			return ExitError
		}
		logger := newLogger(stderr, cfg.Log.Level)

		messages, err := readTranscript(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Transcript error: %v\n", err)
			return ExitError
		}

		settings := cfg.Settings()
		if *model != "" {
			settings["model"] = *model
		}
		agentRole := limits.ParseRole(*role)
		provider, modelName := limits.ProviderModel(settings, agentRole)

		budget := *maxTokens
		if budget <= 0 {
			handle := &limits.ModelHandle{
				Model:           modelName,
				MaxOutputTokens: cfg.Trim.MaxOutputTokens,
			}
			resolved, known := limits.Resolve(settings, agentRole, handle, limits.WithLogger(logger))
			if known {
				budget = resolved
			} else {
				budget = cfg.Trim.MaxTokens
				logger.Debug("no known limit, using configured default", "max_tokens", budget)
			}
		}

		keepFirst := cfg.Trim.KeepMessages
		if *keep > 0 {
			keepFirst = *keep
		}

		var trimmed []history.Message
		counter := tokens.NewCounter(tokens.NewTiktokenService(), modelName, logger)
		switch *policy {
		case "first":
			trimmed = trim.KeepFirst(messages, budget, trim.WithLogger(logger))
		default:
			trimmed = trim.KeepPrefix(messages, counter, budget, keepFirst, trim.WithLogger(logger))
		}

		payload, err := history.EncodeTranscript(trimmed)
		if err != nil {
			fmt.Fprintf(stderr, "Encode error: %v\n", err)
			return ExitError
		}

		reportOut := stdout
		if *outPath != "" {
			if err := os.WriteFile(*outPath, append(payload, '\n'), 0o644); err != nil {
				fmt.Fprintf(stderr, "Write error: %v\n", err)
				return ExitError
			}
		} else {
			fmt.Fprintf(stdout, "%s\n", payload)
			reportOut = stderr
		}

		printer := console.NewPrinter(reportOut, *noColor)
		printer.PrintTrimReport(console.TrimReport{
			Model:     modelName,
			Provider:  provider,
			MaxTokens: budget,
			Before:    len(messages),
			After:     len(trimmed),
			Tokens:    counter(trimmed),
		})
		return ExitOK
	}
}

// readTranscript loads a transcript from a file, or stdin for "-".
func readTranscript(path string) ([]history.Message, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return history.ParseTranscript(data)
}
