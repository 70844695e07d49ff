package cli

import (
	"fmt"
	"io"

	"tokenwise/internal/config"
)

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		if len(args) > 1 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}

		path := defaultConfigPath
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.Scaffold(path); err != nil {
			fmt.Fprintf(stderr, "Init error: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", path)
		return ExitOK
	}
}
