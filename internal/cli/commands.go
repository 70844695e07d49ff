package cli

// commands is the registered command table, in display order.
var commands []*Command

func init() {
	trimCmd := &Command{
		Name:    "trim",
		Summary: "Trim a transcript to fit a model's token budget",
		Usage: []string{
			"tokenwise trim [--config <file>] [--role <role>] [--policy prefix|first]",
			"              [--max-tokens <n>] [--keep <n>] [--out <file>] <transcript.json>",
		},
	}
	trimCmd.Run = runTrim(trimCmd)

	limitCmd := &Command{
		Name:    "limit",
		Summary: "Resolve the input-token budget for a configuration",
		Usage: []string{
			"tokenwise limit [--config <file>] [--role <role>]",
		},
	}
	limitCmd.Run = runLimit(limitCmd)

	serveCmd := &Command{
		Name:    "serve",
		Summary: "Run the sessions REST API server",
		Usage: []string{
			"tokenwise serve [--config <file>] [--addr <host:port>] [--db <path>]",
		},
	}
	serveCmd.Run = runServe(serveCmd)

	browseCmd := &Command{
		Name:    "browse",
		Summary: "Browse recorded sessions in an interactive UI",
		Usage: []string{
			"tokenwise browse [--config <file>] [--db <path>]",
		},
	}
	browseCmd.Run = runBrowse(browseCmd)

	initCmd := &Command{
		Name:    "init",
		Summary: "Write a starter configuration file",
		Usage: []string{
			"tokenwise init [<path>]",
		},
	}
	initCmd.Run = runInit(initCmd)

	commands = []*Command{trimCmd, limitCmd, serveCmd, browseCmd, initCmd}
}
