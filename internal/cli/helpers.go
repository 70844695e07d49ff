package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"tokenwise/internal/config"
)

// defaultConfigPath is used when --config is not supplied.
const defaultConfigPath = "tokenwise.yaml"

// loadConfig loads the configuration for a command. An explicit path must
// exist; the default path is optional and falls back to normalized
// defaults when absent.
func loadConfig(path string, stderr io.Writer) (config.Config, bool) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		if !explicit && os.IsNotExist(unwrapPathError(err)) {
			var defaults config.Config
			config.Normalize(&defaults)
			return defaults, true
		}
		fmt.Fprintf(stderr, "Config error: %v\n", err)
		return config.Config{}, false
	}
	return cfg, true
}

// unwrapPathError digs out the underlying os error for existence checks.
func unwrapPathError(err error) error {
	for {
		unwrapped, ok := err.(interface{ Unwrap() error })
		if !ok {
			return err
		}
		next := unwrapped.Unwrap()
		if next == nil {
			return err
		}
		err = next
	}
}

// newLogger builds the process logger writing to stderr at the configured
// level.
func newLogger(stderr io.Writer, level string) *slog.Logger {
	var leveler slog.Level
	switch level {
	case "debug":
		leveler = slog.LevelDebug
	case "warn":
		leveler = slog.LevelWarn
	case "error":
		leveler = slog.LevelError
	default:
		leveler = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: leveler}))
}
