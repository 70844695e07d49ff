package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the configuration after normalization and returns all
// problems found, joined into one error.
func Validate(cfg *Config) error {
	var problems []string

	if cfg.Version != 1 {
		problems = append(problems, fmt.Sprintf("version: unsupported version %d", cfg.Version))
	}
	if cfg.Model == "" {
		problems = append(problems, "model: a default model is required")
	}
	if cfg.Research.Provider != "" && cfg.Research.Model == "" {
		problems = append(problems, "research: provider set without a model")
	}
	if cfg.Planner.Provider != "" && cfg.Planner.Model == "" {
		problems = append(problems, "planner: provider set without a model")
	}
	if cfg.Trim.MaxTokens <= 0 {
		problems = append(problems, "trim.max_tokens: must be positive")
	}
	if cfg.Trim.KeepMessages < 0 {
		problems = append(problems, "trim.keep_messages: must not be negative")
	}
	if cfg.Trim.MaxOutputTokens < 0 {
		problems = append(problems, "trim.max_output_tokens: must not be negative")
	}
	if !strings.Contains(cfg.Server.Addr, ":") {
		problems = append(problems, fmt.Sprintf("server.addr: %q is not host:port", cfg.Server.Addr))
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level: unknown level %q", cfg.Log.Level))
	}

	if len(problems) > 0 {
		return errors.New("invalid config:\n  " + strings.Join(problems, "\n  "))
	}
	return nil
}
