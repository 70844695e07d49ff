package config

import (
	"fmt"
	"os"
)

// starterConfig is the file written by the init command.
const starterConfig = `version: 1

provider: anthropic
model: claude-3-7-sonnet-20250219

# Role overrides. Roles without an entry use the generic provider/model.
research:
  model: claude-3-5-sonnet-20241022
planner:
  model: claude-3-7-sonnet-20250219

trim:
  max_tokens: 100000
  keep_messages: 2
  max_output_tokens: 64000

server:
  addr: 127.0.0.1:1818

database:
  path: tokenwise.duckdb

log:
  level: info
`

// Scaffold writes a starter config file, refusing to overwrite an
// existing one.
func Scaffold(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	}
	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
