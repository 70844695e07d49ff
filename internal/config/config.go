// Package config loads, normalizes, and validates the tokenwise
// configuration file, and holds the live runtime configuration snapshot.
package config

// Config is the parsed configuration file.
type Config struct {
	Version  int            `yaml:"version"`
	Provider string         `yaml:"provider"`
	Model    string         `yaml:"model"`
	Research RoleModels     `yaml:"research"`
	Planner  RoleModels     `yaml:"planner"`
	Trim     TrimConfig     `yaml:"trim"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// RoleModels overrides the generic provider/model pair for one agent role.
type RoleModels struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
}

// TrimConfig controls message trimming defaults.
type TrimConfig struct {
	// MaxTokens is the budget used when no limit can be resolved.
	MaxTokens int `yaml:"max_tokens"`
	// KeepMessages is the mandatory prefix length for the prefix policy.
	KeepMessages int `yaml:"keep_messages"`
	// MaxOutputTokens is the output allocation reported on the live
	// model handle, used for reasoning-budget adjustment.
	MaxOutputTokens int `yaml:"max_output_tokens"`
}

// ServerConfig configures the sessions API server.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig locates the session database.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Settings flattens the configuration into the role-qualified key/value
// form consumed by limit resolution. Empty values are omitted so role
// overrides fall back cleanly.
func (c Config) Settings() map[string]string {
	settings := map[string]string{}
	put := func(key, value string) {
		if value != "" {
			settings[key] = value
		}
	}
	put("provider", c.Provider)
	put("model", c.Model)
	put("research_provider", c.Research.Provider)
	put("research_model", c.Research.Model)
	put("planner_provider", c.Planner.Provider)
	put("planner_model", c.Planner.Model)
	return settings
}
