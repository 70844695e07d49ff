package config

// Defaults applied by Normalize.
const (
	DefaultMaxTokens    = 100_000
	DefaultKeepMessages = 2
	DefaultAddr         = "127.0.0.1:1818"
	DefaultDatabasePath = "tokenwise.duckdb"
	DefaultLogLevel     = "info"
)

// Normalize fills defaults in place. Role entries inherit the generic
// provider when they name a model without one.
func Normalize(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Research.Model != "" && cfg.Research.Provider == "" {
		cfg.Research.Provider = cfg.Provider
	}
	if cfg.Planner.Model != "" && cfg.Planner.Provider == "" {
		cfg.Planner.Provider = cfg.Provider
	}
	if cfg.Trim.MaxTokens <= 0 {
		cfg.Trim.MaxTokens = DefaultMaxTokens
	}
	if cfg.Trim.KeepMessages <= 0 {
		cfg.Trim.KeepMessages = DefaultKeepMessages
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = DefaultDatabasePath
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
