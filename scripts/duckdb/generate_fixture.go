package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"tokenwise/internal/store"
)

// fixtureConfig defines the JSON config for generating a session fixture.
type fixtureConfig struct {
	Name     string `json:"name"`
	Sessions int    `json:"sessions"`
}

func main() {
	configPath := flag.String("config", "", "path to fixture config JSON")
	outPath := flag.String("out", "", "output duckdb file path")
	flag.Parse()
	if *configPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: generate_fixture --config <path> --out <duckdb file>")
		os.Exit(2)
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(dirOf(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir output dir: %v\n", err)
		os.Exit(1)
	}
	if err := removeIfExists(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	if err := generateFixture(ctx, *outPath, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "generate fixture: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (fixtureConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fixtureConfig{}, err
	}
	var cfg fixtureConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fixtureConfig{}, err
	}
	return cfg, nil
}

func generateFixture(ctx context.Context, path string, cfg fixtureConfig) error {
	db, err := store.Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := store.EnsureSchema(ctx, db); err != nil {
		return err
	}
	conn, err := db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	appender, err := newSessionAppender(conn)
	if err != nil {
		return err
	}
	startTime := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	statuses := []string{store.StatusCompleted, store.StatusActive, store.StatusFailed}
	for i := 0; i < cfg.Sessions; i++ {
		sessionID := deterministicID("session", i)
		createdAt := startTime.Add(time.Duration(i) * time.Minute)
		metadata, err := json.Marshal(map[string]any{
			"kind":    "fixture",
			"fixture": cfg.Name,
			"index":   i,
		})
		if err != nil {
			return err
		}
		status := statuses[i%len(statuses)]
		if err := appender.AppendRow(sessionID, createdAt, createdAt, status, string(metadata)); err != nil {
			return err
		}
	}
	return appender.Close()
}
