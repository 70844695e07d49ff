package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"tokenwise/internal/api"
	"tokenwise/internal/config"
	"tokenwise/internal/limits"
	"tokenwise/internal/store"
)

// serveAPI is a test seam for running the API server.
var serveAPI = api.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Config file path")
		addr := fs.String("addr", "", "Address to listen on")
		dbPath := fs.String("db", "", "Session database path")
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
		if *addr != "" {
			cfg.Server.Addr = *addr
		}
		if *dbPath != "" {
			cfg.Database.Path = *dbPath
		}
		logger := newLogger(stderr, cfg.Log.Level)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		db, err := store.Open(ctx, cfg.Database.Path)
		if err != nil {
			fmt.Fprintf(stderr, "Database error: %v\n", err)
			return ExitError
		}
		defer db.Close()
		if err := store.EnsureSchema(ctx, db); err != nil {
			fmt.Fprintf(stderr, "Schema error: %v\n", err)
			return ExitError
		}
		sessions := store.NewSessions(db, nil)

		// The server run itself is a session: record it, and publish the
		// configuration as the live snapshot for limit resolution.
		liveStore := config.NewStore()
		liveStore.Replace(cfg.Settings())
		resolver := limits.NewResolver(
			limits.WithStore(liveStore),
			limits.WithLogger(logger),
		)
		session, err := sessions.Create(ctx, map[string]any{
			"kind": "serve",
			"addr": cfg.Server.Addr,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Session error: %v\n", err)
			return ExitError
		}
		logger.Info("session started", "session_id", session.ID)

		fmt.Fprintf(stdout, "Serving sessions API at http://%s\n", cfg.Server.Addr)
		serveErr := serveAPI(ctx, cfg.Server.Addr, api.Config{
			Sessions: sessions,
			Resolver: resolver,
			Settings: cfg.Settings(),
			Handle: &limits.ModelHandle{
				Model:           cfg.Model,
				MaxOutputTokens: cfg.Trim.MaxOutputTokens,
			},
			Logger: logger,
		})

		status := store.StatusCompleted
		if serveErr != nil {
			status = store.StatusFailed
		}
		if err := sessions.SetStatus(context.Background(), session.ID, status); err != nil {
			logger.Warn("failed to finalize session", "session_id", session.ID, "error", err)
		}
		liveStore.Clear()

		if serveErr != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", serveErr)
			return ExitError
		}
		return ExitOK
	}
}
