package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"tokenwise/internal/api"
	"tokenwise/internal/store"
)

func TestServeCommandRecordsSession(t *testing.T) {
	var captured api.Config
	restore := serveAPI
	serveAPI = func(ctx context.Context, addr string, cfg api.Config) error {
		captured = cfg
		return nil
	}
	defer func() { serveAPI = restore }()

	dbPath := filepath.Join(t.TempDir(), "sessions.duckdb")
	var stdout, stderr bytes.Buffer
	code := Run([]string{"serve", "--addr", "127.0.0.1:0", "--db", dbPath}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ok exit, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Serving sessions API") {
		t.Fatalf("expected startup banner, got: %q", stdout.String())
	}
	if captured.Sessions == nil {
		t.Fatalf("session repository not passed to the server")
	}
	if captured.Resolver == nil {
		t.Fatalf("limit resolver not passed to the server")
	}

	// The run itself is recorded and finalized as completed.
	ctx := context.Background()
	db, err := store.Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("reopen database: %v", err)
	}
	defer db.Close()
	sessions, total, err := store.NewSessions(db, nil).List(ctx, 0, 10)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if total != 1 || len(sessions) != 1 {
		t.Fatalf("expected one recorded session, got total=%d len=%d", total, len(sessions))
	}
	if sessions[0].Status != store.StatusCompleted {
		t.Fatalf("expected completed status, got %q", sessions[0].Status)
	}
	if sessions[0].Metadata["kind"] != "serve" {
		t.Fatalf("unexpected metadata: %v", sessions[0].Metadata)
	}
}

func TestServeCommandMarksFailedRun(t *testing.T) {
	restore := serveAPI
	serveAPI = func(ctx context.Context, addr string, cfg api.Config) error {
		return context.DeadlineExceeded
	}
	defer func() { serveAPI = restore }()

	dbPath := filepath.Join(t.TempDir(), "sessions.duckdb")
	var stdout, stderr bytes.Buffer
	code := Run([]string{"serve", "--db", dbPath}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected error exit, got %d", code)
	}

	ctx := context.Background()
	db, err := store.Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("reopen database: %v", err)
	}
	defer db.Close()
	sessions, _, err := store.NewSessions(db, nil).List(ctx, 0, 10)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0].Status != store.StatusFailed {
		t.Fatalf("expected one failed session, got %+v", sessions)
	}
}
