package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"tokenwise/internal/config"
)

func TestInitCommandWritesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokenwise.yaml")

	var stdout, stderr bytes.Buffer
	code := Run([]string{"init", path}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected ok exit, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Wrote "+path) {
		t.Fatalf("unexpected output: %q", stdout.String())
	}

	if _, err := config.Load(path); err != nil {
		t.Fatalf("scaffolded config must load: %v", err)
	}
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokenwise.yaml")

	var stdout, stderr bytes.Buffer
	if code := Run([]string{"init", path}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("first init failed: %d", code)
	}
	if code := Run([]string{"init", path}, &stdout, &stderr); code != ExitError {
		t.Fatalf("expected error exit on overwrite, got %d", code)
	}
}
