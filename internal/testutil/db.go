package testutil

import (
	"database/sql"
	"testing"
	"time"

	"tokenwise/internal/store"
)

const dbTimeout = 2 * time.Second

// OpenDB opens an in-memory DuckDB database with the session schema
// applied, closed with the test.
func OpenDB(t testing.TB) *sql.DB {
	t.Helper()
	ctx := Context(t, dbTimeout)
	db, err := store.Open(ctx, "")
	if err != nil {
		t.Fatalf("open duckdb: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	if err := store.EnsureSchema(ctx, db); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}
