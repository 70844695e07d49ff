// Package store persists session records in DuckDB.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"
)

// schemaDDL holds the session database schema.
//
//go:embed schema.sql
var schemaDDL string

// SchemaDDL returns the schema DDL used for initializing session
// databases.
func SchemaDDL() string {
	return schemaDDL
}

// Open opens (or creates) a DuckDB database at path. An empty path opens
// an in-memory database.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("store: open duckdb: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ping duckdb: %w", err)
	}
	return db, nil
}

// EnsureSchema applies the schema DDL to the provided database
// connection.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("store: db is nil")
	}
	_, err := db.ExecContext(ctx, schemaDDL)
	return err
}
