package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session statuses.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Session is one recorded run.
type Session struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Status    string         `json:"status"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Sessions is the session repository.
type Sessions struct {
	db  *sql.DB
	now func() time.Time
}

// NewSessions builds a repository over an opened database. The now
// function is a test seam; nil means time.Now.
func NewSessions(db *sql.DB, now func() time.Time) *Sessions {
	if now == nil {
		now = time.Now
	}
	return &Sessions{db: db, now: now}
}

// Create inserts a new active session with an optional metadata payload.
func (s *Sessions) Create(ctx context.Context, metadata map[string]any) (Session, error) {
	session := Session{
		ID:        uuid.NewString(),
		CreatedAt: s.now().UTC(),
		Status:    StatusActive,
		Metadata:  metadata,
	}
	session.UpdatedAt = session.CreatedAt

	var metadataValue any
	if metadata != nil {
		payload, err := json.Marshal(metadata)
		if err != nil {
			return Session{}, fmt.Errorf("store: encode metadata: %w", err)
		}
		metadataValue = string(payload)
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO sessions (session_id, created_at, updated_at, status, metadata)
		 VALUES (?, ?, ?, ?, ?)`,
		session.ID,
		session.CreatedAt,
		session.UpdatedAt,
		session.Status,
		metadataValue,
	)
	if err != nil {
		return Session{}, fmt.Errorf("store: create session: %w", err)
	}
	return session, nil
}

// Get returns the session with the given id. The boolean reports whether
// it exists.
func (s *Sessions) Get(ctx context.Context, id string) (Session, bool, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT session_id, created_at, updated_at, status, metadata
		 FROM sessions WHERE session_id = ?`,
		id,
	)
	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, fmt.Errorf("store: get session: %w", err)
	}
	return session, true, nil
}

// List returns a page of sessions ordered newest first, plus the total
// session count.
func (s *Sessions) List(ctx context.Context, offset, limit int) ([]Session, int, error) {
	total := 0
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM sessions`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("store: count sessions: %w", err)
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT session_id, created_at, updated_at, status, metadata
		 FROM sessions ORDER BY created_at DESC, session_id DESC
		 LIMIT ? OFFSET ?`,
		limit,
		offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("store: list sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]Session, 0, limit)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("store: list sessions: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("store: list sessions: %w", err)
	}
	return sessions, total, nil
}

// Delete removes a session. The boolean reports whether a row was
// deleted.
func (s *Sessions) Delete(ctx context.Context, id string) (bool, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE session_id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("store: delete session: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("store: delete session: %w", err)
	}
	return affected > 0, nil
}

// SetStatus updates a session's status and bumps updated_at.
func (s *Sessions) SetStatus(ctx context.Context, id, status string) error {
	_, err := s.db.ExecContext(
		ctx,
		`UPDATE sessions SET status = ?, updated_at = ? WHERE session_id = ?`,
		status,
		s.now().UTC(),
		id,
	)
	if err != nil {
		return fmt.Errorf("store: update session status: %w", err)
	}
	return nil
}

// rowScanner covers sql.Row and sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (Session, error) {
	var session Session
	var metadata sql.NullString
	if err := row.Scan(
		&session.ID,
		&session.CreatedAt,
		&session.UpdatedAt,
		&session.Status,
		&metadata,
	); err != nil {
		return Session{}, err
	}
	if metadata.Valid && metadata.String != "" {
		if err := json.Unmarshal([]byte(metadata.String), &session.Metadata); err != nil {
			return Session{}, fmt.Errorf("decode metadata: %w", err)
		}
	}
	return session, nil
}
