package browse

import (
	"errors"
	"testing"

	"tokenwise/internal/store"
)

func TestApplySessionsReplacesPage(t *testing.T) {
	state := State{Err: errors.New("stale")}

	next := applySessions(state, SessionsMsg{
		Sessions: []store.Session{{ID: "a"}, {ID: "b"}},
		Total:    7,
	})
	if len(next.Sessions) != 2 || next.Total != 7 {
		t.Fatalf("unexpected state: %+v", next)
	}
	if next.Err != nil {
		t.Fatalf("error should clear on successful load")
	}
	if !next.Loaded {
		t.Fatalf("loaded flag should be set")
	}
}

func TestApplyErrorKeepsPage(t *testing.T) {
	state := State{Sessions: []store.Session{{ID: "a"}}, Total: 1}

	next := applyError(state, ErrMsg{Err: errors.New("boom")})
	if next.Err == nil {
		t.Fatalf("expected error recorded")
	}
	if len(next.Sessions) != 1 {
		t.Fatalf("page should survive a failed refresh")
	}
}

func TestRowsForState(t *testing.T) {
	state := State{Sessions: []store.Session{
		{ID: "abc", Status: store.StatusActive, Metadata: map[string]any{"kind": "serve"}},
	}}

	rows := rowsForState(state)
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
	if rows[0][0] != "abc" || rows[0][2] != store.StatusActive {
		t.Fatalf("unexpected row: %v", rows[0])
	}
	if rows[0][3] == "" {
		t.Fatalf("metadata summary should not be empty")
	}
}
