package tokens

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"tokenwise/internal/history"
)

type stubService struct {
	count int
	err   error
	calls [][]history.Record
}

func (s *stubService) Count(messages []history.Record, model string) (int, error) {
	s.calls = append(s.calls, messages)
	if s.err != nil {
		return 0, s.err
	}
	return s.count, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func text(role history.Role, content string) history.Message {
	return history.Message{Role: role, Content: history.Text{Text: content}}
}

func TestCounterEmptyInputSkipsService(t *testing.T) {
	svc := &stubService{count: 42}
	counter := NewCounter(svc, "gpt-4o", quietLogger())

	if got := counter(nil); got != 0 {
		t.Fatalf("expected 0 for empty input, got %d", got)
	}
	if len(svc.calls) != 0 {
		t.Fatalf("service must not be called for empty input")
	}
}

func TestCounterConvertsMessagesToRecords(t *testing.T) {
	svc := &stubService{count: 7}
	counter := NewCounter(svc, "gpt-4o", quietLogger())

	messages := []history.Message{
		text(history.RoleSystem, "be brief"),
		{Role: history.RoleUser, Content: history.Blocks{Blocks: []history.Block{
			{Type: "text", Text: "part one"},
			{Type: "text", Text: "part two"},
		}}},
	}
	if got := counter(messages); got != 7 {
		t.Fatalf("expected service count 7, got %d", got)
	}
	if len(svc.calls) != 1 {
		t.Fatalf("expected one service call, got %d", len(svc.calls))
	}
	records := svc.calls[0]
	if records[0].Role != "system" || records[0].Content != "be brief" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[1].Content != "part one\npart two" {
		t.Fatalf("blocks should flatten with newlines, got %q", records[1].Content)
	}
}

func TestCounterFallsBackToEstimateOnServiceError(t *testing.T) {
	svc := &stubService{err: errors.New("service unavailable")}
	counter := NewCounter(svc, "gpt-4o", quietLogger())

	messages := []history.Message{text(history.RoleUser, "hello there, how are you")}
	if got, want := counter(messages), Estimate(messages); got != want {
		t.Fatalf("expected estimate fallback %d, got %d", want, got)
	}
}

func TestCounterNilServiceUsesEstimate(t *testing.T) {
	counter := NewCounter(nil, "gpt-4o", quietLogger())
	messages := []history.Message{text(history.RoleUser, "hello")}
	if got, want := counter(messages), Estimate(messages); got != want {
		t.Fatalf("expected estimate %d, got %d", want, got)
	}
}

func TestEstimateMonotonicInMessageCount(t *testing.T) {
	messages := []history.Message{}
	previous := Estimate(messages)
	for i := 0; i < 10; i++ {
		messages = append(messages, text(history.RoleUser, ""))
		current := Estimate(messages)
		if current <= previous {
			t.Fatalf("estimate not monotonic at %d messages: %d <= %d", i+1, current, previous)
		}
		previous = current
	}
}

func TestEstimateScalesWithContent(t *testing.T) {
	short := []history.Message{text(history.RoleUser, "hi")}
	long := []history.Message{text(history.RoleUser, "this is a considerably longer message body")}
	if Estimate(long) <= Estimate(short) {
		t.Fatalf("longer content should estimate higher")
	}
}
