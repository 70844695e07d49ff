// Package trim reduces message histories to fit a token budget.
//
// Both policies keep a mandatory prefix verbatim and then keep the
// longest suffix of the remaining messages that fits inside the budget.
// Output order always matches input order and messages are never split.
package trim

import (
	"log/slog"

	"tokenwise/internal/history"
	"tokenwise/internal/tokens"
)

// Option configures a trim call.
type Option func(*settings)

type settings struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report trims.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

func newSettings(opts []Option) settings {
	s := settings{logger: slog.Default()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// KeepPrefix trims with a fixed prefix of keepFirst messages. The prefix
// is always retained; its token cost is charged against maxTokens and the
// remainder is trimmed newest-first until the budget is exhausted. When
// the prefix alone meets or exceeds the budget the result is the prefix
// only.
func KeepPrefix(messages []history.Message, counter tokens.Counter, maxTokens, keepFirst int, opts ...Option) []history.Message {
	cfg := newSettings(opts)
	if len(messages) == 0 {
		return []history.Message{}
	}
	if keepFirst < 0 {
		keepFirst = 0
	}
	if keepFirst > len(messages) {
		keepFirst = len(messages)
	}

	prefix := messages[:keepFirst]
	budget := maxTokens
	if keepFirst > 0 {
		budget -= counter(prefix)
	}

	kept := lastWithin(messages[keepFirst:], counter, budget)
	result := make([]history.Message, 0, keepFirst+len(kept))
	result = append(result, prefix...)
	result = append(result, kept...)

	if len(result) < len(messages) {
		cfg.logger.Info("trimmed message history",
			"before", len(messages), "after", len(result), "max_tokens", maxTokens)
	}
	return result
}

// KeepFirst trims with only the first message fixed, charging its cost
// against the budget and trimming the remainder with the local estimator.
func KeepFirst(messages []history.Message, maxTokens int, opts ...Option) []history.Message {
	return KeepPrefix(messages, tokens.Estimate, maxTokens, 1, opts...)
}

// lastWithin returns the longest suffix of messages whose accumulated
// token count stays within budget. Accumulation walks from the newest
// message backwards and stops before the budget would be exceeded.
func lastWithin(messages []history.Message, counter tokens.Counter, budget int) []history.Message {
	if len(messages) == 0 || budget <= 0 {
		return nil
	}
	total := 0
	start := len(messages)
	for i := len(messages) - 1; i >= 0; i-- {
		total += counter(messages[i : i+1])
		if total > budget {
			break
		}
		start = i
	}
	return messages[start:]
}
