// Package tokens estimates and counts tokens for message histories.
//
// Counting services are pluggable: the tiktoken-backed service gives real
// tokenizer counts, while Estimate is a fast local heuristic that needs no
// tokenizer data.
package tokens

import (
	"log/slog"

	"tokenwise/internal/history"
)

// charsPerToken is the approximation ratio for the local estimator.
const charsPerToken = 4

// messageOverhead accounts for role markers and message framing.
const messageOverhead = 3

// Counter computes the token count for a message slice.
type Counter func(messages []history.Message) int

// CountingService is the external token counting collaborator. It receives
// flat role/content records bound to a model name and returns a count.
type CountingService interface {
	Count(messages []history.Record, model string) (int, error)
}

// Estimate approximates token usage without a tokenizer: character count
// divided by four, plus a small per-message overhead. The overhead keeps
// the estimate strictly monotonic in message count.
func Estimate(messages []history.Message) int {
	total := 0
	for _, msg := range messages {
		total += messageOverhead
		total += len(history.ContentString(msg.Content)) / charsPerToken
	}
	return total
}

// NewCounter binds a counting service to a model name and returns a
// Counter over messages. An empty slice returns 0 without consulting the
// service. A service failure is absorbed: the counter logs it and falls
// back to the local estimate.
func NewCounter(svc CountingService, model string, logger *slog.Logger) Counter {
	if logger == nil {
		logger = slog.Default()
	}
	return func(messages []history.Message) int {
		if len(messages) == 0 {
			return 0
		}
		if svc == nil {
			return Estimate(messages)
		}
		count, err := svc.Count(history.ToRecords(messages), model)
		if err != nil {
			logger.Debug("token count failed, using local estimate",
				"model", model, "error", err)
			return Estimate(messages)
		}
		return count
	}
}
