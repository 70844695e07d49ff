package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds a test operation when the caller does not pick
// a timeout.
const DefaultTimeout = 5 * time.Second

// deadlineGrace leaves room for cleanup before the test deadline fires.
const deadlineGrace = time.Second

// Context returns a context cancelled with the test. The timeout is
// capped so the context expires before the test's own deadline.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if d, ok := t.(interface{ Deadline() (time.Time, bool) }); ok {
		if deadline, ok := d.Deadline(); ok {
			if until := time.Until(deadline) - deadlineGrace; until > 0 && until < timeout {
				timeout = until
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
