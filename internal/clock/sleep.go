// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
// A non-positive duration only reports the context state.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// FromNanos converts a chain timestamp in nanoseconds to UTC time.
func FromNanos(nanos uint64) time.Time {
	return time.Unix(0, int64(nanos)).UTC()
}
