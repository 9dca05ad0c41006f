// Package clock provides helpers for waiting and retry pacing.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
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

// Backoff produces exponentially growing delays between Initial and Max. It is not safe for concurrent use.
type Backoff struct {
	Initial time.Duration
	Max     time.Duration

	next time.Duration
}

// Next returns the delay to wait before the following attempt and doubles it up to Max.
func (b *Backoff) Next() time.Duration {
	if b.next <= 0 {
		b.next = b.Initial
	}
	d := b.next
	if b.Max > 0 && d > b.Max {
		d = b.Max
	}
	b.next = d * 2
	return d
}

// Reset restarts the sequence at Initial.
func (b *Backoff) Reset() {
	b.next = 0
}
