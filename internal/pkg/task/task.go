// Package task provides one-shot countdown timers for deferred settlement
// work (reservation expiry, auction close).
//
// Tasks cannot be cancelled. Callers removing a task's target early must make
// the callback idempotent: it re-resolves its target by id and no-ops once the
// target is gone.
package task

import (
	"sync/atomic"
	"time"
)

// Task counts down a fixed number of ticks on its own goroutine and then runs
// its callback exactly once.
type Task struct {
	remaining atomic.Int64
}

// New starts a task that fires fn after delay ticks of the given interval.
func New(delay uint, interval time.Duration, fn func()) *Task {
	t := &Task{}
	t.remaining.Store(int64(delay))

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for t.remaining.Load() > 0 {
			<-ticker.C
			t.remaining.Add(-1)
		}
		fn()
	}()

	return t
}

// Remaining reports how many ticks are left before the callback runs.
func (t *Task) Remaining() uint {
	r := t.remaining.Load()
	if r < 0 {
		return 0
	}
	return uint(r)
}
