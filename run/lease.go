package run

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
)

// Lease is the named single-holder lock spec.md §4.6 requires: "at most
// one run active at a time... if the lease is held, the call returns
// immediately with AlreadyRunning; it does not wait." A weighted
// semaphore of size 1 gives exactly that non-blocking try-acquire
// semantics.
type Lease struct {
	sem *semaphore.Weighted
	ttl time.Duration
}

// NewLease builds a Lease enforcing the given TTL once acquired.
func NewLease(ttl time.Duration) *Lease {
	return &Lease{sem: semaphore.NewWeighted(1), ttl: ttl}
}

// TryAcquire acquires the lease without blocking, returning false if it
// is already held.
func (l *Lease) TryAcquire() bool {
	return l.sem.TryAcquire(1)
}

// Release gives up the lease.
func (l *Lease) Release() {
	l.sem.Release(1)
}

// Bound derives a context that is canceled once the lease's TTL elapses,
// so a run that overruns it aborts at its next safe point (spec.md §5).
func (l *Lease) Bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, l.ttl)
}
