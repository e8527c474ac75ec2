// Package ratelimit serializes requests to the upstream platform. A single
// shared Limiter guarantees a minimum gap between any two upstream HTTP
// requests, regardless of which stage worker issues them.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter enforces a minimum interval between successive acquisitions.
// Safe for concurrent use; concurrent callers are granted slots in
// acquisition order, each at least the configured gap after the previous.
type Limiter struct {
	mu   sync.Mutex
	gap  time.Duration
	next time.Time

	// now and sleep are swappable for tests
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a limiter allowing requestsPerSecond acquisitions per second.
// Non-positive rates disable limiting.
func New(requestsPerSecond float64) *Limiter {
	var gap time.Duration
	if requestsPerSecond > 0 {
		gap = time.Duration(float64(time.Second) / requestsPerSecond)
	}
	return &Limiter{
		gap:   gap,
		now:   time.Now,
		sleep: sleepCtx,
	}
}

// Acquire blocks until the caller may issue the next upstream request.
// Returns the context error if ctx is cancelled while waiting; the reserved
// slot is not returned, so the gap guarantee holds for later callers.
func (l *Limiter) Acquire(ctx context.Context) error {
	if l.gap <= 0 {
		return ctx.Err()
	}

	l.mu.Lock()
	now := l.now()
	at := l.next
	if at.Before(now) {
		at = now
	}
	l.next = at.Add(l.gap)
	l.mu.Unlock()

	if wait := at.Sub(now); wait > 0 {
		return l.sleep(ctx, wait)
	}
	return ctx.Err()
}

// Gap returns the configured minimum interval between requests.
func (l *Limiter) Gap() time.Duration {
	return l.gap
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
