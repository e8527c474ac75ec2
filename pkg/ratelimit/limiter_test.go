package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives the limiter without real sleeping.
type fakeClock struct {
	mu  sync.Mutex
	t   time.Time
	wai []time.Duration
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) sleep(_ context.Context, d time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.wai = append(c.wai, d)
	c.t = c.t.Add(d)
	return nil
}

func newTestLimiter(rps float64) (*Limiter, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	l := New(rps)
	l.now = clock.now
	l.sleep = clock.sleep
	return l, clock
}

func TestAcquireFirstCallDoesNotWait(t *testing.T) {
	l, clock := newTestLimiter(2)
	require.NoError(t, l.Acquire(context.Background()))
	assert.Empty(t, clock.wai)
}

func TestAcquireEnforcesMinimumGap(t *testing.T) {
	l, clock := newTestLimiter(2) // 500ms gap

	require.NoError(t, l.Acquire(context.Background()))
	require.NoError(t, l.Acquire(context.Background()))
	require.NoError(t, l.Acquire(context.Background()))

	require.Len(t, clock.wai, 2)
	assert.Equal(t, 500*time.Millisecond, clock.wai[0])
	assert.Equal(t, 500*time.Millisecond, clock.wai[1])
}

func TestAcquireAfterIdleDoesNotWait(t *testing.T) {
	l, clock := newTestLimiter(2)

	require.NoError(t, l.Acquire(context.Background()))
	clock.mu.Lock()
	clock.t = clock.t.Add(10 * time.Second)
	clock.mu.Unlock()

	require.NoError(t, l.Acquire(context.Background()))
	assert.Empty(t, clock.wai)
}

func TestAcquireConcurrentSlotsAreSpaced(t *testing.T) {
	l, clock := newTestLimiter(10) // 100ms gap

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, l.Acquire(context.Background()))
		}()
	}
	wg.Wait()

	// First caller is immediate, the rest each reserve one gap further out.
	total := time.Duration(0)
	for _, d := range clock.wai {
		total += d
	}
	assert.Equal(t, 400*time.Millisecond, total)
}

func TestAcquireZeroRateDisablesLimiting(t *testing.T) {
	l := New(0)
	start := time.Now()
	for i := 0; i < 100; i++ {
		require.NoError(t, l.Acquire(context.Background()))
	}
	assert.Less(t, time.Since(start), time.Second)
}

func TestAcquireCancelledContext(t *testing.T) {
	l := New(1)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, l.Acquire(ctx))
	cancel()
	assert.ErrorIs(t, l.Acquire(ctx), context.Canceled)
}

func TestGap(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, New(2).Gap())
	assert.Equal(t, time.Duration(0), New(0).Gap())
}
