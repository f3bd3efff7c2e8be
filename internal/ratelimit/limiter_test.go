package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestAllow_ConsumesUpToCapacity(t *testing.T) {
	clock := newFakeClock()
	l := New(DefaultPolicy, WithClock(clock.Now))

	for i := 0; i < 5; i++ {
		d := l.Allow("10.0.0.1")
		require.True(t, d.Allowed, "request %d", i+1)
		assert.Equal(t, 4-i, d.Remaining)
	}

	d := l.Allow("10.0.0.1")
	assert.False(t, d.Allowed)
	assert.Zero(t, d.Remaining)
	assert.Equal(t, time.Minute, d.RetryAfter)
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	l := New(Policy{Capacity: 1, RefillTokens: 1, RefillInterval: time.Hour})

	assert.True(t, l.Allow("a").Allowed)
	assert.False(t, l.Allow("a").Allowed)
	assert.True(t, l.Allow("b").Allowed)
}

func TestAllow_RefillsInWholeIntervals(t *testing.T) {
	clock := newFakeClock()
	l := New(Policy{Capacity: 5, RefillTokens: 2, RefillInterval: time.Minute}, WithClock(clock.Now))

	for i := 0; i < 5; i++ {
		require.True(t, l.Allow("k").Allowed)
	}

	// Part of an interval adds nothing.
	clock.Advance(59 * time.Second)
	d := l.Allow("k")
	assert.False(t, d.Allowed)
	assert.Equal(t, time.Second, d.RetryAfter)

	// One boundary crossed: two tokens.
	clock.Advance(time.Second)
	assert.True(t, l.Allow("k").Allowed)
	assert.True(t, l.Allow("k").Allowed)
	assert.False(t, l.Allow("k").Allowed)

	// The boundary is kept: 30s later plus 30s is the next one.
	clock.Advance(30 * time.Second)
	assert.False(t, l.Allow("k").Allowed)
	clock.Advance(30 * time.Second)
	assert.True(t, l.Allow("k").Allowed)
}

func TestAllow_RefillIsCappedAtCapacity(t *testing.T) {
	clock := newFakeClock()
	l := New(DefaultPolicy, WithClock(clock.Now))

	require.True(t, l.Allow("k").Allowed)
	clock.Advance(time.Hour)

	d := l.Allow("k")
	require.True(t, d.Allowed)
	assert.Equal(t, 4, d.Remaining)
}

func TestNew_ZeroPolicyUsesDefaults(t *testing.T) {
	l := New(Policy{})
	assert.Equal(t, DefaultPolicy, l.Policy())
}

func TestAllow_ConcurrentSameKey(t *testing.T) {
	l := New(Policy{Capacity: 5, RefillTokens: 5, RefillInterval: time.Hour})

	var (
		wg      sync.WaitGroup
		allowed atomic.Int64
		start   = make(chan struct{})
	)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if l.Allow("same").Allowed {
				allowed.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int64(5), allowed.Load())
	assert.Equal(t, 1, l.Len())
}

func TestAllow_ConcurrentDistinctKeys(t *testing.T) {
	l := New(DefaultPolicy)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Allow(fmt.Sprintf("client-%d", i%10))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, l.Len())
}

func TestCleanup_EvictsOnlyIdleFullBuckets(t *testing.T) {
	clock := newFakeClock()
	l := New(Policy{Capacity: 2, RefillTokens: 1, RefillInterval: time.Minute},
		WithClock(clock.Now), WithIdleTTL(time.Minute))

	l.Allow("idle")
	l.Allow("drained")
	l.Allow("drained")

	// After one interval "idle" is full again but "drained" only has one token.
	clock.Advance(time.Minute)
	assert.Equal(t, 1, l.Cleanup())
	assert.Equal(t, 1, l.Len())

	// A returning client gets what it would have had anyway.
	d := l.Allow("drained")
	assert.True(t, d.Allowed)
	assert.Zero(t, d.Remaining)
}

func TestCleanup_KeepsRecentlySeenBuckets(t *testing.T) {
	clock := newFakeClock()
	l := New(DefaultPolicy, WithClock(clock.Now), WithIdleTTL(10*time.Minute))

	l.Allow("k")
	clock.Advance(5 * time.Minute)

	assert.Zero(t, l.Cleanup())
	assert.Equal(t, 1, l.Len())
}

func TestWithIdleTTL_RaisedToRefillInterval(t *testing.T) {
	clock := newFakeClock()
	l := New(DefaultPolicy, WithClock(clock.Now), WithIdleTTL(time.Second))

	l.Allow("k")
	clock.Advance(30 * time.Second)
	assert.Zero(t, l.Cleanup())
}

func TestStartJanitor_StopsWithContext(t *testing.T) {
	clock := newFakeClock()
	l := New(Policy{Capacity: 1, RefillTokens: 1, RefillInterval: time.Millisecond},
		WithClock(clock.Now))
	l.Allow("k")
	clock.Advance(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	l.StartJanitor(ctx, time.Millisecond)

	assert.Eventually(t, func() bool { return l.Len() == 0 }, time.Second, 5*time.Millisecond)
}
