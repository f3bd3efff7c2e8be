// Package ratelimit implements a per-client token bucket limiter and the
// HTTP middleware that puts it in front of a handler.
//
// Buckets refill in whole intervals: every RefillInterval measured from
// the bucket's last refill boundary, RefillTokens tokens are added, capped
// at Capacity. A fresh bucket starts full.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Policy describes one bucket.
type Policy struct {
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
}

// DefaultPolicy admits 5 requests per minute per client.
var DefaultPolicy = Policy{Capacity: 5, RefillTokens: 5, RefillInterval: time.Minute}

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed bool
	// Remaining is the number of tokens left after this decision.
	Remaining int
	// RetryAfter is the time until the next refill boundary. Zero when allowed.
	RetryAfter time.Duration
}

type bucket struct {
	mu         sync.Mutex
	tokens     int
	lastRefill time.Time
	lastSeen   time.Time
	evicted    bool
}

// refill adds the tokens of every whole interval elapsed since lastRefill.
func (b *bucket) refill(now time.Time, p Policy) {
	elapsed := now.Sub(b.lastRefill)
	if elapsed < p.RefillInterval {
		return
	}
	periods := int64(elapsed / p.RefillInterval)
	added := periods * int64(p.RefillTokens)
	if added >= int64(p.Capacity-b.tokens) {
		b.tokens = p.Capacity
	} else {
		b.tokens += int(added)
	}
	b.lastRefill = b.lastRefill.Add(time.Duration(periods) * p.RefillInterval)
}

// Limiter holds one bucket per client key. Safe for concurrent use.
type Limiter struct {
	policy  Policy
	idleTTL time.Duration
	now     func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock replaces time.Now. Tests use it to step time by hand.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// WithIdleTTL sets how long a full bucket may sit unused before Cleanup
// drops it. Values below one refill interval are raised to it.
func WithIdleTTL(ttl time.Duration) Option {
	return func(l *Limiter) { l.idleTTL = ttl }
}

// New creates a Limiter. Zero fields of p fall back to DefaultPolicy.
func New(p Policy, opts ...Option) *Limiter {
	if p.Capacity <= 0 {
		p.Capacity = DefaultPolicy.Capacity
	}
	if p.RefillTokens <= 0 {
		p.RefillTokens = DefaultPolicy.RefillTokens
	}
	if p.RefillInterval <= 0 {
		p.RefillInterval = DefaultPolicy.RefillInterval
	}

	l := &Limiter{
		policy:  p,
		idleTTL: 10 * p.RefillInterval,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.idleTTL < p.RefillInterval {
		l.idleTTL = p.RefillInterval
	}
	return l
}

// Policy returns the effective bucket policy.
func (l *Limiter) Policy() Policy { return l.policy }

// Allow consumes one token from key's bucket if there is one.
func (l *Limiter) Allow(key string) Decision {
	for {
		b := l.bucketFor(key)
		now := l.now()

		b.mu.Lock()
		if b.evicted {
			// Cleanup dropped this bucket between lookup and lock.
			b.mu.Unlock()
			continue
		}
		b.refill(now, l.policy)
		b.lastSeen = now

		var d Decision
		if b.tokens > 0 {
			b.tokens--
			d = Decision{Allowed: true, Remaining: b.tokens}
		} else {
			d = Decision{RetryAfter: b.lastRefill.Add(l.policy.RefillInterval).Sub(now)}
		}
		b.mu.Unlock()
		return d
	}
}

func (l *Limiter) bucketFor(key string) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		now := l.now()
		b = &bucket{tokens: l.policy.Capacity, lastRefill: now, lastSeen: now}
		l.buckets[key] = b
	}
	return b
}

// Len reports the number of live buckets.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// Cleanup drops buckets that have been idle for idleTTL and are full again,
// so a client that returns gets exactly the tokens it would have had.
// It returns the number of buckets removed.
func (l *Limiter) Cleanup() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, b := range l.buckets {
		b.mu.Lock()
		b.refill(now, l.policy)
		if now.Sub(b.lastSeen) >= l.idleTTL && b.tokens >= l.policy.Capacity {
			b.evicted = true
			delete(l.buckets, key)
			removed++
		}
		b.mu.Unlock()
	}
	return removed
}

// StartJanitor runs Cleanup every interval until ctx is done.
func (l *Limiter) StartJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = l.policy.RefillInterval
	}
	go func() {
		t := time.NewTicker(every)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				l.Cleanup()
			}
		}
	}()
}
