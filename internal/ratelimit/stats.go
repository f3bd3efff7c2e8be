package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Event is one limiter decision as seen by the middleware.
//
// Key and Path are client-controlled; stores that persist them per value
// should bound their cardinality.
type Event struct {
	Key     string
	Allowed bool
	Method  string
	Path    string
	At      time.Time
}

// StatsStore records decisions. The middleware treats it as best effort:
// an error is logged and the request proceeds.
type StatsStore interface {
	Record(ctx context.Context, ev Event) error
}

// Counters is an allowed/denied pair.
type Counters struct {
	Allowed int64
	Denied  int64
}

func (c *Counters) add(allowed bool) {
	if allowed {
		c.Allowed++
		return
	}
	c.Denied++
}

// MemoryStats keeps counters in process. Nothing expires; use it for
// development and tests.
type MemoryStats struct {
	mu      sync.Mutex
	total   Counters
	byRoute map[string]Counters
}

// NewMemoryStats creates an empty MemoryStats.
func NewMemoryStats() *MemoryStats {
	return &MemoryStats{byRoute: make(map[string]Counters)}
}

func (s *MemoryStats) Record(_ context.Context, ev Event) error {
	route := ev.Method + " " + ev.Path

	s.mu.Lock()
	defer s.mu.Unlock()

	s.total.add(ev.Allowed)
	c := s.byRoute[route]
	c.add(ev.Allowed)
	s.byRoute[route] = c
	return nil
}

// Total returns the counters across all routes.
func (s *MemoryStats) Total() Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// ByRoute returns a copy of the per "METHOD path" counters.
func (s *MemoryStats) ByRoute() map[string]Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]Counters, len(s.byRoute))
	for k, v := range s.byRoute {
		out[k] = v
	}
	return out
}
