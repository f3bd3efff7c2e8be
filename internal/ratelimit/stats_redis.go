package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStats keeps decision counters in Redis hashes:
//
//	<prefix>:total                 allowed / denied, never expires
//	<prefix>:minute:200601021504   allowed / denied per UTC minute, expires after ttl
//	<prefix>:route                 "<METHOD> <path>:allowed" / ":denied"
type RedisStats struct {
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewRedisStats creates a RedisStats. An empty prefix becomes
// "school-api:ratelimit"; a non-positive ttl becomes 24h.
func NewRedisStats(rdb redis.Cmdable, prefix string, ttl time.Duration) *RedisStats {
	prefix = strings.Trim(prefix, ":")
	if prefix == "" {
		prefix = "school-api:ratelimit"
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStats{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (s *RedisStats) Record(ctx context.Context, ev Event) error {
	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}

	field := fieldFor(ev.Allowed)

	pipe := s.rdb.Pipeline()
	pipe.HIncrBy(ctx, s.TotalKey(), field, 1)

	minuteKey := s.MinuteKey(at)
	pipe.HIncrBy(ctx, minuteKey, field, 1)
	pipe.Expire(ctx, minuteKey, s.ttl)

	if route := strings.TrimSpace(ev.Method + " " + ev.Path); route != "" {
		pipe.HIncrBy(ctx, s.prefix+":route", route+":"+field, 1)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record rate limit stats: %w", err)
	}
	return nil
}

// Total reads the cumulative counters.
func (s *RedisStats) Total(ctx context.Context) (Counters, error) {
	vals, err := s.rdb.HGetAll(ctx, s.TotalKey()).Result()
	if err != nil {
		return Counters{}, fmt.Errorf("read rate limit stats: %w", err)
	}

	var c Counters
	if _, err := fmt.Sscan(valueOr(vals["allowed"]), &c.Allowed); err != nil {
		return Counters{}, fmt.Errorf("parse allowed counter: %w", err)
	}
	if _, err := fmt.Sscan(valueOr(vals["denied"]), &c.Denied); err != nil {
		return Counters{}, fmt.Errorf("parse denied counter: %w", err)
	}
	return c, nil
}

func (s *RedisStats) TotalKey() string { return s.prefix + ":total" }

func (s *RedisStats) MinuteKey(at time.Time) string {
	return fmt.Sprintf("%s:minute:%s", s.prefix, at.UTC().Format("200601021504"))
}

func fieldFor(allowed bool) string {
	if allowed {
		return "allowed"
	}
	return "denied"
}

func valueOr(v string) string {
	if v == "" {
		return "0"
	}
	return v
}
