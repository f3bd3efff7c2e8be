package ratelimit

import (
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aanand-mishra/school-api/internal/metrics"
	"github.com/aanand-mishra/school-api/internal/utils/response"
)

// KeyFunc derives the client key of a request.
type KeyFunc func(r *http.Request) string

// DefaultKeyFunc keys by the host part of RemoteAddr. With trustXFF it
// prefers the first X-Forwarded-For entry, which is only safe behind a
// proxy that overwrites the header.
func DefaultKeyFunc(trustXFF bool) KeyFunc {
	return func(r *http.Request) string {
		if trustXFF {
			if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
				first, _, _ := strings.Cut(xff, ",")
				if ip := strings.TrimSpace(first); ip != "" {
					return ip
				}
			}
		}

		host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
		if err == nil && host != "" {
			return host
		}
		if r.RemoteAddr != "" {
			return r.RemoteAddr
		}
		return "unknown"
	}
}

// Options configures Middleware. Limiter is required.
type Options struct {
	Limiter            *Limiter
	KeyFn              KeyFunc
	TrustXForwardedFor bool
	Stats              StatsStore
	Metrics            *metrics.Metrics
	Logger             *slog.Logger
}

// Middleware admits a request when its client still has a token and
// answers 429 otherwise. Rejected requests never reach next.
func Middleware(opts Options) func(next http.Handler) http.Handler {
	if opts.KeyFn == nil {
		opts.KeyFn = DefaultKeyFunc(opts.TrustXForwardedFor)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	log := opts.Logger.With(slog.String("component", "ratelimit"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := opts.KeyFn(r)
			dec := opts.Limiter.Allow(key)

			opts.Metrics.ObserveRateLimit(dec.Allowed)
			if opts.Stats != nil {
				err := opts.Stats.Record(r.Context(), Event{
					Key:     key,
					Allowed: dec.Allowed,
					Method:  r.Method,
					Path:    r.URL.Path,
					At:      time.Now(),
				})
				if err != nil {
					log.Warn("recording rate limit stats failed", slog.String("error", err.Error()))
				}
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(dec.Remaining))
			if !dec.Allowed {
				log.Warn("rate limit exceeded",
					slog.String("key", key),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(dec.RetryAfter)))
				response.Fail(w, http.StatusTooManyRequests, response.MsgTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// retryAfterSeconds rounds up to whole seconds, at least 1.
func retryAfterSeconds(d time.Duration) int {
	s := int(math.Ceil(d.Seconds()))
	if s < 1 {
		return 1
	}
	return s
}
