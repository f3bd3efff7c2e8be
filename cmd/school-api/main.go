// main is the entry point of the School API application.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file (+ env overrides)
//  2. Initialise the logger
//  3. Open the record store (SQLite or PostgreSQL)
//  4. Build the services and, if enabled, the rate limiter and metrics
//  5. Register all HTTP routes
//  6. Start the HTTP server in a separate goroutine
//  7. Block until an OS signal (Ctrl+C / kill) arrives
//  8. Gracefully shut down: finish in-flight requests, then exit
//
// RUNNING THE SERVER:
//
//	go run ./cmd/school-api --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/school-api
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/aanand-mishra/school-api/internal/config"
	"github.com/aanand-mishra/school-api/internal/http/server"
	"github.com/aanand-mishra/school-api/internal/metrics"
	"github.com/aanand-mishra/school-api/internal/ratelimit"
	"github.com/aanand-mishra/school-api/internal/service"
	"github.com/aanand-mishra/school-api/internal/storage"
	"github.com/aanand-mishra/school-api/internal/storage/postgres"
	"github.com/aanand-mishra/school-api/internal/storage/sqlite"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// The logger also becomes the slog default, which the handlers use.
	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting school-api",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// rootCtx is cancelled on SIGINT/SIGTERM.
	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ── 3. Initialise Storage ─────────────────────────────────────────────
	store, err := openStorage(rootCtx, cfg.Storage)
	if err != nil {
		log.Error("failed to initialise storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	log.Info("storage initialised", slog.String("driver", cfg.Storage.Driver))

	// ── 4. Services, Metrics, Rate Limiter ────────────────────────────────
	deps := server.Deps{
		Students: service.NewStudentService(store, log),
		Teachers: service.NewTeacherService(store, log),
		Logger:   log,
	}

	if cfg.Metrics.Enabled {
		deps.Metrics = metrics.New()
		deps.MetricsPath = cfg.Metrics.Path
	}

	if cfg.RateLimit.Enabled {
		limiter := ratelimit.New(ratelimit.Policy{
			Capacity:       cfg.RateLimit.Capacity,
			RefillTokens:   cfg.RateLimit.RefillTokens,
			RefillInterval: cfg.RateLimit.RefillInterval,
		}, ratelimit.WithIdleTTL(cfg.RateLimit.IdleTTL))
		limiter.StartJanitor(rootCtx, cfg.RateLimit.RefillInterval)

		stats, closeStats := setupStats(rootCtx, cfg.Redis, log)
		defer closeStats()

		deps.RateLimit = ratelimit.Middleware(ratelimit.Options{
			Limiter:            limiter,
			TrustXForwardedFor: cfg.RateLimit.TrustXForwardedFor,
			Stats:              stats,
			Metrics:            deps.Metrics,
			Logger:             log,
		})

		log.Info("rate limiter enabled",
			slog.Int("capacity", cfg.RateLimit.Capacity),
			slog.Int("refill_tokens", cfg.RateLimit.RefillTokens),
			slog.Duration("refill_interval", cfg.RateLimit.RefillInterval),
		)
	}

	// ── 5. Create the HTTP Server ─────────────────────────────────────────
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      server.NewHandler(deps),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// ── 6. Start Server in a Goroutine ────────────────────────────────────
	// ListenAndServe returns http.ErrServerClosed once Shutdown is called.
	serverErr := make(chan error, 1)
	go func() {
		log.Info("server started", slog.String("address", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// ── 7. Wait for Shutdown Signal ───────────────────────────────────────
	select {
	case <-rootCtx.Done():
		log.Info("shutdown signal received, stopping server...")
	case err := <-serverErr:
		log.Error("server encountered an error", slog.String("error", err.Error()))
	}

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully", slog.String("error", err.Error()))
		return
	}

	log.Info("server stopped gracefully")
}

// openStorage opens the backend named by cfg.Driver. Both backends create
// their tables on first use.
func openStorage(ctx context.Context, cfg config.Storage) (storage.Storage, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.New(ctx, cfg.DSN)
	case config.DriverSQLite:
		// The directory for the .db file may not exist on a fresh checkout.
		if dir := filepath.Dir(cfg.Path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create storage dir: %w", err)
			}
		}
		return sqlite.New(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// setupStats returns the rate limit statistics store: Redis when an address
// is configured and reachable, in-memory otherwise.
func setupStats(ctx context.Context, cfg config.Redis, log *slog.Logger) (ratelimit.StatsStore, func()) {
	if cfg.Addr == "" {
		return ratelimit.NewMemoryStats(), func() {}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, keeping rate limit stats in memory",
			slog.String("addr", cfg.Addr),
			slog.String("error", err.Error()),
		)
		_ = rdb.Close()
		return ratelimit.NewMemoryStats(), func() {}
	}

	log.Info("rate limit stats stored in redis", slog.String("addr", cfg.Addr))
	return ratelimit.NewRedisStats(rdb, cfg.StatsPrefix, 0), func() { _ = rdb.Close() }
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
