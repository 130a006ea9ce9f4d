package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	v1 "github.com/vmunix/marquee/internal/api/v1"
	"github.com/vmunix/marquee/internal/catalog"
	"github.com/vmunix/marquee/internal/config"
	"github.com/vmunix/marquee/internal/status"
)

const defaultWarmInterval = 25 * time.Minute

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(cfg config.ServerConfig) *slog.Logger {
	var out io.Writer = os.Stdout
	if cfg.LogFile != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSizeMB,
			MaxBackups: cfg.LogMaxBackups,
		}
		out = io.MultiWriter(os.Stdout, rotating)
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 200 { // Only capture first WriteHeader call
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: 200}
		next.ServeHTTP(wrapped, r)
		log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func runServer(configPath string) error {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := newLogger(cfg.Server)

	// Upstream catalog client
	client := catalog.NewClient(cfg.Catalog.APIKey,
		catalog.WithBaseURL(cfg.Catalog.URL),
		catalog.WithLogger(logger),
	)

	// One resolver per process; every surface shares its caches.
	resolver := status.New(client, status.Config{
		Region: cfg.Catalog.Region,
		Thresholds: status.Thresholds{
			RerunThresholdDays: cfg.Status.RerunThresholdDays,
			NowWindowDays:      cfg.Status.NowWindowDays,
		},
		RerunMinGapMonths: cfg.Status.RerunMinGapMonths,
		ScreeningTTL:      cfg.Cache.ScreeningTTL,
		RerunTTL:          cfg.Cache.RerunTTL,
		RerunFailureTTL:   cfg.Cache.RerunFailureTTL,
		SeasonTTL:         cfg.Cache.SeasonTTL,
		MetaTTL:           cfg.Cache.MetaTTL,
		MetaFailureTTL:    cfg.Cache.MetaFailureTTL,
	}, logger.With("component", "status"))

	// === Background Jobs ===
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	warmInterval := cfg.Cache.ScreeningWarmInterval
	if warmInterval <= 0 {
		warmInterval = defaultWarmInterval
	}
	go runWarmer(ctx, resolver, warmInterval, logger.With("component", "warmer"))

	// === HTTP Setup ===
	mux := http.NewServeMux()
	apiV1 := v1.New(resolver, version)
	apiV1.RegisterRoutes(mux)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting",
		"addr", addr,
		"catalog", cfg.Catalog.URL,
		"region", cfg.Catalog.Region,
		"log_level", cfg.Server.LogLevel,
	)

	srv := &http.Server{Addr: addr, Handler: logRequests(mux, logger)}

	// Start server in goroutine
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received signal, shutting down", "signal", sig.String())

	// Stop the warmer
	cancel()

	// Graceful HTTP shutdown with 30s timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// runWarmer keeps the screening snapshot hot so card reads rarely pay for a
// full ten-page rebuild. Resolution is still read-driven; this only front-
// runs the TTL.
func runWarmer(ctx context.Context, resolver *status.Resolver, interval time.Duration, log *slog.Logger) {
	warm := func() {
		if _, err := resolver.Screening(ctx); err != nil {
			log.Warn("screening warm failed", "error", err)
		}
	}
	warm()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("warmer started", "interval", interval.String())
	for {
		select {
		case <-ctx.Done():
			log.Info("warmer stopped")
			return
		case <-ticker.C:
			warm()
		}
	}
}
