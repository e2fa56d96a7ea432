package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atlasbio/atlas/internal/adapters/http/api"
	service "github.com/atlasbio/atlas/internal/app"
	"github.com/atlasbio/atlas/internal/config"
	"github.com/atlasbio/atlas/internal/domain/ratelimit"
	"github.com/atlasbio/atlas/pkg/logger"
	"github.com/atlasbio/atlas/pkg/metrics"

	"github.com/joho/godotenv"
)

// HTTP server timeout constants.
const (
	readTimeout          = 10 * time.Second
	writeTimeout         = 30 * time.Second
	idleTimeout          = 60 * time.Second
	readHeaderTimeout    = 5 * time.Second
	shutdownTimeout      = 30 * time.Second
	stateMetricsInterval = 10 * time.Second
)

func main() {
	// Optional .env file for local development; env vars win on conflict
	_ = godotenv.Load()

	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	log.Info(ctx, "starting Atlas backend server",
		logger.Int("rate_limit", cfg.RateLimit),
		logger.Int("rate_limit_window_seconds", cfg.RateLimitWindowSeconds),
		logger.Bool("mock_mode", cfg.MockMode),
		logger.Bool("fmp_key_configured", cfg.FMPAPIKey != ""))

	// Core service wiring
	svc := service.New(cfg.FMPAPIKey,
		service.WithLogger(log.Named("service")),
		service.WithMockMode(cfg.MockMode),
	)

	limiter := ratelimit.New(cfg.RateLimit,
		time.Duration(cfg.RateLimitWindowSeconds)*time.Second,
		ratelimit.WithMaxClients(cfg.RateLimitMaxClients),
	)

	// HTTP mux and routes.
	mux := http.NewServeMux()
	apiServer := api.NewServer(svc)
	apiServer.Register(ctx, mux)

	// Every route sits behind request-id, CORS and the rate limiter.
	var handler http.Handler = mux
	handler = api.RateLimitMiddleware(limiter, handler)
	handler = api.CORSMiddleware(cfg.FrontendOrigin, handler)
	handler = api.RequestIDMiddleware(handler)

	// Start state metrics updater
	go startStateMetricsUpdater(ctx, svc, limiter)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// startStateMetricsUpdater periodically refreshes the state gauges.
func startStateMetricsUpdater(ctx context.Context, svc *service.Service, limiter *ratelimit.Limiter) {
	ticker := time.NewTicker(stateMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := svc.GetStats()
			if count, ok := stats["companyCount"].(int); ok {
				metrics.UpdateCompanyCount(count)
			}
			metrics.UpdateRateLimitClients(limiter.Clients())
		}
	}
}
