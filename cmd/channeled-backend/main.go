package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/channeled/backend/internal/api"
	"github.com/channeled/backend/internal/cache"
	"github.com/channeled/backend/internal/config"
	"github.com/channeled/backend/internal/logging"
	"github.com/channeled/backend/internal/metrics"
	"github.com/channeled/backend/internal/scheduler"
	"github.com/channeled/backend/internal/services/tmdb"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Setup logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("Starting Channeled backend")

	// 3. Initialize cache store
	var store cache.Store
	switch cfg.CacheBackend {
	case "memory":
		store = cache.NewMemoryStore()
		logger.Info("Using in-memory cache")
	default:
		store = cache.NewRedisStore(cfg.RedisAddr, logger)
	}

	// 4. Initialize metrics and TMDB service
	m := metrics.New(prometheus.DefaultRegisterer)
	client := tmdb.NewClient(cfg.TMDBAPIKey, m, logger)
	service := tmdb.NewService(client, store, m, logger)
	logger.Info("TMDB service initialized")

	// 5. Initialize scheduler
	sched := scheduler.NewScheduler(service, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	// 6. Initialize HTTP server
	server := api.NewServer(cfg, service, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverErrChan := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil {
			serverErrChan <- err
		}
	}()

	// 7. Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	logger.Info("Channeled backend is running")

	select {
	case err := <-serverErrChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		logger.WithField("signal", sig).Info("Received shutdown signal")
		cancel()
		if err := server.Shutdown(context.Background()); err != nil {
			logger.WithError(err).Error("Error during server shutdown")
		}
	}

	logger.Info("Channeled backend stopped")
	return nil
}
