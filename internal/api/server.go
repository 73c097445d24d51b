package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/channeled/backend/internal/api/handlers"
	"github.com/channeled/backend/internal/api/middleware"
	"github.com/channeled/backend/internal/config"
	"github.com/channeled/backend/internal/services/tmdb"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Server represents the HTTP server
type Server struct {
	server  *http.Server
	service *tmdb.Service
	logger  *logrus.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, service *tmdb.Service, logger *logrus.Logger) *Server {
	s := &Server{
		service: service,
		logger:  logger,
	}

	mux := http.NewServeMux()
	s.setupRoutes(mux)

	s.server = &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      middleware.Logging(mux, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(mux *http.ServeMux) {
	// Health check
	healthHandler := handlers.NewHealthHandler(s.logger)
	mux.HandleFunc("/health", healthHandler.ServeHTTP)

	// Search and trending
	searchHandler := handlers.NewSearchHandler(s.service, s.logger)
	mux.HandleFunc("/api/search/tmdb", searchHandler.ServeHTTP)

	// Single-item details, /api/search/tmdb/{id}
	detailsHandler := handlers.NewDetailsHandler(s.service, s.logger)
	mux.HandleFunc("/api/search/tmdb/", detailsHandler.ServeHTTP)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	// Everything else is a JSON 404
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":"Not found"}`)
	})
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	s.logger.WithField("addr", s.server.Addr).Info("Starting HTTP server")

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}
