package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/channeled/backend/internal/services/tmdb"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler keeps the trending caches warm. Trending entries expire after
// an hour; refreshing them on a schedule means interactive requests almost
// always hit cache instead of waiting on two upstream calls.
type Scheduler struct {
	cron    *cron.Cron
	service *tmdb.Service
	logger  *logrus.Logger
}

// NewScheduler creates a new scheduler
func NewScheduler(service *tmdb.Service, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		service: service,
		logger:  logger,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	s.logger.Info("Starting scheduler")

	// Every 30 minutes: refresh trending for both windows
	_, err := s.cron.AddFunc("*/30 * * * *", func() {
		s.refreshTrending()
	})
	if err != nil {
		return fmt.Errorf("failed to add trending refresh job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Scheduler started")

	// Warm the caches immediately on startup
	go s.refreshTrending()

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler")
	s.cron.Stop()
}

// refreshTrending executes the trending warm-up job. Failures are already
// absorbed by the service; a failed refresh just leaves the cache cold
// until the next run.
func (s *Scheduler) refreshTrending() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	for _, window := range []string{"day", "week"} {
		results, err := s.service.Trending(ctx, window)
		if err != nil {
			s.logger.WithError(err).WithField("window", window).Error("Trending refresh failed")
			continue
		}
		s.logger.WithFields(logrus.Fields{
			"window": window,
			"count":  len(results),
		}).Debug("Trending cache refreshed")
	}
}
