package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/channeled/backend/internal/cache"
	"github.com/channeled/backend/internal/metrics"
	"github.com/channeled/backend/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	searchTTL   = 1800 * time.Second
	trendingTTL = 3600 * time.Second
	detailsTTL  = 86400 * time.Second

	// Each category contributes at most this many list items per response.
	// Provider relevance ordering is preserved, never re-sorted.
	maxPerCategory = 5

	minQueryLength = 2
)

// Upstream is the subset of the TMDB client the aggregation service
// depends on, extracted so tests can substitute a double
type Upstream interface {
	SearchMovies(ctx context.Context, query string) ([]MovieResult, error)
	SearchSeries(ctx context.Context, query string) ([]SeriesResult, error)
	TrendingMovies(ctx context.Context, window string) ([]MovieResult, error)
	TrendingSeries(ctx context.Context, window string) ([]SeriesResult, error)
	MovieDetails(ctx context.Context, id int) (*MovieDetail, error)
	SeriesDetails(ctx context.Context, id int) (*SeriesDetail, error)
}

// Service aggregates TMDB results across the movie and series categories
// behind a read-through cache. Cache values are the serialized result
// JSON, so repeated calls inside a TTL replay the identical payload.
//
// Concurrent misses for one key may each fetch and each write; values are
// idempotent, so last write wins and no single-flight guard is kept.
type Service struct {
	upstream Upstream
	store    cache.Store
	metrics  *metrics.Metrics
	logger   *logrus.Logger
}

// NewService creates a new aggregation service
func NewService(upstream Upstream, store cache.Store, m *metrics.Metrics, logger *logrus.Logger) *Service {
	return &Service{
		upstream: upstream,
		store:    store,
		metrics:  m,
		logger:   logger,
	}
}

// Search looks up the query in both categories concurrently and merges the
// results, movies first. Queries shorter than two characters after trimming
// return an empty list without touching the upstream. If either category
// fetch fails the whole operation fails; a failed search must stay
// distinguishable from a genuinely empty one.
func (s *Service) Search(ctx context.Context, query string) ([]models.Show, error) {
	trimmed := strings.TrimSpace(query)
	if len(trimmed) < minQueryLength {
		return []models.Show{}, nil
	}

	key := "tmdb:search:" + strings.ToLower(trimmed)
	if cached, ok := s.cachedList(ctx, key, "search"); ok {
		return cached, nil
	}

	var (
		wg        sync.WaitGroup
		movies    []MovieResult
		series    []SeriesResult
		movieErr  error
		seriesErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		movies, movieErr = s.upstream.SearchMovies(ctx, trimmed)
	}()
	go func() {
		defer wg.Done()
		series, seriesErr = s.upstream.SearchSeries(ctx, trimmed)
	}()
	wg.Wait()

	if movieErr != nil {
		return nil, movieErr
	}
	if seriesErr != nil {
		return nil, seriesErr
	}

	results := mergeListItems(movies, series, true)
	s.storeList(ctx, key, results, searchTTL)
	return results, nil
}

// Trending returns the trending list for a day or week window, defaulting
// to week. Trending is a discovery feature, so any upstream failure
// collapses to an empty list rather than an error; a partial single-category
// list is never returned.
func (s *Service) Trending(ctx context.Context, window string) ([]models.Show, error) {
	if window != "day" {
		window = "week"
	}

	key := "tmdb:trending:" + window
	if cached, ok := s.cachedList(ctx, key, "trending"); ok {
		return cached, nil
	}

	var (
		wg        sync.WaitGroup
		movies    []MovieResult
		series    []SeriesResult
		movieErr  error
		seriesErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		movies, movieErr = s.upstream.TrendingMovies(ctx, window)
	}()
	go func() {
		defer wg.Done()
		series, seriesErr = s.upstream.TrendingSeries(ctx, window)
	}()
	wg.Wait()

	if movieErr != nil || seriesErr != nil {
		s.logger.WithFields(logrus.Fields{
			"window":     window,
			"movie_err":  movieErr,
			"series_err": seriesErr,
		}).Warn("Trending fetch failed, returning empty list")
		return []models.Show{}, nil
	}

	results := mergeListItems(movies, series, false)
	s.storeList(ctx, key, results, trendingTTL)
	return results, nil
}

// Details returns the full record for one item, or nil when the upstream
// reports a failure. A genuine 404 and an outage look the same to the
// caller; only the log line tells them apart.
func (s *Service) Details(ctx context.Context, id int, mediaType models.MediaType) (*models.Show, error) {
	key := fmt.Sprintf("tmdb:details:%s:%d", mediaType, id)
	if raw, ok := s.store.Get(ctx, key); ok {
		var show models.Show
		if err := json.Unmarshal(raw, &show); err == nil {
			s.countCache("details", true)
			return &show, nil
		}
		s.logger.WithField("key", key).Warn("Discarding undecodable cache entry")
	}
	s.countCache("details", false)

	var show models.Show
	switch mediaType {
	case models.MediaTypeMovie:
		detail, err := s.upstream.MovieDetails(ctx, id)
		if err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"id":   id,
				"type": mediaType,
			}).Warn("Details fetch failed")
			return nil, nil
		}
		show = normalizeMovieDetail(detail)
	case models.MediaTypeSeries:
		detail, err := s.upstream.SeriesDetails(ctx, id)
		if err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"id":   id,
				"type": mediaType,
			}).Warn("Details fetch failed")
			return nil, nil
		}
		show = normalizeSeriesDetail(detail)
	default:
		return nil, fmt.Errorf("unknown media type %q", mediaType)
	}

	if data, err := json.Marshal(show); err == nil {
		s.store.Set(ctx, key, data, detailsTTL)
	}
	return &show, nil
}

// mergeListItems normalizes and merges the two category lists, movies
// before series, truncating each category to maxPerCategory. The adult
// rating heuristic applies to search results only, so trending callers
// pass withAdultRating false.
func mergeListItems(movies []MovieResult, series []SeriesResult, withAdultRating bool) []models.Show {
	if len(movies) > maxPerCategory {
		movies = movies[:maxPerCategory]
	}
	if len(series) > maxPerCategory {
		series = series[:maxPerCategory]
	}

	results := make([]models.Show, 0, len(movies)+len(series))
	for _, m := range movies {
		results = append(results, normalizeMovieItem(m, withAdultRating))
	}
	for _, t := range series {
		results = append(results, normalizeSeriesItem(t))
	}
	return results
}

func (s *Service) cachedList(ctx context.Context, key, operation string) ([]models.Show, bool) {
	raw, ok := s.store.Get(ctx, key)
	if !ok {
		s.countCache(operation, false)
		return nil, false
	}

	var shows []models.Show
	if err := json.Unmarshal(raw, &shows); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Discarding undecodable cache entry")
		s.countCache(operation, false)
		return nil, false
	}

	s.countCache(operation, true)
	return shows, true
}

func (s *Service) storeList(ctx context.Context, key string, shows []models.Show, ttl time.Duration) {
	data, err := json.Marshal(shows)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Failed to serialize cache entry")
		return
	}
	s.store.Set(ctx, key, data, ttl)
}

func (s *Service) countCache(operation string, hit bool) {
	if s.metrics == nil {
		return
	}
	if hit {
		s.metrics.CacheHits.WithLabelValues(operation).Inc()
	} else {
		s.metrics.CacheMisses.WithLabelValues(operation).Inc()
	}
}
