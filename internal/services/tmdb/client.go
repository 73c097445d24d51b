package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/channeled/backend/internal/metrics"
	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	imageBaseURL   = "https://image.tmdb.org/t/p"
)

// UpstreamError reports a failed TMDB request. Status is the HTTP status
// code, or 0 when the failure happened before or after the HTTP exchange
// (transport error, malformed response body). Requests are never retried
// here; retry policy belongs to the caller.
type UpstreamError struct {
	Status int
	Path   string
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("tmdb: %s returned status %d", e.Path, e.Status)
	}
	return fmt.Sprintf("tmdb: %s: %v", e.Path, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Client wraps direct TMDB API HTTP calls
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	metrics    *metrics.Metrics
	logger     *logrus.Logger
}

// NewClient creates a new TMDB API client
func NewClient(apiKey string, m *metrics.Metrics, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		metrics: m,
		logger:  logger,
	}
}

// get performs an authenticated GET against the TMDB API and decodes the
// JSON response into result. Every failure mode comes back as
// *UpstreamError so callers apply one policy to all of them.
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	fullURL := c.baseURL + path + "?" + params.Encode()
	c.logger.WithField("path", path).Debug("Making TMDB API request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.countRequest(path, "transport_error")
		return &UpstreamError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		c.countRequest(path, "http_"+strconv.Itoa(resp.StatusCode))
		return &UpstreamError{Status: resp.StatusCode, Path: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		c.countRequest(path, "decode_error")
		return &UpstreamError{Path: path, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	c.countRequest(path, "ok")
	return nil
}

func (c *Client) countRequest(path, outcome string) {
	if c.metrics != nil {
		c.metrics.UpstreamRequests.WithLabelValues(path, outcome).Inc()
	}
}

// SearchMovies performs a keyword search against the movie category
func (c *Client) SearchMovies(ctx context.Context, query string) ([]MovieResult, error) {
	params := url.Values{}
	params.Set("query", query)

	var resp movieListResponse
	if err := c.get(ctx, "/search/movie", params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// SearchSeries performs a keyword search against the TV category
func (c *Client) SearchSeries(ctx context.Context, query string) ([]SeriesResult, error) {
	params := url.Values{}
	params.Set("query", query)

	var resp seriesListResponse
	if err := c.get(ctx, "/search/tv", params, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// TrendingMovies fetches trending movies for a day or week window
func (c *Client) TrendingMovies(ctx context.Context, window string) ([]MovieResult, error) {
	var resp movieListResponse
	if err := c.get(ctx, "/trending/movie/"+window, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// TrendingSeries fetches trending TV shows for a day or week window
func (c *Client) TrendingSeries(ctx context.Context, window string) ([]SeriesResult, error) {
	var resp seriesListResponse
	if err := c.get(ctx, "/trending/tv/"+window, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// MovieDetails fetches the full record for a single movie
func (c *Client) MovieDetails(ctx context.Context, id int) (*MovieDetail, error) {
	var detail MovieDetail
	if err := c.get(ctx, "/movie/"+strconv.Itoa(id), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// SeriesDetails fetches the full record for a single TV show
func (c *Client) SeriesDetails(ctx context.Context, id int) (*SeriesDetail, error) {
	var detail SeriesDetail
	if err := c.get(ctx, "/tv/"+strconv.Itoa(id), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}
