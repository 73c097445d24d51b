package tmdb

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestClient(baseURL string) *Client {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	client := NewClient("test-key", nil, logger)
	client.baseURL = baseURL
	return client
}

func TestClientAppendsAPIKey(t *testing.T) {
	var gotKey, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		gotQuery = r.URL.Query().Get("query")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"page":1,"results":[{"id":603,"title":"The Matrix","vote_average":8.2}]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	results, err := client.SearchMovies(context.Background(), "matrix")
	if err != nil {
		t.Fatalf("SearchMovies failed: %v", err)
	}

	if gotKey != "test-key" {
		t.Errorf("Expected api_key test-key, got %q", gotKey)
	}
	if gotQuery != "matrix" {
		t.Errorf("Expected query matrix, got %q", gotQuery)
	}
	if len(results) != 1 || results[0].ID != 603 || results[0].Title != "The Matrix" {
		t.Errorf("Unexpected results: %+v", results)
	}
}

func TestClientNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.TrendingMovies(context.Background(), "week")
	if err == nil {
		t.Fatal("Expected an error for a non-2xx response")
	}

	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("Expected *UpstreamError, got %T", err)
	}
	if upErr.Status != http.StatusBadGateway {
		t.Errorf("Expected status 502, got %d", upErr.Status)
	}
}

func TestClientMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.SeriesDetails(context.Background(), 1396)
	if err == nil {
		t.Fatal("Expected an error for a malformed body")
	}

	// Malformed JSON gets the same error type as an HTTP failure
	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("Expected *UpstreamError, got %T", err)
	}
	if upErr.Status != 0 {
		t.Errorf("Expected status 0 for a decode failure, got %d", upErr.Status)
	}
	if upErr.Unwrap() == nil {
		t.Error("Expected a wrapped decode cause")
	}
}

func TestClientSeriesDetailDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tv/1396" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1396,"name":"Breaking Bad","genres":[{"id":18,"name":"Drama"}],"episode_run_time":[45,47]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	detail, err := client.SeriesDetails(context.Background(), 1396)
	if err != nil {
		t.Fatalf("SeriesDetails failed: %v", err)
	}

	if detail.Name != "Breaking Bad" {
		t.Errorf("Name mismatch: %s", detail.Name)
	}
	if len(detail.EpisodeRunTime) != 2 {
		t.Errorf("Expected 2 episode runtimes, got %d", len(detail.EpisodeRunTime))
	}
	if len(detail.Genres) != 1 || detail.Genres[0].Name != "Drama" {
		t.Errorf("Unexpected genres: %+v", detail.Genres)
	}
}
