package handlers

import (
	"net/http"

	"github.com/channeled/backend/internal/models"
	"github.com/channeled/backend/internal/services/tmdb"
	"github.com/sirupsen/logrus"
)

// SearchHandler handles search and trending requests
type SearchHandler struct {
	service *tmdb.Service
	logger  *logrus.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(service *tmdb.Service, logger *logrus.Logger) *SearchHandler {
	return &SearchHandler{
		service: service,
		logger:  logger,
	}
}

// SearchResponse wraps a list of unified results
type SearchResponse struct {
	Results []models.Show `json:"results"`
}

// ServeHTTP handles GET /api/search/tmdb. With trending=day|week it returns
// the trending listing, otherwise it performs a free-text search on q.
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if window := r.URL.Query().Get("trending"); window == "day" || window == "week" {
		results, err := h.service.Trending(r.Context(), window)
		if err != nil {
			h.logger.WithError(err).Error("Trending lookup failed")
			writeError(w, http.StatusInternalServerError, "Failed to fetch trending shows")
			return
		}
		writeJSON(w, http.StatusOK, SearchResponse{Results: results})
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, `Query parameter "q" is required`)
		return
	}

	results, err := h.service.Search(r.Context(), query)
	if err != nil {
		h.logger.WithError(err).WithField("query", query).Error("Search failed")
		writeError(w, http.StatusInternalServerError, "Failed to search shows")
		return
	}

	writeJSON(w, http.StatusOK, SearchResponse{Results: results})
}
