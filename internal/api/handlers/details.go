package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/channeled/backend/internal/models"
	"github.com/channeled/backend/internal/services/tmdb"
	"github.com/sirupsen/logrus"
)

// DetailsHandler handles single-item detail lookups
type DetailsHandler struct {
	service *tmdb.Service
	logger  *logrus.Logger
}

// NewDetailsHandler creates a new details handler
func NewDetailsHandler(service *tmdb.Service, logger *logrus.Logger) *DetailsHandler {
	return &DetailsHandler{
		service: service,
		logger:  logger,
	}
}

// DetailResponse wraps a single unified result
type DetailResponse struct {
	Result *models.Show `json:"result"`
}

// ServeHTTP handles GET /api/search/tmdb/{id}?type=movie|series
func (h *DetailsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/search/tmdb/")
	if idStr == "" || strings.Contains(idStr, "/") {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	mediaType := models.MediaType(r.URL.Query().Get("type"))
	if !mediaType.Valid() {
		writeError(w, http.StatusBadRequest, `Query parameter "type" must be "movie" or "series"`)
		return
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid TMDB ID")
		return
	}

	show, err := h.service.Details(r.Context(), id, mediaType)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Details lookup failed")
		writeError(w, http.StatusInternalServerError, "Failed to fetch show details")
		return
	}
	if show == nil {
		writeError(w, http.StatusNotFound, "Show not found")
		return
	}

	writeJSON(w, http.StatusOK, DetailResponse{Result: show})
}
