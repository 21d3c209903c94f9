package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/cinelog/cinelog-backend/internal/domain"
)

// catalogReader defines the minimal interface for readiness checks.
type catalogReader interface {
	ListMovies(ctx context.Context) []*domain.Movie
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	catalog catalogReader
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(catalog catalogReader, version string) *HealthHandler {
	return &HealthHandler{catalog: catalog, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. 200 once the catalogue is populated, 503
// before that.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if len(h.catalog.ListMovies(r.Context())) == 0 {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check. Reports the catalogue size and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := make(map[string]CompStatus)
	overallStatus := "ok"

	movies := h.catalog.ListMovies(r.Context())
	if len(movies) == 0 {
		components["catalog"] = CompStatus{Status: "down", Detail: "no movies loaded"}
		overallStatus = "down"
	} else {
		components["catalog"] = CompStatus{
			Status: "ok",
			Detail: strconv.Itoa(len(movies)) + " movies",
		}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
