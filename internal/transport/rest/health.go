package rest

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	version  string
	provider string
}

// NewHealthHandler creates a HealthHandler. provider is the configured
// completion API name, reported on /health.
func NewHealthHandler(version, provider string) *HealthHandler {
	return &HealthHandler{version: version, provider: provider}
}

// HealthResponse is the JSON response for /live and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status   string `json:"status"`
	Provider string `json:"provider,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health reports the version and the configured completion provider. The
// upstream API is not called: probing it would cost tokens.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := map[string]CompStatus{
		"completion": {Status: "configured", Provider: h.provider},
	}
	if h.provider == "" {
		components["completion"] = CompStatus{Status: "missing"}
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:     "down",
			Version:    h.version,
			Components: components,
			Timestamp:  time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:     "ok",
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

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
