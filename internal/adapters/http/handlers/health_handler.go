package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/process-service/internal/platform/logging"
	"github.com/jsamuelsen11/process-service/internal/ports"
)

// readinessTimeout caps one readiness check, so a hung store answers
// not ready instead of stalling the orchestrator.
const readinessTimeout = 2 * time.Second

// HealthResponse is the body of both health endpoints. Checks is only set by the
// readiness endpoint and maps each dependency to "ok" or "unavailable".
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler returns a HealthHandler over registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process is alive whenever it can
// answer.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readiness handles GET /health/ready: 200 when every dependency is
// healthy, 503 otherwise. Failure details go to the log, not the body.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ready", Checks: map[string]string{}}
	code := http.StatusOK

	for name, err := range h.registry.CheckAll(ctx) {
		if err == nil {
			resp.Checks[name] = "ok"
			continue
		}
		resp.Checks[name] = "unavailable"
		resp.Status = "not_ready"
		code = http.StatusServiceUnavailable
		logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
			slog.String("check", name),
			slog.Any("error", err),
		)
	}

	writeJSON(w, code, resp)
}
