package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/IdleRealms_Go/internal/database"
	"github.com/osse101/IdleRealms_Go/internal/logger"
)

const readinessTimeout = 2 * time.Second

const (
	healthStatusOK          = "ok"
	healthStatusUnavailable = "unavailable"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ReadinessCheck is one dependency probed by /readyz
type ReadinessCheck struct {
	Name  string
	Probe func(ctx context.Context) error
}

// DatabaseCheck pings the postgres pool
func DatabaseCheck(pool database.Pool) ReadinessCheck {
	return ReadinessCheck{Name: "database", Probe: pool.Ping}
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: healthStatusOK})
	}
}

// HandleReadyz runs every check and reports 503 if any of them fails.
// Optional integrations (redis) only appear when they are configured.
// @Summary Readiness check
// @Description Returns OK when the database and configured integrations answer
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(checks ...ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		resp := HealthResponse{Status: healthStatusOK, Checks: make(map[string]string, len(checks))}
		for _, c := range checks {
			if err := c.Probe(ctx); err != nil {
				logger.FromContext(ctx).Error("Readiness check failed", "check", c.Name, "error", err)
				resp.Checks[c.Name] = healthStatusUnavailable
				resp.Status = healthStatusUnavailable
				continue
			}
			resp.Checks[c.Name] = healthStatusOK
		}

		status := http.StatusOK
		if resp.Status != healthStatusOK {
			status = http.StatusServiceUnavailable
		}
		respondJSON(w, status, resp)
	}
}
