package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/SpinVault_Go/internal/logger"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Pinger is anything that can report whether its backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
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
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// HandleReadyz reports ready once the store answers a ping
// @Summary Readiness check
// @Description Returns OK once the state store answers a ping
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeoutSeconds*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			logger.FromContext(ctx).Error(LogMsgReadinessFailed, LogFieldError, err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  HealthStatusUnavailable,
				Message: HealthMsgStoreFailed,
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}
