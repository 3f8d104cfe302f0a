package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 3 * time.Second

// HealthCheck is a named dependency check.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthResponse reports service health. Failed lists the dependencies that did not answer.
type HealthResponse struct {
	Status string   `json:"status" example:"healthy"`
	Failed []string `json:"failed,omitempty"`
}

type HealthHandler struct {
	checks []HealthCheck
	log    *slog.Logger
}

func NewHealthHandler(log *slog.Logger, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks, log: log}
}

// Check godoc
// @Summary Health check
// @Description Check the store and Redis connections
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	var failed []string
	for _, check := range h.checks {
		if err := check.Check(ctx); err != nil {
			h.log.Warn("health check failed", "component", check.Name, "error", err)
			failed = append(failed, check.Name)
		}
	}

	if len(failed) > 0 {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy", Failed: failed})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}
