package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/incident-ops/rcad/pkg/database"
	"github.com/incident-ops/rcad/pkg/version"
)

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// ReadinessChecks holds the per-dependency readiness results.
type ReadinessChecks struct {
	Database bool `json:"database"`
	Loki     bool `json:"loki"`
	Cortex   bool `json:"cortex"`
	LLM      bool `json:"llm"`
}

// ReadinessResponse is the readiness payload.
type ReadinessResponse struct {
	Ready  bool            `json:"ready"`
	Checks ReadinessChecks `json:"checks"`
}

// health handles GET /health.
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:        "healthy",
		Version:       version.Full(),
		UptimeSeconds: int64(time.Since(s.startedAt).Seconds()),
	})
}

// ready handles GET /health/ready. Each dependency is checked independently;
// any failure turns the whole response into a 503.
func (s *Server) ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := ReadinessChecks{
		Loki:   s.loki.Ready(ctx),
		Cortex: s.cortex.Ready(ctx),
		LLM:    s.llmReady,
	}
	if _, err := database.Health(ctx, s.db.DB()); err == nil {
		checks.Database = true
	}

	resp := ReadinessResponse{
		Ready:  checks.Database && checks.Loki && checks.Cortex && checks.LLM,
		Checks: checks,
	}
	status := http.StatusOK
	if !resp.Ready {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}
