// Package api exposes the HTTP surface of the RCA service: the Alertmanager
// webhook, the read API for alerts, incidents, and reports, and the
// operational endpoints (health, metrics, admin).
package api

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/incident-ops/rcad/pkg/agent"
	"github.com/incident-ops/rcad/pkg/cache"
	"github.com/incident-ops/rcad/pkg/cortex"
	"github.com/incident-ops/rcad/pkg/database"
	"github.com/incident-ops/rcad/pkg/loki"
	"github.com/incident-ops/rcad/pkg/services"
)

// Server wires the service layer to HTTP handlers.
type Server struct {
	db        *database.Client
	alerts    *services.AlertService
	incidents *services.IncidentService
	reports   *services.ReportService
	webhooks  *services.WebhookService

	// runner is nil when no LLM provider is configured; ingestion still
	// works, analysis endpoints degrade.
	runner *agent.Runner

	loki     *loki.Client
	cortex   *cortex.Client
	cache    *cache.QueryCache
	llmReady bool

	startedAt time.Time
}

// Config carries the dependencies for NewServer.
type Config struct {
	DB        *database.Client
	Alerts    *services.AlertService
	Incidents *services.IncidentService
	Reports   *services.ReportService
	Webhooks  *services.WebhookService
	Runner    *agent.Runner
	Loki      *loki.Client
	Cortex    *cortex.Client
	Cache     *cache.QueryCache
	LLMReady  bool
}

// NewServer creates the API server. Runner may be nil; everything else is
// required.
func NewServer(cfg Config) *Server {
	if cfg.DB == nil {
		panic("NewServer: db must not be nil")
	}
	if cfg.Alerts == nil || cfg.Incidents == nil || cfg.Reports == nil || cfg.Webhooks == nil {
		panic("NewServer: services must not be nil")
	}
	if cfg.Loki == nil || cfg.Cortex == nil {
		panic("NewServer: backend clients must not be nil")
	}
	if cfg.Cache == nil {
		panic("NewServer: cache must not be nil")
	}
	return &Server{
		db:        cfg.DB,
		alerts:    cfg.Alerts,
		incidents: cfg.Incidents,
		reports:   cfg.Reports,
		webhooks:  cfg.Webhooks,
		runner:    cfg.Runner,
		loki:      cfg.Loki,
		cortex:    cfg.Cortex,
		cache:     cfg.Cache,
		llmReady:  cfg.LLMReady,
		startedAt: time.Now(),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/health", s.health)
	r.GET("/health/ready", s.ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/webhooks/alertmanager", s.alertmanagerWebhook)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/alerts", s.listAlerts)
		v1.GET("/alerts/:id", s.getAlert)

		v1.GET("/incidents", s.listIncidents)
		v1.GET("/incidents/:id", s.getIncident)
		v1.GET("/incidents/:id/alerts", s.listIncidentAlerts)
		v1.GET("/incidents/:id/report", s.getIncidentReport)
		v1.PATCH("/incidents/:id/status", s.updateIncidentStatus)
		v1.POST("/incidents/:id/correlate", s.correlateIncident)
		v1.POST("/incidents/:id/analyze", s.analyzeIncident)

		v1.GET("/reports", s.listReports)
		v1.GET("/reports/:id", s.getReport)
		v1.GET("/reports/:id/export", s.exportReport)

		v1.GET("/cache/stats", s.cacheStats)
		v1.POST("/admin/incidents/reset-stuck", s.resetStuck)
	}

	return r
}

// requestLogger logs each request with method, path, status, and latency.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if status >= 500 {
			slog.Error("Request failed", attrs...)
		} else {
			slog.Debug("Request handled", attrs...)
		}
	}
}
