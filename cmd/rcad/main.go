// rcad server — ingests Alertmanager webhooks, correlates alerts into
// incidents, and runs automated root-cause analysis against Loki and Cortex.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/incident-ops/rcad/pkg/agent"
	"github.com/incident-ops/rcad/pkg/api"
	"github.com/incident-ops/rcad/pkg/cache"
	"github.com/incident-ops/rcad/pkg/config"
	"github.com/incident-ops/rcad/pkg/correlation"
	"github.com/incident-ops/rcad/pkg/cortex"
	"github.com/incident-ops/rcad/pkg/database"
	"github.com/incident-ops/rcad/pkg/llm"
	"github.com/incident-ops/rcad/pkg/loki"
	"github.com/incident-ops/rcad/pkg/services"
	"github.com/incident-ops/rcad/pkg/version"
)

func main() {
	// Load .env before reading any configuration
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using existing environment")
	}

	settings, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	setupLogging(settings)

	slog.Info("Starting rcad",
		"version", version.Full(),
		"host", settings.Host,
		"port", settings.Port,
		"llm_provider", settings.LLMProvider)

	ctx := context.Background()

	// 1. Database (migrations apply on connect)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 2. Domain services
	alertService := services.NewAlertService(dbClient.Client)
	incidentService := services.NewIncidentService(dbClient.Client)
	reportService := services.NewReportService(dbClient.Client)

	// 3. Recover incidents stranded in analyzing by a previous crash
	if ids, err := incidentService.ResetStuck(ctx); err != nil {
		slog.Error("Failed to reset stuck incidents", "error", err)
		// Non-fatal — continue
	} else if len(ids) > 0 {
		slog.Info("Reset stuck incidents from previous run", "count", len(ids))
	}

	// 4. Observability backends and query cache
	lokiClient := loki.NewClient(settings.LokiURL, settings.LokiTimeout)
	cortexClient := cortex.NewClient(settings.CortexURL, settings.CortexTimeout)
	queryCache := cache.New(settings.CacheMaxEntries, settings.CacheTTL)

	// 5. LLM provider. Failure is non-fatal: ingestion and correlation keep
	// working, analysis endpoints degrade until the provider is fixed.
	provider, err := llm.NewProvider(ctx, settings)
	if err != nil {
		slog.Warn("LLM provider unavailable, RCA analysis disabled", "error", err)
		provider = nil
	}

	// 6. Correlation engine, with semantic arbitration when a provider exists
	var semantic *correlation.SemanticCorrelator
	if provider != nil && settings.SemanticCorrelationEnabled {
		semantic = correlation.NewSemanticCorrelator(provider)
	}
	engine := correlation.NewEngine(dbClient.Client, semantic,
		settings.CorrelationWindow, settings.SemanticCorrelationEnabled)
	webhookService := services.NewWebhookService(alertService, incidentService, engine)

	// 7. RCA agent and background runner
	var runner *agent.Runner
	if provider != nil {
		expertContext, err := settings.ExpertContext()
		if err != nil {
			slog.Error("Failed to load expert context", "error", err)
			os.Exit(1)
		}
		tools := agent.NewToolset(lokiClient, cortexClient, queryCache)
		rcaAgent := agent.New(provider, tools, settings.RCAMaxIterations, expertContext)
		runner = agent.NewRunner(incidentService, reportService, rcaAgent)
	}

	// 8. HTTP server
	if !settings.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	server := api.NewServer(api.Config{
		DB:        dbClient,
		Alerts:    alertService,
		Incidents: incidentService,
		Reports:   reportService,
		Webhooks:  webhookService,
		Runner:    runner,
		Loki:      lokiClient,
		Cortex:    cortexClient,
		Cache:     queryCache,
		LLMReady:  provider != nil,
	})

	addr := fmt.Sprintf("%s:%d", settings.Host, settings.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	slog.Info("Shutdown complete")
}

// setupLogging installs the default slog handler at the configured level.
func setupLogging(settings *config.Settings) {
	var level slog.Level
	switch strings.ToLower(settings.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
