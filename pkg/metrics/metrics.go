// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AlertsReceived counts every alert seen in webhook payloads.
	AlertsReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rcad_alerts_received_total",
		Help: "Total alerts received from Alertmanager webhooks.",
	})

	// AlertsDeduplicated counts alerts dropped as exact duplicates.
	AlertsDeduplicated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rcad_alerts_deduplicated_total",
		Help: "Total alerts ignored because their fingerprint and status already exist.",
	})

	// IncidentsCreated counts newly opened incidents.
	IncidentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rcad_incidents_created_total",
		Help: "Total incidents created by correlation.",
	})

	// RCARuns counts completed analysis runs by outcome (success, failure).
	RCARuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rcad_rca_runs_total",
		Help: "Total RCA agent runs by outcome.",
	}, []string{"outcome"})

	// RCADuration observes end-to-end analysis latency.
	RCADuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "rcad_rca_duration_seconds",
		Help:    "RCA agent run duration in seconds.",
		Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
	})

	// LLMTokens counts tokens consumed, labeled by provider.
	LLMTokens = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rcad_llm_tokens_total",
		Help: "Total LLM tokens consumed by the agent and correlator.",
	}, []string{"provider"})
)
