// Package agent runs automated root cause analysis over alerts and
// incidents by driving an LLM through log and metric queries until it
// produces a structured report.
package agent

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/incident-ops/rcad/pkg/cache"
	"github.com/incident-ops/rcad/pkg/cortex"
	"github.com/incident-ops/rcad/pkg/loki"
)

const (
	defaultLogLimit = 500
	maxLogLimit     = 2000

	// Payload caps keep tool results within a usable prompt size.
	maxLogPayload    = 200
	maxSeriesPayload = 20
	maxLogLineChars  = 2000
	maxDataPoints    = 100
)

var queryLokiTool = llmTool("query_loki",
	"Query logs from Loki using LogQL. Use this tool to retrieve relevant log entries "+
		"for alert analysis. Returns log lines with timestamps and labels.",
	map[string]any{
		"type": "object",
		"properties": map[string]any{
			"logql_query": map[string]any{
				"type": "string",
				"description": "LogQL query string. Examples:\n" +
					"- '{job=\"api\"}' - all logs from api job\n" +
					"- '{service=\"payment\"} |= \"error\"' - logs containing 'error'\n" +
					"- '{namespace=\"prod\"} |~ \"(ERROR|WARN)\"' - regex match\n" +
					"- '{app=\"web\"} | json | level=\"error\"' - JSON parsing",
			},
			"start_time": map[string]any{
				"type":        "string",
				"description": "ISO 8601 start time for log range (e.g., '2025-01-15T10:00:00Z')",
			},
			"end_time": map[string]any{
				"type":        "string",
				"description": "ISO 8601 end time for log range (e.g., '2025-01-15T10:30:00Z')",
			},
			"limit": map[string]any{
				"type":        "integer",
				"description": "Maximum number of log entries to return (default: 500, max: 2000)",
				"default":     500,
			},
		},
		"required": []string{"logql_query", "start_time", "end_time"},
	})

var queryCortexTool = llmTool("query_cortex",
	"Query metrics from Cortex using PromQL. Use this tool to retrieve metric data "+
		"for performance analysis. Returns time series data with labels and values.",
	map[string]any{
		"type": "object",
		"properties": map[string]any{
			"promql_query": map[string]any{
				"type": "string",
				"description": "PromQL query string. Examples:\n" +
					"- 'up{job=\"api\"}' - service availability\n" +
					"- 'rate(http_requests_total[5m])' - request rate\n" +
					"- 'histogram_quantile(0.95, rate(http_request_duration_seconds_bucket[5m]))' - p95 latency\n" +
					"- '100 * (1 - avg(rate(node_cpu_seconds_total{mode=\"idle\"}[5m])))' - CPU usage",
			},
			"start_time": map[string]any{
				"type":        "string",
				"description": "ISO 8601 start time for metric range (e.g., '2025-01-15T10:00:00Z')",
			},
			"end_time": map[string]any{
				"type":        "string",
				"description": "ISO 8601 end time for metric range (e.g., '2025-01-15T10:30:00Z')",
			},
			"step": map[string]any{
				"type":        "string",
				"description": "Query resolution step (default: '60s'). Use larger steps for longer time ranges.",
				"default":     "60s",
			},
		},
		"required": []string{"promql_query", "start_time", "end_time"},
	})

var generateReportTool = llmTool("generate_report",
	"Generate the final RCA report with root cause, confidence score, evidence, "+
		"and remediation steps. Call this tool when you have gathered enough information "+
		"to make a determination about the root cause.",
	map[string]any{
		"type": "object",
		"properties": map[string]any{
			"root_cause": map[string]any{
				"type": "string",
				"description": "Clear description of the identified root cause based on the evidence. " +
					"Be specific about what failed and why. Must be derived from the actual " +
					"logs and metrics you queried, not from examples.",
			},
			"confidence_score": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 100,
				"description": "Confidence level in the root cause analysis (0-100%). " +
					"100% = definitive evidence, 75% = strong indicators, " +
					"50% = likely but incomplete evidence, <50% = uncertain",
			},
			"summary": map[string]any{
				"type": "string",
				"description": "Executive summary (2-3 sentences) for quick understanding. " +
					"Include: what happened, impact, and resolution status.",
			},
			"timeline": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"timestamp": map[string]any{"type": "string", "description": "ISO 8601 timestamp"},
						"event":     map[string]any{"type": "string", "description": "What happened"},
						"source": map[string]any{
							"type":        "string",
							"enum":        []string{"alert", "log", "metric"},
							"description": "Event source",
						},
					},
					"required": []string{"timestamp", "event", "source"},
				},
				"description": "Chronological sequence of events leading to the incident",
			},
			"evidence": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"logs": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"timestamp": map[string]any{"type": "string"},
								"message":   map[string]any{"type": "string"},
								"labels":    map[string]any{"type": "object"},
							},
							"required": []string{"timestamp", "message"},
						},
						"description": "Key log entries supporting the analysis",
					},
					"metrics": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"name":      map[string]any{"type": "string"},
								"value":     map[string]any{"type": "number"},
								"timestamp": map[string]any{"type": "string"},
								"labels":    map[string]any{"type": "object"},
							},
							"required": []string{"name", "value", "timestamp"},
						},
						"description": "Key metrics supporting the analysis",
					},
				},
				"description": "Evidence from logs and metrics",
			},
			"remediation_steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"priority": map[string]any{
							"type":        "string",
							"enum":        []string{"immediate", "long_term"},
							"description": "Action urgency: 'immediate' for actions to take now, 'long_term' for preventive measures",
						},
						"action": map[string]any{
							"type":        "string",
							"description": "Concise action title (e.g., 'Restart the payment-api pod')",
						},
						"command": map[string]any{
							"type":        "string",
							"description": "Specific command to run (e.g., 'kubectl rollout restart deployment/payment-api -n prod')",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "Detailed explanation of why this action is needed and expected outcome",
						},
						"risk": map[string]any{
							"type":        "string",
							"enum":        []string{"low", "medium", "high"},
							"description": "Risk level: 'low' (safe), 'medium' (brief impact), 'high' (potential data loss/downtime)",
						},
					},
					"required": []string{"priority", "action"},
				},
				"description": "Steps to resolve the issue and prevent recurrence",
			},
		},
		"required": []string{"root_cause", "confidence_score", "summary", "remediation_steps"},
	})

// Toolset executes the agent's tools against the observability backends,
// caching query results.
type Toolset struct {
	loki   *loki.Client
	cortex *cortex.Client
	cache  *cache.QueryCache
}

// NewToolset creates a Toolset.
func NewToolset(lokiClient *loki.Client, cortexClient *cortex.Client, queryCache *cache.QueryCache) *Toolset {
	if lokiClient == nil {
		panic("NewToolset: lokiClient must not be nil")
	}
	if cortexClient == nil {
		panic("NewToolset: cortexClient must not be nil")
	}
	if queryCache == nil {
		panic("NewToolset: queryCache must not be nil")
	}
	return &Toolset{loki: lokiClient, cortex: cortexClient, cache: queryCache}
}

// Execute dispatches one normalized tool call and returns the result the
// model sees. Failures come back as {"success": false, "error": ...} rather
// than Go errors so the model can react to them.
func (t *Toolset) Execute(ctx context.Context, name string, args map[string]any) map[string]any {
	switch name {
	case "query_loki":
		return t.executeQueryLoki(ctx, args)
	case "query_cortex":
		return t.executeQueryCortex(ctx, args)
	case "generate_report":
		return executeGenerateReport(args)
	default:
		return map[string]any{"error": fmt.Sprintf("Unknown tool: %s", name)}
	}
}

func (t *Toolset) executeQueryLoki(ctx context.Context, args map[string]any) map[string]any {
	query := stringArg(args, "logql_query")
	if query == "" {
		return map[string]any{"success": false, "error": "logql_query is required"}
	}
	startStr := stringArg(args, "start_time")
	endStr := stringArg(args, "end_time")
	start, end, err := parseTimeRange(startStr, endStr)
	if err != nil {
		return map[string]any{"success": false, "error": err.Error(), "query": query}
	}

	limit := intArg(args, "limit", defaultLogLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > maxLogLimit {
		limit = maxLogLimit
	}

	key := cache.Key(query, startStr, endStr, map[string]string{"limit": strconv.Itoa(limit)})
	if cached, ok := t.cache.Get(cache.BackendLoki, key); ok {
		if out, ok := cached.(map[string]any); ok {
			return out
		}
	}

	result, err := t.loki.QueryRange(ctx, query, start, end, limit, "backward")
	if err != nil {
		return map[string]any{"success": false, "error": err.Error(), "query": query}
	}
	result = loki.SampleResults(result, maxLogPayload, loki.StrategyPriority)

	logs := flattenLogs(result)
	out := map[string]any{
		"success":       true,
		"query":         query,
		"time_range":    map[string]string{"start": startStr, "end": endStr},
		"result_count":  len(logs),
		"streams_count": len(result.Data.Result),
		"logs":          logs,
		"truncated":     result.Sampling != nil || len(logs) >= limit,
	}
	if result.Sampling != nil {
		out["sampling"] = result.Sampling
	}
	t.cache.Set(cache.BackendLoki, key, out, 0)
	return out
}

func (t *Toolset) executeQueryCortex(ctx context.Context, args map[string]any) map[string]any {
	query := stringArg(args, "promql_query")
	if query == "" {
		return map[string]any{"success": false, "error": "promql_query is required"}
	}
	startStr := stringArg(args, "start_time")
	endStr := stringArg(args, "end_time")
	start, end, err := parseTimeRange(startStr, endStr)
	if err != nil {
		return map[string]any{"success": false, "error": err.Error(), "query": query}
	}

	step := stringArg(args, "step")
	if step == "" {
		step = "60s"
	}

	key := cache.Key(query, startStr, endStr, map[string]string{"step": step})
	if cached, ok := t.cache.Get(cache.BackendCortex, key); ok {
		if out, ok := cached.(map[string]any); ok {
			return out
		}
	}

	result, err := t.cortex.RangeQuery(ctx, query, start, end, step)
	if err != nil {
		return map[string]any{"success": false, "error": err.Error(), "query": query}
	}
	result = cortex.AggregateResults(result, "avg", maxSeriesPayload)

	metrics := formatSeries(result)
	out := map[string]any{
		"success":      true,
		"query":        query,
		"time_range":   map[string]string{"start": startStr, "end": endStr},
		"step":         step,
		"series_count": len(result.Data.Result),
		"metrics":      metrics,
	}
	if result.Aggregation != nil {
		out["aggregation"] = result.Aggregation
	}
	t.cache.Set(cache.BackendCortex, key, out, 0)
	return out
}

// flattenLogs converts Loki streams into a newest-first flat log list, with
// long lines cut down to a readable size.
func flattenLogs(result *loki.QueryResult) []map[string]any {
	logs := make([]map[string]any, 0, result.TotalEntries())
	for _, stream := range result.Data.Result {
		for _, value := range stream.Values {
			ns, err := strconv.ParseInt(value[0], 10, 64)
			if err != nil {
				continue
			}
			message := value[1]
			if len(message) > maxLogLineChars {
				message = message[:maxLogLineChars] + "... [truncated]"
			}
			logs = append(logs, map[string]any{
				"timestamp": time.Unix(0, ns).UTC().Format(time.RFC3339),
				"message":   message,
				"labels":    stream.Stream,
			})
		}
	}
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i]["timestamp"].(string) > logs[j]["timestamp"].(string)
	})
	return logs
}

// formatSeries converts Cortex series to the shape the model consumes:
// capped data points plus the per-series summary statistics.
func formatSeries(result *cortex.QueryResult) []map[string]any {
	metrics := make([]map[string]any, 0, len(result.Data.Result))
	for _, series := range result.Data.Result {
		values := series.Values
		if len(values) > maxDataPoints {
			values = values[len(values)-maxDataPoints:]
		}
		points := make([]map[string]any, 0, len(values))
		for _, sample := range values {
			point := map[string]any{
				"timestamp": time.Unix(int64(sample.Timestamp), 0).UTC().Format(time.RFC3339),
			}
			if v, ok := sample.Float(); ok {
				point["value"] = v
			} else {
				point["value"] = nil
			}
			points = append(points, point)
		}

		entry := map[string]any{
			"labels":       series.Metric,
			"data_points":  points,
			"total_points": len(series.Values),
		}
		if series.Summary != nil {
			entry["summary"] = series.Summary
		}
		metrics = append(metrics, entry)
	}
	return metrics
}

func parseTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start_time %q: %w", startStr, err)
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end_time %q: %w", endStr, err)
	}
	return start, end, nil
}

func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func intArg(args map[string]any, key string, fallback int) int {
	switch v := args[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
