package agent

import (
	"fmt"
	"strings"

	"github.com/incident-ops/rcad/pkg/cortex"
	"github.com/incident-ops/rcad/pkg/loki"
)

// Labels worth carrying into log and metric selectors. Anything else is
// alert metadata, not a data-plane dimension.
var (
	logFilterLabels    = []string{"service", "device", "namespace", "pod", "container", "job", "app", "instance"}
	metricFilterLabels = []string{"service", "namespace", "pod", "container", "job", "app", "instance", "node"}
	excludedLabels     = map[string]bool{
		"alertname": true, "severity": true, "prometheus": true, "monitor": true, "__name__": true,
	}
)

// First-choice LogQL line filter per alert family.
var logPatternHints = map[string]string{
	"disk":     `|~ "(?i)(disk|space|storage|quota|full)"`,
	"memory":   `|~ "(?i)(oom|out of memory|memory|heap)"`,
	"cpu":      `|~ "(?i)(cpu|throttl|load)"`,
	"network":  `|~ "(?i)(connection|timeout|refused|unreachable|network)"`,
	"database": `|~ "(?i)(database|db|sql|query|transaction|deadlock)"`,
	"health":   `|~ "(?i)(health|ready|liveness|probe)"`,
}

type metricHint struct {
	query string
	desc  string
}

// PromQL templates per alert family. SELECTOR is replaced with the label
// selector derived from the alert.
var metricPatternHints = map[string][]metricHint{
	"disk": {
		{"100 - (node_filesystem_avail_bytes{SELECTOR} / node_filesystem_size_bytes{SELECTOR} * 100)", "Disk usage percentage"},
		{"node_filesystem_avail_bytes{SELECTOR}", "Available disk space"},
	},
	"memory": {
		{"100 * (1 - node_memory_MemAvailable_bytes{SELECTOR} / node_memory_MemTotal_bytes{SELECTOR})", "Memory usage percentage"},
		{"container_memory_working_set_bytes{SELECTOR}", "Container memory usage"},
	},
	"cpu": {
		{`100 * (1 - avg(rate(node_cpu_seconds_total{mode="idle",SELECTOR}[5m])))`, "Node CPU usage"},
		{"sum(rate(container_cpu_usage_seconds_total{SELECTOR}[5m])) by (container)", "Container CPU usage"},
	},
	"network": {
		{"rate(node_network_receive_bytes_total{SELECTOR}[5m])", "Network receive rate"},
		{"rate(node_network_transmit_bytes_total{SELECTOR}[5m])", "Network transmit rate"},
	},
	"error": {
		{`sum(rate(http_requests_total{status=~"5..",SELECTOR}[5m]))`, "5xx error rate"},
		{`sum(rate(http_requests_total{status=~"4..",SELECTOR}[5m]))`, "4xx error rate"},
	},
	"latency": {
		{"histogram_quantile(0.95, rate(http_request_duration_seconds_bucket{SELECTOR}[5m]))", "P95 latency"},
		{"histogram_quantile(0.99, rate(http_request_duration_seconds_bucket{SELECTOR}[5m]))", "P99 latency"},
	},
	"availability": {
		{"up{SELECTOR}", "Service availability"},
		{"sum(up{SELECTOR}) / count(up{SELECTOR})", "Availability ratio"},
	},
}

// pickLabels keeps known filter labels, falling back to everything except
// alert metadata when none match.
func pickLabels(labels map[string]string, preferred []string) map[string]string {
	picked := map[string]string{}
	for _, key := range preferred {
		if v, ok := labels[key]; ok {
			picked[key] = v
		}
	}
	if len(picked) == 0 {
		for k, v := range labels {
			if !excludedLabels[k] {
				picked[k] = v
			}
		}
	}
	return picked
}

func logSelector(labels map[string]string) string {
	return loki.BuildLabelFilter(pickLabels(labels, logFilterLabels))
}

// metricSelector returns the inner selector body, without braces, for
// substitution into PromQL templates.
func metricSelector(labels map[string]string) string {
	sel := cortex.BuildLabelSelector(pickLabels(labels, metricFilterLabels))
	return strings.Trim(sel, "{}")
}

func applySelector(template, inner string) string {
	if inner == "" {
		template = strings.ReplaceAll(template, ",SELECTOR", "")
		return strings.ReplaceAll(template, "SELECTOR", "")
	}
	template = strings.ReplaceAll(template, ",SELECTOR", ", "+inner)
	return strings.ReplaceAll(template, "SELECTOR", inner)
}

type querySuggestion struct {
	query string
	desc  string
}

func logQLSuggestions(labels map[string]string, alertname string) []querySuggestion {
	base := logSelector(labels)
	suggestions := []querySuggestion{
		{base + ` |~ "(?i)(error|exception|fail|fatal|panic|critical)"`, "Error logs from the affected service"},
	}

	alertLower := strings.ToLower(alertname)
	for family, pattern := range logPatternHints {
		if strings.Contains(alertLower, family) {
			suggestions = append(suggestions, querySuggestion{
				base + " " + pattern,
				"Logs related to " + family + " issues",
			})
		}
	}

	suggestions = append(suggestions, querySuggestion{base, "All logs from the affected service for context"})
	return suggestions
}

func promQLSuggestions(labels map[string]string, alertname string) []querySuggestion {
	inner := metricSelector(labels)
	alertLower := strings.ToLower(alertname)

	var suggestions []querySuggestion
	for family, hints := range metricPatternHints {
		if !strings.Contains(alertLower, family) {
			continue
		}
		for _, hint := range hints {
			suggestions = append(suggestions, querySuggestion{applySelector(hint.query, inner), hint.desc})
		}
	}
	suggestions = append(suggestions, querySuggestion{applySelector("up{SELECTOR}", inner), "Service availability"})

	if service, ok := labels["service"]; ok {
		suggestions = append(suggestions, querySuggestion{
			cortex.BuildErrorRateQuery(service),
			"Error rate for " + service,
		})
	}
	return suggestions
}

func formatSuggestions(header string, suggestions []querySuggestion) string {
	lines := []string{header}
	for i, s := range suggestions {
		lines = append(lines, fmt.Sprintf("  %d. %s:", i+1, s.desc))
		lines = append(lines, "     "+s.query)
	}
	return strings.Join(lines, "\n")
}

func logQLHints(labels map[string]string, alertname string) string {
	return formatSuggestions("Suggested LogQL queries for this alert:", logQLSuggestions(labels, alertname))
}

func promQLHints(labels map[string]string, alertname string) string {
	return formatSuggestions("Suggested PromQL queries for this alert:", promQLSuggestions(labels, alertname))
}

// detectDependencies guesses related services worth querying from the alert
// context. Capped at five suggestions.
func detectDependencies(labels map[string]string, alertname string) []string {
	var deps []string
	service := strings.ToLower(labels["service"])
	alertLower := strings.ToLower(alertname)

	if containsAny(service, "api", "backend", "service") {
		deps = append(deps, "postgres", "mysql", "redis", "mongodb")
	}
	if containsAny(alertLower, "database", "db", "postgres", "mysql", "redis") {
		deps = append(deps, "all-api-services")
	}
	if containsAny(alertLower, "network", "connection", "timeout") {
		if ns, ok := labels["namespace"]; ok {
			deps = append(deps, "all-services-in-"+ns)
		}
	}
	if job, ok := labels["job"]; ok {
		if idx := strings.LastIndex(job, "-"); idx > 0 {
			deps = append(deps, job[:idx]+"-*")
		}
	}

	if len(deps) > 5 {
		deps = deps[:5]
	}
	return deps
}
