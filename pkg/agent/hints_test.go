package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogQLHints(t *testing.T) {
	labels := map[string]string{
		"service":   "payment-api",
		"namespace": "prod",
		"alertname": "HighMemoryUsage",
		"severity":  "warning",
	}

	hints := logQLHints(labels, "HighMemoryUsage")
	assert.Contains(t, hints, "Suggested LogQL queries")
	// Alert metadata stays out of the selector.
	assert.Contains(t, hints, `service="payment-api"`)
	assert.NotContains(t, hints, "alertname")
	// The memory pattern is picked for a memory alert.
	assert.Contains(t, hints, "oom|out of memory")
}

func TestLogSelector_FallbackLabels(t *testing.T) {
	// No known filter labels: use whatever is left after excluding metadata.
	sel := logSelector(map[string]string{
		"alertname": "Weird",
		"severity":  "info",
		"rack":      "r12",
	})
	assert.Equal(t, `{rack="r12"}`, sel)
}

func TestPromQLHints(t *testing.T) {
	labels := map[string]string{"service": "payment-api", "instance": "node-1"}

	hints := promQLHints(labels, "HighCPUUsage")
	assert.Contains(t, hints, "Suggested PromQL queries")
	assert.Contains(t, hints, "node_cpu_seconds_total")
	// The selector is substituted into the template.
	assert.Contains(t, hints, `instance="node-1"`)
	// Service availability plus the per-service error rate are always offered.
	assert.Contains(t, hints, "up{")
	assert.Contains(t, hints, "Error rate for payment-api")
}

func TestApplySelector(t *testing.T) {
	assert.Equal(t, `up{instance="n1"}`, applySelector("up{SELECTOR}", `instance="n1"`))
	assert.Equal(t,
		`rate(node_cpu_seconds_total{mode="idle", instance="n1"}[5m])`,
		applySelector(`rate(node_cpu_seconds_total{mode="idle",SELECTOR}[5m])`, `instance="n1"`))
	assert.Equal(t, `up{}`, applySelector("up{SELECTOR}", ""))
	assert.Equal(t,
		`rate(node_cpu_seconds_total{mode="idle"}[5m])`,
		applySelector(`rate(node_cpu_seconds_total{mode="idle",SELECTOR}[5m])`, ""))
}

func TestDetectDependencies(t *testing.T) {
	deps := detectDependencies(map[string]string{
		"service":   "payment-api",
		"namespace": "prod",
		"job":       "payment-api-scraper",
	}, "DatabaseConnectionTimeout")

	// API service implies datastores, capped at five suggestions.
	require.Len(t, deps, 5)
	assert.Contains(t, deps, "postgres")
	assert.Contains(t, deps, "redis")

	none := detectDependencies(map[string]string{"device": "sw-01"}, "InterfaceDown")
	assert.Empty(t, none)
}

func TestDetectDependencies_Network(t *testing.T) {
	deps := detectDependencies(map[string]string{"namespace": "prod"}, "NetworkPartitionDetected")
	require.NotEmpty(t, deps)
	assert.True(t, strings.Contains(strings.Join(deps, ","), "all-services-in-prod"))
}
