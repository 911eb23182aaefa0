package agent

import (
	"testing"

	"github.com/incident-ops/rcad/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeToolInput_QueryAliases(t *testing.T) {
	window := queryWindow{start: "2026-08-26T10:00:00Z", end: "2026-08-26T10:30:00Z"}

	out := normalizeToolInput("query_loki", map[string]any{
		"query": `{service="api"}`,
		"start": "2023-01-01T00:00:00Z",
		"end":   "2023-01-01T01:00:00Z",
		"limit": float64(100),
	}, window)

	assert.Equal(t, `{service="api"}`, out["logql_query"])
	assert.Equal(t, window.start, out["start_time"])
	assert.Equal(t, window.end, out["end_time"])
	assert.Equal(t, float64(100), out["limit"])
	assert.NotContains(t, out, "query")
	assert.NotContains(t, out, "start")
	assert.NotContains(t, out, "end")
}

func TestNormalizeToolInput_DuplicateParams(t *testing.T) {
	// Both alias and canonical present: the canonical wins, alias is dropped.
	out := normalizeToolInput("query_cortex", map[string]any{
		"promql":       "up",
		"promql_query": "rate(http_requests_total[5m])",
	}, queryWindow{})

	assert.Equal(t, "rate(http_requests_total[5m])", out["promql_query"])
	assert.NotContains(t, out, "promql")
}

func TestNormalizeToolInput_ReportDefaults(t *testing.T) {
	out := normalizeToolInput("generate_report", map[string]any{
		"summary": "Disk filled up on node-2",
		"score":   "75",
	}, queryWindow{})

	assert.Equal(t, "Disk filled up on node-2", out["root_cause"])
	assert.Equal(t, 75, out["confidence_score"])
}

func TestNormalizeToolInput_ReportAllMissing(t *testing.T) {
	out := normalizeToolInput("generate_report", map[string]any{}, queryWindow{})

	assert.Equal(t, "Root cause could not be determined from available evidence", out["root_cause"])
	assert.Equal(t, out["root_cause"], out["summary"])
	assert.Equal(t, 50, out["confidence_score"])
}

func TestExecuteGenerateReport_Full(t *testing.T) {
	result := executeGenerateReport(map[string]any{
		"root_cause":       "OOM killer terminated the payment-api process",
		"confidence_score": float64(90),
		"summary":          "Memory exhaustion on node-2 killed payment-api.",
		"timeline": []any{
			map[string]any{"timestamp": "2026-08-26T10:00:00Z", "event": "Memory usage exceeded 95%", "source": "metric"},
			map[string]any{"timestamp": "2026-08-26T10:02:00Z", "event": "OOM kill recorded", "source": "log"},
		},
		"evidence": map[string]any{
			"logs": []any{
				map[string]any{"timestamp": "2026-08-26T10:02:00Z", "message": "Out of memory: Killed process 1234"},
			},
			"metrics": []any{
				map[string]any{"name": "node_memory_available", "value": float64(120000), "timestamp": "2026-08-26T10:01:00Z"},
			},
		},
		"remediation_steps": []any{
			map[string]any{"priority": "immediate", "action": "Restart payment-api deployment", "risk": "medium"},
			map[string]any{"priority": "long_term", "action": "Raise memory limits", "command": "kubectl edit deploy/payment-api"},
		},
	})

	require.Equal(t, true, result["success"])
	report := result["report"].(*models.ReportData)
	assert.Equal(t, 90, report.ConfidenceScore)
	assert.Len(t, report.Timeline, 2)
	assert.Len(t, report.Evidence.Logs, 1)
	assert.Len(t, report.Evidence.Metrics, 1)
	assert.Equal(t, "120000", report.Evidence.Metrics[0].Value)
	require.Len(t, report.RemediationSteps, 2)
	// Missing command inferred from the action and root cause text.
	assert.Equal(t, "free -m && top -bn1 | head -20", report.RemediationSteps[0].Command)
	assert.Equal(t, "kubectl edit deploy/payment-api", report.RemediationSteps[1].Command)
}

func TestExecuteGenerateReport_StringArguments(t *testing.T) {
	// Some providers send structured arguments as JSON strings.
	result := executeGenerateReport(map[string]any{
		"root_cause":        "Disk full on /var",
		"confidence_score":  float64(70),
		"summary":           "Log partition filled up.",
		"timeline":          `[{"timestamp":"2026-08-26T09:00:00Z","event":"Disk usage hit 100%","source":"metric"}]`,
		"remediation_steps": `[{"priority":"immediate","action":"Clean up old log archives"}]`,
	})

	require.Equal(t, true, result["success"])
	report := result["report"].(*models.ReportData)
	require.Len(t, report.Timeline, 1)
	assert.Equal(t, "Disk usage hit 100%", report.Timeline[0].Event)
	require.Len(t, report.RemediationSteps, 1)
	assert.Equal(t, "sudo find /var/log -name '*.gz' -mtime +7 -delete", report.RemediationSteps[0].Command)
}

func TestExecuteGenerateReport_InvalidEnums(t *testing.T) {
	result := executeGenerateReport(map[string]any{
		"root_cause":       "Cause",
		"confidence_score": float64(250),
		"summary":          "Summary",
		"remediation_steps": []any{
			map[string]any{"priority": "urgent", "action": "Do something about the disk", "risk": "extreme"},
		},
	})

	require.Equal(t, true, result["success"])
	report := result["report"].(*models.ReportData)
	assert.Equal(t, 100, report.ConfidenceScore)
	assert.Equal(t, "immediate", report.RemediationSteps[0].Priority)
	assert.Equal(t, "low", report.RemediationSteps[0].Risk)
}

func TestExecuteGenerateReport_MissingRootCause(t *testing.T) {
	result := executeGenerateReport(map[string]any{"summary": ""})
	assert.Equal(t, false, result["success"])
}

func TestInferCommand(t *testing.T) {
	tests := []struct {
		name      string
		action    string
		rootCause string
		want      string
	}{
		{"BringInterfaceUp", "Bring network interface eth1 back up", "eth1 down", "sudo ip link set eth1 up"},
		{"CheckInterface", "Verify interface status", "interface enp0s3 is down", "ip link show enp0s3"},
		{"DiskCheck", "Check disk usage", "disk full", "df -h"},
		{"DiskCleanup", "Clean up old logs to free space", "disk full on /var", "sudo find /var/log -name '*.gz' -mtime +7 -delete"},
		{"MemoryCheck", "Check memory usage", "OOM kill", "free -m"},
		{"CPU", "Check CPU load", "cpu saturation", "top -bn1 | head -20"},
		{"Investigate", "Investigate the recent deploy", "unknown", "journalctl -xe --no-pager | tail -100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferCommand(tt.action, tt.rootCause))
		})
	}
}
