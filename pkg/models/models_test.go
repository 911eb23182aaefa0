package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input string
		want  Severity
	}{
		{"critical", SeverityCritical},
		{"CRITICAL", SeverityCritical},
		{" warning ", SeverityWarning},
		{"info", SeverityInfo},
		{"page", SeverityWarning},
		{"", SeverityWarning},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseSeverity(tt.input), "input %q", tt.input)
	}
}

func TestSeverityMax(t *testing.T) {
	assert.Equal(t, SeverityCritical, SeverityWarning.Max(SeverityCritical))
	assert.Equal(t, SeverityCritical, SeverityCritical.Max(SeverityInfo))
	assert.Equal(t, SeverityWarning, SeverityInfo.Max(SeverityWarning))
	assert.Equal(t, SeverityInfo, SeverityInfo.Max(SeverityInfo))
}

func TestParseAlertStatus(t *testing.T) {
	assert.Equal(t, AlertResolved, ParseAlertStatus("resolved"))
	assert.Equal(t, AlertResolved, ParseAlertStatus("Resolved"))
	assert.Equal(t, AlertFiring, ParseAlertStatus("firing"))
	assert.Equal(t, AlertFiring, ParseAlertStatus("unknown"))
	assert.Equal(t, AlertFiring, ParseAlertStatus(""))
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to IncidentStatus
		want     bool
	}{
		{IncidentOpen, IncidentAnalyzing, true},
		{IncidentOpen, IncidentResolved, true},
		{IncidentOpen, IncidentClosed, true},
		{IncidentOpen, IncidentOpen, false},
		{IncidentAnalyzing, IncidentOpen, true},
		{IncidentAnalyzing, IncidentResolved, true},
		{IncidentResolved, IncidentOpen, true},
		{IncidentResolved, IncidentAnalyzing, false},
		{IncidentClosed, IncidentOpen, true},
		{IncidentClosed, IncidentResolved, false},
		{IncidentClosed, IncidentAnalyzing, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestWebhookAlertHelpers(t *testing.T) {
	a := WebhookAlert{Labels: map[string]string{"alertname": "HighCPU", "severity": "critical"}}
	assert.Equal(t, "HighCPU", a.Alertname())
	assert.Equal(t, SeverityCritical, a.Severity())

	empty := WebhookAlert{Labels: map[string]string{}}
	assert.Equal(t, "unknown", empty.Alertname())
	assert.Equal(t, SeverityWarning, empty.Severity())
}
