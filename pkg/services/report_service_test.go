package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entreport "github.com/incident-ops/rcad/ent/rcareport"
	"github.com/incident-ops/rcad/pkg/models"
	testdb "github.com/incident-ops/rcad/test/database"
)

func sampleReportData() *models.ReportData {
	return &models.ReportData{
		RootCause:       "Connection pool exhaustion in payment-api",
		ConfidenceScore: 85,
		Summary:         "Database connections leaked under sustained load.",
		Timeline: []models.TimelineEvent{
			{Timestamp: "2026-08-26T10:00:00Z", Event: "Error rate spiked", Source: "metric"},
			{Timestamp: "2026-08-26T10:02:00Z", Event: "Connection errors in logs", Source: "log"},
		},
		Evidence: models.Evidence{
			Logs: []models.LogEvidence{
				{Timestamp: "2026-08-26T10:02:00Z", Message: "pq: too many connections", Source: "loki"},
			},
			Metrics: []models.MetricEvidence{
				{Name: "pg_connections", Value: "100", Timestamp: "2026-08-26T10:01:00Z"},
			},
		},
		RemediationSteps: []models.RemediationStep{
			{Priority: "immediate", Action: "Restart payment-api", Command: "systemctl restart payment-api", Risk: "medium"},
			{Priority: "long_term", Action: "Raise pool limits", Risk: "low"},
		},
	}
}

func TestReportService_CreatePending(t *testing.T) {
	client := testdb.NewTestClient(t)
	incidents := NewIncidentService(client.Client)
	svc := NewReportService(client.Client)
	ctx := context.Background()

	inc, err := incidents.Create(ctx, incidentInput("HighErrorRate"))
	require.NoError(t, err)

	report, err := svc.CreatePending(ctx, inc.ID)
	require.NoError(t, err)
	assert.Equal(t, entreport.StatusPending, report.Status)
	assert.Equal(t, "Analysis pending", report.RootCause)
	assert.Equal(t, 0, report.ConfidenceScore)
	assert.False(t, report.StartedAt.IsZero())

	// One report per incident.
	_, err = svc.CreatePending(ctx, inc.ID)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestReportService_UpdateFromAnalysis(t *testing.T) {
	client := testdb.NewTestClient(t)
	incidents := NewIncidentService(client.Client)
	svc := NewReportService(client.Client)
	ctx := context.Background()

	inc, err := incidents.Create(ctx, incidentInput("HighErrorRate"))
	require.NoError(t, err)
	pending, err := svc.CreatePending(ctx, inc.ID)
	require.NoError(t, err)

	meta := &models.AnalysisMetadata{
		Provider: "anthropic", Model: "test-model",
		TokensUsed: 4200, DurationSeconds: 12.5, ToolCalls: 3,
	}
	report, err := svc.UpdateFromAnalysis(ctx, pending.ID, sampleReportData(), meta)
	require.NoError(t, err)
	assert.Equal(t, entreport.StatusComplete, report.Status)
	assert.Equal(t, 85, report.ConfidenceScore)
	require.NotNil(t, report.CompletedAt)
	assert.Len(t, report.Timeline, 2)
	assert.Len(t, report.RemediationSteps, 2)
	assert.Equal(t, "anthropic", report.AnalysisMetadata["provider"])

	got, err := svc.GetByIncident(ctx, inc.ID)
	require.NoError(t, err)
	assert.Equal(t, report.ID, got.ID)
}

func TestReportService_MarkFailed(t *testing.T) {
	client := testdb.NewTestClient(t)
	incidents := NewIncidentService(client.Client)
	svc := NewReportService(client.Client)
	ctx := context.Background()

	inc, err := incidents.Create(ctx, incidentInput("HighErrorRate"))
	require.NoError(t, err)
	pending, err := svc.CreatePending(ctx, inc.ID)
	require.NoError(t, err)

	report, err := svc.MarkFailed(ctx, pending.ID, "provider timeout", nil)
	require.NoError(t, err)
	assert.Equal(t, entreport.StatusFailed, report.Status)
	require.NotNil(t, report.ErrorMessage)
	assert.Equal(t, "provider timeout", *report.ErrorMessage)
	require.NotNil(t, report.CompletedAt)
}

func TestReportService_ListFilters(t *testing.T) {
	client := testdb.NewTestClient(t)
	incidents := NewIncidentService(client.Client)
	svc := NewReportService(client.Client)
	ctx := context.Background()

	done, err := incidents.Create(ctx, incidentInput("Completed"))
	require.NoError(t, err)
	pendingInc, err := incidents.Create(ctx, incidentInput("StillPending"))
	require.NoError(t, err)

	completedPending, err := svc.CreatePending(ctx, done.ID)
	require.NoError(t, err)
	_, err = svc.UpdateFromAnalysis(ctx, completedPending.ID, sampleReportData(), nil)
	require.NoError(t, err)
	_, err = svc.CreatePending(ctx, pendingInc.ID)
	require.NoError(t, err)

	reports, total, err := svc.List(ctx, models.ReportFilters{Status: "complete"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, reports, 1)
	assert.Equal(t, done.ID, reports[0].IncidentID)

	min := 90
	_, total, err = svc.List(ctx, models.ReportFilters{MinConfidence: &min})
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	_, total, err = svc.List(ctx, models.ReportFilters{Severity: "critical"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	_, total, err = svc.List(ctx, models.ReportFilters{Service: "payment-api"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestReportService_FormatAsMarkdown(t *testing.T) {
	client := testdb.NewTestClient(t)
	incidents := NewIncidentService(client.Client)
	svc := NewReportService(client.Client)
	ctx := context.Background()

	inc, err := incidents.Create(ctx, incidentInput("HighErrorRate"))
	require.NoError(t, err)
	pending, err := svc.CreatePending(ctx, inc.ID)
	require.NoError(t, err)
	report, err := svc.UpdateFromAnalysis(ctx, pending.ID, sampleReportData(), nil)
	require.NoError(t, err)

	md := svc.FormatAsMarkdown(report)
	assert.Contains(t, md, "# RCA Report")
	assert.Contains(t, md, "**Confidence**: 85%")
	assert.Contains(t, md, "## Root Cause")
	assert.Contains(t, md, "Connection pool exhaustion")
	assert.Contains(t, md, "## Timeline")
	assert.Contains(t, md, "Error rate spiked")
	assert.Contains(t, md, "## Log Evidence")
	assert.Contains(t, md, "pq: too many connections")
	assert.Contains(t, md, "## Metric Evidence")
	assert.Contains(t, md, "**pg_connections**: 100")
	assert.Contains(t, md, "## Remediation Steps")
	assert.Contains(t, md, "1. **[IMMEDIATE]** Restart payment-api (Risk: medium)")
	assert.Contains(t, md, "systemctl restart payment-api")
}
