package agent

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/incident-ops/rcad/ent"
	entalert "github.com/incident-ops/rcad/ent/alert"
	entincident "github.com/incident-ops/rcad/ent/incident"
	entreport "github.com/incident-ops/rcad/ent/rcareport"
	"github.com/incident-ops/rcad/pkg/llm"
	"github.com/incident-ops/rcad/pkg/services"
	testdb "github.com/incident-ops/rcad/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedIncident(t *testing.T, client *ent.Client, status entincident.Status) (*ent.Incident, *ent.Alert) {
	t.Helper()
	ctx := context.Background()

	inc, err := client.Incident.Create().
		SetID(uuid.New().String()).
		SetTitle("NetworkInterfaceDown").
		SetStatus(status).
		SetSeverity(entincident.SeverityCritical).
		SetAffectedServices([]string{"core-network"}).
		SetAffectedLabels(map[string]string{"datacenter": "dc1"}).
		SetStartedAt(time.Now().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	a, err := client.Alert.Create().
		SetID(uuid.New().String()).
		SetFingerprint(uuid.New().String()).
		SetAlertname("NetworkInterfaceDown").
		SetSeverity(entalert.SeverityCritical).
		SetStatus(entalert.StatusFiring).
		SetLabels(map[string]string{"service": "core-network", "device": "eth0"}).
		SetAnnotations(map[string]string{"description": "eth0 down"}).
		SetStartsAt(time.Now().Add(-10 * time.Minute)).
		SetIncidentID(inc.ID).
		Save(ctx)
	require.NoError(t, err)

	return inc, a
}

func newTestRunner(t *testing.T, client *ent.Client, provider llm.Provider) *Runner {
	t.Helper()
	r := NewRunner(
		services.NewIncidentService(client),
		services.NewReportService(client),
		New(provider, emptyBackends(t), 10, ""),
	)
	r.settleDelay = 0
	return r
}

func TestRunner_CompletesAnalysis(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	inc, _ := seedIncident(t, client.Client, entincident.StatusOpen)

	provider := &scriptedProvider{responses: []*llm.Response{
		toolCallResponse(reportCall(map[string]any{
			"root_cause":        "eth0 carrier loss on the core switch",
			"confidence_score":  float64(80),
			"summary":           "Interface failure isolated core-network.",
			"remediation_steps": []any{map[string]any{"priority": "immediate", "action": "Bring interface eth0 up"}},
		})),
	}}
	runner := newTestRunner(t, client.Client, provider)

	require.NoError(t, runner.Run(ctx, inc.ID))

	updated, err := client.Client.Incident.Get(ctx, inc.ID)
	require.NoError(t, err)
	assert.Equal(t, entincident.StatusOpen, updated.Status)
	assert.NotNil(t, updated.RcaCompletedAt)

	report, err := client.Client.RCAReport.Query().
		Where(entreport.IncidentIDEQ(inc.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, entreport.StatusComplete, report.Status)
	assert.Equal(t, "eth0 carrier loss on the core switch", report.RootCause)
	assert.Equal(t, 80, report.ConfidenceScore)
	require.NotNil(t, report.CompletedAt)
	assert.Equal(t, "scripted", report.AnalysisMetadata["provider"])
}

func TestRunner_SkipsNonOpenIncident(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	inc, _ := seedIncident(t, client.Client, entincident.StatusAnalyzing)

	provider := &scriptedProvider{}
	runner := newTestRunner(t, client.Client, provider)

	require.NoError(t, runner.Run(ctx, inc.ID))
	assert.Equal(t, 0, provider.calls)

	count, err := client.Client.RCAReport.Query().
		Where(entreport.IncidentIDEQ(inc.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRunner_MarksFailureAndReopens(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	inc, _ := seedIncident(t, client.Client, entincident.StatusOpen)

	provider := &scriptedProvider{errs: []error{errors.New("model unavailable")}}
	runner := newTestRunner(t, client.Client, provider)

	err := runner.Run(ctx, inc.ID)
	require.Error(t, err)

	updated, getErr := client.Client.Incident.Get(ctx, inc.ID)
	require.NoError(t, getErr)
	assert.Equal(t, entincident.StatusOpen, updated.Status)
	assert.Nil(t, updated.RcaCompletedAt)

	report, getErr := client.Client.RCAReport.Query().
		Where(entreport.IncidentIDEQ(inc.ID)).
		Only(ctx)
	require.NoError(t, getErr)
	assert.Equal(t, entreport.StatusFailed, report.Status)
	require.NotNil(t, report.ErrorMessage)
	assert.Contains(t, *report.ErrorMessage, "model unavailable")
}

func TestRunner_ReusesExistingReportOnReanalysis(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	inc, _ := seedIncident(t, client.Client, entincident.StatusOpen)

	reports := services.NewReportService(client.Client)
	existing, err := reports.CreatePending(ctx, inc.ID)
	require.NoError(t, err)

	provider := &scriptedProvider{responses: []*llm.Response{
		toolCallResponse(reportCall(map[string]any{
			"root_cause":        "Confirmed interface failure",
			"confidence_score":  float64(90),
			"summary":           "Re-analysis confirmed the cause.",
			"remediation_steps": []any{map[string]any{"priority": "immediate", "action": "Replace the cable"}},
		})),
	}}
	runner := newTestRunner(t, client.Client, provider)

	require.NoError(t, runner.Run(ctx, inc.ID))

	report, err := reports.Get(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, entreport.StatusComplete, report.Status)
	assert.Equal(t, "Confirmed interface failure", report.RootCause)
	assert.Equal(t, 90, report.ConfidenceScore)
}
