package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entincident "github.com/incident-ops/rcad/ent/incident"
	"github.com/incident-ops/rcad/pkg/services"
)

func TestListIncidents_WithAlertCount(t *testing.T) {
	ts := newTestServer(t, true)
	inc := seedIncident(t, ts.client.Client, entincident.StatusOpen)
	seedAlert(t, ts.client.Client, "HighErrorRate", "critical", inc.ID)
	seedAlert(t, ts.client.Client, "HighLatency", "warning", inc.ID)

	w := ts.do(t, http.MethodGet, "/api/v1/incidents?status=open", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[IncidentListResponse](t, w)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Incidents, 1)
	assert.Equal(t, inc.ID, resp.Incidents[0].ID)
	assert.Equal(t, 2, resp.Incidents[0].AlertCount)
}

func TestGetIncident_EmbedsAlertsAndReport(t *testing.T) {
	ts := newTestServer(t, true)
	inc := seedIncident(t, ts.client.Client, entincident.StatusOpen)
	seedAlert(t, ts.client.Client, "HighErrorRate", "critical", inc.ID)
	seedCompleteReport(t, services.NewReportService(ts.client.Client), inc.ID)

	w := ts.do(t, http.MethodGet, "/api/v1/incidents/"+inc.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[IncidentResponse](t, w)
	assert.Equal(t, inc.ID, resp.ID)
	require.Len(t, resp.Alerts, 1)
	require.NotNil(t, resp.Report)
	assert.Equal(t, "Connection pool exhaustion in payment-api", resp.Report.RootCause)
}

func TestGetIncident_NotFound(t *testing.T) {
	ts := newTestServer(t, true)

	w := ts.do(t, http.MethodGet, "/api/v1/incidents/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Incident missing not found")
}

func TestListIncidentAlerts(t *testing.T) {
	ts := newTestServer(t, true)
	inc := seedIncident(t, ts.client.Client, entincident.StatusOpen)
	seedAlert(t, ts.client.Client, "HighErrorRate", "critical", inc.ID)

	w := ts.do(t, http.MethodGet, "/api/v1/incidents/"+inc.ID+"/alerts", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[[]AlertResponse](t, w)
	require.Len(t, resp, 1)
	assert.Equal(t, "HighErrorRate", resp[0].Alertname)
}

func TestGetIncidentReport_NotFound(t *testing.T) {
	ts := newTestServer(t, true)
	inc := seedIncident(t, ts.client.Client, entincident.StatusOpen)

	w := ts.do(t, http.MethodGet, "/api/v1/incidents/"+inc.ID+"/report", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No RCA report found for incident")
}

func TestUpdateIncidentStatus(t *testing.T) {
	ts := newTestServer(t, true)
	inc := seedIncident(t, ts.client.Client, entincident.StatusOpen)

	w := ts.do(t, http.MethodPatch, "/api/v1/incidents/"+inc.ID+"/status",
		map[string]string{"status": "resolved"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[IncidentSummary](t, w)
	assert.Equal(t, "resolved", resp.Status)
	assert.NotNil(t, resp.ResolvedAt)
}

func TestUpdateIncidentStatus_InvalidTransition(t *testing.T) {
	ts := newTestServer(t, true)
	inc := seedIncident(t, ts.client.Client, entincident.StatusResolved)

	w := ts.do(t, http.MethodPatch, "/api/v1/incidents/"+inc.ID+"/status",
		map[string]string{"status": "analyzing"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid status transition")
}

func TestUpdateIncidentStatus_UnknownValue(t *testing.T) {
	ts := newTestServer(t, true)
	inc := seedIncident(t, ts.client.Client, entincident.StatusOpen)

	w := ts.do(t, http.MethodPatch, "/api/v1/incidents/"+inc.ID+"/status",
		map[string]string{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCorrelateIncident(t *testing.T) {
	ts := newTestServer(t, true)
	inc := seedIncident(t, ts.client.Client, entincident.StatusOpen)
	loose := seedAlert(t, ts.client.Client, "HighLatency", "warning", "")

	w := ts.do(t, http.MethodPost, "/api/v1/incidents/"+inc.ID+"/correlate",
		ManualCorrelationRequest{AlertIDs: []string{loose.ID, "missing-alert"}})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[ManualCorrelationResponse](t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, inc.ID, resp.IncidentID)
	// The missing alert is skipped, not fatal.
	assert.Equal(t, 1, resp.AlertsCorrelated)

	moved, err := ts.client.Alert.Get(context.Background(), loose.ID)
	require.NoError(t, err)
	require.NotNil(t, moved.IncidentID)
	assert.Equal(t, inc.ID, *moved.IncidentID)
}

func TestCorrelateIncident_NotFound(t *testing.T) {
	ts := newTestServer(t, true)

	w := ts.do(t, http.MethodPost, "/api/v1/incidents/missing/correlate",
		ManualCorrelationRequest{AlertIDs: []string{"a1"}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnalyzeIncident_NoProviderConfigured(t *testing.T) {
	ts := newTestServer(t, true)
	inc := seedIncident(t, ts.client.Client, entincident.StatusOpen)

	w := ts.do(t, http.MethodPost, "/api/v1/incidents/"+inc.ID+"/analyze", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "no LLM provider configured")
}

func TestAnalyzeIncident_NotFound(t *testing.T) {
	ts := newTestServer(t, true)

	w := ts.do(t, http.MethodPost, "/api/v1/incidents/missing/analyze", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
