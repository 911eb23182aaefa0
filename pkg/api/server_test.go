package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incident-ops/rcad/ent"
	entalert "github.com/incident-ops/rcad/ent/alert"
	entincident "github.com/incident-ops/rcad/ent/incident"
	"github.com/incident-ops/rcad/pkg/cache"
	"github.com/incident-ops/rcad/pkg/correlation"
	"github.com/incident-ops/rcad/pkg/cortex"
	"github.com/incident-ops/rcad/pkg/database"
	"github.com/incident-ops/rcad/pkg/loki"
	"github.com/incident-ops/rcad/pkg/models"
	"github.com/incident-ops/rcad/pkg/services"
	testdb "github.com/incident-ops/rcad/test/database"
)

type testServer struct {
	server *Server
	router *gin.Engine
	client *database.Client
}

// newTestServer builds a full API server over a test database with stub
// Loki/Cortex backends and no LLM runner.
func newTestServer(t *testing.T, llmReady bool) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := testdb.NewTestClient(t)

	lokiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(lokiSrv.Close)
	cortexSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(cortexSrv.Close)

	alerts := services.NewAlertService(client.Client)
	incidents := services.NewIncidentService(client.Client)
	reports := services.NewReportService(client.Client)
	engine := correlation.NewEngine(client.Client, nil, 5*time.Minute, false)
	webhooks := services.NewWebhookService(alerts, incidents, engine)

	server := NewServer(Config{
		DB:        client,
		Alerts:    alerts,
		Incidents: incidents,
		Reports:   reports,
		Webhooks:  webhooks,
		Loki:      loki.NewClient(lokiSrv.URL, 5*time.Second),
		Cortex:    cortex.NewClient(cortexSrv.URL, 5*time.Second),
		Cache:     cache.New(10, time.Minute),
		LLMReady:  llmReady,
	})
	return &testServer{server: server, router: server.Router(), client: client}
}

// do performs a request against the test router.
func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

// seedAlert creates an alert directly, optionally linked to an incident.
func seedAlert(t *testing.T, client *ent.Client, alertname, severity, incidentID string) *ent.Alert {
	t.Helper()
	builder := client.Alert.Create().
		SetID(uuid.New().String()).
		SetFingerprint(uuid.New().String()).
		SetAlertname(alertname).
		SetSeverity(entalert.Severity(severity)).
		SetStatus(entalert.StatusFiring).
		SetLabels(map[string]string{"alertname": alertname, "service": "payment-api"}).
		SetStartsAt(time.Now().Add(-10 * time.Minute))
	if incidentID != "" {
		builder.SetIncidentID(incidentID)
	}
	a, err := builder.Save(context.Background())
	require.NoError(t, err)
	return a
}

// seedIncident creates an incident directly in the given status.
func seedIncident(t *testing.T, client *ent.Client, status entincident.Status) *ent.Incident {
	t.Helper()
	inc, err := client.Incident.Create().
		SetID(uuid.New().String()).
		SetTitle("HighErrorRate").
		SetStatus(status).
		SetSeverity(entincident.SeverityCritical).
		SetAffectedServices([]string{"payment-api"}).
		SetStartedAt(time.Now().Add(-10 * time.Minute)).
		Save(context.Background())
	require.NoError(t, err)
	return inc
}

// seedCompleteReport creates and completes a report for an incident.
func seedCompleteReport(t *testing.T, reports *services.ReportService, incidentID string) *ent.RCAReport {
	t.Helper()
	pending, err := reports.CreatePending(context.Background(), incidentID)
	require.NoError(t, err)

	report, err := reports.UpdateFromAnalysis(context.Background(), pending.ID, &models.ReportData{
		RootCause:       "Connection pool exhaustion in payment-api",
		ConfidenceScore: 85,
		Summary:         "Database connections leaked under load.",
		Timeline: []models.TimelineEvent{
			{Timestamp: time.Now().UTC().Format(time.RFC3339), Event: "Error rate spiked", Source: "metric"},
		},
		Evidence: models.Evidence{
			Logs:    []models.LogEvidence{{Timestamp: time.Now().UTC().Format(time.RFC3339), Message: "pq: too many connections", Source: "loki"}},
			Metrics: []models.MetricEvidence{},
		},
		RemediationSteps: []models.RemediationStep{
			{Priority: "immediate", Action: "Restart payment-api", Risk: "medium"},
		},
	}, &models.AnalysisMetadata{Provider: "anthropic", Model: "test", TokensUsed: 100})
	require.NoError(t, err)
	return report
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, true)

	w := ts.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[HealthResponse](t, w)
	assert.Equal(t, "healthy", resp.Status)
	assert.NotEmpty(t, resp.Version)
}

func TestReady(t *testing.T) {
	ts := newTestServer(t, true)

	w := ts.do(t, http.MethodGet, "/health/ready", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[ReadinessResponse](t, w)
	assert.True(t, resp.Ready)
	assert.True(t, resp.Checks.Database)
	assert.True(t, resp.Checks.Loki)
	assert.True(t, resp.Checks.Cortex)
	assert.True(t, resp.Checks.LLM)
}

func TestReady_LLMUnconfigured(t *testing.T) {
	ts := newTestServer(t, false)

	w := ts.do(t, http.MethodGet, "/health/ready", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	resp := decode[ReadinessResponse](t, w)
	assert.False(t, resp.Ready)
	assert.False(t, resp.Checks.LLM)
	assert.True(t, resp.Checks.Database)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, true)

	w := ts.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rcad_alerts_received_total")
}
