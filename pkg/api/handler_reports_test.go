package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entincident "github.com/incident-ops/rcad/ent/incident"
	"github.com/incident-ops/rcad/pkg/services"
)

func TestListReports_MinConfidenceFilter(t *testing.T) {
	ts := newTestServer(t, true)
	reports := services.NewReportService(ts.client.Client)
	inc := seedIncident(t, ts.client.Client, entincident.StatusOpen)
	seedCompleteReport(t, reports, inc.ID)

	w := ts.do(t, http.MethodGet, "/api/v1/reports?min_confidence=90", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[ReportListResponse](t, w)
	assert.Equal(t, 0, resp.Total)

	w = ts.do(t, http.MethodGet, "/api/v1/reports?min_confidence=80", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[ReportListResponse](t, w)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Reports, 1)
	assert.Equal(t, inc.ID, resp.Reports[0].IncidentID)
	assert.Equal(t, 85, resp.Reports[0].ConfidenceScore)
}

func TestGetReport(t *testing.T) {
	ts := newTestServer(t, true)
	reports := services.NewReportService(ts.client.Client)
	inc := seedIncident(t, ts.client.Client, entincident.StatusOpen)
	report := seedCompleteReport(t, reports, inc.ID)

	w := ts.do(t, http.MethodGet, "/api/v1/reports/"+report.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[ReportResponse](t, w)
	assert.Equal(t, report.ID, resp.ID)
	assert.Equal(t, "complete", resp.Status)
	require.Len(t, resp.RemediationSteps, 1)
	assert.Equal(t, "anthropic", resp.AnalysisMetadata["provider"])
}

func TestGetReport_NotFound(t *testing.T) {
	ts := newTestServer(t, true)

	w := ts.do(t, http.MethodGet, "/api/v1/reports/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Report missing not found")
}

func TestExportReport_Markdown(t *testing.T) {
	ts := newTestServer(t, true)
	reports := services.NewReportService(ts.client.Client)
	inc := seedIncident(t, ts.client.Client, entincident.StatusOpen)
	report := seedCompleteReport(t, reports, inc.ID)

	w := ts.do(t, http.MethodGet, "/api/v1/reports/"+report.ID+"/export?format=markdown", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "attachment; filename=rca-report-"+report.ID+".md",
		w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Header().Get("Content-Type"), "text/markdown")
	body := w.Body.String()
	assert.Contains(t, body, "# RCA Report")
	assert.Contains(t, body, "Connection pool exhaustion")
	assert.Contains(t, body, "Restart payment-api")
}

func TestExportReport_JSONDefault(t *testing.T) {
	ts := newTestServer(t, true)
	reports := services.NewReportService(ts.client.Client)
	inc := seedIncident(t, ts.client.Client, entincident.StatusOpen)
	report := seedCompleteReport(t, reports, inc.ID)

	w := ts.do(t, http.MethodGet, "/api/v1/reports/"+report.ID+"/export", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[ReportResponse](t, w)
	assert.Equal(t, report.ID, resp.ID)
}

func TestExportReport_InvalidFormat(t *testing.T) {
	ts := newTestServer(t, true)

	w := ts.do(t, http.MethodGet, "/api/v1/reports/any/export?format=pdf", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
