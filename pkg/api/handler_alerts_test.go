package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAlerts_SeverityFilter(t *testing.T) {
	ts := newTestServer(t, true)
	seedAlert(t, ts.client.Client, "HighErrorRate", "critical", "")
	seedAlert(t, ts.client.Client, "DiskSpaceLow", "warning", "")

	w := ts.do(t, http.MethodGet, "/api/v1/alerts?severity=critical", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[AlertListResponse](t, w)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Alerts, 1)
	assert.Equal(t, "HighErrorRate", resp.Alerts[0].Alertname)
}

func TestListAlerts_PaginationEcho(t *testing.T) {
	ts := newTestServer(t, true)
	seedAlert(t, ts.client.Client, "HighErrorRate", "critical", "")

	// The requested limit is echoed even beyond the page-size cap.
	w := ts.do(t, http.MethodGet, "/api/v1/alerts?limit=500&offset=0", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[AlertListResponse](t, w)
	assert.Equal(t, 500, resp.Limit)
	assert.Equal(t, 0, resp.Offset)
	assert.Equal(t, 1, resp.Total)
}

func TestListAlerts_InvalidFilters(t *testing.T) {
	ts := newTestServer(t, true)

	for _, path := range []string{
		"/api/v1/alerts?severity=urgent",
		"/api/v1/alerts?status=flapping",
		"/api/v1/alerts?limit=abc",
		"/api/v1/alerts?since=yesterday",
	} {
		w := ts.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestGetAlert(t *testing.T) {
	ts := newTestServer(t, true)
	a := seedAlert(t, ts.client.Client, "HighErrorRate", "critical", "")

	w := ts.do(t, http.MethodGet, "/api/v1/alerts/"+a.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[AlertResponse](t, w)
	assert.Equal(t, a.ID, resp.ID)
	assert.Equal(t, "payment-api", resp.Labels["service"])
}

func TestGetAlert_NotFound(t *testing.T) {
	ts := newTestServer(t, true)

	w := ts.do(t, http.MethodGet, "/api/v1/alerts/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Alert missing not found")
}
