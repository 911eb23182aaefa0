package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entincident "github.com/incident-ops/rcad/ent/incident"
	"github.com/incident-ops/rcad/pkg/cache"
)

func TestResetStuckIncidents(t *testing.T) {
	ts := newTestServer(t, true)
	stuck := seedIncident(t, ts.client.Client, entincident.StatusAnalyzing)
	open := seedIncident(t, ts.client.Client, entincident.StatusOpen)

	w := ts.do(t, http.MethodPost, "/api/v1/admin/incidents/reset-stuck", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[struct {
		Status      string   `json:"status"`
		ResetCount  int      `json:"reset_count"`
		IncidentIDs []string `json:"incident_ids"`
	}](t, w)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 1, resp.ResetCount)
	assert.Equal(t, []string{stuck.ID}, resp.IncidentIDs)

	ctx := context.Background()
	updated, err := ts.client.Incident.Get(ctx, stuck.ID)
	require.NoError(t, err)
	assert.Equal(t, entincident.StatusOpen, updated.Status)

	untouched, err := ts.client.Incident.Get(ctx, open.ID)
	require.NoError(t, err)
	assert.Equal(t, entincident.StatusOpen, untouched.Status)
}

func TestCacheStats(t *testing.T) {
	ts := newTestServer(t, true)

	w := ts.do(t, http.MethodGet, "/api/v1/cache/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[map[cache.Backend]cache.Stats](t, w)
	assert.Contains(t, resp, cache.BackendLoki)
	assert.Contains(t, resp, cache.BackendCortex)
}
