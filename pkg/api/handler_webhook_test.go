package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entincident "github.com/incident-ops/rcad/ent/incident"
	"github.com/incident-ops/rcad/pkg/models"
)

func webhookPayload(alerts ...models.WebhookAlert) models.WebhookPayload {
	return models.WebhookPayload{
		Version:  "4",
		Status:   "firing",
		Receiver: "rcad",
		Alerts:   alerts,
	}
}

func firingAlert(fingerprint, alertname string) models.WebhookAlert {
	return models.WebhookAlert{
		Status:      "firing",
		Fingerprint: fingerprint,
		Labels: map[string]string{
			"alertname": alertname,
			"severity":  "critical",
			"service":   "payment-api",
		},
		Annotations: map[string]string{"description": "error rate above threshold"},
		StartsAt:    time.Now().Add(-2 * time.Minute),
	}
}

func TestWebhook_CreatesAlertAndIncident(t *testing.T) {
	ts := newTestServer(t, true)

	w := ts.do(t, http.MethodPost, "/webhooks/alertmanager",
		webhookPayload(firingAlert("fp-1", "HighErrorRate")))
	require.Equal(t, http.StatusAccepted, w.Code)

	resp := decode[WebhookAcceptedResponse](t, w)
	assert.Equal(t, "accepted", resp.Status)
	assert.Equal(t, 1, resp.AlertsReceived)
	require.Len(t, resp.ProcessingIDs, 1)

	ctx := context.Background()
	a, err := ts.client.Alert.Get(ctx, resp.ProcessingIDs[0])
	require.NoError(t, err)
	assert.Equal(t, "HighErrorRate", a.Alertname)
	require.NotNil(t, a.IncidentID)

	inc, err := ts.client.Incident.Get(ctx, *a.IncidentID)
	require.NoError(t, err)
	assert.Equal(t, entincident.StatusOpen, inc.Status)
}

func TestWebhook_DeduplicatesRepeatedAlert(t *testing.T) {
	ts := newTestServer(t, true)
	payload := webhookPayload(firingAlert("fp-dup", "HighErrorRate"))

	first := ts.do(t, http.MethodPost, "/webhooks/alertmanager", payload)
	require.Equal(t, http.StatusAccepted, first.Code)

	second := ts.do(t, http.MethodPost, "/webhooks/alertmanager", payload)
	require.Equal(t, http.StatusAccepted, second.Code)

	resp := decode[WebhookAcceptedResponse](t, second)
	assert.Equal(t, 1, resp.AlertsReceived)
	assert.Empty(t, resp.ProcessingIDs)

	count, err := ts.client.Alert.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestWebhook_ResolvesIncidentWhenAllAlertsResolve(t *testing.T) {
	ts := newTestServer(t, true)

	fire := firingAlert("fp-res", "HighErrorRate")
	w := ts.do(t, http.MethodPost, "/webhooks/alertmanager", webhookPayload(fire))
	require.Equal(t, http.StatusAccepted, w.Code)
	created := decode[WebhookAcceptedResponse](t, w)
	require.Len(t, created.ProcessingIDs, 1)

	resolved := fire
	resolved.Status = "resolved"
	resolved.EndsAt = time.Now()
	w = ts.do(t, http.MethodPost, "/webhooks/alertmanager", webhookPayload(resolved))
	require.Equal(t, http.StatusAccepted, w.Code)

	ctx := context.Background()
	a, err := ts.client.Alert.Get(ctx, created.ProcessingIDs[0])
	require.NoError(t, err)
	require.NotNil(t, a.IncidentID)

	inc, err := ts.client.Incident.Get(ctx, *a.IncidentID)
	require.NoError(t, err)
	assert.Equal(t, entincident.StatusResolved, inc.Status)
	assert.NotNil(t, inc.ResolvedAt)
}

func TestWebhook_RejectsInvalidPayload(t *testing.T) {
	ts := newTestServer(t, true)

	w := ts.do(t, http.MethodPost, "/webhooks/alertmanager", map[string]any{"alerts": "nope"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodPost, "/webhooks/alertmanager", webhookPayload())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
