package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entincident "github.com/incident-ops/rcad/ent/incident"
	"github.com/incident-ops/rcad/pkg/correlation"
	"github.com/incident-ops/rcad/pkg/database"
	"github.com/incident-ops/rcad/pkg/models"
	testdb "github.com/incident-ops/rcad/test/database"
)

func newWebhookService(client *database.Client) *WebhookService {
	alerts := NewAlertService(client.Client)
	incidents := NewIncidentService(client.Client)
	engine := correlation.NewEngine(client.Client, nil, 5*time.Minute, false)
	return NewWebhookService(alerts, incidents, engine)
}

func webhookAlert(fingerprint, status string) models.WebhookAlert {
	return models.WebhookAlert{
		Status:      status,
		Fingerprint: fingerprint,
		Labels: map[string]string{
			"alertname": "HighErrorRate",
			"severity":  "critical",
			"service":   "payment-api",
		},
		Annotations: map[string]string{"description": "error rate above threshold"},
		StartsAt:    time.Now().Add(-2 * time.Minute),
	}
}

func payload(alerts ...models.WebhookAlert) *models.WebhookPayload {
	return &models.WebhookPayload{Version: "4", Status: "firing", Receiver: "rcad", Alerts: alerts}
}

func TestProcessWebhook_NewAlertCreatesIncident(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := newWebhookService(client)
	ctx := context.Background()

	alertIDs, incidentIDs := svc.ProcessWebhook(ctx, payload(webhookAlert("fp-new", "firing")))
	require.Len(t, alertIDs, 1)
	require.Len(t, incidentIDs, 1)

	inc, err := client.Incident.Get(ctx, incidentIDs[0])
	require.NoError(t, err)
	assert.Equal(t, entincident.StatusOpen, inc.Status)
	assert.Equal(t, "HighErrorRate", inc.Title)
	assert.Contains(t, inc.AffectedServices, "payment-api")
}

func TestProcessWebhook_DuplicateIsIgnored(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := newWebhookService(client)
	ctx := context.Background()

	first, _ := svc.ProcessWebhook(ctx, payload(webhookAlert("fp-dup", "firing")))
	require.Len(t, first, 1)

	second, incidents := svc.ProcessWebhook(ctx, payload(webhookAlert("fp-dup", "firing")))
	assert.Empty(t, second)
	assert.Empty(t, incidents)

	count, err := client.Alert.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestProcessWebhook_StatusChangeAutoResolvesIncident(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := newWebhookService(client)
	ctx := context.Background()

	_, incidentIDs := svc.ProcessWebhook(ctx, payload(webhookAlert("fp-res", "firing")))
	require.Len(t, incidentIDs, 1)

	resolved := webhookAlert("fp-res", "resolved")
	resolved.EndsAt = time.Now()
	alertIDs, touched := svc.ProcessWebhook(ctx, payload(resolved))
	require.Len(t, alertIDs, 1)
	require.Len(t, touched, 1)

	inc, err := client.Incident.Get(ctx, incidentIDs[0])
	require.NoError(t, err)
	assert.Equal(t, entincident.StatusResolved, inc.Status)
	require.NotNil(t, inc.ResolvedAt)
}

func TestProcessWebhook_RefireAfterResolutionStartsNewIncident(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := newWebhookService(client)
	ctx := context.Background()

	// Fire and resolve, auto-resolving the incident.
	_, incidentIDs := svc.ProcessWebhook(ctx, payload(webhookAlert("fp-refire", "firing")))
	require.Len(t, incidentIDs, 1)
	resolved := webhookAlert("fp-refire", "resolved")
	resolved.EndsAt = time.Now()
	svc.ProcessWebhook(ctx, payload(resolved))

	// The same fingerprint firing again gets a fresh alert and incident.
	alertIDs, newIncidents := svc.ProcessWebhook(ctx, payload(webhookAlert("fp-refire", "firing")))
	require.Len(t, alertIDs, 1)
	require.Len(t, newIncidents, 1)
	assert.NotEqual(t, incidentIDs[0], newIncidents[0])

	count, err := client.Alert.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// The derived fingerprint keeps the original as its prefix.
	fresh, err := client.Alert.Get(ctx, alertIDs[0])
	require.NoError(t, err)
	assert.Contains(t, fresh.Fingerprint, "fp-refire_")
}

func TestProcessWebhook_FiringAgainClearsEndsAt(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := newWebhookService(client)
	ctx := context.Background()

	// Two related alerts share one incident, so resolving one leaves the
	// incident open.
	first, incidents := svc.ProcessWebhook(ctx, payload(webhookAlert("fp-stay", "firing")))
	require.Len(t, first, 1)
	require.Len(t, incidents, 1)
	flapping := webhookAlert("fp-flap", "firing")
	flapping.Labels["alertname"] = "HighLatency"
	second, _ := svc.ProcessWebhook(ctx, payload(flapping))
	require.Len(t, second, 1)

	resolved := webhookAlert("fp-flap", "resolved")
	resolved.Labels["alertname"] = "HighLatency"
	resolved.EndsAt = time.Now()
	svc.ProcessWebhook(ctx, payload(resolved))

	a, err := client.Alert.Get(ctx, second[0])
	require.NoError(t, err)
	require.NotNil(t, a.EndsAt)

	// Firing again while the incident is open is a plain status change on
	// the existing row; the stale ends_at must not survive it.
	refired, _ := svc.ProcessWebhook(ctx, payload(flapping))
	require.Len(t, refired, 1)
	assert.Equal(t, second[0], refired[0])

	a, err = client.Alert.Get(ctx, second[0])
	require.NoError(t, err)
	assert.Equal(t, "firing", string(a.Status))
	assert.Nil(t, a.EndsAt)
}

func TestProcessWebhook_CorrelatesRelatedAlerts(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := newWebhookService(client)
	ctx := context.Background()

	_, first := svc.ProcessWebhook(ctx, payload(webhookAlert("fp-one", "firing")))
	require.Len(t, first, 1)

	// Same service within the window joins the existing incident.
	related := webhookAlert("fp-two", "firing")
	related.Labels["alertname"] = "HighLatency"
	_, second := svc.ProcessWebhook(ctx, payload(related))
	require.Len(t, second, 1)
	assert.Equal(t, first[0], second[0])

	count, err := client.Incident.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestProcessWebhook_BadAlertDoesNotAbortBatch(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := newWebhookService(client)
	ctx := context.Background()

	bad := webhookAlert("", "firing") // missing fingerprint fails validation
	good := webhookAlert("fp-good", "firing")

	alertIDs, incidentIDs := svc.ProcessWebhook(ctx, payload(bad, good))
	require.Len(t, alertIDs, 1)
	require.Len(t, incidentIDs, 1)
}
