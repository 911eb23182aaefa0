package correlation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/incident-ops/rcad/ent"
	entalert "github.com/incident-ops/rcad/ent/alert"
	entincident "github.com/incident-ops/rcad/ent/incident"
	testdb "github.com/incident-ops/rcad/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAlert(t *testing.T, client *ent.Client, name string, severity entalert.Severity, labels map[string]string, startsAt time.Time) *ent.Alert {
	t.Helper()
	a, err := client.Alert.Create().
		SetID(uuid.New().String()).
		SetFingerprint(uuid.New().String()).
		SetAlertname(name).
		SetSeverity(severity).
		SetStatus(entalert.StatusFiring).
		SetLabels(labels).
		SetAnnotations(map[string]string{}).
		SetStartsAt(startsAt).
		Save(context.Background())
	require.NoError(t, err)
	return a
}

func TestEngine_CorrelateAlert_NewIncident(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client, nil, 5*time.Minute, false)
	ctx := context.Background()

	a := createTestAlert(t, client.Client, "InterfaceDown", entalert.SeverityCritical,
		map[string]string{"service": "core-switch", "datacenter": "dc1", "device": "sw-01"},
		time.Now())

	inc, isNew, err := engine.CorrelateAlert(ctx, a)
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, "InterfaceDown", inc.Title)
	assert.Equal(t, entincident.StatusOpen, inc.Status)
	assert.Equal(t, entincident.SeverityCritical, inc.Severity)
	assert.ElementsMatch(t, []string{"core-switch", "sw-01"}, inc.AffectedServices)
	assert.Equal(t, "dc1", inc.AffectedLabels["datacenter"])
	require.NotNil(t, inc.PrimaryAlertID)
	assert.Equal(t, a.ID, *inc.PrimaryAlertID)

	// The alert is linked back to the incident.
	linked, err := client.Alert.Get(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, linked.IncidentID)
	assert.Equal(t, inc.ID, *linked.IncidentID)
}

func TestEngine_CorrelateAlert_AttachToExisting(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client, nil, 5*time.Minute, false)
	ctx := context.Background()

	now := time.Now()
	first := createTestAlert(t, client.Client, "HighLatency", entalert.SeverityWarning,
		map[string]string{"service": "api", "namespace": "prod", "datacenter": "dc1"},
		now)
	inc, isNew, err := engine.CorrelateAlert(ctx, first)
	require.NoError(t, err)
	require.True(t, isNew)

	second := createTestAlert(t, client.Client, "NetworkPartition", entalert.SeverityCritical,
		map[string]string{"service": "api", "namespace": "prod", "datacenter": "dc1"},
		now.Add(time.Minute))
	inc2, isNew, err := engine.CorrelateAlert(ctx, second)
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, inc.ID, inc2.ID)

	// Severity escalated to critical and the correlation reason was set.
	assert.Equal(t, entincident.SeverityCritical, inc2.Severity)
	require.NotNil(t, inc2.CorrelationReason)
	assert.Contains(t, *inc2.CorrelationReason, "same service: api")

	// NetworkPartition outranks HighLatency as root-cause candidate.
	require.NotNil(t, inc2.PrimaryAlertID)
	assert.Equal(t, second.ID, *inc2.PrimaryAlertID)
}

func TestEngine_FindRelatedIncident_OutsideWindow(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client, nil, 5*time.Minute, false)
	ctx := context.Background()

	now := time.Now()
	old := createTestAlert(t, client.Client, "HighLatency", entalert.SeverityWarning,
		map[string]string{"service": "api"}, now.Add(-time.Hour))
	_, isNew, err := engine.CorrelateAlert(ctx, old)
	require.NoError(t, err)
	require.True(t, isNew)

	late := createTestAlert(t, client.Client, "HighLatency", entalert.SeverityWarning,
		map[string]string{"service": "api"}, now)
	found, err := engine.FindRelatedIncident(ctx, late)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestEngine_FindRelatedIncident_LowScoreRejected(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client, nil, 5*time.Minute, false)
	ctx := context.Background()

	now := time.Now()
	first := createTestAlert(t, client.Client, "DiskFull", entalert.SeverityWarning,
		map[string]string{"service": "db", "namespace": "storage"}, now)
	_, _, err := engine.CorrelateAlert(ctx, first)
	require.NoError(t, err)

	unrelated := createTestAlert(t, client.Client, "CertExpiring", entalert.SeverityInfo,
		map[string]string{"service": "web", "namespace": "frontend"}, now.Add(time.Minute))
	found, err := engine.FindRelatedIncident(ctx, unrelated)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestEngine_Timeline(t *testing.T) {
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client, nil, 5*time.Minute, false)
	ctx := context.Background()

	now := time.Now()
	first := createTestAlert(t, client.Client, "InterfaceDown", entalert.SeverityCritical,
		map[string]string{"service": "core-switch", "datacenter": "dc1"}, now)
	inc, _, err := engine.CorrelateAlert(ctx, first)
	require.NoError(t, err)

	second := createTestAlert(t, client.Client, "APITimeout", entalert.SeverityWarning,
		map[string]string{"service": "core-switch", "datacenter": "dc1"}, now.Add(time.Minute))
	_, _, err = engine.CorrelateAlert(ctx, second)
	require.NoError(t, err)

	timeline, err := engine.Timeline(ctx, inc.ID)
	require.NoError(t, err)
	require.Len(t, timeline, 2)
	assert.Equal(t, "alert", timeline[0]["source"])
	assert.Contains(t, timeline[0]["event"], "InterfaceDown")
	assert.Equal(t, true, timeline[0]["is_primary"])
	assert.Equal(t, false, timeline[1]["is_primary"])
}
