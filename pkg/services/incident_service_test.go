package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entincident "github.com/incident-ops/rcad/ent/incident"
	"github.com/incident-ops/rcad/pkg/models"
	testdb "github.com/incident-ops/rcad/test/database"
)

func incidentInput(title string) CreateIncidentInput {
	return CreateIncidentInput{
		Title:            title,
		Severity:         models.SeverityCritical,
		StartedAt:        time.Now().Add(-10 * time.Minute),
		AffectedServices: []string{"payment-api"},
	}
}

func TestIncidentService_CreateDefaultsToOpen(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewIncidentService(client.Client)
	ctx := context.Background()

	inc, err := svc.Create(ctx, incidentInput("HighErrorRate"))
	require.NoError(t, err)
	assert.Equal(t, entincident.StatusOpen, inc.Status)
	assert.Equal(t, []string{"payment-api"}, inc.AffectedServices)

	_, err = svc.Create(ctx, CreateIncidentInput{})
	assert.True(t, IsValidationError(err))
}

func TestIncidentService_StatusTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewIncidentService(client.Client)
	ctx := context.Background()

	inc, err := svc.Create(ctx, incidentInput("HighErrorRate"))
	require.NoError(t, err)

	// open → analyzing → open → resolved
	updated, err := svc.UpdateStatus(ctx, inc.ID, models.IncidentAnalyzing)
	require.NoError(t, err)
	assert.Equal(t, entincident.StatusAnalyzing, updated.Status)

	updated, err = svc.UpdateStatus(ctx, inc.ID, models.IncidentOpen)
	require.NoError(t, err)
	assert.Equal(t, entincident.StatusOpen, updated.Status)

	updated, err = svc.UpdateStatus(ctx, inc.ID, models.IncidentResolved)
	require.NoError(t, err)
	require.NotNil(t, updated.ResolvedAt)

	// resolved → analyzing is not allowed
	_, err = svc.UpdateStatus(ctx, inc.ID, models.IncidentAnalyzing)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Reopening from resolved clears the resolution timestamp.
	updated, err = svc.UpdateStatus(ctx, inc.ID, models.IncidentOpen)
	require.NoError(t, err)
	assert.Nil(t, updated.ResolvedAt)
}

func TestIncidentService_MarkRCAComplete(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewIncidentService(client.Client)
	ctx := context.Background()

	inc, err := svc.Create(ctx, incidentInput("HighErrorRate"))
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, inc.ID, models.IncidentAnalyzing)
	require.NoError(t, err)

	updated, err := svc.MarkRCAComplete(ctx, inc.ID)
	require.NoError(t, err)
	assert.Equal(t, entincident.StatusOpen, updated.Status)
	require.NotNil(t, updated.RcaCompletedAt)
}

func TestIncidentService_ListWithAlertCounts(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewIncidentService(client.Client)
	alerts := NewAlertService(client.Client)
	ctx := context.Background()

	inc, err := svc.Create(ctx, incidentInput("HighErrorRate"))
	require.NoError(t, err)

	for _, fp := range []string{"fp-1", "fp-2"} {
		a, err := alerts.Create(ctx, alertInput(fp, "HighErrorRate", models.SeverityCritical))
		require.NoError(t, err)
		_, err = client.Alert.UpdateOneID(a.ID).SetIncidentID(inc.ID).Save(ctx)
		require.NoError(t, err)
	}

	list, total, err := svc.List(ctx, models.IncidentFilters{Status: "open"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].AlertCount)

	list, total, err = svc.List(ctx, models.IncidentFilters{Service: "payment-api"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, list, 1)

	_, total, err = svc.List(ctx, models.IncidentFilters{Status: "resolved"})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestIncidentService_ManualCorrelate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewIncidentService(client.Client)
	alerts := NewAlertService(client.Client)
	ctx := context.Background()

	inc, err := svc.Create(ctx, incidentInput("HighErrorRate"))
	require.NoError(t, err)
	loose, err := alerts.Create(ctx, alertInput("fp-loose", "HighLatency", models.SeverityWarning))
	require.NoError(t, err)

	updated, moved, err := svc.ManualCorrelate(ctx, inc.ID, []string{loose.ID, "missing"})
	require.NoError(t, err)
	assert.Equal(t, 1, moved)
	require.NotNil(t, updated.CorrelationReason)
	assert.Contains(t, *updated.CorrelationReason, "Manual correlation")

	a, err := alerts.Get(ctx, loose.ID)
	require.NoError(t, err)
	require.NotNil(t, a.IncidentID)
	assert.Equal(t, inc.ID, *a.IncidentID)

	// Affected services are recomputed from the member alerts.
	assert.Contains(t, updated.AffectedServices, "payment-api")
}

func TestIncidentService_ResetStuck(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewIncidentService(client.Client)
	ctx := context.Background()

	stuck, err := svc.Create(ctx, incidentInput("StuckOne"))
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, stuck.ID, models.IncidentAnalyzing)
	require.NoError(t, err)

	open, err := svc.Create(ctx, incidentInput("OpenOne"))
	require.NoError(t, err)

	ids, err := svc.ResetStuck(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{stuck.ID}, ids)

	reset, err := svc.Get(ctx, stuck.ID)
	require.NoError(t, err)
	assert.Equal(t, entincident.StatusOpen, reset.Status)

	untouched, err := svc.Get(ctx, open.ID)
	require.NoError(t, err)
	assert.Equal(t, entincident.StatusOpen, untouched.Status)
}
