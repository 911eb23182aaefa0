package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incident-ops/rcad/pkg/models"
	testdb "github.com/incident-ops/rcad/test/database"
)

func alertInput(fingerprint, alertname string, severity models.Severity) CreateAlertInput {
	return CreateAlertInput{
		Fingerprint: fingerprint,
		Alertname:   alertname,
		Severity:    severity,
		Status:      models.AlertFiring,
		Labels:      map[string]string{"alertname": alertname, "service": "payment-api"},
		StartsAt:    time.Now().Add(-5 * time.Minute),
	}
}

func TestAlertService_CreateAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAlertService(client.Client)
	ctx := context.Background()

	a, err := svc.Create(ctx, alertInput("fp-1", "HighErrorRate", models.SeverityCritical))
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "HighErrorRate", a.Alertname)
	assert.False(t, a.ReceivedAt.IsZero())

	got, err := svc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAlertService_CreateValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAlertService(client.Client)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateAlertInput{Alertname: "X"})
	assert.True(t, IsValidationError(err))

	_, err = svc.Create(ctx, CreateAlertInput{Fingerprint: "fp"})
	assert.True(t, IsValidationError(err))
}

func TestAlertService_DuplicateFingerprint(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAlertService(client.Client)
	ctx := context.Background()

	_, err := svc.Create(ctx, alertInput("fp-dup", "HighErrorRate", models.SeverityCritical))
	require.NoError(t, err)

	_, err = svc.Create(ctx, alertInput("fp-dup", "HighErrorRate", models.SeverityCritical))
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestAlertService_GetByFingerprint(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAlertService(client.Client)
	ctx := context.Background()

	created, err := svc.Create(ctx, alertInput("fp-look", "HighErrorRate", models.SeverityWarning))
	require.NoError(t, err)

	found, err := svc.GetByFingerprint(ctx, "fp-look")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	// Miss is (nil, nil), not an error.
	missing, err := svc.GetByFingerprint(ctx, "fp-none")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAlertService_ListFilters(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAlertService(client.Client)
	ctx := context.Background()

	_, err := svc.Create(ctx, alertInput("fp-a", "HighErrorRate", models.SeverityCritical))
	require.NoError(t, err)
	_, err = svc.Create(ctx, alertInput("fp-b", "DiskSpaceLow", models.SeverityWarning))
	require.NoError(t, err)

	alerts, total, err := svc.List(ctx, models.AlertFilters{Severity: "critical"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, alerts, 1)
	assert.Equal(t, "HighErrorRate", alerts[0].Alertname)

	alerts, total, err = svc.List(ctx, models.AlertFilters{Service: "payment-api"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, alerts, 2)

	// Pagination: limit 1 returns one alert but the full total.
	alerts, total, err = svc.List(ctx, models.AlertFilters{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, alerts, 1)
}

func TestAlertService_UpdateStatusSetsEndsAt(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAlertService(client.Client)
	ctx := context.Background()

	a, err := svc.Create(ctx, alertInput("fp-res", "HighErrorRate", models.SeverityCritical))
	require.NoError(t, err)

	endsAt := time.Now()
	updated, err := svc.UpdateStatus(ctx, a.ID, models.AlertResolved, &endsAt)
	require.NoError(t, err)
	assert.Equal(t, "resolved", string(updated.Status))
	require.NotNil(t, updated.EndsAt)
}

func TestAlertService_FiringAgainClearsEndsAt(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAlertService(client.Client)
	ctx := context.Background()

	a, err := svc.Create(ctx, alertInput("fp-flap", "HighErrorRate", models.SeverityCritical))
	require.NoError(t, err)

	endsAt := time.Now()
	_, err = svc.UpdateStatus(ctx, a.ID, models.AlertResolved, &endsAt)
	require.NoError(t, err)

	// ends_at only makes sense while the alert is resolved.
	updated, err := svc.UpdateStatus(ctx, a.ID, models.AlertFiring, nil)
	require.NoError(t, err)
	assert.Equal(t, "firing", string(updated.Status))
	assert.Nil(t, updated.EndsAt)
}
