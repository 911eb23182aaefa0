// Package services implements the domain operations of the RCA system on top
// of the ent persistence layer.
package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/google/uuid"
	"github.com/incident-ops/rcad/ent"
	entalert "github.com/incident-ops/rcad/ent/alert"
	"github.com/incident-ops/rcad/ent/predicate"
	"github.com/incident-ops/rcad/pkg/models"
)

// CreateAlertInput contains the fields needed to persist a new alert.
type CreateAlertInput struct {
	Fingerprint  string
	Alertname    string
	Severity     models.Severity
	Status       models.AlertStatus
	Labels       map[string]string
	Annotations  map[string]string
	StartsAt     time.Time
	EndsAt       *time.Time
	GeneratorURL string
}

// AlertService handles alert persistence and queries.
type AlertService struct {
	client *ent.Client
}

// NewAlertService creates a new AlertService.
func NewAlertService(client *ent.Client) *AlertService {
	if client == nil {
		panic("NewAlertService: client must not be nil")
	}
	return &AlertService{client: client}
}

// Create persists a new alert.
func (s *AlertService) Create(ctx context.Context, input CreateAlertInput) (*ent.Alert, error) {
	if input.Fingerprint == "" {
		return nil, NewValidationError("fingerprint", "required")
	}
	if input.Alertname == "" {
		return nil, NewValidationError("alertname", "required")
	}

	labels := input.Labels
	if labels == nil {
		labels = map[string]string{}
	}

	builder := s.client.Alert.Create().
		SetID(uuid.New().String()).
		SetFingerprint(input.Fingerprint).
		SetAlertname(input.Alertname).
		SetSeverity(entalert.Severity(input.Severity)).
		SetStatus(entalert.Status(input.Status)).
		SetLabels(labels).
		SetStartsAt(input.StartsAt).
		SetReceivedAt(time.Now())

	if input.Annotations != nil {
		builder.SetAnnotations(input.Annotations)
	}
	if input.EndsAt != nil {
		builder.SetEndsAt(*input.EndsAt)
	}
	if input.GeneratorURL != "" {
		builder.SetGeneratorURL(input.GeneratorURL)
	}

	a, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}
	return a, nil
}

// Get retrieves an alert by ID.
func (s *AlertService) Get(ctx context.Context, alertID string) (*ent.Alert, error) {
	a, err := s.client.Alert.Get(ctx, alertID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}
	return a, nil
}

// GetByFingerprint retrieves an alert by its Alertmanager fingerprint.
// Returns (nil, nil) when no alert has this fingerprint.
func (s *AlertService) GetByFingerprint(ctx context.Context, fingerprint string) (*ent.Alert, error) {
	a, err := s.client.Alert.Query().
		Where(entalert.FingerprintEQ(fingerprint)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query alert by fingerprint: %w", err)
	}
	return a, nil
}

// List returns alerts matching the filters, newest first, plus the total
// count before pagination.
func (s *AlertService) List(ctx context.Context, filters models.AlertFilters) ([]*ent.Alert, int, error) {
	query := s.client.Alert.Query()

	if filters.Status != "" {
		query = query.Where(entalert.StatusEQ(entalert.Status(filters.Status)))
	}
	if filters.Severity != "" {
		query = query.Where(entalert.SeverityEQ(entalert.Severity(filters.Severity)))
	}
	if filters.Service != "" {
		service := filters.Service
		query = query.Where(predicate.Alert(func(sel *sql.Selector) {
			sel.Where(sqljson.ValueEQ(entalert.FieldLabels, service, sqljson.Path("service")))
		}))
	}
	if filters.Since != nil {
		query = query.Where(entalert.StartsAtGTE(*filters.Since))
	}
	if filters.Until != nil {
		query = query.Where(entalert.StartsAtLTE(*filters.Until))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count alerts: %w", err)
	}

	limit, offset := models.ClampPage(filters.Limit, filters.Offset)
	alerts, err := query.
		Order(ent.Desc(entalert.FieldStartsAt)).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, total, nil
}

// ListByIncident returns an incident's alerts ordered by start time.
func (s *AlertService) ListByIncident(ctx context.Context, incidentID string) ([]*ent.Alert, error) {
	alerts, err := s.client.Alert.Query().
		Where(entalert.IncidentID(incidentID)).
		Order(ent.Asc(entalert.FieldStartsAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list incident alerts: %w", err)
	}
	return alerts, nil
}

// UpdateStatus updates an alert's firing status. ends_at is set on
// resolution and cleared when the alert fires again, so it is non-nil
// only while the alert is resolved.
func (s *AlertService) UpdateStatus(ctx context.Context, alertID string, status models.AlertStatus, endsAt *time.Time) (*ent.Alert, error) {
	builder := s.client.Alert.UpdateOneID(alertID).
		SetStatus(entalert.Status(status))
	switch {
	case endsAt != nil:
		builder.SetEndsAt(*endsAt)
	case status == models.AlertFiring:
		builder.ClearEndsAt()
	}

	a, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update alert status: %w", err)
	}
	return a, nil
}

// Delete removes an alert.
func (s *AlertService) Delete(ctx context.Context, alertID string) error {
	err := s.client.Alert.DeleteOneID(alertID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete alert: %w", err)
	}
	return nil
}
