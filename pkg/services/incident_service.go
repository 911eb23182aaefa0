package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/google/uuid"
	"github.com/incident-ops/rcad/ent"
	entalert "github.com/incident-ops/rcad/ent/alert"
	entincident "github.com/incident-ops/rcad/ent/incident"
	"github.com/incident-ops/rcad/ent/predicate"
	"github.com/incident-ops/rcad/pkg/models"
)

// serviceLabels are the label keys that name a service-like entity.
var serviceLabels = []string{"service", "app", "job", "container", "device"}

// IncidentWithCount is an incident annotated with its member alert count for
// list views.
type IncidentWithCount struct {
	*ent.Incident
	AlertCount int
}

// IncidentService manages incident lifecycle and queries.
type IncidentService struct {
	client *ent.Client
}

// NewIncidentService creates a new IncidentService.
func NewIncidentService(client *ent.Client) *IncidentService {
	if client == nil {
		panic("NewIncidentService: client must not be nil")
	}
	return &IncidentService{client: client}
}

// CreateIncidentInput contains the fields needed to persist a new incident.
type CreateIncidentInput struct {
	Title             string
	Severity          models.Severity
	StartedAt         time.Time
	PrimaryAlertID    string
	CorrelationReason string
	AffectedServices  []string
	AffectedLabels    map[string]string
}

// Create persists a new incident in open status.
func (s *IncidentService) Create(ctx context.Context, input CreateIncidentInput) (*ent.Incident, error) {
	if input.Title == "" {
		return nil, NewValidationError("title", "required")
	}

	services := input.AffectedServices
	if services == nil {
		services = []string{}
	}

	builder := s.client.Incident.Create().
		SetID(uuid.New().String()).
		SetTitle(input.Title).
		SetStatus(entincident.StatusOpen).
		SetSeverity(entincident.Severity(input.Severity)).
		SetAffectedServices(services).
		SetStartedAt(input.StartedAt)

	if input.PrimaryAlertID != "" {
		builder.SetPrimaryAlertID(input.PrimaryAlertID)
	}
	if input.CorrelationReason != "" {
		builder.SetCorrelationReason(input.CorrelationReason)
	}
	if input.AffectedLabels != nil {
		builder.SetAffectedLabels(input.AffectedLabels)
	}

	inc, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create incident: %w", err)
	}
	return inc, nil
}

// Get retrieves an incident by ID.
func (s *IncidentService) Get(ctx context.Context, incidentID string) (*ent.Incident, error) {
	inc, err := s.client.Incident.Get(ctx, incidentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get incident: %w", err)
	}
	return inc, nil
}

// GetWithAlerts retrieves an incident with its member alerts loaded, ordered
// by start time.
func (s *IncidentService) GetWithAlerts(ctx context.Context, incidentID string) (*ent.Incident, error) {
	inc, err := s.client.Incident.Query().
		Where(entincident.IDEQ(incidentID)).
		WithAlerts(func(q *ent.AlertQuery) {
			q.Order(ent.Asc(entalert.FieldStartsAt))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get incident: %w", err)
	}
	return inc, nil
}

// List returns incidents matching the filters, newest first, each annotated
// with its alert count, plus the total count before pagination.
func (s *IncidentService) List(ctx context.Context, filters models.IncidentFilters) ([]IncidentWithCount, int, error) {
	query := s.client.Incident.Query()

	if filters.Status != "" {
		query = query.Where(entincident.StatusEQ(entincident.Status(filters.Status)))
	}
	if filters.Severity != "" {
		query = query.Where(entincident.SeverityEQ(entincident.Severity(filters.Severity)))
	}
	if filters.Service != "" {
		service := filters.Service
		query = query.Where(predicate.Incident(func(sel *sql.Selector) {
			sel.Where(sqljson.ValueContains(entincident.FieldAffectedServices, service))
		}))
	}
	if filters.Since != nil {
		query = query.Where(entincident.StartedAtGTE(*filters.Since))
	}
	if filters.Until != nil {
		query = query.Where(entincident.StartedAtLTE(*filters.Until))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count incidents: %w", err)
	}

	limit, offset := models.ClampPage(filters.Limit, filters.Offset)
	incidents, err := query.
		Order(ent.Desc(entincident.FieldStartedAt)).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list incidents: %w", err)
	}

	counts, err := s.alertCounts(ctx, incidents)
	if err != nil {
		return nil, 0, err
	}

	out := make([]IncidentWithCount, 0, len(incidents))
	for _, inc := range incidents {
		out = append(out, IncidentWithCount{Incident: inc, AlertCount: counts[inc.ID]})
	}
	return out, total, nil
}

// alertCounts returns the member alert count per incident ID.
func (s *IncidentService) alertCounts(ctx context.Context, incidents []*ent.Incident) (map[string]int, error) {
	if len(incidents) == 0 {
		return map[string]int{}, nil
	}

	ids := make([]string, 0, len(incidents))
	for _, inc := range incidents {
		ids = append(ids, inc.ID)
	}

	var rows []struct {
		IncidentID string `json:"incident_id"`
		Count      int    `json:"count"`
	}
	err := s.client.Alert.Query().
		Where(entalert.IncidentIDIn(ids...)).
		GroupBy(entalert.FieldIncidentID).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count incident alerts: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.IncidentID] = row.Count
	}
	return counts, nil
}

// UpdateStatus transitions an incident through its lifecycle state machine.
// Invalid transitions leave the incident untouched and return
// ErrInvalidTransition.
func (s *IncidentService) UpdateStatus(ctx context.Context, incidentID string, status models.IncidentStatus) (*ent.Incident, error) {
	inc, err := s.Get(ctx, incidentID)
	if err != nil {
		return nil, err
	}

	current := models.IncidentStatus(inc.Status)
	if status != current && !models.CanTransition(current, status) {
		slog.Warn("Invalid incident status transition",
			"incident_id", incidentID, "from", current, "to", status)
		return nil, ErrInvalidTransition
	}

	builder := inc.Update().SetStatus(entincident.Status(status))
	if status == models.IncidentResolved && inc.ResolvedAt == nil {
		builder.SetResolvedAt(time.Now())
	}
	if status == models.IncidentOpen && current != models.IncidentOpen && current != models.IncidentAnalyzing {
		// Reopening clears the resolution timestamp.
		builder.ClearResolvedAt()
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update incident status: %w", err)
	}

	slog.Info("Incident status changed",
		"incident_id", incidentID, "from", current, "to", status)
	return updated, nil
}

// SetPrimaryAlert records the probable root-cause alert.
func (s *IncidentService) SetPrimaryAlert(ctx context.Context, incidentID, alertID string) (*ent.Incident, error) {
	inc, err := s.client.Incident.UpdateOneID(incidentID).
		SetPrimaryAlertID(alertID).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set primary alert: %w", err)
	}
	return inc, nil
}

// MarkRCAComplete stamps the RCA completion time and returns the incident to
// open for manual resolution.
func (s *IncidentService) MarkRCAComplete(ctx context.Context, incidentID string) (*ent.Incident, error) {
	inc, err := s.client.Incident.UpdateOneID(incidentID).
		SetRcaCompletedAt(time.Now()).
		SetStatus(entincident.StatusOpen).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to mark RCA complete: %w", err)
	}
	return inc, nil
}

// ComputeAffectedServices derives the service list from all member alerts.
func (s *IncidentService) ComputeAffectedServices(ctx context.Context, incidentID string) ([]string, error) {
	alerts, err := s.client.Alert.Query().
		Where(entalert.IncidentID(incidentID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query incident alerts: %w", err)
	}

	var services []string
	seen := make(map[string]bool)
	for _, a := range alerts {
		for _, label := range serviceLabels {
			if v, ok := a.Labels[label]; ok && !seen[v] {
				seen[v] = true
				services = append(services, v)
			}
		}
	}
	return services, nil
}

// UpdateAffectedServices recomputes and stores the incident's service list.
func (s *IncidentService) UpdateAffectedServices(ctx context.Context, incidentID string) (*ent.Incident, error) {
	services, err := s.ComputeAffectedServices(ctx, incidentID)
	if err != nil {
		return nil, err
	}
	if services == nil {
		services = []string{}
	}

	inc, err := s.client.Incident.UpdateOneID(incidentID).
		SetAffectedServices(services).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update affected services: %w", err)
	}
	return inc, nil
}

// ManualCorrelate moves the named alerts into the incident, overriding
// automatic correlation. Missing alerts are skipped. Returns the updated
// incident and the number of alerts actually moved.
func (s *IncidentService) ManualCorrelate(ctx context.Context, incidentID string, alertIDs []string) (*ent.Incident, int, error) {
	inc, err := s.Get(ctx, incidentID)
	if err != nil {
		return nil, 0, err
	}

	moved := 0
	for _, alertID := range alertIDs {
		a, err := s.client.Alert.Get(ctx, alertID)
		if err != nil {
			if ent.IsNotFound(err) {
				slog.Warn("Manual correlation skipping missing alert", "alert_id", alertID)
				continue
			}
			return nil, 0, fmt.Errorf("failed to get alert %s: %w", alertID, err)
		}

		var previous string
		if a.IncidentID != nil {
			previous = *a.IncidentID
		}
		if _, err := a.Update().SetIncidentID(incidentID).Save(ctx); err != nil {
			return nil, 0, fmt.Errorf("failed to link alert %s: %w", alertID, err)
		}
		moved++
		slog.Info("Manually correlated alert",
			"alert_id", alertID, "from_incident", previous, "to_incident", incidentID)
	}

	if _, err := s.UpdateAffectedServices(ctx, incidentID); err != nil {
		return nil, 0, err
	}

	reason := "Manual correlation"
	if inc.CorrelationReason != nil && *inc.CorrelationReason != "" {
		reason = *inc.CorrelationReason + " + Manual correlation"
	}
	inc, err = s.client.Incident.UpdateOneID(incidentID).
		SetCorrelationReason(reason).
		Save(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to update correlation reason: %w", err)
	}
	return inc, moved, nil
}

// ResetStuck transitions every incident stuck in analyzing back to open.
// Returns the IDs of the incidents reset.
func (s *IncidentService) ResetStuck(ctx context.Context) ([]string, error) {
	stuck, err := s.client.Incident.Query().
		Where(entincident.StatusEQ(entincident.StatusAnalyzing)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stuck incidents: %w", err)
	}

	ids := make([]string, 0, len(stuck))
	for _, inc := range stuck {
		if _, err := inc.Update().SetStatus(entincident.StatusOpen).Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to reset incident %s: %w", inc.ID, err)
		}
		ids = append(ids, inc.ID)
	}

	slog.Info("Reset stuck analyzing incidents", "count", len(ids))
	return ids, nil
}

// AlertCount returns the number of alerts linked to an incident.
func (s *IncidentService) AlertCount(ctx context.Context, incidentID string) (int, error) {
	count, err := s.client.Alert.Query().
		Where(entalert.IncidentID(incidentID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count incident alerts: %w", err)
	}
	return count, nil
}

// Delete removes an incident. Its report is removed by cascade; alerts are
// detached.
func (s *IncidentService) Delete(ctx context.Context, incidentID string) error {
	err := s.client.Incident.DeleteOneID(incidentID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete incident: %w", err)
	}
	return nil
}
