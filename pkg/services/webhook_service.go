package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/incident-ops/rcad/ent"
	"github.com/incident-ops/rcad/pkg/correlation"
	"github.com/incident-ops/rcad/pkg/metrics"
	"github.com/incident-ops/rcad/pkg/models"
)

// WebhookService ingests Alertmanager webhook batches: deduplication,
// status tracking, correlation, and incident resolution.
type WebhookService struct {
	alerts    *AlertService
	incidents *IncidentService
	engine    *correlation.Engine
}

// NewWebhookService creates a new WebhookService.
func NewWebhookService(alerts *AlertService, incidents *IncidentService, engine *correlation.Engine) *WebhookService {
	if alerts == nil {
		panic("NewWebhookService: alerts must not be nil")
	}
	if incidents == nil {
		panic("NewWebhookService: incidents must not be nil")
	}
	if engine == nil {
		panic("NewWebhookService: engine must not be nil")
	}
	return &WebhookService{alerts: alerts, incidents: incidents, engine: engine}
}

// ProcessWebhook handles one webhook batch. Failures are isolated per alert:
// one bad alert never aborts the batch. Returns the IDs of created or
// updated alerts and the IDs of incidents that need RCA processing.
func (s *WebhookService) ProcessWebhook(ctx context.Context, payload *models.WebhookPayload) (alertIDs []string, incidentIDs []string) {
	incidentSet := make(map[string]bool)

	for _, wa := range payload.Alerts {
		ids, incIDs, err := s.processAlert(ctx, wa)
		if err != nil {
			slog.Error("Failed to process alert", "fingerprint", wa.Fingerprint, "error", err)
			continue
		}
		alertIDs = append(alertIDs, ids...)
		for _, id := range incIDs {
			if !incidentSet[id] {
				incidentSet[id] = true
				incidentIDs = append(incidentIDs, id)
			}
		}
	}
	return alertIDs, incidentIDs
}

// processAlert runs the dedup decision table for a single webhook alert.
func (s *WebhookService) processAlert(ctx context.Context, wa models.WebhookAlert) (alertIDs, incidentIDs []string, err error) {
	metrics.AlertsReceived.Inc()

	existing, err := s.alerts.GetByFingerprint(ctx, wa.Fingerprint)
	if err != nil {
		return nil, nil, err
	}

	if existing == nil {
		a, err := s.createAlert(ctx, wa, wa.Fingerprint)
		if err != nil {
			return nil, nil, err
		}
		inc, isNew, err := s.engine.CorrelateAlert(ctx, a)
		if err != nil {
			return nil, nil, err
		}
		if isNew {
			metrics.IncidentsCreated.Inc()
			slog.Info("Created new incident", "title", inc.Title, "alertname", a.Alertname)
		} else {
			slog.Info("Correlated alert with existing incident",
				"alertname", a.Alertname, "incident_id", inc.ID)
		}
		return []string{a.ID}, []string{inc.ID}, nil
	}

	newStatus := models.ParseAlertStatus(wa.Status)
	existingStatus := models.AlertStatus(existing.Status)

	// A resolved alert firing again after its incident resolved starts a
	// fresh investigation under a derived fingerprint.
	if existingStatus == models.AlertResolved && newStatus == models.AlertFiring && existing.IncidentID != nil {
		inc, err := s.incidents.Get(ctx, *existing.IncidentID)
		if err != nil && err != ErrNotFound {
			return nil, nil, err
		}
		if inc != nil && models.IncidentStatus(inc.Status) == models.IncidentResolved {
			slog.Info("Alert re-firing after incident resolved, creating new incident",
				"fingerprint", wa.Fingerprint)
			derived := fmt.Sprintf("%s_%s", wa.Fingerprint, uuid.New().String()[:8])
			a, err := s.createAlert(ctx, wa, derived)
			if err != nil {
				return nil, nil, err
			}
			newInc, isNew, err := s.engine.CorrelateAlert(ctx, a)
			if err != nil {
				return nil, nil, err
			}
			if isNew {
				metrics.IncidentsCreated.Inc()
			}
			return []string{a.ID}, []string{newInc.ID}, nil
		}
	}

	if existingStatus != newStatus {
		if err := s.updateAlertStatus(ctx, existing, wa, newStatus); err != nil {
			return nil, nil, err
		}
		if existing.IncidentID != nil {
			return []string{existing.ID}, []string{*existing.IncidentID}, nil
		}
		return []string{existing.ID}, nil, nil
	}

	metrics.AlertsDeduplicated.Inc()
	slog.Debug("Duplicate alert ignored", "fingerprint", wa.Fingerprint)
	return nil, nil, nil
}

// createAlert persists a webhook alert under the given fingerprint.
func (s *WebhookService) createAlert(ctx context.Context, wa models.WebhookAlert, fingerprint string) (*ent.Alert, error) {
	var endsAt *time.Time
	if !wa.EndsAt.IsZero() && wa.EndsAt.Year() > 1 {
		t := wa.EndsAt
		endsAt = &t
	}

	a, err := s.alerts.Create(ctx, CreateAlertInput{
		Fingerprint:  fingerprint,
		Alertname:    wa.Alertname(),
		Severity:     wa.Severity(),
		Status:       models.ParseAlertStatus(wa.Status),
		Labels:       wa.Labels,
		Annotations:  wa.Annotations,
		StartsAt:     wa.StartsAt,
		EndsAt:       endsAt,
		GeneratorURL: wa.GeneratorURL,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("Created alert", "alertname", a.Alertname, "severity", a.Severity)
	return a, nil
}

// updateAlertStatus records a status change and auto-resolves the incident
// once its last firing alert resolves.
func (s *WebhookService) updateAlertStatus(ctx context.Context, existing *ent.Alert, wa models.WebhookAlert, newStatus models.AlertStatus) error {
	var endsAt *time.Time
	if newStatus == models.AlertResolved {
		t := wa.EndsAt
		if t.IsZero() || t.Year() <= 1 {
			t = time.Now()
		}
		endsAt = &t
	}

	if _, err := s.alerts.UpdateStatus(ctx, existing.ID, newStatus, endsAt); err != nil {
		return err
	}
	slog.Info("Updated alert status",
		"alertname", existing.Alertname, "from", existing.Status, "to", newStatus)

	if newStatus == models.AlertResolved && existing.IncidentID != nil {
		return s.checkIncidentResolution(ctx, *existing.IncidentID)
	}
	return nil
}

// checkIncidentResolution resolves an incident once all its alerts have
// resolved.
func (s *WebhookService) checkIncidentResolution(ctx context.Context, incidentID string) error {
	inc, err := s.incidents.GetWithAlerts(ctx, incidentID)
	if err != nil {
		if err == ErrNotFound {
			slog.Warn("Incident not found for resolution check", "incident_id", incidentID)
			return nil
		}
		return err
	}

	firing := 0
	for _, a := range inc.Edges.Alerts {
		if models.AlertStatus(a.Status) == models.AlertFiring {
			firing++
		}
	}

	if firing > 0 {
		slog.Debug("Incident still has firing alerts",
			"incident_id", incidentID, "firing", firing)
		return nil
	}

	if models.IncidentStatus(inc.Status) != models.IncidentResolved {
		if _, err := s.incidents.UpdateStatus(ctx, incidentID, models.IncidentResolved); err != nil {
			if err == ErrInvalidTransition {
				return nil
			}
			return err
		}
		slog.Info("Incident auto-resolved, all alerts resolved",
			"incident_id", incidentID, "alerts", len(inc.Edges.Alerts))
	}
	return nil
}
