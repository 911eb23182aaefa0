package correlation

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/incident-ops/rcad/ent"
	entalert "github.com/incident-ops/rcad/ent/alert"
	entincident "github.com/incident-ops/rcad/ent/incident"
	"github.com/incident-ops/rcad/pkg/models"
)

// Engine correlates incoming alerts into incidents.
type Engine struct {
	client          *ent.Client
	semantic        *SemanticCorrelator
	window          time.Duration
	semanticEnabled bool
}

// NewEngine creates a correlation engine. The semantic correlator is optional;
// pass nil to run structural correlation only.
func NewEngine(client *ent.Client, semantic *SemanticCorrelator, window time.Duration, semanticEnabled bool) *Engine {
	if client == nil {
		panic("NewEngine: client must not be nil")
	}
	return &Engine{
		client:          client,
		semantic:        semantic,
		window:          window,
		semanticEnabled: semanticEnabled,
	}
}

// CorrelateAlert links an alert to an existing related incident or creates a
// new one. Returns the incident and whether it was newly created.
func (e *Engine) CorrelateAlert(ctx context.Context, a *ent.Alert) (*ent.Incident, bool, error) {
	existing, err := e.FindRelatedIncident(ctx, a)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		inc, err := e.AddAlertToIncident(ctx, a, existing)
		if err != nil {
			return nil, false, err
		}
		return inc, false, nil
	}

	inc, err := e.createIncidentForAlert(ctx, a)
	if err != nil {
		return nil, false, err
	}
	return inc, true, nil
}

// scoredCandidate pairs a candidate incident with its structural score.
type scoredCandidate struct {
	incident *ent.Incident
	score    int
}

// FindRelatedIncident finds an existing incident the alert should join, or
// nil when a new incident should be created. Structural scoring narrows the
// field; semantic arbitration, when enabled, makes the final call.
func (e *Engine) FindRelatedIncident(ctx context.Context, a *ent.Alert) (*ent.Incident, error) {
	windowStart := a.StartsAt.Add(-e.window)
	windowEnd := a.StartsAt.Add(e.window)

	candidates, err := e.client.Incident.Query().
		Where(
			entincident.StartedAtGTE(windowStart),
			entincident.StartedAtLTE(windowEnd),
			entincident.StatusIn(entincident.StatusOpen, entincident.StatusAnalyzing),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate incidents: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	var scored []scoredCandidate
	for _, inc := range candidates {
		if score := Score(a, inc); score >= minCandidateScore {
			scored = append(scored, scoredCandidate{incident: inc, score: score})
		}
	}
	if len(scored) == 0 {
		return nil, nil
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	if e.semanticEnabled && e.semantic != nil {
		slog.Info("Using LLM semantic correlation",
			"alertname", a.Alertname, "candidates", len(scored))

		semanticCandidates := make([]Candidate, 0, len(scored))
		ok := true
		for _, sc := range scored {
			memberAlerts, err := e.client.Alert.Query().
				Where(entalert.IncidentID(sc.incident.ID)).
				All(ctx)
			if err != nil {
				slog.Warn("Semantic correlation failed, falling back to label-based", "error", err)
				ok = false
				break
			}
			semanticCandidates = append(semanticCandidates, Candidate{Incident: sc.incident, Alerts: memberAlerts})
		}

		if ok {
			best, reason, confidence := e.semantic.FindBestIncident(ctx, a, semanticCandidates)
			if best != nil && confidence >= 0.6 {
				slog.Info("Semantic correlation matched",
					"alertname", a.Alertname, "incident_id", best.ID,
					"confidence", confidence, "reason", reason)
				return best, nil
			}
			if best == nil {
				slog.Info("Semantic analysis rejected correlation",
					"alertname", a.Alertname, "reason", reason)
				return nil, nil
			}
		}
	}

	best := scored[0]
	slog.Info("Correlated alert with incident",
		"alertname", a.Alertname, "incident_id", best.incident.ID, "score", best.score)
	return best.incident, nil
}

// AddAlertToIncident links the alert to the incident and updates the
// incident's aggregate fields: services, labels, severity, correlation reason
// and primary alert.
func (e *Engine) AddAlertToIncident(ctx context.Context, a *ent.Alert, inc *ent.Incident) (*ent.Incident, error) {
	a, err := a.Update().SetIncidentID(inc.ID).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to link alert to incident: %w", err)
	}

	// Merge affected services, including device for network equipment.
	services := append([]string(nil), inc.AffectedServices...)
	known := make(map[string]bool, len(services))
	for _, svc := range services {
		known[svc] = true
	}
	for _, key := range []string{"service", "app", "job", "device"} {
		if v, ok := a.Labels[key]; ok && !known[v] {
			services = append(services, v)
			known[v] = true
		}
	}

	// Merge affected labels; existing values win on conflict.
	labels := make(map[string]string, len(inc.AffectedLabels))
	for k, v := range inc.AffectedLabels {
		labels[k] = v
	}
	for _, key := range append(append([]string(nil), correlationLabels...), infrastructureLabels...) {
		if v, ok := a.Labels[key]; ok {
			if _, exists := labels[key]; !exists {
				labels[key] = v
			}
		}
	}

	// Severity only ever escalates.
	severity := models.ParseSeverity(string(inc.Severity)).
		Max(models.ParseSeverity(string(a.Severity)))

	// The reason reflects the post-merge incident state.
	merged := *inc
	merged.AffectedServices = services
	merged.AffectedLabels = labels

	inc, err = inc.Update().
		SetAffectedServices(services).
		SetAffectedLabels(labels).
		SetSeverity(entincident.Severity(severity)).
		SetCorrelationReason(Reason(a, &merged)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update incident: %w", err)
	}

	return e.UpdatePrimaryAlert(ctx, inc)
}

// createIncidentForAlert creates a new incident seeded from a single alert.
func (e *Engine) createIncidentForAlert(ctx context.Context, a *ent.Alert) (*ent.Incident, error) {
	var services []string
	for _, key := range []string{"service", "app", "job", "device"} {
		if v, ok := a.Labels[key]; ok {
			services = append(services, v)
		}
	}
	services = dedupe(services)

	affectedLabels := make(map[string]string)
	for _, key := range append(append([]string(nil), correlationLabels...), infrastructureLabels...) {
		if v, ok := a.Labels[key]; ok {
			affectedLabels[key] = v
		}
	}

	inc, err := e.client.Incident.Create().
		SetID(uuid.New().String()).
		SetTitle(a.Alertname).
		SetStatus(entincident.StatusOpen).
		SetSeverity(entincident.Severity(a.Severity)).
		SetAffectedServices(services).
		SetAffectedLabels(affectedLabels).
		SetStartedAt(a.StartsAt).
		SetPrimaryAlertID(a.ID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create incident: %w", err)
	}

	if _, err := a.Update().SetIncidentID(inc.ID).Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to link alert to new incident: %w", err)
	}

	slog.Info("Created new incident", "incident_id", inc.ID, "alertname", a.Alertname)
	return inc, nil
}

// UpdatePrimaryAlert re-elects the probable root-cause alert for an incident
// using causal indicators and chronological order.
func (e *Engine) UpdatePrimaryAlert(ctx context.Context, inc *ent.Incident) (*ent.Incident, error) {
	alerts, err := e.client.Alert.Query().
		Where(entalert.IncidentID(inc.ID)).
		Order(ent.Asc(entalert.FieldStartsAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query incident alerts: %w", err)
	}
	if len(alerts) == 0 {
		return inc, nil
	}

	best := alerts[0]
	bestScore := CausalScore(best)
	earliest := alerts[0].StartsAt

	for _, a := range alerts[1:] {
		score := CausalScore(a)
		// Earliest alerts get a small bonus: causes precede symptoms.
		if a.StartsAt.Equal(earliest) {
			score++
		}
		if score > bestScore {
			bestScore = score
			best = a
		}
	}

	inc, err = inc.Update().SetPrimaryAlertID(best.ID).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set primary alert: %w", err)
	}
	return inc, nil
}

// Timeline returns the chronologically ordered alert events for an incident.
func (e *Engine) Timeline(ctx context.Context, incidentID string) ([]map[string]any, error) {
	inc, err := e.client.Incident.Get(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get incident: %w", err)
	}

	alerts, err := e.client.Alert.Query().
		Where(entalert.IncidentID(incidentID)).
		Order(ent.Asc(entalert.FieldStartsAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query incident alerts: %w", err)
	}

	timeline := make([]map[string]any, 0, len(alerts))
	for _, a := range alerts {
		summary := a.Annotations["summary"]
		if summary == "" {
			summary = a.Alertname
		}
		isPrimary := inc.PrimaryAlertID != nil && *inc.PrimaryAlertID == a.ID
		timeline = append(timeline, map[string]any{
			"timestamp":  a.StartsAt.Format(time.RFC3339),
			"event":      fmt.Sprintf("%s: %s", a.Alertname, summary),
			"source":     "alert",
			"alert_id":   a.ID,
			"severity":   string(a.Severity),
			"is_primary": isPrimary,
		})
	}
	return timeline, nil
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := values[:0]
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
