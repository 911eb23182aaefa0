package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/incident-ops/rcad/ent"
	entincident "github.com/incident-ops/rcad/ent/incident"
	"github.com/incident-ops/rcad/ent/predicate"
	entreport "github.com/incident-ops/rcad/ent/rcareport"
	"github.com/incident-ops/rcad/pkg/models"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
)

// ReportService manages RCA report persistence and export.
type ReportService struct {
	client *ent.Client
}

// NewReportService creates a new ReportService.
func NewReportService(client *ent.Client) *ReportService {
	if client == nil {
		panic("NewReportService: client must not be nil")
	}
	return &ReportService{client: client}
}

// CreatePending creates a placeholder report for an incident whose analysis
// is about to run.
func (s *ReportService) CreatePending(ctx context.Context, incidentID string) (*ent.RCAReport, error) {
	report, err := s.client.RCAReport.Create().
		SetID(uuid.New().String()).
		SetIncidentID(incidentID).
		SetRootCause("Analysis pending").
		SetConfidenceScore(0).
		SetSummary("Analysis in progress").
		SetTimeline([]map[string]any{}).
		SetEvidence(map[string]any{"logs": []any{}, "metrics": []any{}}).
		SetRemediationSteps([]map[string]any{}).
		SetStatus(entreport.StatusPending).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return report, nil
}

// Get retrieves a report by ID.
func (s *ReportService) Get(ctx context.Context, reportID string) (*ent.RCAReport, error) {
	report, err := s.client.RCAReport.Get(ctx, reportID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return report, nil
}

// GetByIncident retrieves the report belonging to an incident.
func (s *ReportService) GetByIncident(ctx context.Context, incidentID string) (*ent.RCAReport, error) {
	report, err := s.client.RCAReport.Query().
		Where(entreport.IncidentIDEQ(incidentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get report for incident: %w", err)
	}
	return report, nil
}

// List returns reports matching the filters, newest first, plus the total
// count before pagination. Severity and service filter through the owning
// incident.
func (s *ReportService) List(ctx context.Context, filters models.ReportFilters) ([]*ent.RCAReport, int, error) {
	query := s.client.RCAReport.Query()

	if filters.Status != "" {
		query = query.Where(entreport.StatusEQ(entreport.Status(filters.Status)))
	}
	if filters.MinConfidence != nil {
		query = query.Where(entreport.ConfidenceScoreGTE(*filters.MinConfidence))
	}
	if filters.Severity != "" {
		query = query.Where(entreport.HasIncidentWith(
			entincident.SeverityEQ(entincident.Severity(filters.Severity)),
		))
	}
	if filters.Service != "" {
		service := filters.Service
		query = query.Where(entreport.HasIncidentWith(
			predicate.Incident(func(sel *sql.Selector) {
				sel.Where(sqljson.ValueContains(entincident.FieldAffectedServices, service))
			}),
		))
	}
	if filters.Since != nil {
		query = query.Where(entreport.CompletedAtGTE(*filters.Since))
	}
	if filters.Until != nil {
		query = query.Where(entreport.CompletedAtLTE(*filters.Until))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}

	limit, offset := models.ClampPage(filters.Limit, filters.Offset)
	reports, err := query.
		Order(ent.Desc(entreport.FieldCreatedAt)).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, total, nil
}

// UpdateFromAnalysis marks a report complete with the agent's findings.
func (s *ReportService) UpdateFromAnalysis(ctx context.Context, reportID string, data *models.ReportData, metadata *models.AnalysisMetadata) (*ent.RCAReport, error) {
	timeline, err := toJSONSlice(data.Timeline)
	if err != nil {
		return nil, fmt.Errorf("failed to encode timeline: %w", err)
	}
	evidence, err := toJSONMap(data.Evidence)
	if err != nil {
		return nil, fmt.Errorf("failed to encode evidence: %w", err)
	}
	steps, err := toJSONSlice(data.RemediationSteps)
	if err != nil {
		return nil, fmt.Errorf("failed to encode remediation steps: %w", err)
	}

	builder := s.client.RCAReport.UpdateOneID(reportID).
		SetRootCause(data.RootCause).
		SetConfidenceScore(data.ConfidenceScore).
		SetSummary(data.Summary).
		SetTimeline(timeline).
		SetEvidence(evidence).
		SetRemediationSteps(steps).
		SetStatus(entreport.StatusComplete).
		SetCompletedAt(time.Now())

	if metadata != nil {
		meta, err := toJSONMap(metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to encode analysis metadata: %w", err)
		}
		builder.SetAnalysisMetadata(meta)
	}

	report, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update report: %w", err)
	}
	return report, nil
}

// MarkFailed records an analysis failure on the report.
func (s *ReportService) MarkFailed(ctx context.Context, reportID, errorMessage string, metadata *models.AnalysisMetadata) (*ent.RCAReport, error) {
	builder := s.client.RCAReport.UpdateOneID(reportID).
		SetStatus(entreport.StatusFailed).
		SetErrorMessage(errorMessage).
		SetCompletedAt(time.Now())

	if metadata != nil {
		meta, err := toJSONMap(metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to encode analysis metadata: %w", err)
		}
		builder.SetAnalysisMetadata(meta)
	}

	report, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to mark report failed: %w", err)
	}
	return report, nil
}

// Delete removes a report.
func (s *ReportService) Delete(ctx context.Context, reportID string) error {
	err := s.client.RCAReport.DeleteOneID(reportID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}

// FormatAsMarkdown renders a report for export.
func (s *ReportService) FormatAsMarkdown(report *ent.RCAReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# RCA Report\n\n")
	fmt.Fprintf(&b, "**Report ID**: %s\n", report.ID)
	fmt.Fprintf(&b, "**Status**: %s\n", report.Status)
	fmt.Fprintf(&b, "**Confidence**: %d%%\n", report.ConfidenceScore)
	fmt.Fprintf(&b, "**Created**: %s\n\n", report.CreatedAt.Format(time.RFC3339))

	fmt.Fprintf(&b, "## Summary\n\n%s\n\n", report.Summary)
	fmt.Fprintf(&b, "## Root Cause\n\n%s\n\n", report.RootCause)

	if len(report.Timeline) > 0 {
		b.WriteString("## Timeline\n\n")
		for _, event := range report.Timeline {
			ts := stringField(event, "timestamp", "Unknown")
			desc := stringField(event, "event", "Unknown event")
			source := stringField(event, "source", "unknown")
			fmt.Fprintf(&b, "- **%s** [%s]: %s\n", ts, source, desc)
		}
		b.WriteString("\n")
	}

	logs := evidenceEntries(report.Evidence, "logs")
	if len(logs) > 0 {
		b.WriteString("## Log Evidence\n\n")
		for i, log := range logs {
			if i >= 10 {
				break
			}
			ts := stringField(log, "timestamp", "Unknown")
			msg := stringField(log, "message", "")
			if len(msg) > 200 {
				msg = msg[:200]
			}
			fmt.Fprintf(&b, "- `%s`: %s\n", ts, msg)
		}
		b.WriteString("\n")
	}

	metrics := evidenceEntries(report.Evidence, "metrics")
	if len(metrics) > 0 {
		b.WriteString("## Metric Evidence\n\n")
		for i, metric := range metrics {
			if i >= 10 {
				break
			}
			name := stringField(metric, "name", "Unknown")
			value := stringField(metric, "value", "N/A")
			ts := stringField(metric, "timestamp", "Unknown")
			fmt.Fprintf(&b, "- **%s**: %s at %s\n", name, value, ts)
		}
		b.WriteString("\n")
	}

	if len(report.RemediationSteps) > 0 {
		b.WriteString("## Remediation Steps\n\n")
		for i, step := range report.RemediationSteps {
			priority := strings.ToUpper(stringField(step, "priority", "unknown"))
			action := stringField(step, "action", "No action specified")
			risk := stringField(step, "risk", "unknown")
			fmt.Fprintf(&b, "%d. **[%s]** %s (Risk: %s)\n", i+1, priority, action, risk)

			if command := stringField(step, "command", ""); command != "" {
				fmt.Fprintf(&b, "   ```\n   %s\n   ```\n", command)
			}
			if description := stringField(step, "description", ""); description != "" {
				fmt.Fprintf(&b, "   %s\n", description)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// toJSONSlice converts a typed slice to the []map[string]any shape stored in
// ent JSON columns.
func toJSONSlice(v any) ([]map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []map[string]any{}
	}
	return out, nil
}

// toJSONMap converts a typed struct to the map[string]any shape stored in
// ent JSON columns.
func toJSONMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// evidenceEntries extracts a list of objects from an evidence JSON column.
func evidenceEntries(evidence map[string]any, key string) []map[string]any {
	raw, ok := evidence[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		if m, ok := entry.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func stringField(m map[string]any, key, fallback string) string {
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	if v, ok := m[key]; ok {
		if s := fmt.Sprintf("%v", v); s != "" && s != "<nil>" {
			return s
		}
	}
	return fallback
}
