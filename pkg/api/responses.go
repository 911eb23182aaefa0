package api

import (
	"time"

	"github.com/incident-ops/rcad/ent"
	"github.com/incident-ops/rcad/pkg/services"
)

// AlertResponse is the wire form of a single alert.
type AlertResponse struct {
	ID           string            `json:"id"`
	Fingerprint  string            `json:"fingerprint"`
	Alertname    string            `json:"alertname"`
	Severity     string            `json:"severity"`
	Status       string            `json:"status"`
	Labels       map[string]string `json:"labels"`
	Annotations  map[string]string `json:"annotations,omitempty"`
	StartsAt     time.Time         `json:"starts_at"`
	EndsAt       *time.Time        `json:"ends_at,omitempty"`
	GeneratorURL *string           `json:"generator_url,omitempty"`
	IncidentID   *string           `json:"incident_id,omitempty"`
	ReceivedAt   time.Time         `json:"received_at"`
	CreatedAt    time.Time         `json:"created_at"`
}

func newAlertResponse(a *ent.Alert) AlertResponse {
	return AlertResponse{
		ID:           a.ID,
		Fingerprint:  a.Fingerprint,
		Alertname:    a.Alertname,
		Severity:     string(a.Severity),
		Status:       string(a.Status),
		Labels:       a.Labels,
		Annotations:  a.Annotations,
		StartsAt:     a.StartsAt,
		EndsAt:       a.EndsAt,
		GeneratorURL: a.GeneratorURL,
		IncidentID:   a.IncidentID,
		ReceivedAt:   a.ReceivedAt,
		CreatedAt:    a.CreatedAt,
	}
}

func newAlertResponses(alerts []*ent.Alert) []AlertResponse {
	out := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, newAlertResponse(a))
	}
	return out
}

// AlertListResponse is a paginated page of alerts.
type AlertListResponse struct {
	Alerts []AlertResponse `json:"alerts"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// IncidentSummary is the list-view form of an incident, with the member
// alert count instead of the alerts themselves.
type IncidentSummary struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Status            string            `json:"status"`
	Severity          string            `json:"severity"`
	PrimaryAlertID    *string           `json:"primary_alert_id,omitempty"`
	CorrelationReason *string           `json:"correlation_reason,omitempty"`
	AffectedServices  []string          `json:"affected_services"`
	AffectedLabels    map[string]string `json:"affected_labels,omitempty"`
	StartedAt         time.Time         `json:"started_at"`
	ResolvedAt        *time.Time        `json:"resolved_at,omitempty"`
	RCACompletedAt    *time.Time        `json:"rca_completed_at,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	AlertCount        int               `json:"alert_count"`
}

func newIncidentSummary(inc services.IncidentWithCount) IncidentSummary {
	return IncidentSummary{
		ID:                inc.ID,
		Title:             inc.Title,
		Status:            string(inc.Status),
		Severity:          string(inc.Severity),
		PrimaryAlertID:    inc.PrimaryAlertID,
		CorrelationReason: inc.CorrelationReason,
		AffectedServices:  inc.AffectedServices,
		AffectedLabels:    inc.AffectedLabels,
		StartedAt:         inc.StartedAt,
		ResolvedAt:        inc.ResolvedAt,
		RCACompletedAt:    inc.RcaCompletedAt,
		CreatedAt:         inc.CreatedAt,
		UpdatedAt:         inc.UpdatedAt,
		AlertCount:        inc.AlertCount,
	}
}

// IncidentListResponse is a paginated page of incident summaries.
type IncidentListResponse struct {
	Incidents []IncidentSummary `json:"incidents"`
	Total     int               `json:"total"`
	Limit     int               `json:"limit"`
	Offset    int               `json:"offset"`
}

// IncidentResponse is the detail view of an incident with its alerts and,
// when one exists, its RCA report embedded.
type IncidentResponse struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Status            string            `json:"status"`
	Severity          string            `json:"severity"`
	PrimaryAlertID    *string           `json:"primary_alert_id,omitempty"`
	CorrelationReason *string           `json:"correlation_reason,omitempty"`
	AffectedServices  []string          `json:"affected_services"`
	AffectedLabels    map[string]string `json:"affected_labels,omitempty"`
	StartedAt         time.Time         `json:"started_at"`
	ResolvedAt        *time.Time        `json:"resolved_at,omitempty"`
	RCACompletedAt    *time.Time        `json:"rca_completed_at,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	Alerts            []AlertResponse   `json:"alerts"`
	Report            *ReportResponse   `json:"report,omitempty"`
}

func newIncidentResponse(inc *ent.Incident, alerts []*ent.Alert, report *ent.RCAReport) IncidentResponse {
	resp := IncidentResponse{
		ID:                inc.ID,
		Title:             inc.Title,
		Status:            string(inc.Status),
		Severity:          string(inc.Severity),
		PrimaryAlertID:    inc.PrimaryAlertID,
		CorrelationReason: inc.CorrelationReason,
		AffectedServices:  inc.AffectedServices,
		AffectedLabels:    inc.AffectedLabels,
		StartedAt:         inc.StartedAt,
		ResolvedAt:        inc.ResolvedAt,
		RCACompletedAt:    inc.RcaCompletedAt,
		CreatedAt:         inc.CreatedAt,
		UpdatedAt:         inc.UpdatedAt,
		Alerts:            newAlertResponses(alerts),
	}
	if report != nil {
		r := newReportResponse(report)
		resp.Report = &r
	}
	return resp
}

// ReportResponse is the full wire form of an RCA report.
type ReportResponse struct {
	ID               string           `json:"id"`
	IncidentID       string           `json:"incident_id"`
	RootCause        string           `json:"root_cause"`
	ConfidenceScore  int              `json:"confidence_score"`
	Summary          string           `json:"summary"`
	Timeline         []map[string]any `json:"timeline"`
	Evidence         map[string]any   `json:"evidence"`
	RemediationSteps []map[string]any `json:"remediation_steps"`
	Status           string           `json:"status"`
	ErrorMessage     *string          `json:"error_message,omitempty"`
	AnalysisMetadata map[string]any   `json:"analysis_metadata,omitempty"`
	StartedAt        time.Time        `json:"started_at"`
	CompletedAt      *time.Time       `json:"completed_at,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func newReportResponse(r *ent.RCAReport) ReportResponse {
	return ReportResponse{
		ID:               r.ID,
		IncidentID:       r.IncidentID,
		RootCause:        r.RootCause,
		ConfidenceScore:  r.ConfidenceScore,
		Summary:          r.Summary,
		Timeline:         r.Timeline,
		Evidence:         r.Evidence,
		RemediationSteps: r.RemediationSteps,
		Status:           string(r.Status),
		ErrorMessage:     r.ErrorMessage,
		AnalysisMetadata: r.AnalysisMetadata,
		StartedAt:        r.StartedAt,
		CompletedAt:      r.CompletedAt,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// ReportSummary is the list-view form of an RCA report.
type ReportSummary struct {
	ID              string     `json:"id"`
	IncidentID      string     `json:"incident_id"`
	RootCause       string     `json:"root_cause"`
	ConfidenceScore int        `json:"confidence_score"`
	Status          string     `json:"status"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

func newReportSummary(r *ent.RCAReport) ReportSummary {
	return ReportSummary{
		ID:              r.ID,
		IncidentID:      r.IncidentID,
		RootCause:       r.RootCause,
		ConfidenceScore: r.ConfidenceScore,
		Status:          string(r.Status),
		CompletedAt:     r.CompletedAt,
	}
}

// ReportListResponse is a paginated page of report summaries.
type ReportListResponse struct {
	Reports []ReportSummary `json:"reports"`
	Total   int             `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
}

// WebhookAcceptedResponse acknowledges an Alertmanager webhook batch.
type WebhookAcceptedResponse struct {
	Status         string   `json:"status"`
	Message        string   `json:"message"`
	AlertsReceived int      `json:"alerts_received"`
	ProcessingIDs  []string `json:"processing_ids"`
}

// ManualCorrelationRequest names the alerts to attach to an incident.
type ManualCorrelationRequest struct {
	AlertIDs []string `json:"alert_ids" binding:"required"`
}

// ManualCorrelationResponse reports a manual correlation outcome.
type ManualCorrelationResponse struct {
	Success          bool   `json:"success"`
	IncidentID       string `json:"incident_id"`
	AlertsCorrelated int    `json:"alerts_correlated"`
	Message          string `json:"message"`
}
