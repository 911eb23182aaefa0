package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/incident-ops/rcad/pkg/models"
	"github.com/incident-ops/rcad/pkg/services"
)

// listIncidents handles GET /api/v1/incidents.
func (s *Server) listIncidents(c *gin.Context) {
	limit, offset, err := pageParams(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	status, err := enumParam(c, "status", "open", "analyzing", "resolved", "closed")
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	severity, err := enumParam(c, "severity", "critical", "warning", "info")
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	since, err := timeParam(c, "since")
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	until, err := timeParam(c, "until")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	incidents, total, err := s.incidents.List(c.Request.Context(), models.IncidentFilters{
		Status:   status,
		Severity: severity,
		Service:  c.Query("service"),
		Since:    since,
		Until:    until,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	summaries := make([]IncidentSummary, 0, len(incidents))
	for _, inc := range incidents {
		summaries = append(summaries, newIncidentSummary(inc))
	}
	c.JSON(http.StatusOK, IncidentListResponse{
		Incidents: summaries,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	})
}

// getIncident handles GET /api/v1/incidents/:id, returning the incident with
// its alerts and, when analysis has run, its report.
func (s *Server) getIncident(c *gin.Context) {
	id := c.Param("id")
	inc, err := s.incidents.GetWithAlerts(c.Request.Context(), id)
	if err != nil {
		notFoundOrError(c, err, fmt.Sprintf("Incident %s not found", id))
		return
	}

	report, err := s.reports.GetByIncident(c.Request.Context(), id)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newIncidentResponse(inc, inc.Edges.Alerts, report))
}

// listIncidentAlerts handles GET /api/v1/incidents/:id/alerts.
func (s *Server) listIncidentAlerts(c *gin.Context) {
	id := c.Param("id")
	if _, err := s.incidents.Get(c.Request.Context(), id); err != nil {
		notFoundOrError(c, err, fmt.Sprintf("Incident %s not found", id))
		return
	}

	alerts, err := s.alerts.ListByIncident(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newAlertResponses(alerts))
}

// getIncidentReport handles GET /api/v1/incidents/:id/report.
func (s *Server) getIncidentReport(c *gin.Context) {
	id := c.Param("id")
	if _, err := s.incidents.Get(c.Request.Context(), id); err != nil {
		notFoundOrError(c, err, fmt.Sprintf("Incident %s not found", id))
		return
	}

	report, err := s.reports.GetByIncident(c.Request.Context(), id)
	if err != nil {
		notFoundOrError(c, err, fmt.Sprintf("No RCA report found for incident %s", id))
		return
	}
	c.JSON(http.StatusOK, newReportResponse(report))
}

// updateStatusRequest is the body for PATCH /api/v1/incidents/:id/status.
type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// updateIncidentStatus handles PATCH /api/v1/incidents/:id/status.
func (s *Server) updateIncidentStatus(c *gin.Context) {
	id := c.Param("id")

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "status field is required")
		return
	}
	switch models.IncidentStatus(req.Status) {
	case models.IncidentOpen, models.IncidentAnalyzing, models.IncidentResolved, models.IncidentClosed:
	default:
		badRequest(c, fmt.Sprintf("invalid status %q", req.Status))
		return
	}

	inc, err := s.incidents.UpdateStatus(c.Request.Context(), id, models.IncidentStatus(req.Status))
	if err != nil {
		notFoundOrError(c, err, fmt.Sprintf("Incident %s not found", id))
		return
	}

	count, err := s.incidents.AlertCount(c.Request.Context(), id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newIncidentSummary(services.IncidentWithCount{Incident: inc, AlertCount: count}))
}

// correlateIncident handles POST /api/v1/incidents/:id/correlate.
func (s *Server) correlateIncident(c *gin.Context) {
	id := c.Param("id")

	var req ManualCorrelationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "alert_ids field is required")
		return
	}

	_, moved, err := s.incidents.ManualCorrelate(c.Request.Context(), id, req.AlertIDs)
	if err != nil {
		notFoundOrError(c, err, fmt.Sprintf("Incident %s not found", id))
		return
	}

	c.JSON(http.StatusOK, ManualCorrelationResponse{
		Success:          true,
		IncidentID:       id,
		AlertsCorrelated: moved,
		Message:          fmt.Sprintf("Successfully correlated %d alert(s) with incident", moved),
	})
}

// analyzeIncident handles POST /api/v1/incidents/:id/analyze, launching a
// fresh RCA run for the incident.
func (s *Server) analyzeIncident(c *gin.Context) {
	id := c.Param("id")
	if _, err := s.incidents.Get(c.Request.Context(), id); err != nil {
		notFoundOrError(c, err, fmt.Sprintf("Incident %s not found", id))
		return
	}

	if s.runner == nil {
		c.JSON(http.StatusServiceUnavailable, errorBody{
			Error: "analysis unavailable: no LLM provider configured",
		})
		return
	}

	s.runner.Start(id)
	c.JSON(http.StatusAccepted, gin.H{
		"status":      "accepted",
		"incident_id": id,
		"message":     "RCA analysis queued",
	})
}
