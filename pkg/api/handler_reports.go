package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/incident-ops/rcad/pkg/models"
)

// listReports handles GET /api/v1/reports.
func (s *Server) listReports(c *gin.Context) {
	limit, offset, err := pageParams(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	status, err := enumParam(c, "status", "pending", "complete", "failed")
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

	var minConfidence *int
	if raw := c.Query("min_confidence"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > 100 {
			badRequest(c, fmt.Sprintf("invalid min_confidence %q", raw))
			return
		}
		minConfidence = &n
	}

	reports, total, err := s.reports.List(c.Request.Context(), models.ReportFilters{
		Status:        status,
		Service:       c.Query("service"),
		Severity:      severity,
		MinConfidence: minConfidence,
		Since:         since,
		Until:         until,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	summaries := make([]ReportSummary, 0, len(reports))
	for _, r := range reports {
		summaries = append(summaries, newReportSummary(r))
	}
	c.JSON(http.StatusOK, ReportListResponse{
		Reports: summaries,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

// getReport handles GET /api/v1/reports/:id.
func (s *Server) getReport(c *gin.Context) {
	id := c.Param("id")
	report, err := s.reports.Get(c.Request.Context(), id)
	if err != nil {
		notFoundOrError(c, err, fmt.Sprintf("Report %s not found", id))
		return
	}
	c.JSON(http.StatusOK, newReportResponse(report))
}

// exportReport handles GET /api/v1/reports/:id/export?format=json|markdown.
func (s *Server) exportReport(c *gin.Context) {
	id := c.Param("id")
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "markdown" {
		badRequest(c, fmt.Sprintf("invalid format %q, expected json or markdown", format))
		return
	}

	report, err := s.reports.Get(c.Request.Context(), id)
	if err != nil {
		notFoundOrError(c, err, fmt.Sprintf("Report %s not found", id))
		return
	}

	if format == "markdown" {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=rca-report-%s.md", id))
		c.Data(http.StatusOK, "text/markdown; charset=utf-8",
			[]byte(s.reports.FormatAsMarkdown(report)))
		return
	}
	c.JSON(http.StatusOK, newReportResponse(report))
}
