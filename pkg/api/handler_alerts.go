package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/incident-ops/rcad/pkg/models"
)

// listAlerts handles GET /api/v1/alerts.
func (s *Server) listAlerts(c *gin.Context) {
	limit, offset, err := pageParams(c)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	status, err := enumParam(c, "status", "firing", "resolved")
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

	alerts, total, err := s.alerts.List(c.Request.Context(), models.AlertFilters{
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

	c.JSON(http.StatusOK, AlertListResponse{
		Alerts: newAlertResponses(alerts),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// getAlert handles GET /api/v1/alerts/:id.
func (s *Server) getAlert(c *gin.Context) {
	id := c.Param("id")
	a, err := s.alerts.Get(c.Request.Context(), id)
	if err != nil {
		notFoundOrError(c, err, fmt.Sprintf("Alert %s not found", id))
		return
	}
	c.JSON(http.StatusOK, newAlertResponse(a))
}
