package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/incident-ops/rcad/pkg/models"
)

// alertmanagerWebhook handles POST /webhooks/alertmanager. The batch is
// processed synchronously (dedup, correlation); RCA runs are launched in the
// background per affected incident and the webhook is acknowledged
// immediately.
func (s *Server) alertmanagerWebhook(c *gin.Context) {
	var payload models.WebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, "invalid webhook payload: "+err.Error())
		return
	}
	if len(payload.Alerts) == 0 {
		badRequest(c, "webhook payload contains no alerts")
		return
	}

	alertIDs, incidentIDs := s.webhooks.ProcessWebhook(c.Request.Context(), &payload)

	if s.runner == nil {
		if len(incidentIDs) > 0 {
			slog.Warn("No LLM provider configured, skipping RCA",
				"incidents", len(incidentIDs))
		}
	} else {
		for _, incidentID := range incidentIDs {
			s.runner.Start(incidentID)
		}
	}

	if alertIDs == nil {
		alertIDs = []string{}
	}
	c.JSON(http.StatusAccepted, WebhookAcceptedResponse{
		Status:         "accepted",
		Message:        "Alert received and queued for processing",
		AlertsReceived: len(payload.Alerts),
		ProcessingIDs:  alertIDs,
	})
}
