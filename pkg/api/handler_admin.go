package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// resetStuck handles POST /api/v1/admin/incidents/reset-stuck, returning
// every incident stuck in analyzing back to open. Recovery hatch for runs
// killed before they could clean up.
func (s *Server) resetStuck(c *gin.Context) {
	ids, err := s.incidents.ResetStuck(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"reset_count":  len(ids),
		"incident_ids": ids,
	})
}

// cacheStats handles GET /api/v1/cache/stats, exposing per-backend query
// cache counters.
func (s *Server) cacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.cache.Stats())
}
