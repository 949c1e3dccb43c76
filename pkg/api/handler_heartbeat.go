package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helmsman-ai/helmsman/pkg/models"
)

// heartbeatHandler handles POST /api/v1/heartbeats. Replays and corrupt
// checksums still get a 200 ack (Received reports what happened); only
// unknown agents and storage failures are errors.
func (s *Server) heartbeatHandler(c *gin.Context) {
	var hb models.Heartbeat
	if err := c.ShouldBindJSON(&hb); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid heartbeat: " + err.Error()})
		return
	}
	if hb.AgentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "agent_id is required"})
		return
	}

	ack, err := s.deps.Heartbeats.Process(c.Request.Context(), hb)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}
