package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helmsman-ai/helmsman/pkg/models"
)

// registerAgentHandler handles POST /api/v1/agents.
func (s *Server) registerAgentHandler(c *gin.Context) {
	var req models.RegisterAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid agent: " + err.Error()})
		return
	}

	a, err := s.deps.Agents.Register(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// getAgentHandler handles GET /api/v1/agents/:id.
func (s *Server) getAgentHandler(c *gin.Context) {
	a, err := s.deps.Agents.GetAgent(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

type approveActionRequest struct {
	Approver string `json:"approver"`
}

// approveActionHandler handles POST /api/v1/guardian/actions/:id/approve:
// a human releases a guardian action that was held for review.
func (s *Server) approveActionHandler(c *gin.Context) {
	if s.deps.Guardian == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "guardian not running on this pod"})
		return
	}

	var req approveActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid approval: " + err.Error()})
		return
	}
	if req.Approver == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "approver is required"})
		return
	}

	if err := s.deps.Guardian.ApproveAndExecute(c.Request.Context(), c.Param("id"), req.Approver); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"action_id": c.Param("id"), "status": "executed"})
}
