package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/helmsman-ai/helmsman/pkg/models"
)

// createTicketHandler handles POST /api/v1/tickets.
func (s *Server) createTicketHandler(c *gin.Context) {
	var req models.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket: " + err.Error()})
		return
	}

	t, err := s.deps.Tickets.CreateTicket(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// listTicketsHandler handles GET /api/v1/tickets?limit=.
func (s *Server) listTicketsHandler(c *gin.Context) {
	limit := 100
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}

	tickets, err := s.deps.Tickets.ListTickets(c.Request.Context(), limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets, "count": len(tickets)})
}

// getTicketHandler handles GET /api/v1/tickets/:id.
func (s *Server) getTicketHandler(c *gin.Context) {
	t, err := s.deps.Tickets.GetTicket(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

type approvalRequest struct {
	Approved bool `json:"approved"`
}

// approveTicketHandler handles POST /api/v1/tickets/:id/approval.
func (s *Server) approveTicketHandler(c *gin.Context) {
	var req approvalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid approval: " + err.Error()})
		return
	}

	if err := s.deps.Tickets.SetApproval(c.Request.Context(), c.Param("id"), req.Approved); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticket_id": c.Param("id"), "approved": req.Approved})
}
