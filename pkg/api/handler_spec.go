package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helmsman-ai/helmsman/pkg/models"
)

// createSpecHandler handles POST /api/v1/specs. New specs start in the
// explore phase.
func (s *Server) createSpecHandler(c *gin.Context) {
	var req models.CreateSpecRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid spec: " + err.Error()})
		return
	}

	sp, err := s.deps.Specs.CreateSpec(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sp)
}

// getSpecHandler handles GET /api/v1/specs/:id.
func (s *Server) getSpecHandler(c *gin.Context) {
	sp, err := s.deps.Specs.GetSpec(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}
