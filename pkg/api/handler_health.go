package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helmsman-ai/helmsman/pkg/version"
)

// healthHandler handles GET /health. Unauthenticated; load balancers and
// sibling pods probe it.
func (s *Server) healthHandler(c *gin.Context) {
	resp := gin.H{"status": "healthy", "version": version.Full()}

	if s.deps.DB != nil {
		db := s.deps.DB.Health(c.Request.Context())
		resp["database"] = db
		if !db.Healthy {
			resp["status"] = "unhealthy"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}

	if s.deps.Pool != nil {
		health := s.deps.Pool.Health()
		resp["pool"] = health
		if !health.IsHealthy {
			resp["status"] = "unhealthy"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}

	c.JSON(http.StatusOK, resp)
}
