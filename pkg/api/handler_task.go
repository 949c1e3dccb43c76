package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/helmsman-ai/helmsman/ent/task"
	"github.com/helmsman-ai/helmsman/pkg/models"
)

// createTaskHandler handles POST /api/v1/tasks.
func (s *Server) createTaskHandler(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task: " + err.Error()})
		return
	}

	t, err := s.deps.Tasks.CreateTask(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// getTaskHandler handles GET /api/v1/tasks/:id.
func (s *Server) getTaskHandler(c *gin.Context) {
	t, err := s.deps.Tasks.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// listTasksHandler handles GET /api/v1/tasks?status=&limit=.
func (s *Server) listTasksHandler(c *gin.Context) {
	status := task.Status(c.DefaultQuery("status", string(task.StatusPending)))
	if err := task.StatusValidator(status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + string(status)})
		return
	}

	limit := 100
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}

	tasks, err := s.deps.Tasks.ListByStatus(c.Request.Context(), status, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "count": len(tasks)})
}

// cancelTaskHandler handles POST /api/v1/tasks/:id/cancel. The DB
// transition and the in-pod worker cancellation are both attempted; the
// request succeeds if either took effect.
func (s *Server) cancelTaskHandler(c *gin.Context) {
	taskID := c.Param("id")

	markErr := s.deps.Tasks.MarkCanceled(c.Request.Context(), taskID, "canceled via API")

	poolCancelled := false
	if s.deps.Pool != nil {
		poolCancelled = s.deps.Pool.CancelTask(taskID)
	}

	if markErr != nil && !poolCancelled {
		writeServiceError(c, markErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task_id": taskID, "message": "cancellation requested"})
}
