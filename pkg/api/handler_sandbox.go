package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/helmsman-ai/helmsman/pkg/models"
)

const pollBatchSize = 50

// appendEventHandler handles POST /api/v1/sandbox/events. Replaying an
// event id returns the existing row, so worker retries are safe.
func (s *Server) appendEventHandler(c *gin.Context) {
	var report models.SandboxEventReport
	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event report: " + err.Error()})
		return
	}

	ev, err := s.deps.Events.Append(c.Request.Context(), report)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"id": ev.ID, "event_key": report.ID})
}

// queueMessageHandler handles POST /api/v1/sandbox/:sandbox_id/messages.
func (s *Server) queueMessageHandler(c *gin.Context) {
	var req models.QueueMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message: " + err.Error()})
		return
	}

	msg, err := s.deps.Messages.Queue(c.Request.Context(), c.Param("sandbox_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": msg.ID, "cursor": msg.ID})
}

// pollMessagesHandler handles GET /api/v1/sandbox/:sandbox_id/messages.
// The supplied cursor acknowledges everything the worker has already
// delivered; the request then holds up to wait seconds for messages past it.
func (s *Server) pollMessagesHandler(c *gin.Context) {
	sandboxID := c.Param("sandbox_id")
	ctx := c.Request.Context()

	var cursor int64
	if v := c.Query("cursor"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cursor"})
			return
		}
		cursor = parsed
	}

	wait := time.Duration(0)
	if v := c.Query("wait"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wait"})
			return
		}
		wait = time.Duration(seconds) * time.Second
	}
	if wait > s.cfg.MaxLongPollWait {
		wait = s.cfg.MaxLongPollWait
	}

	// Polling with cursor N means every message up to N has been applied.
	if cursor > 0 {
		if err := s.deps.Messages.Ack(ctx, sandboxID, cursor); err != nil {
			writeServiceError(c, err)
			return
		}
	}

	deadline := time.Now().Add(wait)
	for {
		resp, err := s.deps.Messages.Poll(ctx, sandboxID, cursor, pollBatchSize)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		if len(resp.Messages) > 0 || !time.Now().Before(deadline) {
			c.JSON(http.StatusOK, resp)
			return
		}

		select {
		case <-ctx.Done():
			c.JSON(http.StatusOK, models.MessagePollResponse{NextCursor: cursor})
			return
		case <-time.After(s.cfg.LongPollTick):
		}
	}
}

// syncSummaryHandler handles POST /api/v1/sandbox/sync-summary: the final
// phase_data upload checkpoints the spec at its current phase.
func (s *Server) syncSummaryHandler(c *gin.Context) {
	var summary models.SyncSummary
	if err := c.ShouldBindJSON(&summary); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sync summary: " + err.Error()})
		return
	}
	if summary.SpecID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "spec_id is required"})
		return
	}

	sp, err := s.deps.Specs.GetSpec(c.Request.Context(), summary.SpecID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	phase := string(sp.CurrentPhase)
	if err := s.deps.Specs.SaveCheckpoint(c.Request.Context(), summary.SpecID, phase, summary.PhaseData, ""); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"spec_id": summary.SpecID, "phase": phase})
}

// registerConversationHandler handles POST /api/v1/conversations/register.
func (s *Server) registerConversationHandler(c *gin.Context) {
	var req models.RegisterConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration: " + err.Error()})
		return
	}
	if req.TaskID == "" || req.SandboxID == "" || req.ConversationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task_id, sandbox_id, and conversation_id are required"})
		return
	}

	if err := s.deps.Tasks.RegisterConversation(c.Request.Context(), req.TaskID, req.SandboxID, req.ConversationID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
