// Package api exposes the orchestrator's HTTP surface: the sandbox
// callback endpoints workers report through, the operator-facing entity
// endpoints, and the websocket event bridge.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/task"
	"github.com/helmsman-ai/helmsman/pkg/bus"
	"github.com/helmsman-ai/helmsman/pkg/database"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/orchestrator"
)

// EventRecorder appends sandbox events, idempotent by event id.
type EventRecorder interface {
	Append(ctx context.Context, report models.SandboxEventReport) (*ent.SandboxEvent, error)
}

// MessageQueue is the injected-message surface of services.MessageService.
type MessageQueue interface {
	Queue(ctx context.Context, sandboxID string, req models.QueueMessageRequest) (*ent.SandboxMessage, error)
	Poll(ctx context.Context, sandboxID string, cursor int64, limit int) (models.MessagePollResponse, error)
	Ack(ctx context.Context, sandboxID string, cursor int64) error
}

// TaskDirectory is the task surface the API needs.
type TaskDirectory interface {
	CreateTask(ctx context.Context, req models.CreateTaskRequest) (*ent.Task, error)
	GetTask(ctx context.Context, id string) (*ent.Task, error)
	ListByStatus(ctx context.Context, status task.Status, limit int) ([]*ent.Task, error)
	MarkCanceled(ctx context.Context, id, reason string) error
	RegisterConversation(ctx context.Context, taskID, sandboxID, conversationID string) error
}

// TicketDirectory is the ticket surface the API needs.
type TicketDirectory interface {
	CreateTicket(ctx context.Context, req models.CreateTicketRequest) (*ent.Ticket, error)
	GetTicket(ctx context.Context, id string) (*ent.Ticket, error)
	ListTickets(ctx context.Context, limit int) ([]*ent.Ticket, error)
	SetApproval(ctx context.Context, id string, approved bool) error
}

// SpecStore is the spec surface the API needs.
type SpecStore interface {
	CreateSpec(ctx context.Context, req models.CreateSpecRequest) (*ent.SpecDoc, error)
	GetSpec(ctx context.Context, id string) (*ent.SpecDoc, error)
	SaveCheckpoint(ctx context.Context, id, phase string, phaseData map[string]interface{}, transcriptB64 string) error
}

// AgentRegistry is the agent surface the API needs.
type AgentRegistry interface {
	Register(ctx context.Context, req models.RegisterAgentRequest) (*ent.Agent, error)
	GetAgent(ctx context.Context, id string) (*ent.Agent, error)
}

// HeartbeatProcessor accepts agent heartbeats. Implemented by
// heartbeat.Engine.
type HeartbeatProcessor interface {
	Process(ctx context.Context, hb models.Heartbeat) (models.HeartbeatAck, error)
}

// Pool is the worker-pool surface the API needs: in-pod cancellation and
// health reporting.
type Pool interface {
	CancelTask(taskID string) bool
	Health() *orchestrator.PoolHealth
}

// DBProbe reports database connectivity for the health endpoint.
// Implemented by database.Client.
type DBProbe interface {
	Health(ctx context.Context) *database.HealthReport
}

// ActionApprover executes guardian actions that were held for review.
// Implemented by guardian.Guardian.
type ActionApprover interface {
	ApproveAndExecute(ctx context.Context, actionID, approver string) error
}

// Config holds the server's listen address, auth, and long-poll tuning.
type Config struct {
	Addr            string        `yaml:"addr"`
	APIKey          string        `yaml:"api_key"`
	LongPollTick    time.Duration `yaml:"long_poll_tick"`
	MaxLongPollWait time.Duration `yaml:"max_long_poll_wait"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DefaultConfig returns the server defaults.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		LongPollTick:    500 * time.Millisecond,
		MaxLongPollWait: 30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Deps carries the server's collaborators. DB, Pool, Guardian, and WS are
// optional; their endpoints degrade when nil.
type Deps struct {
	Events     EventRecorder
	Messages   MessageQueue
	Tasks      TaskDirectory
	Tickets    TicketDirectory
	Specs      SpecStore
	Agents     AgentRegistry
	Heartbeats HeartbeatProcessor
	DB         DBProbe
	Pool       Pool
	Guardian   ActionApprover
	WS         *bus.ConnectionManager
}

// Server is the orchestrator's HTTP server.
type Server struct {
	cfg  Config
	deps Deps
	http *http.Server
}

// NewServer creates a server; call Router to mount it or Start to listen.
func NewServer(cfg Config, deps Deps) *Server {
	if cfg.LongPollTick <= 0 {
		cfg.LongPollTick = 500 * time.Millisecond
	}
	if cfg.MaxLongPollWait <= 0 {
		cfg.MaxLongPollWait = 30 * time.Second
	}
	return &Server{cfg: cfg, deps: deps}
}

// Router builds the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), securityHeaders())

	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1", bearerAuth(s.cfg.APIKey))

	// Worker callback surface.
	v1.POST("/sandbox/events", s.appendEventHandler)
	v1.POST("/sandbox/:sandbox_id/messages", s.queueMessageHandler)
	v1.GET("/sandbox/:sandbox_id/messages", s.pollMessagesHandler)
	v1.POST("/sandbox/sync-summary", s.syncSummaryHandler)
	v1.POST("/heartbeats", s.heartbeatHandler)
	v1.POST("/conversations/register", s.registerConversationHandler)

	// Operator surface.
	v1.POST("/tickets", s.createTicketHandler)
	v1.GET("/tickets", s.listTicketsHandler)
	v1.GET("/tickets/:id", s.getTicketHandler)
	v1.POST("/tickets/:id/approval", s.approveTicketHandler)
	v1.POST("/tasks", s.createTaskHandler)
	v1.GET("/tasks", s.listTasksHandler)
	v1.GET("/tasks/:id", s.getTaskHandler)
	v1.POST("/tasks/:id/cancel", s.cancelTaskHandler)
	v1.POST("/specs", s.createSpecHandler)
	v1.GET("/specs/:id", s.getSpecHandler)
	v1.POST("/agents", s.registerAgentHandler)
	v1.GET("/agents/:id", s.getAgentHandler)
	v1.POST("/guardian/actions/:id/approve", s.approveActionHandler)

	v1.GET("/ws", s.wsHandler)

	return r
}

// Start listens until ctx is canceled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	s.http = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("API server listening", "addr", s.cfg.Addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("api server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("api server shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
