package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/specdoc"
	"github.com/helmsman-ai/helmsman/ent/task"
	"github.com/helmsman-ai/helmsman/pkg/database"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/orchestrator"
	"github.com/helmsman-ai/helmsman/pkg/services"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

type fakeEvents struct {
	reports []models.SandboxEventReport
	err     error
}

func (f *fakeEvents) Append(_ context.Context, report models.SandboxEventReport) (*ent.SandboxEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.reports = append(f.reports, report)
	return &ent.SandboxEvent{ID: int64(len(f.reports))}, nil
}

type fakeMessages struct {
	queued    []models.QueueMessageRequest
	responses []models.MessagePollResponse
	acked     []int64
	polls     int
}

func (f *fakeMessages) Queue(_ context.Context, _ string, req models.QueueMessageRequest) (*ent.SandboxMessage, error) {
	f.queued = append(f.queued, req)
	return &ent.SandboxMessage{ID: int64(len(f.queued))}, nil
}

func (f *fakeMessages) Poll(_ context.Context, _ string, cursor int64, _ int) (models.MessagePollResponse, error) {
	defer func() { f.polls++ }()
	if f.polls < len(f.responses) {
		return f.responses[f.polls], nil
	}
	return models.MessagePollResponse{NextCursor: cursor}, nil
}

func (f *fakeMessages) Ack(_ context.Context, _ string, cursor int64) error {
	f.acked = append(f.acked, cursor)
	return nil
}

type fakeTasks struct {
	tasks         map[string]*ent.Task
	canceled      []string
	cancelErr     error
	conversations []string
}

func (f *fakeTasks) CreateTask(_ context.Context, req models.CreateTaskRequest) (*ent.Task, error) {
	if req.TaskID == "" {
		return nil, services.NewValidationError("task_id", "is required")
	}
	return &ent.Task{ID: req.TaskID, Title: req.Title}, nil
}

func (f *fakeTasks) GetTask(_ context.Context, id string) (*ent.Task, error) {
	if t, ok := f.tasks[id]; ok {
		return t, nil
	}
	return nil, services.ErrNotFound
}

func (f *fakeTasks) ListByStatus(_ context.Context, status task.Status, _ int) ([]*ent.Task, error) {
	var out []*ent.Task
	for _, t := range f.tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTasks) MarkCanceled(_ context.Context, id, _ string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.canceled = append(f.canceled, id)
	return nil
}

func (f *fakeTasks) RegisterConversation(_ context.Context, taskID, sandboxID, conversationID string) error {
	if _, ok := f.tasks[taskID]; !ok {
		return services.ErrNotFound
	}
	f.conversations = append(f.conversations, taskID+"/"+sandboxID+"/"+conversationID)
	return nil
}

type fakeTickets struct {
	tickets   map[string]*ent.Ticket
	approvals map[string]bool
}

func (f *fakeTickets) CreateTicket(_ context.Context, req models.CreateTicketRequest) (*ent.Ticket, error) {
	if req.TicketID == "" {
		return nil, services.NewValidationError("ticket_id", "is required")
	}
	return &ent.Ticket{ID: req.TicketID, Title: req.Title}, nil
}

func (f *fakeTickets) GetTicket(_ context.Context, id string) (*ent.Ticket, error) {
	if t, ok := f.tickets[id]; ok {
		return t, nil
	}
	return nil, services.ErrNotFound
}

func (f *fakeTickets) ListTickets(_ context.Context, limit int) ([]*ent.Ticket, error) {
	out := make([]*ent.Ticket, 0, len(f.tickets))
	for _, t := range f.tickets {
		if len(out) == limit {
			break
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTickets) SetApproval(_ context.Context, id string, approved bool) error {
	if _, ok := f.tickets[id]; !ok {
		return services.ErrNotFound
	}
	f.approvals[id] = approved
	return nil
}

type checkpoint struct {
	SpecID string
	Phase  string
	Data   map[string]interface{}
}

type fakeSpecs struct {
	specs       map[string]*ent.SpecDoc
	checkpoints []checkpoint
}

func (f *fakeSpecs) CreateSpec(_ context.Context, req models.CreateSpecRequest) (*ent.SpecDoc, error) {
	if req.SpecID == "" {
		return nil, services.NewValidationError("spec_id", "is required")
	}
	return &ent.SpecDoc{ID: req.SpecID, CurrentPhase: specdoc.CurrentPhaseExplore}, nil
}

func (f *fakeSpecs) GetSpec(_ context.Context, id string) (*ent.SpecDoc, error) {
	if sp, ok := f.specs[id]; ok {
		return sp, nil
	}
	return nil, services.ErrNotFound
}

func (f *fakeSpecs) SaveCheckpoint(_ context.Context, id, phase string, phaseData map[string]interface{}, _ string) error {
	f.checkpoints = append(f.checkpoints, checkpoint{SpecID: id, Phase: phase, Data: phaseData})
	return nil
}

type fakeAgents struct {
	agents map[string]*ent.Agent
}

func (f *fakeAgents) Register(_ context.Context, req models.RegisterAgentRequest) (*ent.Agent, error) {
	if req.AgentID == "" {
		return nil, services.NewValidationError("agent_id", "is required")
	}
	return &ent.Agent{ID: req.AgentID, Name: req.Name}, nil
}

func (f *fakeAgents) GetAgent(_ context.Context, id string) (*ent.Agent, error) {
	if a, ok := f.agents[id]; ok {
		return a, nil
	}
	return nil, services.ErrNotFound
}

type fakeHeartbeats struct {
	received []models.Heartbeat
	err      error
}

func (f *fakeHeartbeats) Process(_ context.Context, hb models.Heartbeat) (models.HeartbeatAck, error) {
	if f.err != nil {
		return models.HeartbeatAck{}, f.err
	}
	f.received = append(f.received, hb)
	return models.HeartbeatAck{
		AgentID:        hb.AgentID,
		SequenceNumber: hb.SequenceNumber,
		Timestamp:      time.Now(),
		Received:       true,
	}, nil
}

type fakePool struct {
	canceled     []string
	cancelResult bool
	health       *orchestrator.PoolHealth
}

func (f *fakePool) CancelTask(taskID string) bool {
	f.canceled = append(f.canceled, taskID)
	return f.cancelResult
}

func (f *fakePool) Health() *orchestrator.PoolHealth {
	if f.health != nil {
		return f.health
	}
	return &orchestrator.PoolHealth{IsHealthy: true, DBReachable: true}
}

type fakeDB struct {
	report *database.HealthReport
}

func (f *fakeDB) Health(context.Context) *database.HealthReport {
	if f.report != nil {
		return f.report
	}
	return &database.HealthReport{Healthy: true}
}

type fakeGuardian struct {
	approved []string
	err      error
}

func (f *fakeGuardian) ApproveAndExecute(_ context.Context, actionID, approver string) error {
	if f.err != nil {
		return f.err
	}
	f.approved = append(f.approved, actionID+"/"+approver)
	return nil
}

type fixture struct {
	events     *fakeEvents
	messages   *fakeMessages
	tasks      *fakeTasks
	tickets    *fakeTickets
	specs      *fakeSpecs
	agents     *fakeAgents
	heartbeats *fakeHeartbeats
	db         *fakeDB
	pool       *fakePool
	guardian   *fakeGuardian
	router     http.Handler
}

func newFixture(mutate ...func(*Config)) *fixture {
	f := &fixture{
		events:     &fakeEvents{},
		messages:   &fakeMessages{},
		tasks:      &fakeTasks{tasks: map[string]*ent.Task{}},
		tickets:    &fakeTickets{tickets: map[string]*ent.Ticket{}, approvals: map[string]bool{}},
		specs:      &fakeSpecs{specs: map[string]*ent.SpecDoc{}},
		agents:     &fakeAgents{agents: map[string]*ent.Agent{}},
		heartbeats: &fakeHeartbeats{},
		db:         &fakeDB{},
		pool:       &fakePool{},
		guardian:   &fakeGuardian{},
	}

	cfg := DefaultConfig()
	cfg.LongPollTick = 2 * time.Millisecond
	for _, m := range mutate {
		m(&cfg)
	}

	srv := NewServer(cfg, Deps{
		Events:     f.events,
		Messages:   f.messages,
		Tasks:      f.tasks,
		Tickets:    f.tickets,
		Specs:      f.specs,
		Agents:     f.agents,
		Heartbeats: f.heartbeats,
		DB:         f.db,
		Pool:       f.pool,
		Guardian:   f.guardian,
	})
	f.router = srv.Router()
	return f
}

func (f *fixture) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestAuthRejectsMissingKey(t *testing.T) {
	f := newFixture(func(c *Config) { c.APIKey = "secret" })

	rec := f.do(t, http.MethodGet, "/api/v1/tasks/TSK-001", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/tasks/TSK-001", nil, "Authorization", "Bearer wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthAcceptsValidKey(t *testing.T) {
	f := newFixture(func(c *Config) { c.APIKey = "secret" })
	f.tasks.tasks["TSK-001"] = &ent.Task{ID: "TSK-001"}

	rec := f.do(t, http.MethodGet, "/api/v1/tasks/TSK-001", nil, "Authorization", "Bearer secret")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthSkipsAuth(t *testing.T) {
	f := newFixture(func(c *Config) { c.APIKey = "secret" })

	rec := f.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestHealthReportsUnhealthyPool(t *testing.T) {
	f := newFixture()
	f.pool.health = &orchestrator.PoolHealth{IsHealthy: false, DBError: "connection refused"}

	rec := f.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthReportsUnreachableDatabase(t *testing.T) {
	f := newFixture()
	f.db.report = &database.HealthReport{Healthy: false, Error: "dial tcp: connection refused"}

	rec := f.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}
