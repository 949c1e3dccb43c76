package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/agent"
	"github.com/helmsman-ai/helmsman/pkg/lifecycle"
	"github.com/helmsman-ai/helmsman/pkg/models"
)

// AgentService manages agent registration and status. Every status change
// is validated against the lifecycle state graph before it reaches the
// store; an illegal edge returns lifecycle.ErrInvalidTransition and leaves
// the row untouched.
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new AgentService.
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{client: client}
}

// Register creates an agent in SPAWNING.
func (s *AgentService) Register(ctx context.Context, req models.RegisterAgentRequest) (*ent.Agent, error) {
	if req.AgentType == "" {
		return nil, NewValidationError("agent_type", "required")
	}
	if req.AgentID == "" {
		req.AgentID = uuid.New().String()
	}
	if req.Name == "" {
		req.Name = req.AgentID
	}

	builder := s.client.Agent.Create().
		SetID(req.AgentID).
		SetName(req.Name).
		SetAgentType(req.AgentType).
		SetStatus(agent.StatusSPAWNING)

	if len(req.Capabilities) > 0 {
		builder.SetCapabilities(req.Capabilities)
	}
	if req.Capacity > 0 {
		builder.SetCapacity(req.Capacity)
	}
	if req.SandboxID != "" {
		builder.SetSandboxID(req.SandboxID)
	}
	if req.CryptoPublicKey != "" {
		builder.SetCryptoPublicKey(req.CryptoPublicKey)
	}
	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("agent %s: %w", req.AgentID, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to register agent: %w", err)
	}
	return created, nil
}

// GetAgent fetches an agent by id.
func (s *AgentService) GetAgent(ctx context.Context, id string) (*ent.Agent, error) {
	a, err := s.client.Agent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return a, nil
}

// Transition moves the agent to the given status, enforcing the state
// graph and optimistic locking. Retries internally on version conflicts.
func (s *AgentService) Transition(ctx context.Context, id string, to lifecycle.Status, mutate func(*ent.AgentUpdate)) (*ent.Agent, error) {
	for attempt := 0; attempt < staleWriteRetries; attempt++ {
		a, err := s.GetAgent(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := lifecycle.Validate(lifecycle.Status(a.Status), to); err != nil {
			return nil, err
		}
		if lifecycle.Status(a.Status) == to {
			return a, nil
		}

		upd := s.client.Agent.Update().
			Where(agent.IDEQ(id), agent.VersionEQ(a.Version)).
			SetStatus(agent.Status(to)).
			SetVersion(a.Version + 1)
		if mutate != nil {
			mutate(upd)
		}
		n, err := upd.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to transition agent %s: %w", id, err)
		}
		if n > 0 {
			return s.GetAgent(ctx, id)
		}
		// Version moved underneath us — reload and re-validate.
	}
	return nil, fmt.Errorf("transition agent %s → %s: %w", id, to, ErrStaleWrite)
}

// ListIdle returns IDLE agents, optionally filtered to those whose
// capability set covers required. An empty required set matches any agent.
func (s *AgentService) ListIdle(ctx context.Context, required []string) ([]*ent.Agent, error) {
	idle, err := s.client.Agent.Query().
		Where(agent.StatusEQ(agent.StatusIDLE)).
		Order(ent.Asc(agent.FieldRegisteredAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list idle agents: %w", err)
	}
	if len(required) == 0 {
		return idle, nil
	}
	matched := make([]*ent.Agent, 0, len(idle))
	for _, a := range idle {
		if hasCapabilities(a.Capabilities, required) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

// ApplyHeartbeatState writes the heartbeat-derived counters back to the
// agent row. Called by the heartbeat engine after accepting a reading.
func (s *AgentService) ApplyHeartbeatState(ctx context.Context, id string, seq int64, missed int, anomalyScore float64, anomalousReadings int, currentTask string) error {
	upd := s.client.Agent.UpdateOneID(id).
		SetSequenceNumber(seq).
		SetConsecutiveMissedHeartbeats(missed).
		SetAnomalyScore(anomalyScore).
		SetConsecutiveAnomalousReadings(anomalousReadings).
		SetLastHeartbeatAt(time.Now())
	if currentTask != "" {
		upd.SetCurrentTaskID(currentTask)
	} else {
		upd.ClearCurrentTaskID()
	}
	if err := upd.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("agent %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to apply heartbeat state for agent %s: %w", id, err)
	}
	return nil
}

// SetMissedHeartbeats overwrites the missed-heartbeat counter. Used by the
// silence monitor, which derives the count from wall-clock gaps when no
// heartbeats arrive at all.
func (s *AgentService) SetMissedHeartbeats(ctx context.Context, id string, missed int) error {
	err := s.client.Agent.UpdateOneID(id).SetConsecutiveMissedHeartbeats(missed).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("agent %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to set missed heartbeats for agent %s: %w", id, err)
	}
	return nil
}

// RecordCorruptHeartbeat bumps the corruption counter for an agent whose
// heartbeat failed checksum verification.
func (s *AgentService) RecordCorruptHeartbeat(ctx context.Context, id string) error {
	err := s.client.Agent.UpdateOneID(id).AddCorruptHeartbeats(1).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to record corrupt heartbeat for agent %s: %w", id, err)
	}
	return nil
}

// ListByStatus returns agents in the given status.
func (s *AgentService) ListByStatus(ctx context.Context, status agent.Status) ([]*ent.Agent, error) {
	agents, err := s.client.Agent.Query().
		Where(agent.StatusEQ(status)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents by status %s: %w", status, err)
	}
	return agents, nil
}

// hasCapabilities reports whether have covers every capability in want.
func hasCapabilities(have, want []string) bool {
	set := make(map[string]bool, len(have))
	for _, c := range have {
		set[c] = true
	}
	for _, c := range want {
		if !set[c] {
			return false
		}
	}
	return true
}
