// Package heartbeat implements the heartbeat protocol and anomaly engine:
// it receives periodic agent vitals, detects sequence gaps and baseline
// drift, computes composite anomaly scores, and advances the agent state
// machine through the escalation ladder.
package heartbeat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/pkg/lifecycle"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/services"
)

// Escalation thresholds over consecutive missed heartbeats (or consecutive
// anomalous readings — both feed the same ladder).
type EscalationConfig struct {
	Warn       int           `yaml:"warn"`
	Degrade    int           `yaml:"degrade"`
	Guardian   int           `yaml:"guardian"`
	Fail       int           `yaml:"fail"`
	GraceAfter time.Duration `yaml:"grace_after_failure"`

	// AnomalyThreshold is the score at or above which a reading counts as
	// anomalous.
	AnomalyThreshold float64 `yaml:"anomaly_threshold"`

	// ExpectedInterval is the cadence workers emit heartbeats at; the
	// silence monitor derives missed counts from wall-clock gaps of this
	// size. ScanInterval is how often the monitor sweeps.
	ExpectedInterval time.Duration `yaml:"expected_interval"`
	ScanInterval     time.Duration `yaml:"scan_interval"`
}

// DefaultEscalationConfig returns the built-in ladder: 1 warn, 2–3
// DEGRADED, 4–5 guardian intervention, ≥6 FAILED.
func DefaultEscalationConfig() EscalationConfig {
	return EscalationConfig{
		Warn:             1,
		Degrade:          2,
		Guardian:         4,
		Fail:             6,
		GraceAfter:       5 * time.Minute,
		AnomalyThreshold: 0.7,
		ExpectedInterval: 30 * time.Second,
		ScanInterval:     30 * time.Second,
	}
}

// Intervener is how the engine asks the guardian for help. Implemented by
// guardian.Guardian.
type Intervener interface {
	RequestIntervention(ctx context.Context, agentID, reason string, severity int) error
}

// Engine processes heartbeats and drives the escalation ladder.
type Engine struct {
	agents    *services.AgentService
	baselines *services.BaselineService
	guardian  Intervener
	cfg       EscalationConfig

	// Write-through cache over the baseline table; entries expire so a
	// multi-replica deployment converges on the stored values.
	cache *lru.LRU[string, services.BaselineStats]
}

// NewEngine creates a heartbeat engine. guardian may be nil (escalation
// still transitions agent status, but no interventions are requested).
func NewEngine(agents *services.AgentService, baselines *services.BaselineService, guardian Intervener, cfg EscalationConfig) *Engine {
	return &Engine{
		agents:    agents,
		baselines: baselines,
		guardian:  guardian,
		cfg:       cfg,
		cache:     lru.NewLRU[string, services.BaselineStats](1024, nil, 5*time.Minute),
	}
}

// Process handles one heartbeat and returns the acknowledgment.
//
// Protocol, in order: checksum verification (corrupt heartbeats are counted
// and dropped), replay detection (acknowledged but not applied), gap
// accounting, baseline update, anomaly scoring, escalation.
func (e *Engine) Process(ctx context.Context, hb models.Heartbeat) (models.HeartbeatAck, error) {
	ack := models.HeartbeatAck{
		AgentID:        hb.AgentID,
		SequenceNumber: hb.SequenceNumber,
		Timestamp:      time.Now(),
	}

	if !hb.VerifyChecksum() {
		if err := e.agents.RecordCorruptHeartbeat(ctx, hb.AgentID); err != nil {
			slog.Warn("Failed to record corrupt heartbeat", "agent_id", hb.AgentID, "error", err)
		}
		ack.Message = "checksum verification failed"
		return ack, fmt.Errorf("heartbeat from %s seq %d: checksum verification failed", hb.AgentID, hb.SequenceNumber)
	}

	agent, err := e.agents.GetAgent(ctx, hb.AgentID)
	if err != nil {
		ack.Message = "unknown agent"
		return ack, err
	}

	// Replay: acknowledged but never applied.
	if hb.SequenceNumber <= agent.SequenceNumber {
		ack.Received = true
		ack.Message = "replay discarded"
		return ack, nil
	}

	// Gap accounting: the expected sequence is last accepted + 1.
	gap := int(hb.SequenceNumber - agent.SequenceNumber - 1)
	missed := agent.ConsecutiveMissedHeartbeats
	if gap > 0 {
		missed += gap
	} else {
		missed = 0
	}

	// Baselines and anomaly score.
	phase := hb.Metrics.Phase
	if phase == "" {
		phase = "default"
	}
	base := e.loadBaseline(ctx, agent.AgentType, phase)
	score := AnomalyScore(hb.Metrics, base)
	e.storeBaseline(ctx, agent.AgentType, phase, UpdateBaseline(base, hb.Metrics))

	anomalous := agent.ConsecutiveAnomalousReadings
	if score >= e.cfg.AnomalyThreshold {
		anomalous++
	} else {
		anomalous = 0
	}

	if err := e.agents.ApplyHeartbeatState(ctx, hb.AgentID, hb.SequenceNumber, missed, score, anomalous, hb.CurrentTaskID); err != nil {
		ack.Message = "failed to apply heartbeat"
		return ack, err
	}

	// Both missed-heartbeat and anomalous-reading counters climb the same
	// ladder; escalate on whichever is worse.
	severity := missed
	reason := fmt.Sprintf("%d consecutive missed heartbeats", missed)
	if anomalous > severity {
		severity = anomalous
		reason = fmt.Sprintf("%d consecutive anomalous readings (score %.2f)", anomalous, score)
	}
	if msg := e.escalate(ctx, agent, severity, reason); msg != "" {
		ack.Message = msg
	}

	ack.Received = true
	return ack, nil
}

// escalate walks the ladder for the given severity and returns a note for
// the heartbeat ack, if any.
func (e *Engine) escalate(ctx context.Context, agent *ent.Agent, severity int, reason string) string {
	switch {
	case severity >= e.cfg.Fail:
		if _, err := e.agents.Transition(ctx, agent.ID, lifecycle.StatusFailed, nil); err != nil && !errors.Is(err, lifecycle.ErrInvalidTransition) {
			slog.Error("Failed to fail agent", "agent_id", agent.ID, "error", err)
		}
		slog.Error("Agent failed", "agent_id", agent.ID, "reason", reason)
		return "agent marked FAILED: " + reason
	case severity >= e.cfg.Guardian:
		if e.guardian != nil {
			if err := e.guardian.RequestIntervention(ctx, agent.ID, reason, severity); err != nil {
				slog.Error("Guardian intervention request failed", "agent_id", agent.ID, "error", err)
			}
		}
		return "guardian intervention requested: " + reason
	case severity >= e.cfg.Degrade:
		if _, err := e.agents.Transition(ctx, agent.ID, lifecycle.StatusDegraded, nil); err != nil && !errors.Is(err, lifecycle.ErrInvalidTransition) {
			slog.Error("Failed to degrade agent", "agent_id", agent.ID, "error", err)
		}
		return "agent marked DEGRADED: " + reason
	case severity >= e.cfg.Warn:
		slog.Warn("Agent heartbeat warning", "agent_id", agent.ID, "reason", reason)
		return "warning: " + reason
	}
	return ""
}

func (e *Engine) loadBaseline(ctx context.Context, agentType, phase string) services.BaselineStats {
	key := agentType + "/" + phase
	if stats, ok := e.cache.Get(key); ok {
		return stats
	}
	stats, err := e.baselines.Get(ctx, agentType, phase)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			slog.Warn("Failed to load baseline", "key", key, "error", err)
		}
		return services.BaselineStats{}
	}
	e.cache.Add(key, stats)
	return stats
}

func (e *Engine) storeBaseline(ctx context.Context, agentType, phase string, stats services.BaselineStats) {
	key := agentType + "/" + phase
	e.cache.Add(key, stats)
	if err := e.baselines.Put(ctx, agentType, phase, stats); err != nil {
		slog.Warn("Failed to persist baseline", "key", key, "error", err)
	}
}
