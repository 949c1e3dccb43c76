package heartbeat

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/helmsman-ai/helmsman/ent/agent"
	"github.com/helmsman-ai/helmsman/pkg/lifecycle"
	"github.com/helmsman-ai/helmsman/pkg/services"
)

// Monitor is the silence detector: heartbeats that never arrive produce no
// Process calls, so a background scan derives missed counts from wall-clock
// gaps and feeds them into the same escalation ladder. It also handles the
// post-failure grace window (FAILED → QUARANTINED → TERMINATED).
type Monitor struct {
	engine            *Engine
	agents            *services.AgentService
	heartbeatInterval time.Duration
	scanInterval      time.Duration
}

// NewMonitor creates a silence monitor over the engine's ladder.
func NewMonitor(engine *Engine, agents *services.AgentService, heartbeatInterval, scanInterval time.Duration) *Monitor {
	if heartbeatInterval <= 0 {
		heartbeatInterval = 30 * time.Second
	}
	if scanInterval <= 0 {
		scanInterval = heartbeatInterval
	}
	return &Monitor{
		engine:            engine,
		agents:            agents,
		heartbeatInterval: heartbeatInterval,
		scanInterval:      scanInterval,
	}
}

// Start runs the scan loop until the context is canceled.
func (m *Monitor) Start(ctx context.Context) {
	ticker := time.NewTicker(m.scanInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := m.ScanOnce(ctx); err != nil {
				slog.Error("Heartbeat silence scan failed", "error", err)
			}
		}
	}
}

// ScanOnce performs one silence scan. Exposed for tests and for the
// scenario harness.
func (m *Monitor) ScanOnce(ctx context.Context) error {
	now := time.Now()

	for _, status := range []agent.Status{agent.StatusIDLE, agent.StatusRUNNING, agent.StatusDEGRADED} {
		agents, err := m.agents.ListByStatus(ctx, status)
		if err != nil {
			return err
		}
		for _, a := range agents {
			if a.LastHeartbeatAt == nil {
				continue
			}
			elapsed := now.Sub(*a.LastHeartbeatAt)
			missed := int(elapsed / m.heartbeatInterval)
			if missed <= 0 || missed == a.ConsecutiveMissedHeartbeats {
				continue
			}
			if err := m.agents.SetMissedHeartbeats(ctx, a.ID, missed); err != nil {
				slog.Warn("Failed to record silence gap", "agent_id", a.ID, "error", err)
				continue
			}
			reason := "no heartbeat for " + elapsed.Truncate(time.Second).String()
			if msg := m.engine.escalate(ctx, a, missed, reason); msg != "" {
				slog.Info("Silence escalation", "agent_id", a.ID, "missed", missed, "note", msg)
			}
		}
	}

	return m.applyGraceWindow(ctx, now)
}

// applyGraceWindow moves agents out of FAILED after the configured grace:
// recoverable agents (and those kept alive for validation) are quarantined;
// quarantined agents that stay silent for another full grace window are
// terminated.
func (m *Monitor) applyGraceWindow(ctx context.Context, now time.Time) error {
	failed, err := m.agents.ListByStatus(ctx, agent.StatusFAILED)
	if err != nil {
		return err
	}
	for _, a := range failed {
		if !m.pastGrace(a.LastHeartbeatAt, a.UpdatedAt, now, 1) {
			continue
		}
		if _, err := m.agents.Transition(ctx, a.ID, lifecycle.StatusQuarantined, nil); err != nil &&
			!errors.Is(err, lifecycle.ErrInvalidTransition) {
			slog.Error("Failed to quarantine agent", "agent_id", a.ID, "error", err)
		}
	}

	quarantined, err := m.agents.ListByStatus(ctx, agent.StatusQUARANTINED)
	if err != nil {
		return err
	}
	for _, a := range quarantined {
		if a.KeptAliveForValidation {
			continue
		}
		if !m.pastGrace(a.LastHeartbeatAt, a.UpdatedAt, now, 2) {
			continue
		}
		if _, err := m.agents.Transition(ctx, a.ID, lifecycle.StatusTerminated, nil); err != nil &&
			!errors.Is(err, lifecycle.ErrInvalidTransition) {
			slog.Error("Failed to terminate agent", "agent_id", a.ID, "error", err)
		}
	}
	return nil
}

func (m *Monitor) pastGrace(lastHeartbeat *time.Time, updatedAt time.Time, now time.Time, multiple int) bool {
	since := updatedAt
	if lastHeartbeat != nil && lastHeartbeat.After(since) {
		since = *lastHeartbeat
	}
	return now.Sub(since) >= time.Duration(multiple)*m.engine.cfg.GraceAfter
}
