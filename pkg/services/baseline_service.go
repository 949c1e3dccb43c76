package services

import (
	"context"
	"fmt"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/ent/agentbaseline"
)

// BaselineService stores rolling per-(agent_type, phase) statistics. The
// heartbeat engine reads through an in-process TTL cache and writes back
// the exponentially weighted updates computed in pkg/heartbeat.
type BaselineService struct {
	client *ent.Client
}

// NewBaselineService creates a new BaselineService.
func NewBaselineService(client *ent.Client) *BaselineService {
	return &BaselineService{client: client}
}

// BaselineStats is the stored statistics view.
type BaselineStats struct {
	LatencyMeanMS   float64
	LatencyStddevMS float64
	ErrorRate       float64
	CPUMean         float64
	CPUStddev       float64
	MemMean         float64
	MemStddev       float64
	SampleCount     int64
}

// Get loads the baseline for a key, or ErrNotFound.
func (s *BaselineService) Get(ctx context.Context, agentType, phase string) (BaselineStats, error) {
	row, err := s.client.AgentBaseline.Query().
		Where(
			agentbaseline.AgentTypeEQ(agentType),
			agentbaseline.PhaseEQ(phase),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return BaselineStats{}, fmt.Errorf("baseline %s/%s: %w", agentType, phase, ErrNotFound)
		}
		return BaselineStats{}, fmt.Errorf("failed to get baseline: %w", err)
	}
	return BaselineStats{
		LatencyMeanMS:   row.LatencyMeanMs,
		LatencyStddevMS: row.LatencyStddevMs,
		ErrorRate:       row.ErrorRate,
		CPUMean:         row.CPUMean,
		CPUStddev:       row.CPUStddev,
		MemMean:         row.MemMean,
		MemStddev:       row.MemStddev,
		SampleCount:     row.SampleCount,
	}, nil
}

// Put upserts the baseline for a key.
func (s *BaselineService) Put(ctx context.Context, agentType, phase string, stats BaselineStats) error {
	err := s.client.AgentBaseline.Create().
		SetAgentType(agentType).
		SetPhase(phase).
		SetLatencyMeanMs(stats.LatencyMeanMS).
		SetLatencyStddevMs(stats.LatencyStddevMS).
		SetErrorRate(stats.ErrorRate).
		SetCPUMean(stats.CPUMean).
		SetCPUStddev(stats.CPUStddev).
		SetMemMean(stats.MemMean).
		SetMemStddev(stats.MemStddev).
		SetSampleCount(stats.SampleCount).
		OnConflictColumns(agentbaseline.FieldAgentType, agentbaseline.FieldPhase).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert baseline %s/%s: %w", agentType, phase, err)
	}
	return nil
}
