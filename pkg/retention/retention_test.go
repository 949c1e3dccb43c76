package retention

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPruner struct {
	cutoffs []time.Time
	err     error
}

func (p *recordingPruner) PruneBefore(_ context.Context, cutoff time.Time) (int, error) {
	p.cutoffs = append(p.cutoffs, cutoff)
	return 3, p.err
}

func (p *recordingPruner) PruneFinished(_ context.Context, cutoff time.Time) (int, error) {
	p.cutoffs = append(p.cutoffs, cutoff)
	return 1, p.err
}

func TestRunOnceAppliesConfiguredWindows(t *testing.T) {
	events := &recordingPruner{}
	actions := &recordingPruner{}
	cfg := Config{
		EventTTL:        24 * time.Hour,
		ActionRetention: 48 * time.Hour,
	}

	before := time.Now()
	NewService(cfg, events, actions).RunOnce(context.Background())

	require.Len(t, events.cutoffs, 1)
	require.Len(t, actions.cutoffs, 1)
	assert.WithinDuration(t, before.Add(-24*time.Hour), events.cutoffs[0], time.Minute)
	assert.WithinDuration(t, before.Add(-48*time.Hour), actions.cutoffs[0], time.Minute)
}

func TestRunOnceSkipsDisabledPolicies(t *testing.T) {
	events := &recordingPruner{}
	actions := &recordingPruner{}

	NewService(Config{EventTTL: time.Hour}, events, actions).RunOnce(context.Background())

	assert.Len(t, events.cutoffs, 1)
	assert.Empty(t, actions.cutoffs, "zero retention disables the policy")
}

func TestRunOnceContinuesPastFailures(t *testing.T) {
	events := &recordingPruner{err: errors.New("db down")}
	actions := &recordingPruner{}
	cfg := Config{EventTTL: time.Hour, ActionRetention: time.Hour}

	NewService(cfg, events, actions).RunOnce(context.Background())

	assert.Len(t, actions.cutoffs, 1, "action prune still runs after event prune fails")
}

func TestStartRejectsInvalidSchedule(t *testing.T) {
	svc := NewService(Config{Schedule: "not a cron expr", EventTTL: time.Hour}, &recordingPruner{}, &recordingPruner{})
	err := svc.Start(context.Background())
	require.Error(t, err)
}

func TestStartAndStop(t *testing.T) {
	svc := NewService(DefaultConfig(), &recordingPruner{}, &recordingPruner{})
	require.NoError(t, svc.Start(context.Background()))
	svc.Stop()
}
