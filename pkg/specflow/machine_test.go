package specflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	calls   []Phase
	prompts []string
}

func (f *fakeExecutor) ExecutePhase(_ context.Context, phase Phase, prompt string) (*PhaseResult, error) {
	f.calls = append(f.calls, phase)
	f.prompts = append(f.prompts, prompt)
	return &PhaseResult{
		OutputPath: outputPath(phase),
		PhaseData:  map[string]interface{}{string(phase) + "_summary": "ok"},
		CostUSD:    0.25,
	}, nil
}

type scriptedEvaluator struct {
	// scores per (phase, attempt) consumed in order per phase
	scripts map[Phase][]Evaluation
	seen    map[Phase]int
}

func (f *scriptedEvaluator) Evaluate(_ context.Context, phase Phase, _ string) (*Evaluation, error) {
	if f.seen == nil {
		f.seen = make(map[Phase]int)
	}
	script := f.scripts[phase]
	i := f.seen[phase]
	f.seen[phase]++
	if i < len(script) {
		e := script[i]
		return &e, nil
	}
	return &Evaluation{Score: 0.9, Passed: true}, nil
}

type memorySink struct {
	checkpoints []Phase
	attempts    map[Phase]int
	advanced    []Phase
}

func (m *memorySink) SaveCheckpoint(_ context.Context, _ string, phase Phase, _ map[string]interface{}, _ string) error {
	m.checkpoints = append(m.checkpoints, phase)
	return nil
}

func (m *memorySink) RecordAttempt(_ context.Context, _ string, phase Phase, _ bool, _ string) (int, error) {
	if m.attempts == nil {
		m.attempts = make(map[Phase]int)
	}
	m.attempts[phase]++
	return m.attempts[phase], nil
}

func (m *memorySink) PhaseAdvanced(_ context.Context, _ string, next Phase) error {
	m.advanced = append(m.advanced, next)
	return nil
}

func newTestMachine(eval Evaluator) (*Machine, *fakeExecutor, *memorySink) {
	exec := &fakeExecutor{}
	sink := &memorySink{}
	return NewMachine(DefaultMachineConfig(), exec, eval, sink), exec, sink
}

func TestMachine_RunsAllPhasesInOrder(t *testing.T) {
	m, exec, sink := newTestMachine(&scriptedEvaluator{})
	state := &RunState{SpecID: "spec-1", Title: "T", Description: "D", Phase: PhaseExplore}

	require.NoError(t, m.Run(context.Background(), state))
	assert.Equal(t, []Phase{PhaseExplore, PhaseRequirements, PhaseDesign, PhaseTasks, PhaseSync}, exec.calls)
	assert.Equal(t, []Phase{PhaseRequirements, PhaseDesign, PhaseTasks, PhaseSync, PhaseComplete}, sink.advanced)
	assert.Equal(t, PhaseComplete, state.Phase)
	assert.InDelta(t, 5*0.25, state.TotalCost, 1e-9)
}

func TestMachine_RetriesWithFeedback(t *testing.T) {
	eval := &scriptedEvaluator{scripts: map[Phase][]Evaluation{
		PhaseRequirements: {
			{Score: 0.4, Passed: false, Feedback: "missing edge cases"},
			{Score: 0.9, Passed: true},
		},
	}}
	m, exec, sink := newTestMachine(eval)
	state := &RunState{SpecID: "spec-1", Title: "T", Phase: PhaseRequirements}

	require.NoError(t, m.runPhase(context.Background(), state))
	require.Len(t, exec.prompts, 2)
	assert.NotContains(t, exec.prompts[0], "missing edge cases")
	assert.Contains(t, exec.prompts[1], "missing edge cases")
	assert.Equal(t, 2, sink.attempts[PhaseRequirements])
}

func TestMachine_ScoreBelowThresholdFailsEvenIfPassedSet(t *testing.T) {
	eval := &scriptedEvaluator{scripts: map[Phase][]Evaluation{
		PhaseExplore: {
			{Score: 0.5, Passed: true, Feedback: "thin"},
			{Score: 0.8, Passed: true},
		},
	}}
	m, exec, _ := newTestMachine(eval)
	state := &RunState{SpecID: "spec-1", Phase: PhaseExplore}

	require.NoError(t, m.runPhase(context.Background(), state))
	assert.Len(t, exec.calls, 2)
}

func TestMachine_ExhaustionFailsSpec(t *testing.T) {
	eval := &scriptedEvaluator{scripts: map[Phase][]Evaluation{
		PhaseDesign: {
			{Score: 0.1, Passed: false, Feedback: "no"},
			{Score: 0.2, Passed: false, Feedback: "still no"},
			{Score: 0.3, Passed: false, Feedback: "nope"},
		},
	}}
	m, _, sink := newTestMachine(eval)
	state := &RunState{SpecID: "spec-1", Phase: PhaseDesign}

	err := m.Run(context.Background(), state)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSpecFailed)
	assert.Equal(t, 3, sink.attempts[PhaseDesign])
	assert.Empty(t, sink.checkpoints)
	assert.Equal(t, PhaseDesign, state.Phase)
}

func TestMachine_CheckpointAfterEachPassedPhase(t *testing.T) {
	m, _, sink := newTestMachine(&scriptedEvaluator{})
	state := &RunState{SpecID: "spec-1", Phase: PhaseExplore}

	require.NoError(t, m.Run(context.Background(), state))
	assert.Equal(t, []Phase{PhaseExplore, PhaseRequirements, PhaseDesign, PhaseTasks, PhaseSync}, sink.checkpoints)
}

func TestPhase_Ordering(t *testing.T) {
	assert.Equal(t, PhaseRequirements, PhaseExplore.Next())
	assert.Equal(t, PhaseComplete, PhaseSync.Next())
	assert.Equal(t, PhaseComplete, PhaseComplete.Next())
	assert.True(t, PhaseExplore.Before(PhaseSync))
	assert.False(t, PhaseSync.Before(PhaseExplore))
	assert.True(t, PhaseComplete.Terminal())

	p, err := ParsePhase("DESIGN")
	require.NoError(t, err)
	assert.Equal(t, PhaseDesign, p)
	_, err = ParsePhase("design")
	assert.Error(t, err)
}
