package merge

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/pkg/services"
)

type fakeVCS struct {
	dryRunConflicts map[string][]string
	applyConflicts  map[string][]Conflict
	merged          []string
	resolved        map[string]string
	committed       int
	aborted         int
}

func newFakeVCS() *fakeVCS {
	return &fakeVCS{
		dryRunConflicts: map[string][]string{},
		applyConflicts:  map[string][]Conflict{},
		resolved:        map[string]string{},
	}
}

func (f *fakeVCS) DryRunMerge(_ context.Context, _, branch string) ([]string, error) {
	return f.dryRunConflicts[branch], nil
}

func (f *fakeVCS) Merge(_ context.Context, _, branch string) ([]Conflict, error) {
	f.merged = append(f.merged, branch)
	return f.applyConflicts[branch], nil
}

func (f *fakeVCS) ResolveFile(_ context.Context, path, content string) error {
	f.resolved[path] = content
	return nil
}

func (f *fakeVCS) CommitMerge(context.Context, string) error {
	f.committed++
	return nil
}

func (f *fakeVCS) AbortMerge(context.Context) error {
	f.aborted++
	return nil
}

type fakeAttempts struct {
	started  int
	outcomes []services.MergeOutcome
}

func (f *fakeAttempts) StartAttempt(_ context.Context, parentTaskID, _, _ string, _, _ []string) (*ent.MergeAttempt, error) {
	f.started++
	return &ent.MergeAttempt{ID: fmt.Sprintf("ma-%d", f.started), ParentTaskID: parentTaskID}, nil
}

func (f *fakeAttempts) Complete(_ context.Context, _ string, outcome services.MergeOutcome) (*ent.MergeAttempt, error) {
	f.outcomes = append(f.outcomes, outcome)
	return &ent.MergeAttempt{}, nil
}

type scriptedResolver struct {
	content string
	err     error
	calls   int
}

func (r *scriptedResolver) Resolve(_ context.Context, _, _ string, _ Conflict) (string, ResolveUsage, error) {
	r.calls++
	if r.err != nil {
		return "", ResolveUsage{}, r.err
	}
	return r.content, ResolveUsage{Tokens: 100, CostUSD: 0.05}, nil
}

func threeSiblings() Request {
	return Request{
		ParentTaskID: "TSK-P",
		TicketID:     "TKT-001",
		TargetBranch: "main",
		Sources: []Source{
			{TaskID: "TSK-C1", Branch: "task/c1"},
			{TaskID: "TSK-C2", Branch: "task/c2"},
			{TaskID: "TSK-C3", Branch: "task/c3"},
		},
	}
}

func TestMergeOrdersByConflictScore(t *testing.T) {
	vcs := newFakeVCS()
	vcs.dryRunConflicts["task/c2"] = []string{"a.go", "b.go"}
	vcs.dryRunConflicts["task/c3"] = []string{"a.go"}
	attempts := &fakeAttempts{}

	result, err := NewCoordinator(vcs, nil, attempts).Run(context.Background(), threeSiblings())
	require.NoError(t, err)

	assert.True(t, result.Succeeded)
	assert.Equal(t, map[string]int{"TSK-C1": 0, "TSK-C2": 2, "TSK-C3": 1}, result.ConflictScores)
	assert.Equal(t, []string{"TSK-C1", "TSK-C3", "TSK-C2"}, result.MergeOrder)
	assert.Equal(t, []string{"task/c1", "task/c3", "task/c2"}, vcs.merged)

	require.Len(t, attempts.outcomes, 1)
	assert.True(t, attempts.outcomes[0].Succeeded)
}

func TestMergeTieBreaksByTaskID(t *testing.T) {
	vcs := newFakeVCS()
	attempts := &fakeAttempts{}

	req := threeSiblings()
	// All scores zero: order must be ascending task id.
	result, err := NewCoordinator(vcs, nil, attempts).Run(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"TSK-C1", "TSK-C2", "TSK-C3"}, result.MergeOrder)
}

func TestMergeResolvesConflictsWithResolver(t *testing.T) {
	vcs := newFakeVCS()
	vcs.applyConflicts["task/c2"] = []Conflict{
		{Path: "pkg/a.go", Ours: "ours", Theirs: "theirs"},
	}
	resolver := &scriptedResolver{content: "merged content"}
	attempts := &fakeAttempts{}

	result, err := NewCoordinator(vcs, resolver, attempts).Run(context.Background(), threeSiblings())
	require.NoError(t, err)

	assert.True(t, result.Succeeded)
	assert.Equal(t, 1, resolver.calls)
	assert.Equal(t, "merged content", vcs.resolved["pkg/a.go"])
	assert.Equal(t, 1, vcs.committed)
	assert.Equal(t, 1, result.LLMInvocations)
	assert.Equal(t, int64(100), result.TokensUsed)
	assert.InDelta(t, 0.05, result.CostUSD, 1e-9)

	require.Len(t, attempts.outcomes, 1)
	require.Len(t, attempts.outcomes[0].ResolutionLog, 1)
	assert.Equal(t, "pkg/a.go", attempts.outcomes[0].ResolutionLog[0]["path"])
}

func TestMergeFailsAndPreservesPartialState(t *testing.T) {
	vcs := newFakeVCS()
	vcs.dryRunConflicts["task/c3"] = []string{"x.go", "y.go", "z.go"}
	vcs.applyConflicts["task/c3"] = []Conflict{{Path: "x.go"}}
	resolver := &scriptedResolver{err: ErrResolverExhausted}
	attempts := &fakeAttempts{}

	result, err := NewCoordinator(vcs, resolver, attempts).Run(context.Background(), threeSiblings())
	require.NoError(t, err)

	assert.False(t, result.Succeeded)
	assert.Contains(t, result.FailureReason, "task/c3")
	// C1 and C2 merged cleanly before C3 failed; they stay merged.
	assert.Equal(t, []string{"TSK-C1", "TSK-C2"}, result.MergeOrder)
	assert.Equal(t, 1, vcs.aborted, "paused merge is unwound")

	require.Len(t, attempts.outcomes, 1)
	outcome := attempts.outcomes[0]
	assert.False(t, outcome.Succeeded)
	assert.Equal(t, []string{"TSK-C1", "TSK-C2"}, outcome.MergeOrder)
	assert.NotEmpty(t, outcome.FailureReason)
}

func TestMergeConflictWithoutResolverFails(t *testing.T) {
	vcs := newFakeVCS()
	vcs.applyConflicts["task/c1"] = []Conflict{{Path: "a.go"}}
	attempts := &fakeAttempts{}

	result, err := NewCoordinator(vcs, nil, attempts).Run(context.Background(), threeSiblings())
	require.NoError(t, err)
	assert.False(t, result.Succeeded)
	assert.Contains(t, result.FailureReason, "no resolver")
}

func TestMergeEmptyRequestRejected(t *testing.T) {
	_, err := NewCoordinator(newFakeVCS(), nil, &fakeAttempts{}).Run(context.Background(), Request{ParentTaskID: "TSK-P"})
	require.Error(t, err)
}

func TestResolverCapsExhaustion(t *testing.T) {
	// Scripted agent that always answers with resolved text.
	agent := &stubTurnRunner{text: "resolved"}
	resolver := NewLLMResolver(agent, ResolverCaps{MaxInvocations: 2})

	conflict := Conflict{Path: "a.go", Ours: "x", Theirs: "y"}
	for i := 0; i < 2; i++ {
		_, _, err := resolver.Resolve(context.Background(), "main", "task/c1", conflict)
		require.NoError(t, err)
	}

	_, _, err := resolver.Resolve(context.Background(), "main", "task/c1", conflict)
	assert.True(t, errors.Is(err, ErrResolverExhausted))

	invocations, _, _ := resolver.Totals()
	assert.Equal(t, 2, invocations)
}

func TestResolverCostCap(t *testing.T) {
	agent := &stubTurnRunner{text: "resolved", costUSD: 1.5}
	resolver := NewLLMResolver(agent, ResolverCaps{MaxCostUSD: 2.0})

	conflict := Conflict{Path: "a.go"}
	_, _, err := resolver.Resolve(context.Background(), "main", "b", conflict)
	require.NoError(t, err)
	_, _, err = resolver.Resolve(context.Background(), "main", "b", conflict)
	require.NoError(t, err, "1.5 spent is still under the 2.0 cap")
	_, _, err = resolver.Resolve(context.Background(), "main", "b", conflict)
	assert.True(t, errors.Is(err, ErrResolverExhausted), "3.0 spent is over the cap")
}

func TestResolverEmptyOutputIsError(t *testing.T) {
	agent := &stubTurnRunner{text: "   \n"}
	resolver := NewLLMResolver(agent, DefaultResolverCaps())

	_, _, err := resolver.Resolve(context.Background(), "main", "b", Conflict{Path: "a.go"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty content")
}
