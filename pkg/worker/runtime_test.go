package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/pkg/agentgw"
	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/session"
)

// scriptedAgent plays back one block sequence per turn and records the
// session snapshot it was handed.
type scriptedAgent struct {
	turns     [][]agentgw.Block
	errs      []error
	calls     int
	snapshots []session.Session
}

func (a *scriptedAgent) RunTurn(_ context.Context, sess *session.Session, _ agentgw.TurnOptions) (<-chan agentgw.Block, <-chan error) {
	blockCh := make(chan agentgw.Block)
	errCh := make(chan error, 1)

	idx := a.calls
	a.calls++
	a.snapshots = append(a.snapshots, sess.Clone())

	go func() {
		defer close(blockCh)
		if idx < len(a.turns) {
			for _, b := range a.turns[idx] {
				blockCh <- b
			}
		}
		if idx < len(a.errs) && a.errs[idx] != nil {
			errCh <- a.errs[idx]
		} else {
			errCh <- nil
		}
	}()
	return blockCh, errCh
}

func textTurn(text string, usage *agentgw.Usage) []agentgw.Block {
	return []agentgw.Block{
		{Type: agentgw.BlockText, Content: text},
		{Type: agentgw.BlockComplete, StopReason: "end_turn", Usage: usage},
	}
}

func toolTurn(text string) []agentgw.Block {
	return []agentgw.Block{
		{Type: agentgw.BlockText, Content: text},
		{Type: agentgw.BlockToolUse, ToolUseID: "tu-1", ToolName: "bash", InputJSON: `{"command":"ls"}`},
		{Type: agentgw.BlockToolResult, ToolUseID: "tu-1", ToolName: "bash", Content: "ok"},
		{Type: agentgw.BlockComplete, StopReason: "tool_use", Usage: &agentgw.Usage{PromptTokens: 10, CompletionTokens: 5, CostUSD: 0.01}},
	}
}

func testConfig(t *testing.T) *Config {
	t.Helper()
	return &Config{
		SandboxID:           "sbx-test",
		CallbackURL:         "http://unused",
		AgentID:             "ag-test",
		PermissionMode:      PermissionAcceptEdits,
		Cwd:                 t.TempDir(),
		MaxTurns:            50,
		MaxBudgetUSD:        10.0,
		CompletionSignal:    "TASK COMPLETE",
		CompletionThreshold: 2,
		ContinuousMaxRuns:   10,
		SpecOutputDir:       "spec_output",
		TaskContext: TaskContext{
			TaskID: "TSK-001",
			Title:  "Do the thing",
		},
	}
}

func newTestRuntime(t *testing.T, cfg *Config, agent TurnRunner) (*Runtime, *ArrayReporter) {
	t.Helper()
	reporter := NewArrayReporter()
	rt := NewRuntime(cfg, agent, reporter, nil, nil, nil, nil)
	require.NoError(t, rt.Boot(context.Background()))
	return rt, reporter
}

func TestRuntimeCompletesWhenAgentYields(t *testing.T) {
	agent := &scriptedAgent{turns: [][]agentgw.Block{
		toolTurn("working"),
		textTurn("all done", &agentgw.Usage{PromptTokens: 20, CompletionTokens: 8, CostUSD: 0.02}),
	}}
	rt, reporter := newTestRuntime(t, testConfig(t), agent)

	require.NoError(t, rt.Run(context.Background()))

	types := reporter.EventTypes()
	assert.Equal(t, models.EventTypeWorkerBoot, types[0])
	assert.Equal(t, models.EventTypeAgentCompleted, types[len(types)-1])
	assert.Contains(t, types, models.EventTypeAgentToolUse)
	assert.Contains(t, types, models.EventTypeAgentToolResult)

	final := reporter.Events()[len(types)-1]
	assert.Equal(t, 2, final.EventData["turns"])
	assert.InDelta(t, 0.03, final.EventData["total_cost_usd"].(float64), 1e-9)
	assert.NotEmpty(t, final.EventData["session_id"])
}

func TestRuntimeZeroTurnsBudgetExhausted(t *testing.T) {
	cfg := testConfig(t)
	cfg.MaxTurns = 0
	agent := &scriptedAgent{}
	rt, reporter := newTestRuntime(t, cfg, agent)

	require.NoError(t, rt.Run(context.Background()))

	assert.Equal(t, 0, agent.calls, "no turn may run when max_turns is 0")
	types := reporter.EventTypes()
	assert.Equal(t, models.EventTypeAgentBudgetExhausted, types[len(types)-1])
}

func TestRuntimeAgentErrorFailsRun(t *testing.T) {
	agent := &scriptedAgent{
		turns: [][]agentgw.Block{{}},
		errs:  []error{errors.New("gateway exploded")},
	}
	rt, reporter := newTestRuntime(t, testConfig(t), agent)

	require.NoError(t, rt.Run(context.Background()))

	types := reporter.EventTypes()
	assert.Contains(t, types, models.EventTypeAgentError)
	assert.Equal(t, models.EventTypeAgentFailed, types[len(types)-1])

	final := reporter.Events()[len(types)-1]
	assert.Contains(t, final.EventData["reason"], "gateway exploded")
}

func TestRuntimeToolResultCarriesFileChange(t *testing.T) {
	agent := &scriptedAgent{turns: [][]agentgw.Block{
		{
			{Type: agentgw.BlockToolUse, ToolUseID: "tu-1", ToolName: "write_file"},
			{
				Type: agentgw.BlockToolResult, ToolUseID: "tu-1", ToolName: "write_file",
				Content: "written", FilePath: "main.go",
				OldContent: "old\n", NewContent: "new\n",
			},
			{Type: agentgw.BlockComplete, StopReason: "tool_use"},
		},
		textTurn("done", nil),
	}}
	rt, reporter := newTestRuntime(t, testConfig(t), agent)

	require.NoError(t, rt.Run(context.Background()))

	var found bool
	for _, e := range reporter.Events() {
		if e.EventType == models.EventTypeAgentToolResult {
			change, ok := e.EventData["file_change"].(*FileChange)
			require.True(t, ok)
			assert.Equal(t, "main.go", change.Path)
			assert.Equal(t, 1, change.Added)
			assert.Equal(t, 1, change.Removed)
			found = true
		}
	}
	assert.True(t, found, "tool result with file content must carry a diff")
}

func TestRuntimeSessionAccumulatesTurns(t *testing.T) {
	agent := &scriptedAgent{turns: [][]agentgw.Block{
		toolTurn("first pass"),
		textTurn("done", nil),
	}}
	rt, _ := newTestRuntime(t, testConfig(t), agent)

	require.NoError(t, rt.Run(context.Background()))

	// Second turn saw the first turn's assistant text and tool result.
	require.Len(t, agent.snapshots, 2)
	second := &agent.snapshots[1]
	roles := make([]session.MessageRole, len(second.Messages))
	for i, m := range second.Messages {
		roles[i] = m.Role
	}
	assert.Equal(t, []session.MessageRole{
		session.RoleSystem, session.RoleUser, session.RoleTool, session.RoleAssistant,
	}, roles)
}

// holdingAgent streams one text block on its first turn and then holds the
// stream open until the turn context is canceled; later turns yield cleanly.
type holdingAgent struct {
	calls int
}

func (a *holdingAgent) RunTurn(ctx context.Context, _ *session.Session, _ agentgw.TurnOptions) (<-chan agentgw.Block, <-chan error) {
	blockCh := make(chan agentgw.Block)
	errCh := make(chan error, 1)
	idx := a.calls
	a.calls++
	go func() {
		defer close(blockCh)
		if idx == 0 {
			blockCh <- agentgw.Block{Type: agentgw.BlockText, Content: "still going"}
			<-ctx.Done()
			errCh <- ctx.Err()
			return
		}
		blockCh <- agentgw.Block{Type: agentgw.BlockText, Content: "handing over"}
		blockCh <- agentgw.Block{Type: agentgw.BlockComplete, StopReason: "end_turn"}
		errCh <- nil
	}()
	return blockCh, errCh
}

func TestRuntimeInterruptCutsTurnMidStream(t *testing.T) {
	cfg := testConfig(t)
	poller := NewMessagePoller(nil, cfg.SandboxID, 0, time.Second)
	poller.mu.Lock()
	poller.pending = []models.InjectedMessage{{
		ID:      "m1",
		Type:    models.MessageTypeInterrupt,
		Content: "stop and hand over",
		Cancel:  true,
	}}
	poller.seen["m1"] = true
	poller.interrupted = true
	poller.mu.Unlock()

	agent := &holdingAgent{}
	reporter := NewArrayReporter()
	rt := NewRuntime(cfg, agent, reporter, nil, poller, nil, nil)
	require.NoError(t, rt.Boot(context.Background()))

	require.NoError(t, rt.Run(context.Background()))

	// The cut turn plus exactly one continuation turn.
	assert.Equal(t, 2, agent.calls)
	types := reporter.EventTypes()
	assert.Equal(t, models.EventTypeAgentCompleted, types[len(types)-1])
	final := reporter.Events()[len(types)-1]
	assert.Equal(t, "canceled", final.EventData["reason"])

	// The interrupt content reached the session before the final turn.
	var delivered bool
	for _, m := range rt.Session().Messages {
		if m.Role == session.RoleUser && strings.Contains(m.Content, "stop and hand over") {
			delivered = true
		}
	}
	assert.True(t, delivered)
}

type stubGit struct {
	statuses []GitStatus
	calls    int
}

func (g *stubGit) Status(context.Context, string) (*GitStatus, error) {
	status := g.statuses[len(g.statuses)-1]
	if g.calls < len(g.statuses) {
		status = g.statuses[g.calls]
	}
	g.calls++
	return &status, nil
}

func TestRuntimeContinuousModeNeedsConsecutiveSignals(t *testing.T) {
	cfg := testConfig(t)
	cfg.ContinuousMode = true
	agent := &scriptedAgent{turns: [][]agentgw.Block{
		textTurn("still working", nil),
		textTurn("TASK COMPLETE", nil),
		textTurn("TASK COMPLETE", nil),
	}}
	reporter := NewArrayReporter()
	rt := NewRuntime(cfg, agent, reporter, nil, nil, nil, &stubGit{statuses: []GitStatus{{Clean: true}}})
	require.NoError(t, rt.Boot(context.Background()))

	require.NoError(t, rt.Run(context.Background()))

	assert.Equal(t, 3, agent.calls, "one signal is not enough at threshold 2")
	types := reporter.EventTypes()
	assert.Equal(t, models.EventTypeAgentCompleted, types[len(types)-1])
}

func TestRuntimeContinuousModeDirtyTreeResetsStreak(t *testing.T) {
	cfg := testConfig(t)
	cfg.ContinuousMode = true
	cfg.ContinuousMaxRuns = 2
	agent := &scriptedAgent{turns: [][]agentgw.Block{
		textTurn("TASK COMPLETE", nil),
		textTurn("TASK COMPLETE", nil),
		textTurn("TASK COMPLETE", nil),
	}}
	reporter := NewArrayReporter()
	// Tree is dirty for the first signal, clean afterwards.
	git := &stubGit{statuses: []GitStatus{{Clean: false}, {Clean: true}, {Clean: true}}}
	rt := NewRuntime(cfg, agent, reporter, nil, nil, nil, git)
	require.NoError(t, rt.Boot(context.Background()))

	require.NoError(t, rt.Run(context.Background()))
	assert.Equal(t, 3, agent.calls, "dirty tree must force a re-prompt and reset the streak")
}

func TestRuntimeSpecValidationFlipsToFailed(t *testing.T) {
	cfg := testConfig(t)
	cfg.RequireSpecSkill = true
	cfg.TaskContext.SpecID = "SPEC-1"

	// A spec output file with no frontmatter at all.
	specDir := filepath.Join(cfg.Cwd, cfg.SpecOutputDir)
	require.NoError(t, os.MkdirAll(specDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(specDir, "EXPLORE.md"), []byte("just a body"), 0o644))

	agent := &scriptedAgent{turns: [][]agentgw.Block{textTurn("done", nil)}}
	rt, reporter := newTestRuntime(t, cfg, agent)

	require.NoError(t, rt.Run(context.Background()))

	types := reporter.EventTypes()
	assert.Equal(t, models.EventTypeAgentFailed, types[len(types)-1])
	final := reporter.Events()[len(types)-1]
	assert.Contains(t, final.EventData["reason"], "spec_validation")
}

func TestRuntimeHydratesFromTranscript(t *testing.T) {
	// Build a transcript from a previous session.
	prev := &session.Session{ID: "sess-prev"}
	prev.AddMessage(session.RoleSystem, "system prompt")
	prev.AddMessage(session.RoleUser, "original task")
	prev.AddMessage(session.RoleAssistant, "partial work")
	encoded, err := prev.EncodeTranscript()
	require.NoError(t, err)

	cfg := testConfig(t)
	cfg.SessionTranscriptB64 = encoded
	agent := &scriptedAgent{turns: [][]agentgw.Block{textTurn("resumed and done", nil)}}
	rt, _ := newTestRuntime(t, cfg, agent)

	assert.Equal(t, "sess-prev", rt.Session().ID)
	require.NoError(t, rt.Run(context.Background()))

	require.Len(t, agent.snapshots, 1)
	assert.Len(t, agent.snapshots[0].Messages, 3, "hydrated history is preserved")
}
