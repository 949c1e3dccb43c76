package orchestrator

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmsman-ai/helmsman/ent"
	"github.com/helmsman-ai/helmsman/pkg/sandbox"
)

func newTestWorker(provider sandbox.Provider, cfg Config) *Worker {
	pool := NewWorkerPool("pod-test", nil, cfg, nil, provider, nil, nil, nil, nil)
	return NewWorker("pod-test-worker-0", "pod-test", pool)
}

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.SandboxAcquireRetries = 3
	cfg.SandboxBackoffBase = time.Millisecond
	cfg.SandboxBackoffMax = 5 * time.Millisecond
	return cfg
}

func TestAcquireSandbox_SucceedsFirstTry(t *testing.T) {
	provider := sandbox.NewFakeProvider()
	w := newTestWorker(provider, fastConfig())

	sb, err := w.acquireSandbox(context.Background(), &ent.Task{ID: "task-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, sb.ID)
	assert.True(t, provider.Exists(sb.ID))
}

func TestAcquireSandbox_RetriesTransientFailures(t *testing.T) {
	provider := sandbox.NewFakeProvider()
	provider.FailNext("create", 2)
	w := newTestWorker(provider, fastConfig())

	sb, err := w.acquireSandbox(context.Background(), &ent.Task{ID: "task-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, sb.ID)
}

func TestAcquireSandbox_ExhaustsRetries(t *testing.T) {
	provider := sandbox.NewFakeProvider()
	provider.FailNext("create", 100)
	w := newTestWorker(provider, fastConfig())

	_, err := w.acquireSandbox(context.Background(), &ent.Task{ID: "task-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, sandbox.ErrProviderUnavailable)
}

func TestAcquireBackoff_CappedAndJittered(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SandboxBackoffBase = time.Second
	cfg.SandboxBackoffMax = 8 * time.Second
	w := newTestWorker(sandbox.NewFakeProvider(), cfg)

	for attempt := 1; attempt < 10; attempt++ {
		d := w.acquireBackoff(attempt)
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.LessOrEqual(t, d, 12*time.Second)
	}
}

func TestEncodeTaskContext_RoundTrips(t *testing.T) {
	ticketID := "TKT-001"
	task := &ent.Task{
		ID:       "task-9",
		TicketID: &ticketID,
		Title:    "Wire the frobnicator",
		SynthesisContext: map[string]interface{}{
			"branch": "feature/frob",
		},
		OwnedFiles: []string{"pkg/frob/**"},
	}

	encoded, err := encodeTaskContext(task)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "task-9", decoded["task_id"])
	assert.Equal(t, "TKT-001", decoded["ticket_id"])
	assert.Equal(t, "Wire the frobnicator", decoded["title"])
}

func TestResourceEnvelope_FromExecutionConfig(t *testing.T) {
	task := &ent.Task{
		ID: "task-1",
		ExecutionConfig: map[string]interface{}{
			"resources": map[string]interface{}{
				"cpu_cores": 4.0,
				"memory_mb": 8192.0,
			},
		},
	}

	env := resourceEnvelope(task)
	assert.Equal(t, 4.0, env.CPUCores)
	assert.Equal(t, 8192, env.MemoryMB)
	assert.Equal(t, 20480, env.DiskMB) // default preserved
}

func TestResourceEnvelope_DefaultsWithoutConfig(t *testing.T) {
	env := resourceEnvelope(&ent.Task{ID: "task-1"})
	assert.Equal(t, 2.0, env.CPUCores)
	assert.Equal(t, 4096, env.MemoryMB)
}

func TestExecutionString(t *testing.T) {
	task := &ent.Task{
		ID: "task-1",
		ExecutionConfig: map[string]interface{}{
			"permission_mode": "readOnly",
			"continuous_mode": true,
			"max_turns":       40.0,
		},
	}

	assert.Equal(t, "readOnly", executionString(task, "permission_mode", "acceptEdits"))
	assert.Equal(t, "true", executionString(task, "continuous_mode", "false"))
	assert.Equal(t, "40", executionString(task, "max_turns", "0"))
	assert.Equal(t, "fallback", executionString(task, "missing", "fallback"))
}
