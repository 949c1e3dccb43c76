package worker

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Setenv("SANDBOX_ID", "sbx-1")
	t.Setenv("CALLBACK_URL", "http://orchestrator:8080/api/v1/")
	t.Setenv("TASK_ID", "TSK-001")
}

func TestLoadConfigDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "sbx-1", cfg.SandboxID)
	assert.Equal(t, "http://orchestrator:8080/api/v1", cfg.CallbackURL, "trailing slash stripped")
	assert.Equal(t, "TSK-001", cfg.TaskContext.TaskID)
	assert.Equal(t, 50, cfg.MaxTurns)
	assert.Equal(t, 10.0, cfg.MaxBudgetUSD)
	assert.Equal(t, time.Hour, cfg.MaxDuration)
	assert.Equal(t, PermissionAcceptEdits, cfg.PermissionMode)
	assert.Equal(t, "/workspace", cfg.Cwd)
	assert.False(t, cfg.ContinuousMode)
	assert.Equal(t, "TASK COMPLETE", cfg.CompletionSignal)
	assert.Equal(t, 2, cfg.CompletionThreshold)
	assert.Equal(t, "spec_output", cfg.SpecOutputDir)
}

func TestLoadConfigTaskContext(t *testing.T) {
	setBaseEnv(t)
	encoded := base64.StdEncoding.EncodeToString([]byte(`{
		"task_id": "TSK-042",
		"ticket_id": "TKT-007",
		"title": "Add retry loop",
		"owned_files": ["pkg/retry/**"],
		"spec_id": "SPEC-9"
	}`))
	t.Setenv("TASK_CONTEXT_B64", encoded)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "TSK-042", cfg.TaskContext.TaskID, "context task id wins over TASK_ID")
	assert.Equal(t, "TKT-007", cfg.TaskContext.TicketID)
	assert.Equal(t, []string{"pkg/retry/**"}, cfg.TaskContext.OwnedFiles)
	assert.Equal(t, "SPEC-9", cfg.TaskContext.SpecID)
}

func TestLoadConfigInvalidTaskContext(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("TASK_CONTEXT_B64", "not-base64!!!")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "TASK_CONTEXT_B64")
}

func TestLoadConfigOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("MAX_TURNS", "0")
	t.Setenv("MAX_DURATION_S", "90")
	t.Setenv("ALLOWED_TOOLS", "read, write ,bash")
	t.Setenv("CONTINUOUS_MODE", "true")
	t.Setenv("PERMISSION_MODE", "readOnly")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.MaxTurns)
	assert.Equal(t, 90*time.Second, cfg.MaxDuration)
	assert.Equal(t, []string{"read", "write", "bash"}, cfg.AllowedTools)
	assert.True(t, cfg.ContinuousMode)
	assert.Equal(t, PermissionReadOnly, cfg.PermissionMode)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing sandbox id", func(c *Config) { c.SandboxID = "" }, "SANDBOX_ID"},
		{"missing callback url", func(c *Config) { c.CallbackURL = "" }, "CALLBACK_URL"},
		{"missing task id", func(c *Config) { c.TaskContext.TaskID = "" }, "task_id"},
		{"bad permission mode", func(c *Config) { c.PermissionMode = "yolo" }, "permission_mode"},
		{"negative turns", func(c *Config) { c.MaxTurns = -1 }, "max_turns"},
		{"negative budget", func(c *Config) { c.MaxBudgetUSD = -0.5 }, "max_budget_usd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				SandboxID:      "sbx-1",
				CallbackURL:    "http://localhost",
				PermissionMode: PermissionAcceptEdits,
				TaskContext:    TaskContext{TaskID: "TSK-001"},
			}
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}
