package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "helmsman.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInitializeMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Initialize(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Server.Addr, cfg.Server.Addr)
	assert.Equal(t, def.Orchestrator.WorkerCount, cfg.Orchestrator.WorkerCount)
	assert.Equal(t, def.BusQueueSize, cfg.BusQueueSize)
}

func TestInitializeOverlaysFileOnDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
orchestrator:
  worker_count: 2
  max_concurrent_tasks: 8
heartbeat:
  fail: 10
`)
	cfg, err := Initialize(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 2, cfg.Orchestrator.WorkerCount)
	assert.Equal(t, 8, cfg.Orchestrator.MaxConcurrentTasks)
	assert.Equal(t, 10, cfg.Heartbeat.Fail)

	// Untouched sections keep defaults.
	def := Default()
	assert.Equal(t, def.Heartbeat.Warn, cfg.Heartbeat.Warn)
	assert.Equal(t, def.Scheduler, cfg.Scheduler)
	assert.Equal(t, def.Retention.Schedule, cfg.Retention.Schedule)
}

func TestInitializeExpandsEnvironment(t *testing.T) {
	t.Setenv("HELMSMAN_API_KEY", "s3cret")
	path := writeConfig(t, `
server:
  api_key: "{{.HELMSMAN_API_KEY}}"
`)
	cfg, err := Initialize(path)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Server.APIKey)
}

func TestInitializeRejectsInvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [not a mapping")
	_, err := Initialize(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Equal(t, path, loadErr.File)
}

func TestInitializeRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
heartbeat:
  warn: 5
  degrade: 2
`)
	_, err := Initialize(path)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "heartbeat", vErr.Section)
}

func TestValidateDefaults(t *testing.T) {
	def := Default()
	assert.NoError(t, Validate(&def))
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		section string
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, "server"},
		{"negative weight", func(c *Config) { c.Scheduler.RetryPenalty = -1 }, "scheduler"},
		{"zero workers", func(c *Config) { c.Orchestrator.WorkerCount = 0 }, "orchestrator"},
		{"concurrency below workers", func(c *Config) { c.Orchestrator.MaxConcurrentTasks = 1 }, "orchestrator"},
		{"unordered ladder", func(c *Config) { c.Heartbeat.Guardian = 100 }, "heartbeat"},
		{"anomaly threshold out of range", func(c *Config) { c.Heartbeat.AnomalyThreshold = 1.5 }, "heartbeat"},
		{"authority above terminate", func(c *Config) { c.Guardian.AutoAuthority = 9 }, "guardian"},
		{"negative resolver cap", func(c *Config) { c.Resolver.MaxCostUSD = -0.5 }, "merge_resolver"},
		{"negative retention", func(c *Config) { c.Retention.EventTTL = -time.Hour }, "retention"},
		{"zero bus queue", func(c *Config) { c.BusQueueSize = 0 }, "bus_queue_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := Validate(&cfg)
			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.section, vErr.Section)
		})
	}
}
