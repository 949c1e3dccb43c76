// Package orchestrator provides the worker pool that drains the scheduler:
// each worker claims an assignment, acquires a sandbox, launches the sandbox
// worker inside it, and supervises the run to a terminal task status.
package orchestrator

import (
	"errors"
	"time"
)

// Sentinel errors for orchestrator operations.
var (
	// ErrNoTasksAvailable indicates the scheduler produced no assignment.
	ErrNoTasksAvailable = errors.New("no tasks available")

	// ErrAtCapacity indicates the global concurrent task limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// Config controls the orchestrator worker pool.
type Config struct {
	WorkerCount           int           `yaml:"worker_count"`
	MaxConcurrentTasks    int           `yaml:"max_concurrent_tasks"`
	PollInterval          time.Duration `yaml:"poll_interval"`
	PollIntervalJitter    time.Duration `yaml:"poll_interval_jitter"`
	SandboxImage          string        `yaml:"sandbox_image"`
	SandboxAcquireRetries int           `yaml:"sandbox_acquire_retries"`
	SandboxBackoffBase    time.Duration `yaml:"sandbox_backoff_base"`
	SandboxBackoffMax     time.Duration `yaml:"sandbox_backoff_max"`
	WorkerCommand         string        `yaml:"worker_command"`
	CallbackURL           string        `yaml:"callback_url"`
	WorkerAPIKey          string        `yaml:"-"`
	Model                 string        `yaml:"model"`
	OrphanScanInterval    time.Duration `yaml:"orphan_scan_interval"`
	OrphanThreshold       time.Duration `yaml:"orphan_threshold"`
}

// DefaultConfig returns the built-in orchestrator settings.
func DefaultConfig() Config {
	return Config{
		WorkerCount:           5,
		MaxConcurrentTasks:    20,
		PollInterval:          2 * time.Second,
		PollIntervalJitter:    500 * time.Millisecond,
		SandboxImage:          "helmsman/agent-sandbox:latest",
		SandboxAcquireRetries: 5,
		SandboxBackoffBase:    time.Second,
		SandboxBackoffMax:     30 * time.Second,
		WorkerCommand:         "/opt/helmsman/bin/helmsman-worker",
		OrphanScanInterval:    time.Minute,
		OrphanThreshold:       5 * time.Minute,
	}
}

// WorkerStatus represents the current state of a pool worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveTasks      int            `json:"active_tasks"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single pool worker.
type WorkerHealth struct {
	ID             string       `json:"id"`
	Status         WorkerStatus `json:"status"`
	CurrentTaskID  string       `json:"current_task_id,omitempty"`
	TasksProcessed int          `json:"tasks_processed"`
	LastActivity   time.Time    `json:"last_activity"`
}
