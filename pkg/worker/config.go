// Package worker implements the sandbox worker runtime: the single-threaded
// loop that drives a coding agent inside an isolated sandbox, streams events
// back to the orchestrator, polls for injected messages, enforces caps, and
// emits heartbeats.
package worker

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// PermissionMode controls how tool use is authorized.
type PermissionMode string

// Permission modes.
const (
	PermissionAcceptEdits PermissionMode = "acceptEdits"
	PermissionAskEach     PermissionMode = "askEach"
	PermissionReadOnly    PermissionMode = "readOnly"
)

// TaskContext is the decoded base64 JSON handed over by the orchestrator.
type TaskContext struct {
	TaskID           string                 `json:"task_id"`
	TicketID         string                 `json:"ticket_id,omitempty"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description,omitempty"`
	SynthesisContext map[string]interface{} `json:"synthesis_context,omitempty"`
	ExecutionConfig  map[string]interface{} `json:"execution_config,omitempty"`
	PersistenceDir   string                 `json:"persistence_dir,omitempty"`
	OwnedFiles       []string               `json:"owned_files,omitempty"`
	SpecID           string                 `json:"spec_id,omitempty"`
}

// Config is the complete environment-driven worker configuration.
type Config struct {
	SandboxID   string
	CallbackURL string
	Model       string
	APIKey      string
	AgentID     string
	TaskContext TaskContext

	PollInterval      time.Duration
	HeartbeatInterval time.Duration

	MaxTurns     int
	MaxBudgetUSD float64
	MaxDuration  time.Duration

	// USD per million tokens, used for pre-turn cost projection.
	PromptPricePerMTok     float64
	CompletionPricePerMTok float64

	PermissionMode PermissionMode
	AllowedTools   []string
	Cwd            string

	ContinuousMode      bool
	ContinuousMaxRuns   int
	CompletionSignal    string
	CompletionThreshold int

	RequireSpecSkill bool
	PreviewEnabled   bool

	ResumeSessionID     string
	SessionTranscriptB64 string

	SpecOutputDir string
}

// LoadConfig reads the worker configuration from the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		SandboxID:   os.Getenv("SANDBOX_ID"),
		CallbackURL: strings.TrimRight(os.Getenv("CALLBACK_URL"), "/"),
		Model:       envString("MODEL", "claude-sonnet-4-5"),
		APIKey:      os.Getenv("API_KEY"),
		AgentID:     os.Getenv("AGENT_ID"),

		PollInterval:      envSeconds("POLL_INTERVAL", 5*time.Second),
		HeartbeatInterval: envSeconds("HEARTBEAT_INTERVAL", 30*time.Second),

		MaxTurns:     envInt("MAX_TURNS", 50),
		MaxBudgetUSD: envFloat("MAX_BUDGET_USD", 10.0),
		MaxDuration:  envSeconds("MAX_DURATION_S", time.Hour),

		PromptPricePerMTok:     envFloat("PROMPT_PRICE_USD_PER_MTOK", 0),
		CompletionPricePerMTok: envFloat("COMPLETION_PRICE_USD_PER_MTOK", 0),

		PermissionMode: PermissionMode(envString("PERMISSION_MODE", string(PermissionAcceptEdits))),
		AllowedTools:   envList("ALLOWED_TOOLS"),
		Cwd:            envString("CWD", "/workspace"),

		ContinuousMode:      envBool("CONTINUOUS_MODE", false),
		ContinuousMaxRuns:   envInt("CONTINUOUS_MAX_RUNS", 10),
		CompletionSignal:    envString("COMPLETION_SIGNAL", "TASK COMPLETE"),
		CompletionThreshold: envInt("COMPLETION_THRESHOLD", 2),

		RequireSpecSkill: envBool("REQUIRE_SPEC_SKILL", false),
		PreviewEnabled:   envBool("PREVIEW_ENABLED", false),

		ResumeSessionID:      os.Getenv("RESUME_SESSION_ID"),
		SessionTranscriptB64: os.Getenv("SESSION_TRANSCRIPT_B64"),

		SpecOutputDir: envString("SPEC_OUTPUT_DIR", "spec_output"),
	}

	if raw := os.Getenv("TASK_CONTEXT_B64"); raw != "" {
		decoded, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return nil, fmt.Errorf("TASK_CONTEXT_B64 is not valid base64: %w", err)
		}
		if err := json.Unmarshal(decoded, &cfg.TaskContext); err != nil {
			return nil, fmt.Errorf("TASK_CONTEXT_B64 is not valid JSON: %w", err)
		}
	}
	if cfg.TaskContext.TaskID == "" {
		cfg.TaskContext.TaskID = os.Getenv("TASK_ID")
	}

	return cfg, cfg.Validate()
}

// Validate checks the invariants boot depends on.
func (c *Config) Validate() error {
	if c.SandboxID == "" {
		return fmt.Errorf("SANDBOX_ID is required")
	}
	if c.CallbackURL == "" {
		return fmt.Errorf("CALLBACK_URL is required")
	}
	if c.TaskContext.TaskID == "" {
		return fmt.Errorf("task context has no task_id")
	}
	switch c.PermissionMode {
	case PermissionAcceptEdits, PermissionAskEach, PermissionReadOnly:
	default:
		return fmt.Errorf("unknown permission_mode %q", c.PermissionMode)
	}
	if c.MaxTurns < 0 {
		return fmt.Errorf("max_turns must be >= 0")
	}
	if c.MaxBudgetUSD < 0 {
		return fmt.Errorf("max_budget_usd must be >= 0")
	}
	return nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// envSeconds reads an integer or float number of seconds.
func envSeconds(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return time.Duration(f * float64(time.Second))
		}
	}
	return fallback
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
