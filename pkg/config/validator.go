package config

import (
	"fmt"

	"github.com/helmsman-ai/helmsman/pkg/guardian"
)

// ValidationError reports a single invalid configuration field.
type ValidationError struct {
	Section string
	Field   string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("config %s: %v", e.Section, e.Err)
	}
	return fmt.Sprintf("config %s.%s: %v", e.Section, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(section, field, format string, args ...any) error {
	return &ValidationError{Section: section, Field: field, Err: fmt.Errorf(format, args...)}
}

// Validate checks cross-field constraints that the individual packages
// cannot check at load time.
func Validate(cfg *Config) error {
	if cfg.Server.Addr == "" {
		return invalid("server", "addr", "must not be empty")
	}

	w := cfg.Scheduler
	for field, v := range map[string]float64{
		"priority_base":      w.PriorityBase,
		"age_hours":          w.AgeHours,
		"deadline_urgency":   w.DeadlineUrgency,
		"downstream_blocked": w.DownstreamBlocked,
		"retry_penalty":      w.RetryPenalty,
	} {
		if v < 0 {
			return invalid("scheduler", field, "must not be negative, got %v", v)
		}
	}
	if w.DeadlineHorizon <= 0 {
		return invalid("scheduler", "deadline_horizon", "must be positive")
	}

	o := cfg.Orchestrator
	if o.WorkerCount <= 0 {
		return invalid("orchestrator", "worker_count", "must be positive, got %d", o.WorkerCount)
	}
	if o.MaxConcurrentTasks < o.WorkerCount {
		return invalid("orchestrator", "max_concurrent_tasks",
			"must be at least worker_count (%d), got %d", o.WorkerCount, o.MaxConcurrentTasks)
	}
	if o.PollInterval <= 0 {
		return invalid("orchestrator", "poll_interval", "must be positive")
	}

	// The escalation ladder must be monotone or an agent could be marked
	// FAILED before the guardian ever sees it.
	h := cfg.Heartbeat
	if h.Warn <= 0 {
		return invalid("heartbeat", "warn", "must be positive, got %d", h.Warn)
	}
	if h.Warn > h.Degrade || h.Degrade > h.Guardian || h.Guardian > h.Fail {
		return invalid("heartbeat", "thresholds",
			"must be ordered warn <= degrade <= guardian <= fail, got %d/%d/%d/%d",
			h.Warn, h.Degrade, h.Guardian, h.Fail)
	}
	if h.AnomalyThreshold < 0 || h.AnomalyThreshold > 1 {
		return invalid("heartbeat", "anomaly_threshold", "must be within [0, 1], got %v", h.AnomalyThreshold)
	}
	if h.ExpectedInterval < 0 || h.ScanInterval < 0 {
		return invalid("heartbeat", "intervals", "must not be negative")
	}

	g := cfg.Guardian
	if g.AutoAuthority < 0 || g.AutoAuthority > guardian.AuthorityTerminate {
		return invalid("guardian", "auto_authority",
			"must be within [0, %d], got %d", guardian.AuthorityTerminate, g.AutoAuthority)
	}
	if g.SweepInterval <= 0 {
		return invalid("guardian", "sweep_interval", "must be positive")
	}

	r := cfg.Resolver
	if r.MaxInvocations < 0 || r.MaxTokens < 0 || r.MaxCostUSD < 0 {
		return invalid("merge_resolver", "caps", "must not be negative")
	}

	if cfg.Retention.EventTTL < 0 {
		return invalid("retention", "event_ttl", "must not be negative")
	}
	if cfg.Retention.ActionRetention < 0 {
		return invalid("retention", "action_retention", "must not be negative")
	}

	if cfg.BusQueueSize <= 0 {
		return invalid("bus_queue_size", "", "must be positive, got %d", cfg.BusQueueSize)
	}
	return nil
}
