// Package guardian implements the watchdog: it consumes anomaly, failure,
// and cost signals, chooses a remediation action by policy authority level,
// executes what it is allowed to, and parks the rest for human review. Every
// action leaves an audit trail.
package guardian

import (
	"time"

	"github.com/helmsman-ai/helmsman/ent/guardianaction"
)

// Authority levels of the remediation ladder. Higher levels are more
// disruptive and need more trust to run unattended.
const (
	AuthorityNudge     = 1
	AuthorityPause     = 2
	AuthorityResize    = 3
	AuthorityRestart   = 4
	AuthorityTerminate = 5
)

// actionAuthority maps each action type onto the ladder.
var actionAuthority = map[guardianaction.ActionType]int{
	guardianaction.ActionTypeNudge:           AuthorityNudge,
	guardianaction.ActionTypePauseAgent:      AuthorityPause,
	guardianaction.ActionTypeResizeResources: AuthorityResize,
	guardianaction.ActionTypeRestartSandbox:  AuthorityRestart,
	guardianaction.ActionTypeTerminateAgent:  AuthorityTerminate,
}

// ladder is the escalation order, ascending authority.
var ladder = []guardianaction.ActionType{
	guardianaction.ActionTypeNudge,
	guardianaction.ActionTypePauseAgent,
	guardianaction.ActionTypeResizeResources,
	guardianaction.ActionTypeRestartSandbox,
	guardianaction.ActionTypeTerminateAgent,
}

// PolicyConfig tunes the guardian.
type PolicyConfig struct {
	// AutoAuthority is the highest authority level the guardian may execute
	// without an approver. Actions above it go pending_review.
	AutoAuthority int `yaml:"auto_authority"`

	// ReviewTimeout bounds how long a pending action waits for an approver
	// before the incident is re-queued at elevated severity.
	ReviewTimeout time.Duration `yaml:"review_timeout"`

	// SweepInterval is how often pending reviews and budgets are scanned.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// DefaultPolicyConfig allows nudge and pause unattended; anything touching
// the sandbox or the agent's existence needs a human.
func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{
		AutoAuthority: AuthorityPause,
		ReviewTimeout: 15 * time.Minute,
		SweepInterval: 30 * time.Second,
	}
}

// actionForSeverity picks the remediation for an incident severity. The
// heartbeat ladder hands the guardian severities starting at its guardian
// threshold (4): 4 nudges, 5 pauses, and each re-queue climbs one rung.
func actionForSeverity(severity int) guardianaction.ActionType {
	idx := severity - 4
	if idx < 0 {
		idx = 0
	}
	if idx >= len(ladder) {
		idx = len(ladder) - 1
	}
	return ladder[idx]
}
