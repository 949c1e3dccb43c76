// Package lifecycle defines the agent status state machine shared by the
// heartbeat engine, the guardian, and the agent service. Every status
// mutation in the system goes through Validate so that an illegal edge can
// never reach the store.
package lifecycle

import (
	"errors"
	"fmt"
)

// Status is an agent lifecycle state.
type Status string

// Agent lifecycle states.
const (
	StatusSpawning    Status = "SPAWNING"
	StatusIdle        Status = "IDLE"
	StatusRunning     Status = "RUNNING"
	StatusDegraded    Status = "DEGRADED"
	StatusFailed      Status = "FAILED"
	StatusQuarantined Status = "QUARANTINED"
	StatusTerminated  Status = "TERMINATED"
)

// ErrInvalidTransition is returned when a requested status change is not an
// edge of the state graph. The agent's state is never mutated in that case.
var ErrInvalidTransition = errors.New("invalid agent state transition")

// transitions is the published state graph. TERMINATED has no outgoing edges.
var transitions = map[Status][]Status{
	StatusSpawning:    {StatusIdle, StatusFailed, StatusTerminated},
	StatusIdle:        {StatusRunning, StatusDegraded, StatusQuarantined, StatusTerminated},
	StatusRunning:     {StatusIdle, StatusFailed, StatusDegraded, StatusQuarantined},
	StatusDegraded:    {StatusIdle, StatusFailed, StatusQuarantined, StatusTerminated},
	StatusFailed:      {StatusQuarantined, StatusTerminated},
	StatusQuarantined: {StatusIdle, StatusTerminated},
	StatusTerminated:  {},
}

// Valid reports whether s is a known agent status.
func Valid(s Status) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether from → to is an edge of the state graph.
// A no-op transition (from == to) is always allowed.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Validate returns ErrInvalidTransition (wrapped with the offending edge)
// unless from → to is legal.
func Validate(from, to Status) error {
	if !Valid(from) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, from)
	}
	if !Valid(to) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, to)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s → %s", ErrInvalidTransition, from, to)
	}
	return nil
}

// Terminal reports whether s has no outgoing edges.
func Terminal(s Status) bool {
	return Valid(s) && len(transitions[s]) == 0
}

// Assignable reports whether an agent in status s may receive a new task.
// Only IDLE agents are assignable.
func Assignable(s Status) bool {
	return s == StatusIdle
}
