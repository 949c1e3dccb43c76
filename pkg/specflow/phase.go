// Package specflow implements the multi-phase spec workflow: EXPLORE →
// REQUIREMENTS → DESIGN → TASKS → SYNC → COMPLETE, with per-phase executors,
// evaluators, retries, checkpoints, and SYNC artifact validation.
package specflow

import "fmt"

// Phase is one stage of the spec workflow.
type Phase string

// Workflow phases, in execution order.
const (
	PhaseExplore      Phase = "EXPLORE"
	PhaseRequirements Phase = "REQUIREMENTS"
	PhaseDesign       Phase = "DESIGN"
	PhaseTasks        Phase = "TASKS"
	PhaseSync         Phase = "SYNC"
	PhaseComplete     Phase = "COMPLETE"
)

var phaseOrder = []Phase{
	PhaseExplore,
	PhaseRequirements,
	PhaseDesign,
	PhaseTasks,
	PhaseSync,
	PhaseComplete,
}

var phaseIndex = func() map[Phase]int {
	m := make(map[Phase]int, len(phaseOrder))
	for i, p := range phaseOrder {
		m[p] = i
	}
	return m
}()

// ParsePhase validates a phase name.
func ParsePhase(s string) (Phase, error) {
	p := Phase(s)
	if _, ok := phaseIndex[p]; !ok {
		return "", fmt.Errorf("unknown phase %q", s)
	}
	return p, nil
}

// Next returns the phase after p, or COMPLETE if p is the last.
func (p Phase) Next() Phase {
	i, ok := phaseIndex[p]
	if !ok || i >= len(phaseOrder)-1 {
		return PhaseComplete
	}
	return phaseOrder[i+1]
}

// Terminal reports whether the workflow ends at p.
func (p Phase) Terminal() bool {
	return p == PhaseComplete
}

// Before reports whether p executes before other.
func (p Phase) Before(other Phase) bool {
	return phaseIndex[p] < phaseIndex[other]
}
