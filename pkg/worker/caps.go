package worker

import (
	"fmt"
	"sync"
	"time"
)

// CapTracker enforces the worker's iteration, budget, and wall-time caps.
// Checked before every turn; the first breached cap ends the run with
// agent.budget_exhausted.
type CapTracker struct {
	mu sync.Mutex

	maxTurns    int
	maxBudget   float64
	maxDuration time.Duration
	start       time.Time

	turns            int
	promptTokens     int64
	completionTokens int64
	costUSD          float64
}

// NewCapTracker starts the wall clock now.
func NewCapTracker(maxTurns int, maxBudgetUSD float64, maxDuration time.Duration) *CapTracker {
	return &CapTracker{
		maxTurns:    maxTurns,
		maxBudget:   maxBudgetUSD,
		maxDuration: maxDuration,
		start:       time.Now(),
	}
}

// RecordTurn adds one turn's usage to the running totals.
func (c *CapTracker) RecordTurn(promptTokens, completionTokens int64, costUSD float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns++
	c.promptTokens += promptTokens
	c.completionTokens += completionTokens
	c.costUSD += costUSD
}

// Exceeded returns the breach reason when a cap is hit. A max_turns of 0
// means no turn is allowed at all: the very first check reports exhaustion.
func (c *CapTracker) Exceeded() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.turns >= c.maxTurns {
		return fmt.Sprintf("max_turns reached (%d)", c.maxTurns), true
	}
	if c.maxBudget > 0 && c.costUSD >= c.maxBudget {
		return fmt.Sprintf("budget exhausted ($%.4f of $%.2f)", c.costUSD, c.maxBudget), true
	}
	if c.maxDuration > 0 && time.Since(c.start) >= c.maxDuration {
		return fmt.Sprintf("max duration reached (%s)", c.maxDuration), true
	}
	return "", false
}

// WouldExceed reports whether adding projectedCost would breach the budget
// cap. Always false for unlimited budgets.
func (c *CapTracker) WouldExceed(projectedCost float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.maxBudget > 0 && c.costUSD+projectedCost > c.maxBudget
}

// Totals returns a snapshot of the accumulated usage.
func (c *CapTracker) Totals() (turns int, promptTokens, completionTokens int64, costUSD float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.turns, c.promptTokens, c.completionTokens, c.costUSD
}

// Elapsed returns the wall time since the tracker started.
func (c *CapTracker) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.Since(c.start)
}
