package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCapTrackerZeroTurnsTripsImmediately(t *testing.T) {
	caps := NewCapTracker(0, 10.0, time.Hour)

	reason, hit := caps.Exceeded()
	assert.True(t, hit, "max_turns=0 means not even one turn is allowed")
	assert.Contains(t, reason, "max_turns")
}

func TestCapTrackerTurnLimit(t *testing.T) {
	caps := NewCapTracker(2, 0, 0)

	_, hit := caps.Exceeded()
	assert.False(t, hit)

	caps.RecordTurn(100, 50, 0.01)
	_, hit = caps.Exceeded()
	assert.False(t, hit)

	caps.RecordTurn(100, 50, 0.01)
	reason, hit := caps.Exceeded()
	assert.True(t, hit)
	assert.Contains(t, reason, "max_turns")
}

func TestCapTrackerBudgetLimit(t *testing.T) {
	caps := NewCapTracker(100, 1.0, 0)

	caps.RecordTurn(1000, 500, 0.60)
	_, hit := caps.Exceeded()
	assert.False(t, hit)

	caps.RecordTurn(1000, 500, 0.45)
	reason, hit := caps.Exceeded()
	assert.True(t, hit)
	assert.Contains(t, reason, "budget")
}

func TestCapTrackerWallClock(t *testing.T) {
	caps := NewCapTracker(100, 0, time.Nanosecond)
	time.Sleep(time.Millisecond)

	reason, hit := caps.Exceeded()
	assert.True(t, hit)
	assert.Contains(t, reason, "duration")
}

func TestCapTrackerTotals(t *testing.T) {
	caps := NewCapTracker(100, 0, 0)
	caps.RecordTurn(100, 40, 0.02)
	caps.RecordTurn(200, 80, 0.03)

	turns, prompt, completion, cost := caps.Totals()
	assert.Equal(t, 2, turns)
	assert.Equal(t, int64(300), prompt)
	assert.Equal(t, int64(120), completion)
	assert.InDelta(t, 0.05, cost, 1e-9)
}
