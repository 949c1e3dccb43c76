package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helmsman-ai/helmsman/pkg/session"
)

func TestCostEstimatorProjectionGrowsWithTranscript(t *testing.T) {
	est := NewCostEstimator("test-model", 5.0, 25.0)

	mgr := session.NewManager()
	sess, err := mgr.Create("system prompt", "do the thing")
	assert.NoError(t, err)

	base := est.ProjectTurnCost(sess)
	assert.Greater(t, base, 0.0, "completion allowance alone costs something")

	sess.AddMessage(session.RoleAssistant, "a fairly long assistant reply that adds prompt tokens to every later turn")
	grown := est.ProjectTurnCost(sess)
	assert.Greater(t, grown, base)
}

func TestCostEstimatorCountTokensNeverZero(t *testing.T) {
	est := NewCostEstimator("test-model", 0, 0)
	assert.Greater(t, est.CountTokens("hello world"), 0)
}

func TestCapTrackerWouldExceed(t *testing.T) {
	caps := NewCapTracker(10, 1.0, 0)
	assert.False(t, caps.WouldExceed(0.5))

	caps.RecordTurn(100, 100, 0.9)
	assert.True(t, caps.WouldExceed(0.5))
	assert.False(t, caps.WouldExceed(0.05))

	unlimited := NewCapTracker(10, 0, 0)
	assert.False(t, unlimited.WouldExceed(1e9))
}
