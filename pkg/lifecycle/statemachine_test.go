package lifecycle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_LegalEdges(t *testing.T) {
	legal := []struct{ from, to Status }{
		{StatusSpawning, StatusIdle},
		{StatusSpawning, StatusFailed},
		{StatusSpawning, StatusTerminated},
		{StatusIdle, StatusRunning},
		{StatusIdle, StatusDegraded},
		{StatusIdle, StatusQuarantined},
		{StatusIdle, StatusTerminated},
		{StatusRunning, StatusIdle},
		{StatusRunning, StatusFailed},
		{StatusRunning, StatusDegraded},
		{StatusRunning, StatusQuarantined},
		{StatusDegraded, StatusIdle},
		{StatusDegraded, StatusFailed},
		{StatusDegraded, StatusQuarantined},
		{StatusDegraded, StatusTerminated},
		{StatusFailed, StatusQuarantined},
		{StatusFailed, StatusTerminated},
		{StatusQuarantined, StatusIdle},
		{StatusQuarantined, StatusTerminated},
	}
	for _, tc := range legal {
		assert.NoError(t, Validate(tc.from, tc.to), "%s → %s should be legal", tc.from, tc.to)
	}
}

func TestValidate_IllegalEdges(t *testing.T) {
	illegal := []struct{ from, to Status }{
		{StatusSpawning, StatusRunning},
		{StatusSpawning, StatusDegraded},
		{StatusIdle, StatusFailed},
		{StatusRunning, StatusTerminated},
		{StatusFailed, StatusIdle},
		{StatusFailed, StatusRunning},
		{StatusQuarantined, StatusRunning},
		{StatusQuarantined, StatusDegraded},
	}
	for _, tc := range illegal {
		err := Validate(tc.from, tc.to)
		require.Error(t, err, "%s → %s should be illegal", tc.from, tc.to)
		assert.True(t, errors.Is(err, ErrInvalidTransition))
	}
}

func TestValidate_TerminatedHasNoOutgoingEdges(t *testing.T) {
	for _, to := range []Status{
		StatusSpawning, StatusIdle, StatusRunning,
		StatusDegraded, StatusFailed, StatusQuarantined,
	} {
		err := Validate(StatusTerminated, to)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidTransition))
	}
	assert.True(t, Terminal(StatusTerminated))
	assert.False(t, Terminal(StatusFailed))
}

func TestValidate_UnknownStatus(t *testing.T) {
	err := Validate(Status("BOGUS"), StatusIdle)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestValidate_SelfTransitionIsNoOp(t *testing.T) {
	assert.NoError(t, Validate(StatusRunning, StatusRunning))
}

func TestAssignable(t *testing.T) {
	assert.True(t, Assignable(StatusIdle))
	assert.False(t, Assignable(StatusRunning))
	assert.False(t, Assignable(StatusSpawning))
	assert.False(t, Assignable(StatusQuarantined))
}
