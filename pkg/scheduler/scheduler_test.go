package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_PriorityDominatesAtDefaults(t *testing.T) {
	w := DefaultScoreWeights()
	now := time.Now()

	low := w.Score(ScoreInput{PriorityBase: 1, CreatedAt: now}, now)
	high := w.Score(ScoreInput{PriorityBase: 9, CreatedAt: now}, now)
	assert.Greater(t, high, low)
}

func TestScore_AgeRaisesScore(t *testing.T) {
	w := DefaultScoreWeights()
	now := time.Now()

	fresh := w.Score(ScoreInput{PriorityBase: 5, CreatedAt: now}, now)
	stale := w.Score(ScoreInput{PriorityBase: 5, CreatedAt: now.Add(-10 * time.Hour)}, now)
	assert.InDelta(t, 1.0, stale-fresh, 0.001)
}

func TestScore_DeadlineUrgencyClamped(t *testing.T) {
	w := DefaultScoreWeights()
	now := time.Now()

	// Deadline far beyond the horizon contributes nothing.
	far := now.Add(100 * time.Hour)
	score := w.Score(ScoreInput{PriorityBase: 0, CreatedAt: now, Deadline: &far}, now)
	assert.Zero(t, score)

	// Deadline already passed contributes the full weight.
	past := now.Add(-time.Hour)
	score = w.Score(ScoreInput{PriorityBase: 0, CreatedAt: now, Deadline: &past}, now)
	assert.Equal(t, w.DeadlineUrgency, score)
}

func TestScore_RetriesLowerScore(t *testing.T) {
	w := DefaultScoreWeights()
	now := time.Now()

	clean := w.Score(ScoreInput{PriorityBase: 5, CreatedAt: now}, now)
	retried := w.Score(ScoreInput{PriorityBase: 5, CreatedAt: now, RetryCount: 2}, now)
	assert.Equal(t, 2*w.RetryPenalty, clean-retried)
}

func TestScore_Deterministic(t *testing.T) {
	w := DefaultScoreWeights()
	now := time.Now()
	deadline := now.Add(3 * time.Hour)
	in := ScoreInput{PriorityBase: 7, CreatedAt: now.Add(-2 * time.Hour), Deadline: &deadline, DownstreamBlocked: 3, RetryCount: 1}

	first := w.Score(in, now)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, w.Score(in, now))
	}
}

func TestReadyQueue_HighestScoreFirst(t *testing.T) {
	now := time.Now()
	q := newReadyQueue([]queueItem{
		{TaskID: "a", Score: 1, CreatedAt: now},
		{TaskID: "b", Score: 5, CreatedAt: now},
		{TaskID: "c", Score: 3, CreatedAt: now},
	})

	var order []string
	for {
		item, ok := q.popNext()
		if !ok {
			break
		}
		order = append(order, item.TaskID)
	}
	assert.Equal(t, []string{"b", "c", "a"}, order)
}

func TestReadyQueue_TiesBrokenByCreatedAtThenID(t *testing.T) {
	now := time.Now()
	q := newReadyQueue([]queueItem{
		{TaskID: "younger", Score: 2, CreatedAt: now},
		{TaskID: "older", Score: 2, CreatedAt: now.Add(-time.Minute)},
		{TaskID: "z-same-age", Score: 2, CreatedAt: now},
		{TaskID: "a-same-age", Score: 2, CreatedAt: now},
	})

	var order []string
	for {
		item, ok := q.popNext()
		if !ok {
			break
		}
		order = append(order, item.TaskID)
	}
	assert.Equal(t, []string{"older", "a-same-age", "younger", "z-same-age"}, order)
}

func TestExpandOwnership_GlobPatterns(t *testing.T) {
	files := []string{
		"pkg/api/server.go",
		"pkg/api/routes.go",
		"pkg/worker/loop.go",
		"docs/readme.md",
	}

	owned, err := ExpandOwnership([]string{"pkg/api/**"}, files)
	require.NoError(t, err)
	assert.Len(t, owned, 2)
	assert.True(t, owned["pkg/api/server.go"])
	assert.False(t, owned["pkg/worker/loop.go"])
}

func TestExpandOwnership_InvalidPattern(t *testing.T) {
	_, err := ExpandOwnership([]string{"pkg/[api"}, []string{"pkg/api/server.go"})
	assert.Error(t, err)
}

func TestOwnershipDisjoint_OverlapDetected(t *testing.T) {
	files := []string{"pkg/api/server.go", "pkg/api/routes.go", "pkg/worker/loop.go"}

	disjoint, overlap, err := OwnershipDisjoint([]string{"pkg/api/**"}, []string{"pkg/worker/**"}, files)
	require.NoError(t, err)
	assert.True(t, disjoint)
	assert.Empty(t, overlap)

	disjoint, overlap, err = OwnershipDisjoint([]string{"pkg/api/**"}, []string{"**/*.go"}, files)
	require.NoError(t, err)
	assert.False(t, disjoint)
	assert.NotEmpty(t, overlap)
}

func TestBackoff_GrowsAndStaysBounded(t *testing.T) {
	for retry := 0; retry < 12; retry++ {
		d := Backoff(retry)
		assert.Greater(t, d, time.Duration(0))
		assert.LessOrEqual(t, d, 5*time.Minute+5*time.Minute/2)
	}
}

func TestSamePatterns(t *testing.T) {
	assert.True(t, samePatterns([]string{"a", "b"}, []string{"b", "a"}))
	assert.False(t, samePatterns([]string{"a"}, []string{"a", "b"}))
	assert.False(t, samePatterns([]string{"a", "c"}, []string{"a", "b"}))
}
