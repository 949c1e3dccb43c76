package heartbeat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/services"
)

func steadyBaseline() services.BaselineStats {
	return services.BaselineStats{
		LatencyMeanMS:   100,
		LatencyStddevMS: 10,
		ErrorRate:       0.01,
		CPUMean:         50,
		CPUStddev:       5,
		MemMean:         512,
		MemStddev:       64,
		SampleCount:     100,
	}
}

func TestAnomalyScore_NominalReadingScoresNearZero(t *testing.T) {
	m := models.HeartbeatMetrics{
		LatencyMS: 102, ErrorRate: 0.01, CPUPercent: 51, MemoryMB: 520, QueueDepth: 0,
	}
	score := AnomalyScore(m, steadyBaseline())
	assert.Less(t, score, 0.1)
}

func TestAnomalyScore_InsufficientSamplesScoreZero(t *testing.T) {
	m := models.HeartbeatMetrics{LatencyMS: 10000, ErrorRate: 1}
	score := AnomalyScore(m, services.BaselineStats{SampleCount: 2})
	assert.Zero(t, score)
}

func TestAnomalyScore_SingleSignalCannotForceQuarantine(t *testing.T) {
	// Latency wildly off, everything else nominal: the component is capped
	// at its weight, so the composite stays below the default threshold.
	m := models.HeartbeatMetrics{
		LatencyMS: 100000, ErrorRate: 0.01, CPUPercent: 50, MemoryMB: 512, QueueDepth: 0,
	}
	score := AnomalyScore(m, steadyBaseline())
	assert.InDelta(t, weightLatency, score, 0.05)
	assert.Less(t, score, DefaultEscalationConfig().AnomalyThreshold)
}

func TestAnomalyScore_CompositeDriftCrossesThreshold(t *testing.T) {
	m := models.HeartbeatMetrics{
		LatencyMS:  500,  // 40 stddevs out
		ErrorRate:  0.8,  // way above baseline
		CPUPercent: 99,   // ~10 stddevs out
		MemoryMB:   2048, // ~24 stddevs out
		QueueDepth: 50,
	}
	score := AnomalyScore(m, steadyBaseline())
	assert.GreaterOrEqual(t, score, DefaultEscalationConfig().AnomalyThreshold)
	assert.LessOrEqual(t, score, 1.0)
}

func TestAnomalyScore_BoundedInUnitInterval(t *testing.T) {
	cases := []models.HeartbeatMetrics{
		{},
		{LatencyMS: -5, ErrorRate: -1, CPUPercent: -10, QueueDepth: -3},
		{LatencyMS: 1e12, ErrorRate: 1e6, CPUPercent: 1e6, MemoryMB: 1e12, QueueDepth: 1 << 30},
	}
	for _, m := range cases {
		score := AnomalyScore(m, steadyBaseline())
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestUpdateBaseline_FirstSampleSeedsMeans(t *testing.T) {
	m := models.HeartbeatMetrics{LatencyMS: 200, ErrorRate: 0.05, CPUPercent: 60, MemoryMB: 700}
	next := UpdateBaseline(services.BaselineStats{}, m)
	assert.Equal(t, 200.0, next.LatencyMeanMS)
	assert.Equal(t, 0.05, next.ErrorRate)
	assert.Equal(t, int64(1), next.SampleCount)
}

func TestUpdateBaseline_ConvergesTowardNewRegime(t *testing.T) {
	base := steadyBaseline()
	m := models.HeartbeatMetrics{LatencyMS: 200, ErrorRate: 0.01, CPUPercent: 50, MemoryMB: 512}
	for i := 0; i < 200; i++ {
		base = UpdateBaseline(base, m)
	}
	assert.InDelta(t, 200, base.LatencyMeanMS, 1)
	assert.Equal(t, int64(300), base.SampleCount)
}

func TestUpdateBaseline_OneOutlierBarelyMovesMean(t *testing.T) {
	base := steadyBaseline()
	next := UpdateBaseline(base, models.HeartbeatMetrics{LatencyMS: 10000, CPUPercent: 50, MemoryMB: 512})
	assert.Less(t, next.LatencyMeanMS, 1200.0)
	assert.Greater(t, next.LatencyStddevMS, base.LatencyStddevMS)
}
