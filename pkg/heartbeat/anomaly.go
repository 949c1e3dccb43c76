package heartbeat

import (
	"math"

	"github.com/helmsman-ai/helmsman/pkg/models"
	"github.com/helmsman-ai/helmsman/pkg/services"
)

// Anomaly score component weights. The components are additive and each is
// capped at its weight, so no single signal can force quarantine by itself;
// the weights sum to 1.0 and the composite stays in [0, 1].
const (
	weightLatency     = 0.30
	weightErrorRate   = 0.25
	weightCPU         = 0.15
	weightMemory      = 0.15
	weightQueue       = 0.15
	zScoreCeiling     = 4.0 // z-scores at or past this saturate the component
	queueDepthCeiling = 20  // queue depth at or past this saturates the component
)

// ewmaAlpha is the smoothing factor for rolling baseline updates. Small
// enough that one outlier reading barely moves the baseline.
const ewmaAlpha = 0.1

// AnomalyScore computes the composite anomaly score of a reading against
// its baseline. Result is in [0, 1].
func AnomalyScore(m models.HeartbeatMetrics, base services.BaselineStats) float64 {
	if base.SampleCount < 3 {
		// Not enough history to call anything anomalous.
		return 0
	}

	score := weightLatency * zComponent(m.LatencyMS, base.LatencyMeanMS, base.LatencyStddevMS)
	score += weightErrorRate * errComponent(m.ErrorRate, base.ErrorRate)
	score += weightCPU * zComponent(m.CPUPercent, base.CPUMean, base.CPUStddev)
	score += weightMemory * zComponent(m.MemoryMB, base.MemMean, base.MemStddev)
	score += weightQueue * queueComponent(m.QueueDepth)

	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score
}

// zComponent maps the absolute z-score of value against (mean, stddev) to
// [0, 1], saturating at zScoreCeiling.
func zComponent(value, mean, stddev float64) float64 {
	if stddev <= 0 {
		if value > mean {
			return 1
		}
		return 0
	}
	z := math.Abs(value-mean) / stddev
	if z >= zScoreCeiling {
		return 1
	}
	return z / zScoreCeiling
}

// errComponent scores error-rate drift above baseline. Error rates below
// baseline are not anomalous.
func errComponent(rate, baseline float64) float64 {
	if rate <= baseline {
		return 0
	}
	delta := rate - baseline
	if delta >= 0.5 {
		return 1
	}
	return delta / 0.5
}

// queueComponent scores injected-message queue impact.
func queueComponent(depth int) float64 {
	if depth <= 0 {
		return 0
	}
	if depth >= queueDepthCeiling {
		return 1
	}
	return float64(depth) / float64(queueDepthCeiling)
}

// UpdateBaseline folds a reading into the rolling statistics with
// exponentially weighted estimates. The returned stats replace the stored
// row for the (agent_type, phase) key.
func UpdateBaseline(base services.BaselineStats, m models.HeartbeatMetrics) services.BaselineStats {
	if base.SampleCount == 0 {
		return services.BaselineStats{
			LatencyMeanMS: m.LatencyMS,
			ErrorRate:     m.ErrorRate,
			CPUMean:       m.CPUPercent,
			MemMean:       m.MemoryMB,
			SampleCount:   1,
		}
	}
	next := base
	next.LatencyMeanMS, next.LatencyStddevMS = ewma(base.LatencyMeanMS, base.LatencyStddevMS, m.LatencyMS)
	next.CPUMean, next.CPUStddev = ewma(base.CPUMean, base.CPUStddev, m.CPUPercent)
	next.MemMean, next.MemStddev = ewma(base.MemMean, base.MemStddev, m.MemoryMB)
	next.ErrorRate = (1-ewmaAlpha)*base.ErrorRate + ewmaAlpha*m.ErrorRate
	next.SampleCount = base.SampleCount + 1
	return next
}

// ewma updates an exponentially weighted mean and deviation estimate.
func ewma(mean, stddev, value float64) (float64, float64) {
	diff := value - mean
	newMean := mean + ewmaAlpha*diff
	// Exponentially weighted variance (West 1979).
	variance := (1 - ewmaAlpha) * (stddev*stddev + ewmaAlpha*diff*diff)
	return newMean, math.Sqrt(variance)
}
