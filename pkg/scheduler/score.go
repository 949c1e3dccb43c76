package scheduler

import (
	"time"
)

// ScoreWeights are the coefficients of the dynamic priority formula:
//
//	score = w1·priority_base + w2·age_hours + w3·deadline_urgency
//	      + w4·downstream_blocked − w5·retry_count
//
// deadline_urgency = max(0, 1 − (deadline − now)/horizon).
type ScoreWeights struct {
	PriorityBase      float64       `yaml:"priority_base"`
	AgeHours          float64       `yaml:"age_hours"`
	DeadlineUrgency   float64       `yaml:"deadline_urgency"`
	DownstreamBlocked float64       `yaml:"downstream_blocked"`
	RetryPenalty      float64       `yaml:"retry_penalty"`
	DeadlineHorizon   time.Duration `yaml:"deadline_horizon"`
}

// DefaultScoreWeights returns the built-in weights.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		PriorityBase:      1.0,
		AgeHours:          0.1,
		DeadlineUrgency:   5.0,
		DownstreamBlocked: 0.5,
		RetryPenalty:      1.0,
		DeadlineHorizon:   24 * time.Hour,
	}
}

// ScoreInput is the task view the formula needs. Kept free of ent types so
// scoring is a pure function.
type ScoreInput struct {
	PriorityBase      int
	CreatedAt         time.Time
	Deadline          *time.Time
	DownstreamBlocked int
	RetryCount        int
}

// Score computes the scheduling score of a task at the given instant.
func (w ScoreWeights) Score(in ScoreInput, now time.Time) float64 {
	ageHours := now.Sub(in.CreatedAt).Hours()
	if ageHours < 0 {
		ageHours = 0
	}

	urgency := 0.0
	if in.Deadline != nil && w.DeadlineHorizon > 0 {
		remaining := in.Deadline.Sub(now)
		urgency = 1 - remaining.Seconds()/w.DeadlineHorizon.Seconds()
		if urgency < 0 {
			urgency = 0
		}
		if urgency > 1 {
			urgency = 1
		}
	}

	return w.PriorityBase*float64(in.PriorityBase) +
		w.AgeHours*ageHours +
		w.DeadlineUrgency*urgency +
		w.DownstreamBlocked*float64(in.DownstreamBlocked) -
		w.RetryPenalty*float64(in.RetryCount)
}
