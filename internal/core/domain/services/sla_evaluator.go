package services

import (
	"math"
	"time"

	"docflow/internal/core/domain/model/order"
)

// SLA thresholds, expressed as fractions of the order's hour budget.
const (
	warningFraction = 0.75
	breachFraction  = 1.0
)

// Label classifies how an order stands against its SLA budget.
type Label string

const (
	// LabelOK means elapsed time is below the warning threshold.
	LabelOK Label = "OK"

	// LabelWarning means elapsed time reached 75% of the SLA budget.
	LabelWarning Label = "WARNING"

	// LabelBreach means the SLA budget is exhausted.
	LabelBreach Label = "BREACH"

	// LabelPaused means the clock is frozen waiting on the client;
	// paused orders are deprioritized, not urgent.
	LabelPaused Label = "PAUSED"
)

// Evaluation is the SLA standing of one order at a given instant.
type Evaluation struct {
	Elapsed   time.Duration
	Remaining time.Duration
	Label     Label
	Paused    bool
}

// SLAEvaluator is a domain service computing time-in-state against the SLA
// budget. It is the single place this arithmetic lives; every consumer
// (list views, jobs, notifications) uses it rather than recomputing with
// its own heuristics.
//
// The evaluation is a pure function of (now, stateEnteredAt, slaHours,
// pausedAt): no clock access, fully testable without mocks.
//
// Example usage:
//
//	eval := services.NewSLAEvaluator().Evaluate(time.Now(), o)
//	if eval.Label == services.LabelBreach {
//	    // escalate
//	}
type SLAEvaluator struct{}

// NewSLAEvaluator creates a new SLAEvaluator instance.
func NewSLAEvaluator() SLAEvaluator {
	return SLAEvaluator{}
}

// Evaluate computes the SLA standing of an order at instant now.
//
// Elapsed is time spent in the current status: now − stateEnteredAt while
// the clock runs, frozen at pausedAt − stateEnteredAt while paused. Paused
// orders report Remaining as the maximum duration so that ascending-
// remaining list views sort them last (deprioritized until resumed).
func (SLAEvaluator) Evaluate(now time.Time, o *order.Order) Evaluation {
	return EvaluateSLA(now, o.StateEnteredAt(), o.SLAHours(), o.PausedAt())
}

// EvaluateSLA is the underlying pure computation, exposed for callers that
// hold raw row data rather than a hydrated aggregate.
func EvaluateSLA(now, stateEnteredAt time.Time, slaHours int, pausedAt *time.Time) Evaluation {
	budget := time.Duration(slaHours) * time.Hour

	if pausedAt != nil {
		return Evaluation{
			Elapsed:   pausedAt.Sub(stateEnteredAt),
			Remaining: time.Duration(math.MaxInt64),
			Label:     LabelPaused,
			Paused:    true,
		}
	}

	elapsed := now.Sub(stateEnteredAt)
	eval := Evaluation{
		Elapsed:   elapsed,
		Remaining: budget - elapsed,
		Label:     LabelOK,
	}

	switch {
	case float64(elapsed) >= breachFraction*float64(budget):
		eval.Label = LabelBreach
	case float64(elapsed) >= warningFraction*float64(budget):
		eval.Label = LabelWarning
	}

	return eval
}
