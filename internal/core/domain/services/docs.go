// Package services contains stateless domain services that operate across
// aggregates or provide shared domain computations.
//
// SLAEvaluator is the single source of time-in-state / SLA-label
// computation. It is a pure function of the inputs: callers inject the
// current time, so the service itself never touches the clock.
package services
