// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read the database directly (or an eventually-consistent snapshot)
// and return optimized read models; they never block writers.
package queries

import (
	"errors"

	"docflow/internal/pkg/guard"
)

var ErrGetPipelineQueryIsNotConstructed = errors.New(
	"GetPipelineQuery must be created via NewGetPipelineQuery constructor",
)

// GetPipelineQuery retrieves the order count per pipeline status.
// Served from the periodically refreshed snapshot, so the numbers may trail
// the write side by one refresh interval.
type GetPipelineQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPipelineQuery creates a query for the pipeline overview.
func NewGetPipelineQuery() GetPipelineQuery {
	return GetPipelineQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPipelineQuery) Validate() error {
	return q.guard.Validate(ErrGetPipelineQueryIsNotConstructed)
}

// GetPipelineQueryResponse is the count of orders in one status.
type GetPipelineQueryResponse struct {
	Status string
	Count  int64
}
