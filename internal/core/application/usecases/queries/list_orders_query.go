package queries

import (
	"errors"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves all active (non-archived, non-terminal) orders
// with their SLA standing, sorted by urgency: ascending remaining time,
// paused orders last.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query for the active order list.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// ListOrdersQueryResponse is one order in the active list read model.
type ListOrdersQueryResponse struct {
	ID                kernel.UUID
	ServiceCode       string
	Status            string
	Priority          bool
	FastTrack         bool
	SLAHours          int
	RegenerationCount int

	Elapsed   time.Duration
	Remaining time.Duration
	SLALabel  string
	Paused    bool
}
