package queries

import (
	"errors"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/guard"
)

var ErrGetTimelineQueryIsNotConstructed = errors.New(
	"GetTimelineQuery must be created via NewGetTimelineQuery constructor",
)

// GetTimelineQuery retrieves an order's audit trail in chronological order.
type GetTimelineQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTimelineQuery creates a query for an order's timeline.
func NewGetTimelineQuery(orderID kernel.UUID) (GetTimelineQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetTimelineQuery{}, err
	}

	return GetTimelineQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetTimelineQueryIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (q GetTimelineQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetTimelineQueryResponse is one audit event in the timeline read model.
// FromStatus and ToStatus are set for transitions, Action for the rest.
type GetTimelineQueryResponse struct {
	ExecutionID kernel.UUID
	Actor       string
	Kind        string
	FromStatus  string
	ToStatus    string
	Action      string
	Reason      string
	Notes       string
	VersionRef  *int
	Timestamp   time.Time
}
