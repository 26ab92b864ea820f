package commands

import (
	"errors"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand delivers the approved document of a finalising order
// to the client: artifact links are resolved and sent out, and the order
// completes. A delivery failure lands the order in the retryable
// DeliveryFailed status instead of failing the pipeline.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to deliver a finalising order.
func NewDeliverOrderCommand(orderID kernel.UUID) (DeliverOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeliverOrderCommand{}, err
	}

	return DeliverOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
