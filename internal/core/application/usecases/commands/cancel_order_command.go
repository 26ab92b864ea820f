package commands

import (
	"errors"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels an order pre-finalisation. Cancellation is a
// guarded transition with a mandatory reason; in-flight asynchronous work
// observes it at its next checkpoint rather than being interrupted.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   string
	reason  string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderID kernel.UUID, actor, reason string) (CancelOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}
	if actor == "" {
		return CancelOrderCommand{}, errs.NewValueIsRequiredError("actor")
	}
	if reason == "" {
		return CancelOrderCommand{}, errs.NewValueIsRequiredError("reason")
	}

	return CancelOrderCommand{
		orderID: orderID,
		actor:   actor,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the identity performing the cancellation.
func (c CancelOrderCommand) Actor() string {
	return c.actor
}

// Reason returns the mandatory cancellation reason.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}
