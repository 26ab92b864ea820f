package commands

import (
	"errors"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

var ErrFailGenerationCommandIsNotConstructed = errors.New(
	"FailGenerationCommand must be created via NewFailGenerationCommand constructor",
)

// FailGenerationCommand records a generation failure (an engine error
// callback or a timeout sweep) and moves the order to the recoverable
// Failed status.
type FailGenerationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewFailGenerationCommand creates a command to fail an order's generation.
// The reason is recorded in the audit trail and must not be empty.
func NewFailGenerationCommand(orderID kernel.UUID, reason string) (FailGenerationCommand, error) {
	if err := orderID.Validate(); err != nil {
		return FailGenerationCommand{}, err
	}
	if reason == "" {
		return FailGenerationCommand{}, errs.NewValueIsRequiredError("reason")
	}

	return FailGenerationCommand{
		orderID: orderID,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FailGenerationCommand) Validate() error {
	return c.guard.Validate(ErrFailGenerationCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c FailGenerationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the recorded failure reason.
func (c FailGenerationCommand) Reason() string {
	return c.reason
}
