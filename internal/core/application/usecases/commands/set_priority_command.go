package commands

import (
	"errors"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

var ErrSetPriorityCommandIsNotConstructed = errors.New(
	"SetPriorityCommand must be created via NewSetPriorityCommand constructor",
)

// SetPriorityCommand updates an order's priority and fast-track flags.
type SetPriorityCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actor     string
	priority  bool
	fastTrack bool
	reason    string

	guard guard.ConstructorGuard
}

// NewSetPriorityCommand creates a command to change priority handling.
func NewSetPriorityCommand(orderID kernel.UUID, actor string, priority, fastTrack bool, reason string) (SetPriorityCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SetPriorityCommand{}, err
	}
	if actor == "" {
		return SetPriorityCommand{}, errs.NewValueIsRequiredError("actor")
	}
	if reason == "" {
		return SetPriorityCommand{}, errs.NewValueIsRequiredError("reason")
	}

	return SetPriorityCommand{
		orderID:   orderID,
		actor:     actor,
		priority:  priority,
		fastTrack: fastTrack,
		reason:    reason,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetPriorityCommand) Validate() error {
	return c.guard.Validate(ErrSetPriorityCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c SetPriorityCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the identity performing the change.
func (c SetPriorityCommand) Actor() string {
	return c.actor
}

// Priority returns the requested priority flag.
func (c SetPriorityCommand) Priority() bool {
	return c.priority
}

// FastTrack returns the requested fast-track flag.
func (c SetPriorityCommand) FastTrack() bool {
	return c.fastTrack
}

// Reason returns the mandatory reason.
func (c SetPriorityCommand) Reason() string {
	return c.reason
}
