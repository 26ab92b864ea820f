package commands

import (
	"errors"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

var ErrReopenVersionsCommandIsNotConstructed = errors.New(
	"ReopenVersionsCommand must be created via NewReopenVersionsCommand constructor",
)

// ReopenVersionsCommand clears an order's version lock so a new correction
// cycle may start after an approval. Admin-only; always audited.
type ReopenVersionsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   string
	reason  string

	guard guard.ConstructorGuard
}

// NewReopenVersionsCommand creates a command to clear the version lock.
func NewReopenVersionsCommand(orderID kernel.UUID, actor, reason string) (ReopenVersionsCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ReopenVersionsCommand{}, err
	}
	if actor == "" {
		return ReopenVersionsCommand{}, errs.NewValueIsRequiredError("actor")
	}
	if reason == "" {
		return ReopenVersionsCommand{}, errs.NewValueIsRequiredError("reason")
	}

	return ReopenVersionsCommand{
		orderID: orderID,
		actor:   actor,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReopenVersionsCommand) Validate() error {
	return c.guard.Validate(ErrReopenVersionsCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c ReopenVersionsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the identity clearing the lock.
func (c ReopenVersionsCommand) Actor() string {
	return c.actor
}

// Reason returns the mandatory reason.
func (c ReopenVersionsCommand) Reason() string {
	return c.reason
}
