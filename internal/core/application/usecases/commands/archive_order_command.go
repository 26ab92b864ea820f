package commands

import (
	"errors"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

var ErrArchiveOrderCommandIsNotConstructed = errors.New(
	"ArchiveOrderCommand must be created via NewArchiveOrderCommand constructor",
)

// ArchiveOrderCommand toggles the reversible archive flag of an order.
// Archiving hides the order from active list views; it is never a status
// and never deletes anything.
type ArchiveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	actor    string
	archived bool
	reason   string

	guard guard.ConstructorGuard
}

// NewArchiveOrderCommand creates a command to archive (archived=true) or
// unarchive (archived=false) an order.
func NewArchiveOrderCommand(orderID kernel.UUID, actor string, archived bool, reason string) (ArchiveOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ArchiveOrderCommand{}, err
	}
	if actor == "" {
		return ArchiveOrderCommand{}, errs.NewValueIsRequiredError("actor")
	}
	if reason == "" {
		return ArchiveOrderCommand{}, errs.NewValueIsRequiredError("reason")
	}

	return ArchiveOrderCommand{
		orderID:  orderID,
		actor:    actor,
		archived: archived,
		reason:   reason,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrArchiveOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c ArchiveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the identity performing the change.
func (c ArchiveOrderCommand) Actor() string {
	return c.actor
}

// Archived returns the requested flag state.
func (c ArchiveOrderCommand) Archived() bool {
	return c.archived
}

// Reason returns the mandatory reason.
func (c ArchiveOrderCommand) Reason() string {
	return c.reason
}
