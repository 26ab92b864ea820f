package commands

import (
	"errors"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

var ErrApproveVersionCommandIsNotConstructed = errors.New(
	"ApproveVersionCommand must be created via NewApproveVersionCommand constructor",
)

// ApproveVersionCommand approves a specific document version of an order
// under review, locking the order against further regeneration and moving
// it into finalisation.
//
// Example:
//
//	cmd, err := NewApproveVersionCommand(orderID, 2, "reviewer-1", "checked against registry")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrStaleVersion) {
//	    // a newer version exists; re-review before approving
//	}
type ApproveVersionCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	versionNumber int
	actor         string
	notes         string

	guard guard.ConstructorGuard
}

// NewApproveVersionCommand creates a command to approve a document version.
func NewApproveVersionCommand(orderID kernel.UUID, versionNumber int, actor, notes string) (ApproveVersionCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ApproveVersionCommand{}, err
	}
	if versionNumber <= 0 {
		return ApproveVersionCommand{}, errs.NewValueIsInvalidError("versionNumber")
	}
	if actor == "" {
		return ApproveVersionCommand{}, errs.NewValueIsRequiredError("actor")
	}

	return ApproveVersionCommand{
		orderID:       orderID,
		versionNumber: versionNumber,
		actor:         actor,
		notes:         notes,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveVersionCommand) Validate() error {
	return c.guard.Validate(ErrApproveVersionCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c ApproveVersionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VersionNumber returns the document version being approved.
func (c ApproveVersionCommand) VersionNumber() int {
	return c.versionNumber
}

// Actor returns the identity of the approving reviewer.
func (c ApproveVersionCommand) Actor() string {
	return c.actor
}

// Notes returns optional reviewer notes for the audit trail.
func (c ApproveVersionCommand) Notes() string {
	return c.notes
}
