package commands

import (
	"errors"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

var ErrAddNoteCommandIsNotConstructed = errors.New(
	"AddNoteCommand must be created via NewAddNoteCommand constructor",
)

// AddNoteCommand attaches a free-form note to an order's audit trail,
// optionally referencing a specific document version.
type AddNoteCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	actor      string
	note       string
	versionRef *int

	guard guard.ConstructorGuard
}

// NewAddNoteCommand creates a command to record a note.
func NewAddNoteCommand(orderID kernel.UUID, actor, note string, versionRef *int) (AddNoteCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AddNoteCommand{}, err
	}
	if actor == "" {
		return AddNoteCommand{}, errs.NewValueIsRequiredError("actor")
	}
	if note == "" {
		return AddNoteCommand{}, errs.NewValueIsRequiredError("note")
	}

	command := AddNoteCommand{
		orderID: orderID,
		actor:   actor,
		note:    note,
		guard:   guard.NewConstructorGuard(),
	}
	if versionRef != nil {
		ref := *versionRef
		command.versionRef = &ref
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddNoteCommand) Validate() error {
	return c.guard.Validate(ErrAddNoteCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c AddNoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the identity recording the note.
func (c AddNoteCommand) Actor() string {
	return c.actor
}

// Note returns the note text.
func (c AddNoteCommand) Note() string {
	return c.note
}

// VersionRef returns the optional document version the note refers to.
func (c AddNoteCommand) VersionRef() *int {
	if c.versionRef == nil {
		return nil
	}
	ref := *c.versionRef
	return &ref
}
