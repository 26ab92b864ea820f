package commands

import (
	"errors"

	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

var ErrCompleteGenerationCommandIsNotConstructed = errors.New(
	"CompleteGenerationCommand must be created via NewCompleteGenerationCommand constructor",
)

// CompleteGenerationCommand is the generation engine's success callback,
// carrying the rendered artifact references for one order.
type CompleteGenerationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	files   []document.FileRef

	guard guard.ConstructorGuard
}

// NewCompleteGenerationCommand creates a command from an engine callback.
// At least one rendered file is required.
func NewCompleteGenerationCommand(orderID kernel.UUID, files []document.FileRef) (CompleteGenerationCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompleteGenerationCommand{}, err
	}
	if len(files) == 0 {
		return CompleteGenerationCommand{}, errs.NewValueIsRequiredError("files")
	}

	return CompleteGenerationCommand{
		orderID: orderID,
		files:   append([]document.FileRef(nil), files...),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteGenerationCommand) Validate() error {
	return c.guard.Validate(ErrCompleteGenerationCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CompleteGenerationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Files returns the rendered artifact references.
func (c CompleteGenerationCommand) Files() []document.FileRef {
	return append([]document.FileRef(nil), c.files...)
}
