package commands

import (
	"errors"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/guard"
)

var ErrStartGenerationCommandIsNotConstructed = errors.New(
	"StartGenerationCommand must be created via NewStartGenerationCommand constructor",
)

// StartGenerationCommand moves a queued order into generation and enqueues
// the rendering work. The command returns without waiting for the engine;
// the outcome arrives through the completion or failure command.
type StartGenerationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartGenerationCommand creates a command to start document generation.
func NewStartGenerationCommand(orderID kernel.UUID) (StartGenerationCommand, error) {
	if err := orderID.Validate(); err != nil {
		return StartGenerationCommand{}, err
	}

	return StartGenerationCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartGenerationCommand) Validate() error {
	return c.guard.Validate(ErrStartGenerationCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c StartGenerationCommand) OrderID() kernel.UUID {
	return c.orderID
}
