package commands

import (
	"errors"

	"docflow/internal/pkg/guard"
)

var ErrProcessPendingDeliveriesCommandIsNotConstructed = errors.New(
	"ProcessPendingDeliveriesCommand must be created via NewProcessPendingDeliveriesCommand constructor",
)

// ProcessPendingDeliveriesCommand triggers the delivery step for every
// finalising order. This is the batch counterpart of DeliverOrderCommand,
// invoked on a schedule.
type ProcessPendingDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewProcessPendingDeliveriesCommand creates a new batch delivery trigger.
func NewProcessPendingDeliveriesCommand() ProcessPendingDeliveriesCommand {
	return ProcessPendingDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ProcessPendingDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrProcessPendingDeliveriesCommandIsNotConstructed)
}
