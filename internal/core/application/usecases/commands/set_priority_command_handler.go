package commands

import (
	"context"
	"fmt"
	"time"

	"docflow/internal/core/domain/model/audit"
)

// SetPriorityCommandHandler updates the priority flags and records the
// change as an audited action.
type SetPriorityCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetPriorityCommandHandler creates a handler for priority changes.
func NewSetPriorityCommandHandler(uowFactory OrderUoWFactory) SetPriorityCommandHandler {
	return SetPriorityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the set-priority command.
func (h SetPriorityCommandHandler) Handle(ctx context.Context, cmd SetPriorityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	return execute(ctx, h.uowFactory.Create, func(ctx context.Context, uow OrderUoW) error {
		aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		aggregate.SetPriority(cmd.Priority(), cmd.FastTrack(), now)
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}

		notes := fmt.Sprintf("priority=%t fastTrack=%t", cmd.Priority(), cmd.FastTrack())
		event, err := audit.NewActionEvent(
			aggregate.ID(), cmd.Actor(), "priority_changed", cmd.Reason(), notes, nil, now)
		if err != nil {
			return err
		}
		return uow.AuditRepository().Append(ctx, event)
	})
}
