package commands

import (
	"context"
	"time"

	"docflow/internal/core/domain/model/audit"
)

// ArchiveOrderCommandHandler flips the archive flag and records the change
// as an audited action.
type ArchiveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewArchiveOrderCommandHandler creates a handler for archive toggles.
func NewArchiveOrderCommandHandler(uowFactory OrderUoWFactory) ArchiveOrderCommandHandler {
	return ArchiveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the archive command.
func (h ArchiveOrderCommandHandler) Handle(ctx context.Context, cmd ArchiveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	return execute(ctx, h.uowFactory.Create, func(ctx context.Context, uow OrderUoW) error {
		aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		action := "archived"
		if cmd.Archived() {
			aggregate.Archive(now)
		} else {
			aggregate.Unarchive(now)
			action = "unarchived"
		}
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}

		event, err := audit.NewActionEvent(
			aggregate.ID(), cmd.Actor(), action, cmd.Reason(), "", nil, now)
		if err != nil {
			return err
		}
		return uow.AuditRepository().Append(ctx, event)
	})
}
