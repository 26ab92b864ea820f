package commands

import (
	"context"
	"time"

	"docflow/internal/core/domain/model/audit"
)

// ReopenVersionsCommandHandler clears the version lock as an audited action.
type ReopenVersionsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReopenVersionsCommandHandler creates a handler for reopen requests.
func NewReopenVersionsCommandHandler(uowFactory OrderUoWFactory) ReopenVersionsCommandHandler {
	return ReopenVersionsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reopen command.
func (h ReopenVersionsCommandHandler) Handle(ctx context.Context, cmd ReopenVersionsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	return execute(ctx, h.uowFactory.Create, func(ctx context.Context, uow OrderUoW) error {
		aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		if err = aggregate.ReopenVersions(now); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}

		event, err := audit.NewActionEvent(
			aggregate.ID(), cmd.Actor(), "versions_reopened", cmd.Reason(), "", nil, now)
		if err != nil {
			return err
		}
		return uow.AuditRepository().Append(ctx, event)
	})
}
