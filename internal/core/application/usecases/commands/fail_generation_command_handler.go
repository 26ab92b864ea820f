package commands

import (
	"context"
	"time"

	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/core/ports"
)

// FailGenerationCommandHandler moves an order whose generation failed or
// timed out to the Failed status. Failed is recoverable through the
// manual-override whitelist, so the failure is a status, not a dead end.
//
// Like the completion handler, this is idempotent: an order that already
// left the generating statuses is left untouched.
type FailGenerationCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewFailGenerationCommandHandler creates a handler for generation failures.
func NewFailGenerationCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) FailGenerationCommandHandler {
	return FailGenerationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the generation failure command.
func (h FailGenerationCommandHandler) Handle(ctx context.Context, cmd FailGenerationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	var from order.Status
	var failed bool

	err := execute(ctx, h.uowFactory.Create, func(ctx context.Context, uow OrderUoW) error {
		failed = false

		aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		from = aggregate.Status()
		if from != order.InProgress && from != order.Regenerating {
			// Late failure report: the order has moved on.
			return nil
		}

		if err = aggregate.TransitionTo(order.Failed, now); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}

		event, err := audit.NewTransitionEvent(
			aggregate.ID(), audit.SystemActor, from, order.Failed,
			cmd.Reason(), "", nil, now)
		if err != nil {
			return err
		}
		if err = uow.AuditRepository().Append(ctx, event); err != nil {
			return err
		}

		failed = true
		return nil
	})
	if err != nil {
		return err
	}

	if failed {
		_ = h.notifier.NotifyStatusChanged(ctx, cmd.OrderID(), from, order.Failed)
	}

	return nil
}
