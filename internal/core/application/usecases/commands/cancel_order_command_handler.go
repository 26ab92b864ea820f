package commands

import (
	"context"
	"time"

	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order. Rejected with
// InvalidTransitionError once the order has reached finalisation; the
// completion handlers' state checks take care of any generation work still
// in flight.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellations.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	var from order.Status

	err := execute(ctx, h.uowFactory.Create, func(ctx context.Context, uow OrderUoW) error {
		aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		from = aggregate.Status()
		if err = aggregate.Cancel(now); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}

		event, err := audit.NewTransitionEvent(
			aggregate.ID(), cmd.Actor(), from, order.Cancelled,
			cmd.Reason(), "", nil, now)
		if err != nil {
			return err
		}
		return uow.AuditRepository().Append(ctx, event)
	})
	if err != nil {
		return err
	}

	_ = h.notifier.NotifyStatusChanged(ctx, cmd.OrderID(), from, order.Cancelled)

	return nil
}
