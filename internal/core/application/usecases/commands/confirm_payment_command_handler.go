package commands

import (
	"context"
	"time"

	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/core/ports"
)

// ConfirmPaymentCommandHandler registers a paid order in the pipeline.
// The order enters in Paid status and is immediately advanced to Queued,
// where it waits for generation capacity.
type ConfirmPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmations.
func NewConfirmPaymentCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the payment confirmation command.
// Creates the order in Paid, advances it to Queued, and appends the
// transition to the audit trail within a single transaction.
func (h ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	err := execute(ctx, h.uowFactory.Create, func(ctx context.Context, uow OrderUoW) error {
		aggregate, err := order.NewOrder(
			cmd.OrderID(), cmd.ServiceCode(), cmd.PriceAmount(), cmd.PriceCurrency(), cmd.SLAHours(), now)
		if err != nil {
			return err
		}

		if err = aggregate.TransitionTo(order.Queued, now); err != nil {
			return err
		}

		if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
			return err
		}

		event, err := audit.NewTransitionEvent(
			aggregate.ID(), audit.SystemActor, order.Paid, order.Queued,
			"payment confirmed", "", nil, now)
		if err != nil {
			return err
		}

		return uow.AuditRepository().Append(ctx, event)
	})
	if err != nil {
		return err
	}

	// Fire-and-forget: the notifier logs its own outcome.
	_ = h.notifier.NotifyStatusChanged(ctx, cmd.OrderID(), order.Paid, order.Queued)

	return nil
}
