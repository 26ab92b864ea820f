package commands

import (
	"context"
	"log/slog"

	"docflow/internal/core/domain/model/order"
)

// ProcessPendingDeliveriesCommandHandler runs the delivery step for every
// order in Finalising. Each order is delivered in its own transaction:
//
//   - one order's delivery failure lands that order in DeliveryFailed and
//     the batch continues; failures are isolated, never propagated to or
//     rolled back across other orders.
//   - the listing itself is read outside the per-order transactions; an
//     order that moved between the listing and its delivery is handled by
//     the delivery guards, not the batch.
type ProcessPendingDeliveriesCommandHandler struct {
	uowFactory     UoWFactory
	deliverHandler DeliverOrderCommandHandler
	logger         *slog.Logger
}

// NewProcessPendingDeliveriesCommandHandler creates a handler for batch delivery.
func NewProcessPendingDeliveriesCommandHandler(
	uowFactory UoWFactory,
	deliverHandler DeliverOrderCommandHandler,
	logger *slog.Logger,
) ProcessPendingDeliveriesCommandHandler {
	return ProcessPendingDeliveriesCommandHandler{
		uowFactory:     uowFactory,
		deliverHandler: deliverHandler,
		logger:         logger,
	}
}

// Handle processes the batch delivery command. Returns an error only when
// the pending set cannot be listed; per-order outcomes are logged.
func (h ProcessPendingDeliveriesCommandHandler) Handle(ctx context.Context, cmd ProcessPendingDeliveriesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	pending, err := h.listPending(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range pending {
		deliverCmd, err := NewDeliverOrderCommand(aggregate.ID())
		if err != nil {
			h.logger.Error("skipping undeliverable order",
				"order_id", aggregate.ID().String(), "error", err)
			continue
		}

		if err = h.deliverHandler.Handle(ctx, deliverCmd); err != nil {
			h.logger.Error("delivery attempt failed",
				"order_id", aggregate.ID().String(), "error", err)
			continue
		}

		h.logger.Info("order delivered", "order_id", aggregate.ID().String())
	}

	return nil
}

func (h ProcessPendingDeliveriesCommandHandler) listPending(ctx context.Context) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pending, err := uow.OrderRepository().GetAllInStatus(ctx, order.Finalising)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return pending, nil
}
