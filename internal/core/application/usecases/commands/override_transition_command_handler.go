package commands

import (
	"context"
	"time"

	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/core/ports"
)

// OverrideTransitionCommandHandler applies a whitelisted manual transition.
// The audit event carries the verbatim supplied reason behind the override
// marker, so overrides are always distinguishable from pipeline transitions
// in the trail.
type OverrideTransitionCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewOverrideTransitionCommandHandler creates a handler for manual overrides.
func NewOverrideTransitionCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) OverrideTransitionCommandHandler {
	return OverrideTransitionCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the override command.
func (h OverrideTransitionCommandHandler) Handle(ctx context.Context, cmd OverrideTransitionCommand) error {
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
		if err = aggregate.OverrideTo(cmd.Target(), now); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}

		event, err := audit.NewOverrideTransitionEvent(
			aggregate.ID(), cmd.Actor(), from, cmd.Target(),
			cmd.Reason(), cmd.Notes(), now)
		if err != nil {
			return err
		}
		return uow.AuditRepository().Append(ctx, event)
	})
	if err != nil {
		return err
	}

	_ = h.notifier.NotifyStatusChanged(ctx, cmd.OrderID(), from, cmd.Target())

	return nil
}
