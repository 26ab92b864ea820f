package commands

import (
	"context"
	"time"

	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/core/ports"
)

// RequestClientInputCommandHandler moves an order under review into
// ClientInputRequired, persisting the request record and pausing the SLA
// clock. The client notification goes out only after the transaction
// commits.
type RequestClientInputCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewRequestClientInputCommandHandler creates a handler for information requests.
func NewRequestClientInputCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) RequestClientInputCommandHandler {
	return RequestClientInputCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the request-client-input command.
func (h RequestClientInputCommandHandler) Handle(ctx context.Context, cmd RequestClientInputCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	err := execute(ctx, h.uowFactory.Create, func(ctx context.Context, uow OrderUoW) error {
		aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		request, err := order.NewClientInputRequest(
			cmd.Notes(), cmd.RequestedFields(), cmd.DeadlineDays(), cmd.Actor(), now)
		if err != nil {
			return err
		}

		from := aggregate.Status()
		if err = aggregate.RequestClientInput(request, now); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}

		event, err := audit.NewTransitionEvent(
			aggregate.ID(), cmd.Actor(), from, order.ClientInputRequired,
			"client input requested", cmd.Notes(), nil, now)
		if err != nil {
			return err
		}
		return uow.AuditRepository().Append(ctx, event)
	})
	if err != nil {
		return err
	}

	_ = h.notifier.NotifyClientInputRequested(ctx, cmd.OrderID(), cmd.RequestedFields(), cmd.DeadlineDays())

	return nil
}
