package commands

import (
	"context"
	"time"

	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/order"
)

// SubmitClientResponseCommandHandler appends the client's response to the
// open information request (tagged with the document version of the review
// cycle it belongs to) and returns the order to InternalReview. The resume
// instant becomes the new stateEnteredAt, so the frozen waiting time is
// never counted against the SLA.
type SubmitClientResponseCommandHandler struct {
	uowFactory UoWFactory
}

// NewSubmitClientResponseCommandHandler creates a handler for client responses.
func NewSubmitClientResponseCommandHandler(uowFactory UoWFactory) SubmitClientResponseCommandHandler {
	return SubmitClientResponseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the client response command.
func (h SubmitClientResponseCommandHandler) Handle(ctx context.Context, cmd SubmitClientResponseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	return execute(ctx, h.uowFactory.Create, func(ctx context.Context, uow UoW) error {
		aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		version, err := uow.DocumentRepository().GetLatest(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		if err = aggregate.SubmitClientResponse(version.Number(), cmd.Payload(), now); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}

		number := version.Number()
		event, err := audit.NewTransitionEvent(
			aggregate.ID(), audit.SystemActor, order.ClientInputRequired, order.InternalReview,
			"client response received", "", &number, now)
		if err != nil {
			return err
		}
		return uow.AuditRepository().Append(ctx, event)
	})
}
