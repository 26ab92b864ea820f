package commands

import (
	"context"
	"time"

	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/core/ports"
)

// RequestRegenerationCommandHandler starts a correction cycle. Within one
// transaction the order moves InternalReview→RegenRequested→Regenerating,
// the latest version is superseded (clearing any prior approval), version
// N+1 is created with status Regenerated, and regenerationCount increments
// by exactly one. The rendering itself runs asynchronously: the request is
// enqueued after commit and the completion handler attaches the files and
// returns the order to InternalReview.
//
// Rejected with VersionLockedError on locked orders.
type RequestRegenerationCommandHandler struct {
	uowFactory UoWFactory
	queue      ports.GenerationQueue
}

// NewRequestRegenerationCommandHandler creates a handler for correction cycles.
func NewRequestRegenerationCommandHandler(uowFactory UoWFactory, queue ports.GenerationQueue) RequestRegenerationCommandHandler {
	return RequestRegenerationCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
	}
}

// Handle processes the regeneration request.
func (h RequestRegenerationCommandHandler) Handle(ctx context.Context, cmd RequestRegenerationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	var request ports.GenerationRequest

	err := execute(ctx, h.uowFactory.Create, func(ctx context.Context, uow UoW) error {
		aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		if err = aggregate.RequestRegeneration(now); err != nil {
			return err
		}
		if err = aggregate.TransitionTo(order.Regenerating, now); err != nil {
			return err
		}

		prior, err := uow.DocumentRepository().GetLatest(ctx, cmd.OrderID())
		if err != nil {
			return err
		}
		prior.Supersede()
		if err = uow.DocumentRepository().Update(ctx, prior); err != nil {
			return err
		}

		next, err := document.NewRegenerated(
			kernel.NewUUID(), aggregate.ID(), prior.Number()+1, nil,
			cmd.CorrectionNotes(), cmd.AffectedSections(), cmd.Guardrails(), now)
		if err != nil {
			return err
		}
		if err = uow.DocumentRepository().Add(ctx, next); err != nil {
			return err
		}

		aggregate.IncrementRegenerationCount(now)
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}

		number := next.Number()
		event, err := audit.NewTransitionEvent(
			aggregate.ID(), cmd.Actor(), order.InternalReview, order.Regenerating,
			cmd.Reason(), cmd.CorrectionNotes(), &number, now)
		if err != nil {
			return err
		}
		if err = uow.AuditRepository().Append(ctx, event); err != nil {
			return err
		}

		request = ports.GenerationRequest{
			OrderID:           aggregate.ID(),
			ServiceCode:       aggregate.ServiceCode(),
			VersionNumber:     next.Number(),
			RegenerationNotes: cmd.CorrectionNotes(),
			AffectedSections:  cmd.AffectedSections(),
			Guardrails:        cmd.Guardrails(),
			ClientResponses:   clientResponsePayloads(aggregate),
		}
		return nil
	})
	if err != nil {
		return err
	}

	return h.queue.Enqueue(ctx, request)
}

// clientResponsePayloads flattens any collected client responses so the
// engine can fold them into the rewrite.
func clientResponsePayloads(aggregate *order.Order) []map[string]any {
	input := aggregate.ClientInput()
	if input == nil {
		return nil
	}

	responses := input.Responses()
	payloads := make([]map[string]any, 0, len(responses))
	for _, response := range responses {
		payloads = append(payloads, response.Payload)
	}
	return payloads
}
