package commands

import (
	"context"
	"time"

	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/core/ports"
)

// StartGenerationCommandHandler dispatches a queued order to the document
// generation engine. The status moves Queued→InProgress inside the
// transaction; the rendering request is enqueued only after commit, so a
// rolled-back transition never leaks work to the engine.
type StartGenerationCommandHandler struct {
	uowFactory UoWFactory
	queue      ports.GenerationQueue
}

// NewStartGenerationCommandHandler creates a handler for generation dispatch.
func NewStartGenerationCommandHandler(uowFactory UoWFactory, queue ports.GenerationQueue) StartGenerationCommandHandler {
	return StartGenerationCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
	}
}

// Handle processes the start-generation command.
func (h StartGenerationCommandHandler) Handle(ctx context.Context, cmd StartGenerationCommand) error {
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

		// A retry after a Failed recovery continues the version sequence of
		// the earlier cycle.
		nextNumber, err := nextVersionNumber(ctx, uow, aggregate.ID())
		if err != nil {
			return err
		}

		from := aggregate.Status()
		if err = aggregate.TransitionTo(order.InProgress, now); err != nil {
			return err
		}

		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}

		event, err := audit.NewTransitionEvent(
			aggregate.ID(), audit.SystemActor, from, order.InProgress,
			"generation dispatched", "", nil, now)
		if err != nil {
			return err
		}
		if err = uow.AuditRepository().Append(ctx, event); err != nil {
			return err
		}

		request = ports.GenerationRequest{
			OrderID:       aggregate.ID(),
			ServiceCode:   aggregate.ServiceCode(),
			VersionNumber: nextNumber,
		}
		return nil
	})
	if err != nil {
		return err
	}

	return h.queue.Enqueue(ctx, request)
}
