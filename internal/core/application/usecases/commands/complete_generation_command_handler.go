package commands

import (
	"context"
	"errors"
	"time"

	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/pkg/errs"
)

// CompleteGenerationCommandHandler is the completion handler for the
// asynchronous generation step. It serves both generation paths:
//
//   - first draft: the order is InProgress; a Draft version is recorded and
//     the order advances InProgress→DraftReady→InternalReview.
//   - correction cycle: the order is Regenerating; the files are attached to
//     the already-created Regenerated version and the order returns to
//     InternalReview.
//
// The handler is idempotent and state-checked: a late callback for an order
// that has since left the expected status (cancelled, timed out to Failed,
// already completed) is a no-op; it never resurrects the order.
type CompleteGenerationCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteGenerationCommandHandler creates a handler for engine callbacks.
func NewCompleteGenerationCommandHandler(uowFactory UoWFactory) CompleteGenerationCommandHandler {
	return CompleteGenerationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the generation success callback.
func (h CompleteGenerationCommandHandler) Handle(ctx context.Context, cmd CompleteGenerationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	return execute(ctx, h.uowFactory.Create, func(ctx context.Context, uow UoW) error {
		aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		switch aggregate.Status() {
		case order.InProgress:
			return h.completeDraft(ctx, uow, aggregate, cmd.Files(), now)
		case order.Regenerating:
			return h.completeRegeneration(ctx, uow, aggregate, cmd.Files(), now)
		default:
			// Late callback: the order has moved on. Nothing to do.
			return nil
		}
	})
}

func (h CompleteGenerationCommandHandler) completeDraft(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
	files []document.FileRef,
	now time.Time,
) error {
	// An order recovered from Failed may already carry versions from an
	// earlier cycle; the new draft continues the sequence instead of
	// colliding with version 1.
	nextNumber, err := nextVersionNumber(ctx, uow, aggregate.ID())
	if err != nil {
		return err
	}

	version, err := document.NewDraft(kernel.NewUUID(), aggregate.ID(), nextNumber, files, now)
	if err != nil {
		return err
	}
	if err = uow.DocumentRepository().Add(ctx, version); err != nil {
		return err
	}

	if err = aggregate.TransitionTo(order.DraftReady, now); err != nil {
		return err
	}
	if err = aggregate.TransitionTo(order.InternalReview, now); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	number := version.Number()
	event, err := audit.NewTransitionEvent(
		aggregate.ID(), audit.SystemActor, order.InProgress, order.InternalReview,
		"draft generated", "", &number, now)
	if err != nil {
		return err
	}
	return uow.AuditRepository().Append(ctx, event)
}

func (h CompleteGenerationCommandHandler) completeRegeneration(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
	files []document.FileRef,
	now time.Time,
) error {
	version, err := uow.DocumentRepository().GetLatest(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if version.Status() != document.Regenerated {
		return errs.NewGenerationErrorWithCause(aggregate.ID().String(),
			errors.New("latest version is not a regeneration in progress"))
	}

	version.AttachFiles(files)
	if err = uow.DocumentRepository().Update(ctx, version); err != nil {
		return err
	}

	if err = aggregate.TransitionTo(order.InternalReview, now); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	number := version.Number()
	event, err := audit.NewTransitionEvent(
		aggregate.ID(), audit.SystemActor, order.Regenerating, order.InternalReview,
		"regenerated draft ready", "", &number, now)
	if err != nil {
		return err
	}
	return uow.AuditRepository().Append(ctx, event)
}

// nextVersionNumber returns the number the next document version of the
// order must carry: one past the highest existing version, or 1 when the
// order has none yet.
func nextVersionNumber(ctx context.Context, uow UoW, orderID kernel.UUID) (int, error) {
	latest, err := uow.DocumentRepository().GetLatest(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return 1, nil
		}
		return 0, err
	}
	return latest.Number() + 1, nil
}
