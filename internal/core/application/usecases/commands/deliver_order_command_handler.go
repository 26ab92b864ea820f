package commands

import (
	"context"
	"time"

	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/core/ports"
	"docflow/internal/metrics"
	"docflow/internal/pkg/errs"
)

// DeliverOrderCommandHandler runs the delivery step for a finalising order.
// The order moves Finalising→Delivering, the approved version's artifacts
// are resolved to download links, and the order completes. When resolution
// fails, the order lands in DeliveryFailed (a retryable status reachable
// back into the pipeline through the manual-override whitelist) and the
// handler reports DeliveryError.
//
// Both outcomes commit: a failed delivery is recorded state, not a rolled
// back transaction.
type DeliverOrderCommandHandler struct {
	uowFactory UoWFactory
	artifacts  ports.ArtifactStore
	notifier   ports.Notifier
}

// NewDeliverOrderCommandHandler creates a handler for the delivery step.
func NewDeliverOrderCommandHandler(
	uowFactory UoWFactory,
	artifacts ports.ArtifactStore,
	notifier ports.Notifier,
) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		artifacts:  artifacts,
		notifier:   notifier,
	}
}

// Handle processes the delivery command.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	var deliveryErr error
	var final order.Status

	err := execute(ctx, h.uowFactory.Create, func(ctx context.Context, uow UoW) error {
		deliveryErr = nil

		aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		if err = aggregate.TransitionTo(order.Delivering, now); err != nil {
			return err
		}

		version, err := uow.DocumentRepository().GetLatest(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		deliveryErr = h.resolveArtifacts(ctx, aggregate, version.Files())

		final = order.Completed
		reason := "documents delivered"
		if deliveryErr != nil {
			final = order.DeliveryFailed
			reason = deliveryErr.Error()
		}

		if err = aggregate.TransitionTo(final, now); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}

		number := version.Number()
		event, err := audit.NewTransitionEvent(
			aggregate.ID(), audit.SystemActor, order.Delivering, final,
			reason, "", &number, now)
		if err != nil {
			return err
		}
		return uow.AuditRepository().Append(ctx, event)
	})
	if err != nil {
		return err
	}

	outcome := "delivered"
	if deliveryErr != nil {
		outcome = "failed"
	}
	metrics.DeliveriesTotal.WithLabelValues(outcome).Inc()

	_ = h.notifier.NotifyStatusChanged(ctx, cmd.OrderID(), order.Delivering, final)

	return deliveryErr
}

// resolveArtifacts presigns every rendered file. Any resolution failure is
// the delivery failure for this attempt.
func (h DeliverOrderCommandHandler) resolveArtifacts(
	ctx context.Context,
	aggregate *order.Order,
	files []document.FileRef,
) error {
	for _, file := range files {
		if _, err := h.artifacts.PresignedURL(ctx, file.ObjectKey); err != nil {
			return errs.NewDeliveryErrorWithCause(aggregate.ID().String(), err)
		}
	}
	return nil
}
