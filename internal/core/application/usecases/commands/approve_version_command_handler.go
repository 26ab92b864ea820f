package commands

import (
	"context"
	"time"

	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/pkg/errs"
)

// ApproveVersionCommandHandler approves a document version. The approval is
// atomic: within one transaction the order moves to Finalising, the version
// becomes Final and approved, the order's version lock engages, and exactly
// one audit event is appended.
//
// Guards, checked before anything is written:
//   - the order must not already be locked (VersionLockedError)
//   - the target must be the latest version (StaleVersionError)
type ApproveVersionCommandHandler struct {
	uowFactory UoWFactory
}

// NewApproveVersionCommandHandler creates a handler for version approvals.
func NewApproveVersionCommandHandler(uowFactory UoWFactory) ApproveVersionCommandHandler {
	return ApproveVersionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command.
func (h ApproveVersionCommandHandler) Handle(ctx context.Context, cmd ApproveVersionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	return execute(ctx, h.uowFactory.Create, func(ctx context.Context, uow UoW) error {
		aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}
		if aggregate.VersionLocked() {
			return errs.NewVersionLockedError(aggregate.ID().String())
		}

		version, err := uow.DocumentRepository().GetLatest(ctx, cmd.OrderID())
		if err != nil {
			return err
		}
		if version.Number() != cmd.VersionNumber() {
			return errs.NewStaleVersionError(cmd.VersionNumber(), version.Number())
		}

		if err = aggregate.TransitionTo(order.Finalising, now); err != nil {
			return err
		}
		if err = version.Approve(); err != nil {
			return err
		}
		if err = aggregate.LockVersions(now); err != nil {
			return err
		}

		if err = uow.DocumentRepository().Update(ctx, version); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}

		number := version.Number()
		event, err := audit.NewTransitionEvent(
			aggregate.ID(), cmd.Actor(), order.InternalReview, order.Finalising,
			"version approved", cmd.Notes(), &number, now)
		if err != nil {
			return err
		}
		return uow.AuditRepository().Append(ctx, event)
	})
}
