package commands_test

import (
	"testing"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewOverrideTransitionCommand(t *testing.T) {
	t.Run("rejects a reason shorter than ten characters", func(t *testing.T) {
		_, err := commands.NewOverrideTransitionCommand(
			kernel.NewUUID(), order.Queued, "ops-lead", "retry", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("accepts a substantive reason", func(t *testing.T) {
		cmd, err := commands.NewOverrideTransitionCommand(
			kernel.NewUUID(), order.Queued, "ops-lead", "generation engine restored", "")
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})
}

// A manual retry of a Failed order moves it back to Queued, with an audit
// entry carrying the override marker and the verbatim supplied reason.
func TestOverrideTransitionCommandHandler_Handle_RetryFromFailed(t *testing.T) {
	ctx := t.Context()
	aggregate := newOrderInStatus(t, order.Failed)
	reason := "generation engine restored, requeueing"
	cmd, _ := commands.NewOverrideTransitionCommand(aggregate.ID(), order.Queued, "ops-lead", reason, "")

	var appended *audit.Event
	orderRepo := new(MockOrderRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*audit.Event")).
			Run(func(args mock.Arguments) { appended = args.Get(1).(*audit.Event) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("NotifyStatusChanged", ctx, aggregate.ID(), order.Failed, order.Queued).Return(nil).Once()

	h := commands.NewOverrideTransitionCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Queued, aggregate.Status())
	require.NotNil(t, appended)
	require.True(t, appended.IsOverride())
	require.Equal(t, audit.OverridePrefix+reason, appended.Reason())
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestOverrideTransitionCommandHandler_Handle_TargetNotWhitelisted(t *testing.T) {
	ctx := t.Context()
	aggregate := newOrderInStatus(t, order.InternalReview)
	cmd, _ := commands.NewOverrideTransitionCommand(
		aggregate.ID(), order.Completed, "ops-lead", "attempting to skip the pipeline", "")

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOverrideTransitionCommandHandler(factory, new(MockNotifier))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	require.Equal(t, order.InternalReview, aggregate.Status())
}

// A lost optimistic-concurrency race is retried once against fresh state.
func TestOverrideTransitionCommandHandler_Handle_ConcurrencyRetry(t *testing.T) {
	ctx := t.Context()
	first := newOrderInStatus(t, order.Failed)
	second := newOrderInStatus(t, order.Failed)
	cmd, _ := commands.NewOverrideTransitionCommand(first.ID(), order.Queued, "ops-lead", "generation engine restored", "")

	conflict := errs.NewConcurrentModificationError(first.ID().String())

	firstRepo := new(MockOrderRepository)
	firstRepo.On("Get", mock.Anything, first.ID()).Return(first, nil).Once()
	firstRepo.On("Update", mock.Anything, first).Return(conflict).Once()

	firstUoW := new(MockOrderUoW)
	firstUoW.On("Begin", ctx).Return(nil).Once()
	firstUoW.On("OrderRepository").Return(firstRepo).Twice()
	firstUoW.On("Rollback", ctx).Return(nil).Once()

	secondRepo := new(MockOrderRepository)
	secondRepo.On("Get", mock.Anything, first.ID()).Return(second, nil).Once()
	secondRepo.On("Update", mock.Anything, second).Return(nil).Once()

	auditRepo := new(MockAuditRepository)
	auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*audit.Event")).Return(nil).Once()

	secondUoW := new(MockOrderUoW)
	secondUoW.On("Begin", ctx).Return(nil).Once()
	secondUoW.On("OrderRepository").Return(secondRepo).Twice()
	secondUoW.On("AuditRepository").Return(auditRepo).Once()
	secondUoW.On("Commit", ctx).Return(nil).Once()
	secondUoW.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(firstUoW).Once()
	factory.On("Create").Return(secondUoW).Once()

	notifier := new(MockNotifier)
	notifier.On("NotifyStatusChanged", ctx, first.ID(), order.Failed, order.Queued).Return(nil).Once()

	h := commands.NewOverrideTransitionCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Queued, second.Status())
	firstUoW.AssertExpectations(t)
	secondUoW.AssertExpectations(t)
	factory.AssertExpectations(t)
}
