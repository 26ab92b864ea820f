package commands_test

import (
	"errors"
	"testing"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmPaymentCommand(t *testing.T) {
	t.Run("valid payment signal", func(t *testing.T) {
		id := kernel.NewUUID()
		cmd, err := commands.NewConfirmPaymentCommand(id, "incorporation-pack", 19900, "EUR", 48)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.True(t, cmd.OrderID().IsEqual(id))
		require.Equal(t, "incorporation-pack", cmd.ServiceCode())
		require.Equal(t, int64(19900), cmd.PriceAmount())
		require.Equal(t, "EUR", cmd.PriceCurrency())
		require.Equal(t, 48, cmd.SLAHours())
	})

	t.Run("rejects missing service code", func(t *testing.T) {
		_, err := commands.NewConfirmPaymentCommand(kernel.NewUUID(), "", 19900, "EUR", 48)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		_, err := commands.NewConfirmPaymentCommand(kernel.NewUUID(), "incorporation-pack", 0, "EUR", 48)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		cmd := commands.ConfirmPaymentCommand{}
		require.Error(t, cmd.Validate())
	})
}

func TestConfirmPaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewConfirmPaymentCommand(id, "incorporation-pack", 19900, "EUR", 48)

	var created *order.Order
	orderRepo := new(MockOrderRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*audit.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("NotifyStatusChanged", ctx, id, order.Paid, order.Queued).Return(nil).Once()

	h := commands.NewConfirmPaymentCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, order.Queued, created.Status())
	orderRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestConfirmPaymentCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewConfirmPaymentCommand(kernel.NewUUID(), "incorporation-pack", 19900, "EUR", 48)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmPaymentCommandHandler(factory, new(MockNotifier))
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}
