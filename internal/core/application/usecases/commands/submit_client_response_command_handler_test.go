package commands_test

import (
	"testing"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitClientResponseCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newOrderInStatus(t, order.InternalReview)
	request, err := order.NewClientInputRequest("need passport scan", []string{"passport"}, 14, "reviewer-1", handlerNow)
	require.NoError(t, err)
	require.NoError(t, aggregate.RequestClientInput(request, handlerNow))
	require.True(t, aggregate.IsPaused())

	version := newDraftVersion(t, aggregate.ID(), 1)
	cmd, _ := commands.NewSubmitClientResponseCommand(aggregate.ID(), map[string]any{"passport": "AB1234567"})

	orderRepo := new(MockOrderRepository)
	docRepo := new(MockDocumentRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("DocumentRepository").Return(docRepo).Once(),
		docRepo.On("GetLatest", mock.Anything, aggregate.ID()).Return(version, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*audit.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitClientResponseCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.InternalReview, aggregate.Status())
	require.False(t, aggregate.IsPaused())

	responses := aggregate.ClientInput().Responses()
	require.Len(t, responses, 1)
	require.Equal(t, 1, responses[0].Version)
	uow.AssertExpectations(t)
}

func TestSubmitClientResponseCommandHandler_Handle_NotWaiting(t *testing.T) {
	ctx := t.Context()
	aggregate := newOrderInStatus(t, order.InternalReview)
	version := newDraftVersion(t, aggregate.ID(), 1)
	cmd, _ := commands.NewSubmitClientResponseCommand(aggregate.ID(), map[string]any{"passport": "AB1234567"})

	orderRepo := new(MockOrderRepository)
	docRepo := new(MockDocumentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("DocumentRepository").Return(docRepo).Once(),
		docRepo.On("GetLatest", mock.Anything, aggregate.ID()).Return(version, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitClientResponseCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.Equal(t, order.InternalReview, aggregate.Status())
}
