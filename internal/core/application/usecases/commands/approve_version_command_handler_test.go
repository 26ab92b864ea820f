package commands_test

import (
	"testing"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Approval is atomic: the order moves to Finalising, the version becomes
// Final and approved, the version lock engages, and exactly one audit event
// is appended, all in one transaction.
func TestApproveVersionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newOrderInStatus(t, order.InternalReview)
	version := newDraftVersion(t, aggregate.ID(), 1)
	cmd, _ := commands.NewApproveVersionCommand(aggregate.ID(), 1, "reviewer-1", "")

	var appended *audit.Event
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
		uow.On("DocumentRepository").Return(docRepo).Once(),
		docRepo.On("Update", mock.Anything, version).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*audit.Event")).
			Run(func(args mock.Arguments) { appended = args.Get(1).(*audit.Event) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveVersionCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Finalising, aggregate.Status())
	require.Equal(t, document.Final, version.Status())
	require.True(t, version.IsApproved())
	require.True(t, aggregate.VersionLocked())
	require.NotNil(t, appended)
	require.Equal(t, "reviewer-1", appended.Actor())
	require.Equal(t, order.Finalising, appended.ToStatus())
	require.NotNil(t, appended.VersionRef())
	require.Equal(t, 1, *appended.VersionRef())
	uow.AssertExpectations(t)
	docRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
}

func TestApproveVersionCommandHandler_Handle_StaleVersion(t *testing.T) {
	ctx := t.Context()
	aggregate := newOrderInStatus(t, order.InternalReview)
	latest := newDraftVersion(t, aggregate.ID(), 2)
	cmd, _ := commands.NewApproveVersionCommand(aggregate.ID(), 1, "reviewer-1", "")

	orderRepo := new(MockOrderRepository)
	docRepo := new(MockDocumentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("DocumentRepository").Return(docRepo).Once(),
		docRepo.On("GetLatest", mock.Anything, aggregate.ID()).Return(latest, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveVersionCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStaleVersion)
	require.Equal(t, order.InternalReview, aggregate.Status())
	require.False(t, aggregate.VersionLocked())
}

func TestApproveVersionCommandHandler_Handle_AlreadyLocked(t *testing.T) {
	ctx := t.Context()
	aggregate := newOrderInStatus(t, order.InternalReview)
	require.NoError(t, aggregate.LockVersions(handlerNow))
	cmd, _ := commands.NewApproveVersionCommand(aggregate.ID(), 1, "reviewer-1", "")

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApproveVersionCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVersionLocked)
}
