package commands_test

import (
	"testing"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/core/ports"
	"docflow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// A correction cycle supersedes exactly the prior latest version, creates
// version N+1 as Regenerated, increments regenerationCount by one, and
// enqueues the rewrite only after the transaction commits.
func TestRequestRegenerationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newOrderInStatus(t, order.InternalReview)
	prior := newDraftVersion(t, aggregate.ID(), 1)
	cmd, _ := commands.NewRequestRegenerationCommand(
		aggregate.ID(), "reviewer-1", "factual_error", "fix date",
		[]string{"preamble"}, []string{"party names"})

	var created *document.Version
	orderRepo := new(MockOrderRepository)
	docRepo := new(MockDocumentRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("DocumentRepository").Return(docRepo).Once(),
		docRepo.On("GetLatest", mock.Anything, aggregate.ID()).Return(prior, nil).Once(),
		uow.On("DocumentRepository").Return(docRepo).Once(),
		docRepo.On("Update", mock.Anything, prior).Return(nil).Once(),
		uow.On("DocumentRepository").Return(docRepo).Once(),
		docRepo.On("Add", mock.Anything, mock.AnythingOfType("*document.Version")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*document.Version) }).
			Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*audit.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	queue := new(MockGenerationQueue)
	queue.On("Enqueue", ctx, mock.AnythingOfType("ports.GenerationRequest")).
		Run(func(args mock.Arguments) {
			req := args.Get(1).(ports.GenerationRequest)
			require.Equal(t, 2, req.VersionNumber)
			require.Equal(t, "fix date", req.RegenerationNotes)
			require.Equal(t, []string{"party names"}, req.Guardrails)
		}).
		Return(nil).Once()

	h := commands.NewRequestRegenerationCommandHandler(factory, queue)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, order.Regenerating, aggregate.Status())
	require.Equal(t, 1, aggregate.RegenerationCount())
	require.Equal(t, document.Superseded, prior.Status())
	require.NotNil(t, created)
	require.Equal(t, 2, created.Number())
	require.Equal(t, document.Regenerated, created.Status())
	queue.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRequestRegenerationCommandHandler_Handle_VersionLocked(t *testing.T) {
	ctx := t.Context()
	aggregate := newOrderInStatus(t, order.InternalReview)
	require.NoError(t, aggregate.LockVersions(handlerNow))
	cmd, _ := commands.NewRequestRegenerationCommand(
		aggregate.ID(), "reviewer-1", "factual_error", "fix date", nil, nil)

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

	queue := new(MockGenerationQueue)

	h := commands.NewRequestRegenerationCommandHandler(factory, queue)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVersionLocked)
	require.Equal(t, order.InternalReview, aggregate.Status())
	queue.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
}
