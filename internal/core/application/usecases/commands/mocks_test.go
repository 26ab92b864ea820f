package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllActive(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetStuckInStatus(_ context.Context, _ order.Status, _ time.Time) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockDocumentRepository struct{ mock.Mock }

func (m *MockDocumentRepository) Add(ctx context.Context, v *document.Version) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockDocumentRepository) Update(ctx context.Context, v *document.Version) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockDocumentRepository) GetLatest(ctx context.Context, orderID kernel.UUID) (*document.Version, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Version), args.Error(1)
}
func (m *MockDocumentRepository) GetByNumber(_ context.Context, _ kernel.UUID, _ int) (*document.Version, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockDocumentRepository) GetAllByOrder(_ context.Context, _ kernel.UUID) ([]*document.Version, error) {
	return nil, errors.New("not implemented in mock")
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Append(ctx context.Context, e *audit.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockAuditRepository) GetAllByOrder(_ context.Context, _ kernel.UUID) ([]*audit.Event, error) {
	return nil, errors.New("not implemented in mock")
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockOrderUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUoW struct{ MockOrderUoW }

func (m *MockUoW) DocumentRepository() ports.DocumentRepository {
	args := m.Called()
	return args.Get(0).(ports.DocumentRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyStatusChanged(ctx context.Context, orderID kernel.UUID, from, to order.Status) error {
	args := m.Called(ctx, orderID, from, to)
	return args.Error(0)
}
func (m *MockNotifier) NotifyClientInputRequested(ctx context.Context, orderID kernel.UUID, fields []string, deadlineDays int) error {
	args := m.Called(ctx, orderID, fields, deadlineDays)
	return args.Error(0)
}

type MockGenerationQueue struct{ mock.Mock }

func (m *MockGenerationQueue) Enqueue(ctx context.Context, req ports.GenerationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type MockArtifactStore struct{ mock.Mock }

func (m *MockArtifactStore) Put(ctx context.Context, objectKey, contentType string, payload []byte) error {
	args := m.Called(ctx, objectKey, contentType, payload)
	return args.Error(0)
}
func (m *MockArtifactStore) PresignedURL(ctx context.Context, objectKey string) (string, error) {
	args := m.Called(ctx, objectKey)
	return args.String(0), args.Error(1)
}

var handlerNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// newOrderInStatus builds an order and walks it to the wanted status through
// the automatic graph.
func newOrderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	aggregate, err := order.NewOrder(kernel.NewUUID(), "incorporation-pack", 19900, "EUR", 48, handlerNow)
	require.NoError(t, err)

	paths := map[order.Status][]order.Status{
		order.Paid:           {},
		order.Queued:         {order.Queued},
		order.InProgress:     {order.Queued, order.InProgress},
		order.DraftReady:     {order.Queued, order.InProgress, order.DraftReady},
		order.InternalReview: {order.Queued, order.InProgress, order.DraftReady, order.InternalReview},
		order.Regenerating: {order.Queued, order.InProgress, order.DraftReady, order.InternalReview,
			order.RegenRequested, order.Regenerating},
		order.ClientInputRequired: {order.Queued, order.InProgress, order.DraftReady, order.InternalReview,
			order.ClientInputRequired},
		order.Finalising: {order.Queued, order.InProgress, order.DraftReady, order.InternalReview,
			order.Finalising},
		order.Failed: {order.Failed},
		order.DeliveryFailed: {order.Queued, order.InProgress, order.DraftReady, order.InternalReview,
			order.Finalising, order.Delivering, order.DeliveryFailed},
	}

	path, ok := paths[status]
	require.True(t, ok, "no path to status %s", status)
	for _, next := range path {
		require.NoError(t, aggregate.TransitionTo(next, handlerNow))
	}
	return aggregate
}

func newDraftVersion(t *testing.T, orderID kernel.UUID, number int) *document.Version {
	t.Helper()

	version, err := document.NewDraft(kernel.NewUUID(), orderID, number,
		[]document.FileRef{{Name: "contract.pdf", ObjectKey: "orders/x/contract.pdf"}}, handlerNow)
	require.NoError(t, err)
	return version
}
