package queries_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"docflow/internal/adapters/out/postgres/auditrepo"
	"docflow/internal/adapters/out/postgres/orderrepo"
	"docflow/internal/core/application/usecases/queries"
	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type QueryHandlersTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB

	listHandler     queries.ListOrdersQueryHandler
	getHandler      queries.GetOrderQueryHandler
	timelineHandler queries.GetTimelineQueryHandler
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &auditrepo.EventDTO{})
	suite.Require().NoError(err)

	suite.listHandler = queries.NewListOrdersQueryHandler(db)
	suite.getHandler = queries.NewGetOrderQueryHandler(db)
	suite.timelineHandler = queries.NewGetTimelineQueryHandler(db)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, audit_events").Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersTestSuite) seedOrder(dto orderrepo.OrderDTO) orderrepo.OrderDTO {
	now := time.Now().UTC().Truncate(time.Microsecond)
	if dto.ID == uuid.Nil {
		dto.ID = uuid.New()
	}
	if dto.ServiceCode == "" {
		dto.ServiceCode = "translation-standard"
	}
	if dto.PriceCurrency == "" {
		dto.PriceAmount = 9900
		dto.PriceCurrency = "EUR"
	}
	if dto.SLAHours == 0 {
		dto.SLAHours = 24
	}
	if dto.StateEnteredAt.IsZero() {
		dto.StateEnteredAt = now
	}
	if dto.CreatedAt.IsZero() {
		dto.CreatedAt = now
		dto.UpdatedAt = now
	}
	if dto.OCCVersion == 0 {
		dto.OCCVersion = 1
	}
	err := suite.db.Create(&dto).Error
	suite.Require().NoError(err)
	return dto
}

func (suite *QueryHandlersTestSuite) TestListOrders_SortsByRemainingAndDeprioritizesPaused() {
	now := time.Now().UTC().Truncate(time.Microsecond)

	// 2h of a 24h budget left.
	urgent := suite.seedOrder(orderrepo.OrderDTO{
		Status:         order.InternalReview.String(),
		StateEnteredAt: now.Add(-22 * time.Hour),
	})
	// 47h of a 48h budget left.
	relaxed := suite.seedOrder(orderrepo.OrderDTO{
		Status:         order.InProgress.String(),
		SLAHours:       48,
		StateEnteredAt: now.Add(-1 * time.Hour),
	})
	// Clock frozen; must sort last despite the old entry time.
	pausedAt := now.Add(-30 * time.Hour)
	paused := suite.seedOrder(orderrepo.OrderDTO{
		Status:         order.ClientInputRequired.String(),
		StateEnteredAt: now.Add(-40 * time.Hour),
		PausedAt:       &pausedAt,
	})

	results, err := suite.listHandler.Handle(context.Background(), queries.NewListOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(results, 3)

	suite.Equal(urgent.ID.String(), results[0].ID.String())
	suite.Equal(relaxed.ID.String(), results[1].ID.String())
	suite.Equal(paused.ID.String(), results[2].ID.String())
	suite.True(results[2].Paused)
	suite.False(results[0].Paused)
}

func (suite *QueryHandlersTestSuite) TestListOrders_ExcludesTerminalAndArchived() {
	active := suite.seedOrder(orderrepo.OrderDTO{Status: order.Queued.String()})
	suite.seedOrder(orderrepo.OrderDTO{Status: order.Completed.String()})
	suite.seedOrder(orderrepo.OrderDTO{Status: order.Cancelled.String()})
	suite.seedOrder(orderrepo.OrderDTO{Status: order.Queued.String(), Archived: true})

	results, err := suite.listHandler.Handle(context.Background(), queries.NewListOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(results, 1)
	suite.Equal(active.ID.String(), results[0].ID.String())
}

func (suite *QueryHandlersTestSuite) TestListOrders_CarriesRegenerationCount() {
	suite.seedOrder(orderrepo.OrderDTO{
		Status:            order.Regenerating.String(),
		RegenerationCount: 2,
	})

	results, err := suite.listHandler.Handle(context.Background(), queries.NewListOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(results, 1)
	suite.Equal(2, results[0].RegenerationCount)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_FullDetail() {
	now := time.Now().UTC().Truncate(time.Microsecond)

	clientInput, err := json.Marshal(map[string]any{
		"request_notes":    "need the notarized copy",
		"requested_fields": []string{"passport_number"},
		"deadline_days":    5,
		"requested_at":     now.Add(-2 * time.Hour),
		"requested_by":     "reviewer-1",
		"responses": []map[string]any{
			{
				"version":      1,
				"payload":      map[string]any{"passport_number": "X123"},
				"submitted_at": now.Add(-1 * time.Hour),
			},
		},
	})
	suite.Require().NoError(err)

	postal, err := json.Marshal(map[string]any{
		"recipient":       "Jane Doe",
		"address":         "1 Main St",
		"tracking_number": "TRK-42",
	})
	suite.Require().NoError(err)

	pausedAt := now.Add(-1 * time.Hour)
	seeded := suite.seedOrder(orderrepo.OrderDTO{
		Status:            order.ClientInputRequired.String(),
		Priority:          true,
		RegenerationCount: 1,
		StateEnteredAt:    now.Add(-3 * time.Hour),
		PausedAt:          &pausedAt,
		ClientInput:       clientInput,
		Postal:            postal,
	})

	query, err := queries.NewGetOrderQuery(toKernelUUID(suite.T(), seeded.ID))
	suite.Require().NoError(err)

	detail, err := suite.getHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(seeded.ID.String(), detail.ID.String())
	suite.Equal("translation-standard", detail.ServiceCode)
	suite.Equal(order.ClientInputRequired.String(), detail.Status)
	suite.True(detail.Priority)
	suite.Equal(1, detail.RegenerationCount)
	suite.Require().NotNil(detail.PausedAt)

	suite.Require().NotNil(detail.ClientInput)
	suite.Equal("need the notarized copy", detail.ClientInput.RequestNotes)
	suite.Equal([]string{"passport_number"}, detail.ClientInput.RequestedFields)
	suite.Require().Len(detail.ClientInput.Responses, 1)
	suite.Equal(1, detail.ClientInput.Responses[0].Version)

	suite.Require().NotNil(detail.Postal)
	suite.Equal("Jane Doe", detail.Postal.Recipient)
	suite.Equal("TRK-42", detail.Postal.TrackingNumber)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_NotFound() {
	query, err := queries.NewGetOrderQuery(toKernelUUID(suite.T(), uuid.New()))
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *QueryHandlersTestSuite) TestGetTimeline_OrderedOldestFirst() {
	seeded := suite.seedOrder(orderrepo.OrderDTO{Status: order.InternalReview.String()})
	now := time.Now().UTC().Truncate(time.Microsecond)

	versionRef := 1
	events := []auditrepo.EventDTO{
		{
			ExecutionID: uuid.New(),
			OrderID:     seeded.ID,
			Actor:       "system",
			Kind:        audit.KindTransition.String(),
			FromStatus:  order.Paid.String(),
			ToStatus:    order.Queued.String(),
			Timestamp:   now.Add(-2 * time.Hour),
		},
		{
			ExecutionID: uuid.New(),
			OrderID:     seeded.ID,
			Actor:       "reviewer-1",
			Kind:        audit.KindAction.String(),
			Action:      "note",
			Notes:       "checked layout",
			VersionRef:  &versionRef,
			Timestamp:   now.Add(-1 * time.Hour),
		},
	}
	for i := range events {
		suite.Require().NoError(suite.db.Create(&events[i]).Error)
	}

	// An event of another order must not leak in.
	other := suite.seedOrder(orderrepo.OrderDTO{Status: order.Queued.String()})
	suite.Require().NoError(suite.db.Create(&auditrepo.EventDTO{
		ExecutionID: uuid.New(),
		OrderID:     other.ID,
		Actor:       "system",
		Kind:        audit.KindTransition.String(),
		FromStatus:  order.Paid.String(),
		ToStatus:    order.Queued.String(),
		Timestamp:   now,
	}).Error)

	query, err := queries.NewGetTimelineQuery(toKernelUUID(suite.T(), seeded.ID))
	suite.Require().NoError(err)

	timeline, err := suite.timelineHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(timeline, 2)

	suite.Equal(audit.KindTransition.String(), timeline[0].Kind)
	suite.Equal(order.Paid.String(), timeline[0].FromStatus)
	suite.Equal(order.Queued.String(), timeline[0].ToStatus)
	suite.Nil(timeline[0].VersionRef)

	suite.Equal(audit.KindAction.String(), timeline[1].Kind)
	suite.Equal("note", timeline[1].Action)
	suite.Require().NotNil(timeline[1].VersionRef)
	suite.Equal(1, *timeline[1].VersionRef)
}

func (suite *QueryHandlersTestSuite) TestGetTimeline_EmptyForUnknownOrder() {
	query, err := queries.NewGetTimelineQuery(toKernelUUID(suite.T(), uuid.New()))
	suite.Require().NoError(err)

	timeline, err := suite.timelineHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(timeline)
}

func toKernelUUID(t *testing.T, id uuid.UUID) kernel.UUID {
	t.Helper()
	converted, err := kernel.UUIDFromBytes(id[:])
	require.NoError(t, err)
	return converted
}

func TestQueryHandlersTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(QueryHandlersTestSuite))
}
