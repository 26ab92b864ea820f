package auditrepo

import (
	"context"

	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormAuditRepository implements AuditRepository using GORM.
// The repository only ever inserts; there is no update path.
type GormAuditRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAuditRepository creates a new GORM audit trail repository.
func NewGormAuditRepository(db *gorm.DB, tracker aggregateTracker) *GormAuditRepository {
	return &GormAuditRepository{
		db:      db,
		tracker: tracker,
	}
}

// Append persists a new audit event.
func (r *GormAuditRepository) Append(ctx context.Context, event *audit.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(event.ExecutionID(), event)
	return nil
}

// GetAllByOrder retrieves an order's full trail in chronological order.
func (r *GormAuditRepository) GetAllByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*audit.Event, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("timestamp, execution_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]*audit.Event, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, nil
}
