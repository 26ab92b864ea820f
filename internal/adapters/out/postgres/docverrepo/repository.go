package docverrepo

import (
	"context"
	"errors"
	"fmt"

	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDocumentRepository implements DocumentRepository using GORM.
type GormDocumentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDocumentRepository creates a new GORM document version repository.
func NewGormDocumentRepository(db *gorm.DB, tracker aggregateTracker) *GormDocumentRepository {
	return &GormDocumentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new document version to the database.
func (r *GormDocumentRepository) Add(ctx context.Context, version *document.Version) error {
	if err := version.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(version)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(version.ID(), version)
	return nil
}

// Update saves a status change of an existing version.
func (r *GormDocumentRepository) Update(ctx context.Context, version *document.Version) error {
	if err := version.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(version)
	if err != nil {
		return err
	}

	// Select("*") forces zero-valued columns (cleared approval) into the
	// update; struct updates would skip them.
	result := r.db.WithContext(ctx).
		Model(&VersionDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(version.ID(), version)
	return nil
}

// GetLatest retrieves the highest-numbered version of an order.
func (r *GormDocumentRepository) GetLatest(ctx context.Context, orderID kernel.UUID) (*document.Version, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto VersionDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("number DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("document version", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNumber retrieves a specific version of an order.
func (r *GormDocumentRepository) GetByNumber(
	ctx context.Context,
	orderID kernel.UUID,
	number int,
) (*document.Version, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto VersionDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND number = ?", orderID.Bytes(), number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("document version",
				fmt.Sprintf("%s v%d", orderID.String(), number))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves every version of an order, oldest first.
func (r *GormDocumentRepository) GetAllByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*document.Version, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []VersionDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("number").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	versions := make([]*document.Version, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}

	return versions, nil
}
