package ports

import (
	"context"

	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
)

// DocumentRepository defines the persistence contract for document versions.
// Versions are append-mostly: a version is added once, and later updated only
// to flip its status (approval, superseding). Versions are never deleted.
type DocumentRepository interface {
	// Add persists a new document version.
	Add(ctx context.Context, version *document.Version) error

	// Update persists a status change of an existing version.
	Update(ctx context.Context, version *document.Version) error

	// GetLatest retrieves the highest-numbered version of an order.
	// Returns errs.ErrObjectNotFound when the order has no versions yet.
	GetLatest(ctx context.Context, orderID kernel.UUID) (*document.Version, error)

	// GetByNumber retrieves a specific version of an order.
	GetByNumber(ctx context.Context, orderID kernel.UUID, number int) (*document.Version, error)

	// GetAllByOrder retrieves every version of an order, oldest first.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*document.Version, error)
}
