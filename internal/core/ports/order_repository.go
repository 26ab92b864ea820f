// Package ports defines the contracts between the application core and
// infrastructure. Repository interfaces cover persistence of the order,
// document and audit aggregates; collaborator interfaces cover the document
// generation engine, notifications and artifact storage.
package ports

import (
	"context"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update enforces optimistic concurrency: the write only succeeds when the
// stored occ version still equals the version the aggregate was loaded with,
// and increments it atomically. A lost race surfaces as
// errs.ErrConcurrentModification.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate under the
	// optimistic concurrency guard described above.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves all non-archived orders in non-terminal
	// statuses, for pipeline listings and SLA evaluation.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus retrieves all non-archived orders currently in the
	// given status. Used by the delivery batch over Finalising.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetStuckInStatus retrieves all non-archived orders that entered the
	// given status before the cutoff instant. Used by the timeout sweep
	// over InProgress and Regenerating.
	GetStuckInStatus(ctx context.Context, status order.Status, enteredBefore time.Time) ([]*order.Order, error)
}
