package ports

import (
	"context"

	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/kernel"
)

// AuditRepository defines the persistence contract for the audit trail.
// The trail is append-only: events are never updated or deleted.
type AuditRepository interface {
	// Append persists a new audit event.
	Append(ctx context.Context, event *audit.Event) error

	// GetAllByOrder retrieves an order's full trail in chronological order.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*audit.Event, error)
}
