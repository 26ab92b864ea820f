package queries

import (
	"context"
	"database/sql"

	"docflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTimelineQueryHandler retrieves an order's audit events, oldest first.
type GetTimelineQueryHandler struct {
	db *gorm.DB
}

// NewGetTimelineQueryHandler creates a handler for timeline queries.
func NewGetTimelineQueryHandler(db *gorm.DB) GetTimelineQueryHandler {
	return GetTimelineQueryHandler{db: db}
}

// Handle executes the query.
func (h GetTimelineQueryHandler) Handle(
	ctx context.Context,
	query GetTimelineQuery,
) ([]GetTimelineQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]GetTimelineQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			execution_id,
			actor,
			kind,
			from_status,
			to_status,
			action,
			reason,
			notes,
			version_ref,
			timestamp
		FROM audit_events
		WHERE order_id = ?
		ORDER BY timestamp, execution_id
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event GetTimelineQueryResponse
		var executionID uuid.UUID
		var versionRef sql.NullInt64

		err = rows.Scan(
			&executionID,
			&event.Actor,
			&event.Kind,
			&event.FromStatus,
			&event.ToStatus,
			&event.Action,
			&event.Reason,
			&event.Notes,
			&versionRef,
			&event.Timestamp,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(executionID[:])
		if idErr != nil {
			return nil, idErr
		}
		event.ExecutionID = id

		if versionRef.Valid {
			ref := int(versionRef.Int64)
			event.VersionRef = &ref
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
