package queries

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves the active order list from the database.
// SLA standing is computed per row at read time; the sort puts the most
// urgent orders first and paused orders (remaining treated as infinite)
// last.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for active order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	orders := make([]ListOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			service_code,
			status,
			priority,
			fast_track,
			sla_hours,
			regeneration_count,
			state_entered_at,
			paused_at
		FROM orders
		WHERE archived = false
		  AND status NOT IN (?, ?)
	`, order.Completed.String(), order.Cancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp ListOrdersQueryResponse
		var id uuid.UUID
		var stateEnteredAt time.Time
		var pausedAt sql.NullTime

		err = rows.Scan(
			&id,
			&resp.ServiceCode,
			&resp.Status,
			&resp.Priority,
			&resp.FastTrack,
			&resp.SLAHours,
			&resp.RegenerationCount,
			&stateEnteredAt,
			&pausedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		var paused *time.Time
		if pausedAt.Valid {
			paused = &pausedAt.Time
		}

		eval := services.EvaluateSLA(now, stateEnteredAt, resp.SLAHours, paused)
		resp.Elapsed = eval.Elapsed
		resp.Remaining = eval.Remaining
		resp.SLALabel = string(eval.Label)
		resp.Paused = eval.Paused

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	// Paused orders carry remaining = +inf, so the single ascending sort
	// already deprioritizes them.
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Remaining < orders[j].Remaining
	})

	return orders, nil
}
