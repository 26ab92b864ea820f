package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/services"
	"docflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order's full detail from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when no order
// exists under the given identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			service_code,
			price_amount,
			price_currency,
			status,
			priority,
			fast_track,
			version_locked,
			archived,
			sla_hours,
			regeneration_count,
			state_entered_at,
			paused_at,
			client_input,
			postal,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var resp GetOrderQueryResponse
	var id uuid.UUID
	var pausedAt sql.NullTime
	var clientInput, postal []byte

	err := row.Scan(
		&id,
		&resp.ServiceCode,
		&resp.PriceAmount,
		&resp.PriceCurrency,
		&resp.Status,
		&resp.Priority,
		&resp.FastTrack,
		&resp.VersionLocked,
		&resp.Archived,
		&resp.SLAHours,
		&resp.RegenerationCount,
		&resp.StateEnteredAt,
		&pausedAt,
		&clientInput,
		&postal,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = orderID

	if pausedAt.Valid {
		resp.PausedAt = &pausedAt.Time
	}
	if len(clientInput) > 0 {
		var model ClientInputReadModel
		if err = json.Unmarshal(clientInput, &model); err != nil {
			return GetOrderQueryResponse{}, err
		}
		resp.ClientInput = &model
	}
	if len(postal) > 0 {
		var model PostalReadModel
		if err = json.Unmarshal(postal, &model); err != nil {
			return GetOrderQueryResponse{}, err
		}
		resp.Postal = &model
	}

	eval := services.EvaluateSLA(time.Now().UTC(), resp.StateEnteredAt, resp.SLAHours, resp.PausedAt)
	resp.SLALabel = string(eval.Label)
	resp.Remaining = eval.Remaining

	return resp, nil
}
