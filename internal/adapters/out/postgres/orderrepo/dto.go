// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The open client-input request and the postal sub-record are stored as jsonb
// documents on the order row; both are optional. OCCVersion backs the
// optimistic write guard and is bumped atomically on every Update.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceCode   string
	PriceAmount   int64
	PriceCurrency string

	Status         string `gorm:"index"`
	StateEnteredAt time.Time
	PausedAt       *time.Time

	Priority      bool
	FastTrack     bool
	VersionLocked bool
	Archived      bool `gorm:"index"`

	SLAHours          int `gorm:"column:sla_hours"`
	RegenerationCount int

	ClientInput []byte `gorm:"type:jsonb"`
	Postal      []byte `gorm:"type:jsonb"`

	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`

	OCCVersion int64 `gorm:"column:occ_version"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// clientInputJSON is the jsonb layout of the client-input request. The keys
// match the read-side projection so queries can unmarshal the column directly.
type clientInputJSON struct {
	RequestNotes    string         `json:"request_notes"`
	RequestedFields []string       `json:"requested_fields"`
	DeadlineDays    int            `json:"deadline_days"`
	RequestedAt     time.Time      `json:"requested_at"`
	RequestedBy     string         `json:"requested_by"`
	Responses       []responseJSON `json:"responses"`
}

// responseJSON is one version-tagged client response within clientInputJSON.
type responseJSON struct {
	Version     int            `json:"version"`
	Payload     map[string]any `json:"payload"`
	SubmittedAt time.Time      `json:"submitted_at"`
}

// postalJSON is the jsonb layout of the postal sub-record.
type postalJSON struct {
	Recipient      string `json:"recipient"`
	Address        string `json:"address"`
	TrackingNumber string `json:"tracking_number"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	var clientInput []byte
	if req := aggregate.ClientInput(); req != nil {
		responses := make([]responseJSON, 0, len(req.Responses()))
		for _, resp := range req.Responses() {
			responses = append(responses, responseJSON{
				Version:     resp.Version,
				Payload:     resp.Payload,
				SubmittedAt: resp.SubmittedAt,
			})
		}

		raw, err := json.Marshal(clientInputJSON{
			RequestNotes:    req.RequestNotes(),
			RequestedFields: req.RequestedFields(),
			DeadlineDays:    req.DeadlineDays(),
			RequestedAt:     req.RequestedAt(),
			RequestedBy:     req.RequestedBy(),
			Responses:       responses,
		})
		if err != nil {
			return OrderDTO{}, err
		}
		clientInput = raw
	}

	var postal []byte
	if p := aggregate.Postal(); p != nil {
		raw, err := json.Marshal(postalJSON{
			Recipient:      p.Recipient,
			Address:        p.Address,
			TrackingNumber: p.TrackingNumber,
		})
		if err != nil {
			return OrderDTO{}, err
		}
		postal = raw
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		ServiceCode:       aggregate.ServiceCode(),
		PriceAmount:       aggregate.PriceAmount(),
		PriceCurrency:     aggregate.PriceCurrency(),
		Status:            aggregate.Status().String(),
		StateEnteredAt:    aggregate.StateEnteredAt(),
		PausedAt:          aggregate.PausedAt(),
		Priority:          aggregate.Priority(),
		FastTrack:         aggregate.FastTrack(),
		VersionLocked:     aggregate.VersionLocked(),
		Archived:          aggregate.IsArchived(),
		SLAHours:          aggregate.SLAHours(),
		RegenerationCount: aggregate.RegenerationCount(),
		ClientInput:       clientInput,
		Postal:            postal,
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
		OCCVersion:        aggregate.OCCVersion(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the client-input request
// and postal sub-record using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var clientInput *order.ClientInputRequest
	if len(dto.ClientInput) > 0 {
		var raw clientInputJSON
		if err = json.Unmarshal(dto.ClientInput, &raw); err != nil {
			return nil, err
		}

		responses := make([]order.ClientInputResponse, 0, len(raw.Responses))
		for _, resp := range raw.Responses {
			responses = append(responses, order.ClientInputResponse{
				Version:     resp.Version,
				Payload:     resp.Payload,
				SubmittedAt: resp.SubmittedAt,
			})
		}

		req := order.RestoreClientInputRequest(
			raw.RequestNotes,
			raw.RequestedFields,
			raw.DeadlineDays,
			raw.RequestedBy,
			raw.RequestedAt,
			responses,
		)
		clientInput = &req
	}

	var postal *order.PostalDelivery
	if len(dto.Postal) > 0 {
		var raw postalJSON
		if err = json.Unmarshal(dto.Postal, &raw); err != nil {
			return nil, err
		}
		postal = &order.PostalDelivery{
			Recipient:      raw.Recipient,
			Address:        raw.Address,
			TrackingNumber: raw.TrackingNumber,
		}
	}

	return order.RestoreOrder(
		id,
		dto.ServiceCode,
		dto.PriceAmount,
		dto.PriceCurrency,
		status,
		dto.StateEnteredAt,
		dto.PausedAt,
		dto.Priority,
		dto.FastTrack,
		dto.VersionLocked,
		dto.Archived,
		dto.SLAHours,
		dto.RegenerationCount,
		clientInput,
		postal,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.OCCVersion,
	)
}
