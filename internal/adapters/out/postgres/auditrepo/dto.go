// Package auditrepo provides data transfer objects and mapping functions for
// the audit trail. The trail is append-only: events get inserted exactly once
// and are never updated or deleted.
package auditrepo

import (
	"time"

	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// EventDTO represents the database structure for persisting audit events.
// Transition events carry from/to status names; action events leave them
// empty and carry the action discriminator instead.
type EventDTO struct {
	ExecutionID uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`

	Actor string
	Kind  string

	FromStatus string
	ToStatus   string
	Action     string

	Reason string
	Notes  string

	VersionRef *int

	Timestamp time.Time `gorm:"index"`
}

// TableName specifies the database table name for audit events.
func (EventDTO) TableName() string {
	return "audit_events"
}

// fromDomain converts an audit event to its database representation.
func fromDomain(event *audit.Event) EventDTO {
	var fromStatus, toStatus string
	if event.Kind() == audit.KindTransition {
		fromStatus = event.FromStatus().String()
		toStatus = event.ToStatus().String()
	}

	return EventDTO{
		ExecutionID: event.ExecutionID().Bytes(),
		OrderID:     event.OrderID().Bytes(),
		Actor:       event.Actor(),
		Kind:        event.Kind().String(),
		FromStatus:  fromStatus,
		ToStatus:    toStatus,
		Action:      event.Action(),
		Reason:      event.Reason(),
		Notes:       event.Notes(),
		VersionRef:  event.VersionRef(),
		Timestamp:   event.Timestamp(),
	}
}

// toDomain converts a database DTO to an audit event using RestoreEvent.
func toDomain(dto EventDTO) (*audit.Event, error) {
	executionID, err := kernel.UUIDFromBytes(dto.ExecutionID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	kind, err := audit.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	fromStatus := order.Unknown
	toStatus := order.Unknown
	if kind == audit.KindTransition {
		if fromStatus, err = order.StatusFromString(dto.FromStatus); err != nil {
			return nil, err
		}
		if toStatus, err = order.StatusFromString(dto.ToStatus); err != nil {
			return nil, err
		}
	}

	return audit.RestoreEvent(
		executionID,
		orderID,
		dto.Actor,
		kind,
		fromStatus,
		toStatus,
		dto.Action,
		dto.Reason,
		dto.Notes,
		dto.VersionRef,
		dto.Timestamp,
	)
}
