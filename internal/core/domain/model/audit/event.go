package audit

import (
	"errors"
	"fmt"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/pkg/errs"
)

// SystemActor is the recorded actor for transitions triggered by the system
// itself (pipeline automation, timeout sweeps, batch jobs).
const SystemActor = "system"

// OverridePrefix marks an audit reason as belonging to a manual override,
// distinguishing it from automatic pipeline transitions. The verbatim
// supplied reason follows the prefix.
const OverridePrefix = "[manual override] "

// ErrEventIsNotConstructed is returned when an Event instance was not
// created through one of the factory methods.
var ErrEventIsNotConstructed = errors.New("Event must be created via one of the New*Event constructors")

// Kind discriminates the two event categories sharing the common envelope.
// The discriminant is supplied explicitly by the core; consumers must never
// infer the category from free-text action strings.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindTransition is a status change: fromStatus → toStatus.
	KindTransition

	// KindAction is a free-form audited action that did not change the
	// status (note added, archive toggled, priority changed, reopen).
	KindAction
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindTransition:
		return "Transition"
	case KindAction:
		return "Action"
	default:
		return "Unknown"
	}
}

// Validate checks if the Kind value is a member of the closed enum.
func (k Kind) Validate() error {
	if k != KindTransition && k != KindAction {
		return errs.NewValueIsInvalidError("audit event kind")
	}
	return nil
}

// KindFromString parses a kind from its string representation.
func KindFromString(s string) (Kind, error) {
	switch s {
	case KindTransition.String():
		return KindTransition, nil
	case KindAction.String():
		return KindAction, nil
	default:
		return KindUnknown, errs.NewValueIsInvalidErrorWithCause(
			"audit event kind is invalid",
			fmt.Errorf("%q is not a valid audit event kind", s),
		)
	}
}

// Event is a single append-only audit record. Events share a common
// envelope (execution ID, order ID, actor, kind, timestamp) and carry
// either a status transition or a free-form action, selected by Kind.
//
// Events are immutable once created and are never deleted; it is the
// repository's contract to only ever append them.
type Event struct {
	executionID kernel.UUID
	orderID     kernel.UUID
	actor       string
	kind        Kind

	// Transition payload; zero values for KindAction.
	fromStatus order.Status
	toStatus   order.Status

	// Action payload; empty for KindTransition.
	action string

	reason string
	notes  string

	// versionRef is the explicit, typed document-version reference for
	// events concerning a specific version. It is carried structurally
	// rather than re-derived from reason text.
	versionRef *int

	timestamp time.Time

	isConstructed bool
}

// NewTransitionEvent records a status change applied through the automatic
// pipeline graph.
func NewTransitionEvent(
	orderID kernel.UUID,
	actor string,
	from, to order.Status,
	reason, notes string,
	versionRef *int,
	at time.Time,
) (*Event, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if actor == "" {
		return nil, errs.NewValueIsRequiredError("actor")
	}

	return &Event{
		executionID:   kernel.NewUUID(),
		orderID:       orderID,
		actor:         actor,
		kind:          KindTransition,
		fromStatus:    from,
		toStatus:      to,
		reason:        reason,
		notes:         notes,
		versionRef:    copyVersionRef(versionRef),
		timestamp:     at,
		isConstructed: true,
	}, nil
}

// NewOverrideTransitionEvent records a status change applied through the
// manual-override whitelist. The verbatim supplied reason is recorded with
// OverridePrefix prepended so overrides are distinguishable from automatic
// transitions in the trail.
func NewOverrideTransitionEvent(
	orderID kernel.UUID,
	actor string,
	from, to order.Status,
	reason, notes string,
	at time.Time,
) (*Event, error) {
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}

	event, err := NewTransitionEvent(orderID, actor, from, to, OverridePrefix+reason, notes, nil, at)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// NewActionEvent records a free-form audited action that did not change the
// order's status.
func NewActionEvent(
	orderID kernel.UUID,
	actor string,
	action string,
	reason, notes string,
	versionRef *int,
	at time.Time,
) (*Event, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if actor == "" {
		return nil, errs.NewValueIsRequiredError("actor")
	}
	if action == "" {
		return nil, errs.NewValueIsRequiredError("action")
	}

	return &Event{
		executionID:   kernel.NewUUID(),
		orderID:       orderID,
		actor:         actor,
		kind:          KindAction,
		action:        action,
		reason:        reason,
		notes:         notes,
		versionRef:    copyVersionRef(versionRef),
		timestamp:     at,
		isConstructed: true,
	}, nil
}

// RestoreEvent reconstructs an event from persistence.
func RestoreEvent(
	executionID, orderID kernel.UUID,
	actor string,
	kind Kind,
	from, to order.Status,
	action, reason, notes string,
	versionRef *int,
	timestamp time.Time,
) (*Event, error) {
	if err := errors.Join(executionID.Validate(), orderID.Validate(), kind.Validate()); err != nil {
		return nil, err
	}

	return &Event{
		executionID:   executionID,
		orderID:       orderID,
		actor:         actor,
		kind:          kind,
		fromStatus:    from,
		toStatus:      to,
		action:        action,
		reason:        reason,
		notes:         notes,
		versionRef:    copyVersionRef(versionRef),
		timestamp:     timestamp,
		isConstructed: true,
	}, nil
}

// Validate ensures the Event instance was properly constructed.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ExecutionID returns the event's unique identifier.
func (e *Event) ExecutionID() kernel.UUID {
	return e.executionID
}

// OrderID returns the identifier of the order the event belongs to.
func (e *Event) OrderID() kernel.UUID {
	return e.orderID
}

// Actor returns the identity that triggered the event, or SystemActor.
func (e *Event) Actor() string {
	return e.actor
}

// Kind returns the event category discriminant.
func (e *Event) Kind() Kind {
	return e.kind
}

// FromStatus returns the source status for KindTransition events.
func (e *Event) FromStatus() order.Status {
	return e.fromStatus
}

// ToStatus returns the target status for KindTransition events.
func (e *Event) ToStatus() order.Status {
	return e.toStatus
}

// Action returns the action name for KindAction events.
func (e *Event) Action() string {
	return e.action
}

// Reason returns the recorded reason, including the override prefix for
// manual overrides.
func (e *Event) Reason() string {
	return e.reason
}

// Notes returns supplementary free text, if any.
func (e *Event) Notes() string {
	return e.notes
}

// VersionRef returns the explicit document-version reference, nil when the
// event concerns no specific version.
func (e *Event) VersionRef() *int {
	return copyVersionRef(e.versionRef)
}

// Timestamp returns when the event occurred.
func (e *Event) Timestamp() time.Time {
	return e.timestamp
}

// IsOverride reports whether the event records a manual override.
func (e *Event) IsOverride() bool {
	return e.kind == KindTransition && len(e.reason) >= len(OverridePrefix) &&
		e.reason[:len(OverridePrefix)] == OverridePrefix
}

func copyVersionRef(ref *int) *int {
	if ref == nil {
		return nil
	}
	v := *ref
	return &v
}
