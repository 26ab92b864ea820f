package order

import (
	"fmt"

	"docflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with two distinct permission sets:
//
//   - the automatic pipeline graph, followed by the system as work on the
//     order progresses, and
//   - the manual-override whitelist, a separate data-driven table of
//     admin-triggered recovery transitions.
//
// Both sets are lookup tables rather than branching conditionals, so a new
// permitted transition is a data change, not new code.
//
// Automatic pipeline:
//
//	Created → Paid → Queued → InProgress → DraftReady → InternalReview
//	InternalReview ─ approve ────────────→ Finalising → Delivering → Completed
//	InternalReview ─ regeneration ───────→ RegenRequested → Regenerating ─┐
//	InternalReview ─ client input ───────→ ClientInputRequired ─┐         │
//	                 ▲──────────────────────────────────────────┴─────────┘
//	Delivering ─ delivery error ─────────→ DeliveryFailed
//	any non-terminal ─ irrecoverable ────→ Failed
//
// Completed and Cancelled are terminal. Status is a value object that
// validates state transitions and provides string representations for
// persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status before payment confirmation arrives.
	Created

	// Paid indicates payment was confirmed and the order entered the pipeline.
	Paid

	// Queued indicates the order is waiting for document generation capacity.
	Queued

	// InProgress indicates document generation has been dispatched to the
	// generation collaborator and its callback is awaited.
	InProgress

	// DraftReady indicates the generated draft arrived and awaits review intake.
	DraftReady

	// InternalReview indicates a reviewer is inspecting the current draft.
	InternalReview

	// RegenRequested indicates a reviewer asked for a correction cycle.
	RegenRequested

	// Regenerating indicates the correction cycle is running.
	Regenerating

	// ClientInputRequired indicates the workflow is blocked on information
	// from the client. The SLA clock is paused while in this status.
	ClientInputRequired

	// Finalising indicates the approved version is being prepared for delivery.
	Finalising

	// Delivering indicates delivery to the client is in progress.
	Delivering

	// Completed indicates the order was delivered. Terminal.
	Completed

	// DeliveryFailed indicates the delivery step failed. Retryable through
	// the manual-override whitelist.
	DeliveryFailed

	// Failed indicates an irrecoverable pipeline failure. Recoverable only
	// through the manual-override whitelist.
	Failed

	// Cancelled indicates the order was cancelled pre-finalisation. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "Unknown",
		Created:             "Created",
		Paid:                "Paid",
		Queued:              "Queued",
		InProgress:          "InProgress",
		DraftReady:          "DraftReady",
		InternalReview:      "InternalReview",
		RegenRequested:      "RegenRequested",
		Regenerating:        "Regenerating",
		ClientInputRequired: "ClientInputRequired",
		Finalising:          "Finalising",
		Delivering:          "Delivering",
		Completed:           "Completed",
		DeliveryFailed:      "DeliveryFailed",
		Failed:              "Failed",
		Cancelled:           "Cancelled",
	}
}

// automaticNext is the pipeline graph: the statuses the system itself may
// move an order to from each status. Failed is additionally reachable from
// every non-terminal status (see CanTransitionTo), so it is not repeated here.
func automaticNext() map[Status][]Status {
	return map[Status][]Status{
		Created:             {Paid},
		Paid:                {Queued},
		Queued:              {InProgress},
		InProgress:          {DraftReady},
		DraftReady:          {InternalReview},
		InternalReview:      {Finalising, RegenRequested, ClientInputRequired},
		RegenRequested:      {Regenerating},
		Regenerating:        {InternalReview},
		ClientInputRequired: {InternalReview},
		Finalising:          {Delivering},
		Delivering:          {Completed, DeliveryFailed},
	}
}

// manualOverrides is the whitelist of admin-triggered transitions outside
// the automatic graph, keyed by current status. Every invocation requires a
// substantive, audited reason.
func manualOverrides() map[Status][]Status {
	return map[Status][]Status{
		Failed:              {Queued, InProgress},
		DeliveryFailed:      {Finalising, Delivering, Completed},
		ClientInputRequired: {InternalReview},
		RegenRequested:      {InternalReview},
	}
}

// cancellableStatuses are the statuses from which Cancel is permitted.
// Cancellation is possible only pre-finalisation: once an order reaches
// Finalising it can no longer be cancelled.
func cancellableStatuses() map[Status]bool {
	return map[Status]bool{
		Created:             true,
		Paid:                true,
		Queued:              true,
		InProgress:          true,
		DraftReady:          true,
		InternalReview:      true,
		RegenRequested:      true,
		Regenerating:        true,
		ClientInputRequired: true,
		Failed:              true,
	}
}

// StatusFromString parses a status from its string representation.
// Returns an error for unknown names and for "Unknown" itself.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is a member of the closed enum.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status ends the lifecycle.
// Terminal orders stay queryable for audit but accept no transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether target is reachable from s through the
// automatic pipeline graph. Failed is reachable from every non-terminal
// status: any stage may fail irrecoverably.
func (s Status) CanTransitionTo(target Status) bool {
	if target == Failed {
		return !s.IsTerminal() && s != Failed
	}

	for _, next := range automaticNext()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// CanOverrideTo reports whether target is reachable from s through the
// manual-override whitelist.
func (s Status) CanOverrideTo(target Status) bool {
	for _, next := range manualOverrides()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// CanCancel reports whether cancellation is permitted from s.
func (s Status) CanCancel() bool {
	return cancellableStatuses()[s]
}

// Transition moves the status along the automatic pipeline graph.
//
// Returns:
//   - (target, nil) on a permitted transition
//   - (0, InvalidTransitionError) otherwise; the receiver is never coerced
//     to a "closest" valid state
func (s Status) Transition(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidTransitionError(s.String(), target.String())
	}

	return target, nil
}

// Override moves the status through the manual-override whitelist.
// The permitted set is independent of the automatic graph.
func (s Status) Override(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanOverrideTo(target) {
		return 0, errs.NewInvalidTransitionError(s.String(), target.String())
	}

	return target, nil
}

// Cancel transitions the status to Cancelled.
// Permitted only pre-finalisation; Finalising, Delivering, Completed and
// already-cancelled orders reject it.
func (s Status) Cancel() (Status, error) {
	if !s.CanCancel() {
		return 0, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}

	return Cancelled, nil
}
