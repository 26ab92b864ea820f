package commands

import (
	"errors"
	"fmt"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

// minOverrideReasonLength is the minimum length of the mandatory reason for
// manual overrides. Overrides bypass the automatic graph, so a substantive
// justification is part of the contract.
const minOverrideReasonLength = 10

var ErrOverrideTransitionCommandIsNotConstructed = errors.New(
	"OverrideTransitionCommand must be created via NewOverrideTransitionCommand constructor",
)

// OverrideTransitionCommand applies an admin-triggered transition from the
// manual-override whitelist: retrying a Failed order, retrying or manually
// completing a failed delivery, or rolling a waiting order back to review.
//
// Example:
//
//	cmd, err := NewOverrideTransitionCommand(orderID, order.Queued, "ops-lead",
//	    "generation engine restored, requeueing", "")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // target not in the whitelist for the order's current status
//	}
type OverrideTransitionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	actor   string
	reason  string
	notes   string

	guard guard.ConstructorGuard
}

// NewOverrideTransitionCommand creates a command for a manual override.
// The reason is mandatory and must carry at least minOverrideReasonLength
// characters.
func NewOverrideTransitionCommand(
	orderID kernel.UUID,
	target order.Status,
	actor, reason, notes string,
) (OverrideTransitionCommand, error) {
	if err := orderID.Validate(); err != nil {
		return OverrideTransitionCommand{}, err
	}
	if err := target.Validate(); err != nil {
		return OverrideTransitionCommand{}, err
	}
	if actor == "" {
		return OverrideTransitionCommand{}, errs.NewValueIsRequiredError("actor")
	}
	if len(reason) < minOverrideReasonLength {
		return OverrideTransitionCommand{}, errs.NewValueIsInvalidErrorWithCause("reason",
			fmt.Errorf("override reason must be at least %d characters", minOverrideReasonLength))
	}

	return OverrideTransitionCommand{
		orderID: orderID,
		target:  target,
		actor:   actor,
		reason:  reason,
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c OverrideTransitionCommand) Validate() error {
	return c.guard.Validate(ErrOverrideTransitionCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c OverrideTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested target status.
func (c OverrideTransitionCommand) Target() order.Status {
	return c.target
}

// Actor returns the identity of the admin performing the override.
func (c OverrideTransitionCommand) Actor() string {
	return c.actor
}

// Reason returns the mandatory justification.
func (c OverrideTransitionCommand) Reason() string {
	return c.reason
}

// Notes returns optional supplementary text for the audit trail.
func (c OverrideTransitionCommand) Notes() string {
	return c.notes
}
