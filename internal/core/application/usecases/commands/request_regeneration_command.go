package commands

import (
	"errors"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

var ErrRequestRegenerationCommandIsNotConstructed = errors.New(
	"RequestRegenerationCommand must be created via NewRequestRegenerationCommand constructor",
)

// RequestRegenerationCommand starts a correction cycle for an order under
// review: the current version is superseded and a new one is produced with
// the reviewer's correction notes, optionally scoped to affected sections
// and constrained by guardrails (content that must survive the rewrite).
type RequestRegenerationCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	actor            string
	reason           string
	correctionNotes  string
	affectedSections []string
	guardrails       []string

	guard guard.ConstructorGuard
}

// NewRequestRegenerationCommand creates a command to start a correction cycle.
// Reason and correction notes are both required.
func NewRequestRegenerationCommand(
	orderID kernel.UUID,
	actor, reason, correctionNotes string,
	affectedSections, guardrails []string,
) (RequestRegenerationCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RequestRegenerationCommand{}, err
	}
	if actor == "" {
		return RequestRegenerationCommand{}, errs.NewValueIsRequiredError("actor")
	}
	if reason == "" {
		return RequestRegenerationCommand{}, errs.NewValueIsRequiredError("reason")
	}
	if correctionNotes == "" {
		return RequestRegenerationCommand{}, errs.NewValueIsRequiredError("correctionNotes")
	}

	return RequestRegenerationCommand{
		orderID:          orderID,
		actor:            actor,
		reason:           reason,
		correctionNotes:  correctionNotes,
		affectedSections: append([]string(nil), affectedSections...),
		guardrails:       append([]string(nil), guardrails...),
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestRegenerationCommand) Validate() error {
	return c.guard.Validate(ErrRequestRegenerationCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c RequestRegenerationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the identity of the requesting reviewer.
func (c RequestRegenerationCommand) Actor() string {
	return c.actor
}

// Reason returns the audited reason for the correction cycle.
func (c RequestRegenerationCommand) Reason() string {
	return c.reason
}

// CorrectionNotes returns the instructions for the regeneration.
func (c RequestRegenerationCommand) CorrectionNotes() string {
	return c.correctionNotes
}

// AffectedSections returns the sections flagged for correction.
func (c RequestRegenerationCommand) AffectedSections() []string {
	return append([]string(nil), c.affectedSections...)
}

// Guardrails returns the content constraints the rewrite must preserve.
func (c RequestRegenerationCommand) Guardrails() []string {
	return append([]string(nil), c.guardrails...)
}
