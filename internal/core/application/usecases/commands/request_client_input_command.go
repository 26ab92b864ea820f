package commands

import (
	"errors"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

var ErrRequestClientInputCommandIsNotConstructed = errors.New(
	"RequestClientInputCommand must be created via NewRequestClientInputCommand constructor",
)

// RequestClientInputCommand blocks an order under review on missing
// information from the client. Entering the waiting status pauses the SLA
// clock; the client is notified of the requested fields and the deadline.
type RequestClientInputCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	actor           string
	notes           string
	requestedFields []string
	deadlineDays    int

	guard guard.ConstructorGuard
}

// NewRequestClientInputCommand creates a command to request client input.
// Notes describe what is missing; requestedFields may be empty for a
// free-form request; deadlineDays bounds the response window.
func NewRequestClientInputCommand(
	orderID kernel.UUID,
	actor, notes string,
	requestedFields []string,
	deadlineDays int,
) (RequestClientInputCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RequestClientInputCommand{}, err
	}
	if actor == "" {
		return RequestClientInputCommand{}, errs.NewValueIsRequiredError("actor")
	}
	if notes == "" {
		return RequestClientInputCommand{}, errs.NewValueIsRequiredError("notes")
	}

	return RequestClientInputCommand{
		orderID:         orderID,
		actor:           actor,
		notes:           notes,
		requestedFields: append([]string(nil), requestedFields...),
		deadlineDays:    deadlineDays,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestClientInputCommand) Validate() error {
	return c.guard.Validate(ErrRequestClientInputCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c RequestClientInputCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the identity of the requesting reviewer.
func (c RequestClientInputCommand) Actor() string {
	return c.actor
}

// Notes returns the description of the missing information.
func (c RequestClientInputCommand) Notes() string {
	return c.notes
}

// RequestedFields returns the field keys the client is asked for.
func (c RequestClientInputCommand) RequestedFields() []string {
	return append([]string(nil), c.requestedFields...)
}

// DeadlineDays returns the response window in days.
func (c RequestClientInputCommand) DeadlineDays() int {
	return c.deadlineDays
}
