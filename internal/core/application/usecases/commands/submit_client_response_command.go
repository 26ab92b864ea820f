package commands

import (
	"errors"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

var ErrSubmitClientResponseCommandIsNotConstructed = errors.New(
	"SubmitClientResponseCommand must be created via NewSubmitClientResponseCommand constructor",
)

// SubmitClientResponseCommand records the client's answer to an open
// information request and returns the order to review, resuming the SLA
// clock.
type SubmitClientResponseCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	payload map[string]any

	guard guard.ConstructorGuard
}

// NewSubmitClientResponseCommand creates a command from an inbound client
// response. The payload must not be empty.
func NewSubmitClientResponseCommand(orderID kernel.UUID, payload map[string]any) (SubmitClientResponseCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SubmitClientResponseCommand{}, err
	}
	if len(payload) == 0 {
		return SubmitClientResponseCommand{}, errs.NewValueIsRequiredError("payload")
	}

	return SubmitClientResponseCommand{
		orderID: orderID,
		payload: payload,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitClientResponseCommand) Validate() error {
	return c.guard.Validate(ErrSubmitClientResponseCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c SubmitClientResponseCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Payload returns the submitted field values.
func (c SubmitClientResponseCommand) Payload() map[string]any {
	return c.payload
}
