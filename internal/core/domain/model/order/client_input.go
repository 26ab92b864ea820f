package order

import (
	"fmt"
	"time"

	"docflow/internal/pkg/errs"
)

// maxDeadlineDays bounds how long a client may be given to respond.
const maxDeadlineDays = 60

// ClientInputResponse is a single inbound answer to an information request.
// Responses are version-tagged with the document version that was current
// for the review cycle they belong to.
type ClientInputResponse struct {
	Version     int
	Payload     map[string]any
	SubmittedAt time.Time
}

// ClientInputRequest captures an outbound request for missing information
// sent to the client, together with the responses received so far. It lives
// on the Order aggregate while the order sits in ClientInputRequired and
// stays attached afterwards for audit purposes.
type ClientInputRequest struct {
	requestNotes    string
	requestedFields []string
	deadlineDays    int
	requestedAt     time.Time
	requestedBy     string
	responses       []ClientInputResponse

	isConstructed bool
}

// NewClientInputRequest creates a validated information request.
// Notes and the requesting actor are mandatory; deadlineDays must be within
// (0, maxDeadlineDays]. requestedFields may be empty for free-form requests.
func NewClientInputRequest(
	notes string,
	requestedFields []string,
	deadlineDays int,
	requestedBy string,
	requestedAt time.Time,
) (ClientInputRequest, error) {
	if notes == "" {
		return ClientInputRequest{}, errs.NewValueIsRequiredError("requestNotes")
	}
	if requestedBy == "" {
		return ClientInputRequest{}, errs.NewValueIsRequiredError("requestedBy")
	}
	if deadlineDays <= 0 || deadlineDays > maxDeadlineDays {
		return ClientInputRequest{}, errs.NewValueIsOutOfRangeError("deadlineDays", deadlineDays, 1, maxDeadlineDays)
	}

	return ClientInputRequest{
		requestNotes:    notes,
		requestedFields: append([]string(nil), requestedFields...),
		deadlineDays:    deadlineDays,
		requestedAt:     requestedAt,
		requestedBy:     requestedBy,
		isConstructed:   true,
	}, nil
}

// RestoreClientInputRequest reconstructs a request from persistence,
// including already-received responses.
func RestoreClientInputRequest(
	notes string,
	requestedFields []string,
	deadlineDays int,
	requestedBy string,
	requestedAt time.Time,
	responses []ClientInputResponse,
) ClientInputRequest {
	return ClientInputRequest{
		requestNotes:    notes,
		requestedFields: append([]string(nil), requestedFields...),
		deadlineDays:    deadlineDays,
		requestedAt:     requestedAt,
		requestedBy:     requestedBy,
		responses:       append([]ClientInputResponse(nil), responses...),
		isConstructed:   true,
	}
}

// RequestNotes returns the free-form description of what is missing.
func (r *ClientInputRequest) RequestNotes() string {
	return r.requestNotes
}

// RequestedFields returns the set of field keys the client was asked for.
func (r *ClientInputRequest) RequestedFields() []string {
	return append([]string(nil), r.requestedFields...)
}

// DeadlineDays returns the number of days the client was given to respond.
func (r *ClientInputRequest) DeadlineDays() int {
	return r.deadlineDays
}

// RequestedAt returns when the request was sent.
func (r *ClientInputRequest) RequestedAt() time.Time {
	return r.requestedAt
}

// RequestedBy returns the actor who sent the request.
func (r *ClientInputRequest) RequestedBy() string {
	return r.requestedBy
}

// Deadline returns the instant the response window closes.
func (r *ClientInputRequest) Deadline() time.Time {
	return r.requestedAt.AddDate(0, 0, r.deadlineDays)
}

// Responses returns the responses received so far, oldest first.
func (r *ClientInputRequest) Responses() []ClientInputResponse {
	return append([]ClientInputResponse(nil), r.responses...)
}

// addResponse appends a version-tagged response. The payload must not be empty.
func (r *ClientInputRequest) addResponse(version int, payload map[string]any, submittedAt time.Time) error {
	if len(payload) == 0 {
		return errs.NewValueIsRequiredError("payload")
	}
	if version <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not a valid document version", version))
	}

	r.responses = append(r.responses, ClientInputResponse{
		Version:     version,
		Payload:     payload,
		SubmittedAt: submittedAt,
	})
	return nil
}
