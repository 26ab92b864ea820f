package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Each concrete error
// type below unwraps to exactly one of these.
var (
	ErrObjectNotFound         = errors.New("object not found")
	ErrValueIsInvalid         = errors.New("value is invalid")
	ErrValueIsOutOfRange      = errors.New("value is out of range")
	ErrValueIsRequired        = errors.New("value is required")
	ErrVersionIsInvalid       = errors.New("version is invalid")
	ErrInvalidTransition      = errors.New("invalid transition")
	ErrVersionLocked          = errors.New("version is locked")
	ErrStaleVersion           = errors.New("version is stale")
	ErrGeneration             = errors.New("generation failed")
	ErrGenerationTimeout      = errors.New("generation timed out")
	ErrDelivery               = errors.New("delivery failed")
	ErrConcurrentModification = errors.New("concurrent modification")
)

// sanitize flattens multi-line values so error messages stay on one log line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError indicates that an object could not be located by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value fell outside its permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a mandatory value was not supplied.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError indicates that a document version reference is malformed
// or does not exist for the order it was addressed to.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewVersionIsInvalidError creates a VersionIsInvalidError without an underlying cause.
func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

// NewVersionIsInvalidErrorWithCause creates a VersionIsInvalidError wrapping an underlying cause.
func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrVersionIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// InvalidTransitionError indicates that a requested status change is not in the
// permitted set for the order's current status. The order is left untouched.
type InvalidTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewInvalidTransitionError creates an InvalidTransitionError for a rejected status change.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(from, to string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s -> %s (cause: %s)", ErrInvalidTransition, e.From, e.To, e.Cause)
	}
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// VersionLockedError indicates an attempt to create or regenerate a document
// version on an order whose versions are locked by an approval.
type VersionLockedError struct {
	OrderID string
}

// NewVersionLockedError creates a VersionLockedError for the given order.
func NewVersionLockedError(orderID string) *VersionLockedError {
	return &VersionLockedError{OrderID: orderID}
}

func (e *VersionLockedError) Error() string {
	return fmt.Sprintf("%s: order %s", ErrVersionLocked, e.OrderID)
}

func (e *VersionLockedError) Unwrap() error {
	return ErrVersionLocked
}

// StaleVersionError indicates an approval addressed to a document version that
// has since been superseded by a newer one.
type StaleVersionError struct {
	Requested int
	Latest    int
}

// NewStaleVersionError creates a StaleVersionError describing the requested and latest versions.
func NewStaleVersionError(requested, latest int) *StaleVersionError {
	return &StaleVersionError{Requested: requested, Latest: latest}
}

func (e *StaleVersionError) Error() string {
	return fmt.Sprintf("%s: requested version is %d, latest version is %d",
		ErrStaleVersion, e.Requested, e.Latest)
}

func (e *StaleVersionError) Unwrap() error {
	return ErrStaleVersion
}

// GenerationError indicates that the document generation collaborator failed.
type GenerationError struct {
	OrderID string
	Cause   error
}

// NewGenerationError creates a GenerationError without an underlying cause.
func NewGenerationError(orderID string) *GenerationError {
	return &GenerationError{OrderID: orderID}
}

// NewGenerationErrorWithCause creates a GenerationError wrapping the collaborator failure.
func NewGenerationErrorWithCause(orderID string, cause error) *GenerationError {
	return &GenerationError{OrderID: orderID, Cause: cause}
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: order %s (cause: %s)", ErrGeneration, e.OrderID, e.Cause)
	}
	return fmt.Sprintf("%s: order %s", ErrGeneration, e.OrderID)
}

func (e *GenerationError) Unwrap() error {
	return ErrGeneration
}

// GenerationTimeoutError indicates that no generation callback arrived within
// the bounded window.
type GenerationTimeoutError struct {
	OrderID string
	Window  string
}

// NewGenerationTimeoutError creates a GenerationTimeoutError for the given order and window.
func NewGenerationTimeoutError(orderID, window string) *GenerationTimeoutError {
	return &GenerationTimeoutError{OrderID: orderID, Window: window}
}

func (e *GenerationTimeoutError) Error() string {
	return fmt.Sprintf("%s: order %s, no callback within %s", ErrGenerationTimeout, e.OrderID, e.Window)
}

func (e *GenerationTimeoutError) Unwrap() error {
	return ErrGenerationTimeout
}

// DeliveryError indicates that the delivery step failed. The order is moved to
// a retryable failed-delivery status, never lost.
type DeliveryError struct {
	OrderID string
	Cause   error
}

// NewDeliveryError creates a DeliveryError without an underlying cause.
func NewDeliveryError(orderID string) *DeliveryError {
	return &DeliveryError{OrderID: orderID}
}

// NewDeliveryErrorWithCause creates a DeliveryError wrapping the delivery failure.
func NewDeliveryErrorWithCause(orderID string, cause error) *DeliveryError {
	return &DeliveryError{OrderID: orderID, Cause: cause}
}

func (e *DeliveryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: order %s (cause: %s)", ErrDelivery, e.OrderID, e.Cause)
	}
	return fmt.Sprintf("%s: order %s", ErrDelivery, e.OrderID)
}

func (e *DeliveryError) Unwrap() error {
	return ErrDelivery
}

// ConcurrentModificationError indicates that an optimistic write lost the race
// against another writer and was not applied.
type ConcurrentModificationError struct {
	OrderID string
}

// NewConcurrentModificationError creates a ConcurrentModificationError for the given order.
func NewConcurrentModificationError(orderID string) *ConcurrentModificationError {
	return &ConcurrentModificationError{OrderID: orderID}
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s: order %s", ErrConcurrentModification, e.OrderID)
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}
