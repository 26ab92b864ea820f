// Package errs provides standardized error types for the docflow application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers two groups of errors:
//   - Value errors raised during input validation:
//     ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError,
//     VersionIsInvalidError, ObjectNotFoundError
//   - Workflow errors raised by the order lifecycle core:
//     InvalidTransitionError, VersionLockedError, StaleVersionError,
//     GenerationError, GenerationTimeoutError, DeliveryError,
//     ConcurrentModificationError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels, so the
// HTTP layer can map the whole workflow taxonomy onto status codes without
// inspecting message text.
package errs
