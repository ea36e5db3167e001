// Package errs provides standardized error types for the dispatch core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes one error type per failure family:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: a referenced order, courier or user does not exist
//   - ConflictError: the request lost against concurrent or prior state
//     (for example a courier already bound to the order)
//   - PreconditionFailedError: a business rule rejects the request in the current state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// ConflictError and PreconditionFailedError additionally carry the domain rule that
// failed (a sentinel owned by the domain package), so callers can match either the
// family or the precise rule with errors.Is:
//
//	errors.Is(err, errs.ErrPreconditionFailed) // any precondition failure
//	errors.Is(err, order.ErrOrderNotPaid)       // this exact rule
package errs
