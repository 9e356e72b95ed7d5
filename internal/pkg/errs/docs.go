// Package errs provides the standardized error taxonomy of the delivery
// tracking application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the codebase.
//
// The package covers the failure categories of the order lifecycle:
//   - ObjectNotFoundError: an object could not be resolved by id
//   - NotAuthorizedError: the requesting actor may not perform the operation
//   - InvalidTransitionError: an order status transition is not permitted
//   - ValueIsRequiredError / ValueIsInvalidError: validation failures
//   - ValueIsOutOfRangeError: a value outside its permitted bounds
//   - StorageError: a persistence or messaging collaborator failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrNotAuthorized) for errors.Is checks
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method producing a single-line message
//   - Unwrap() method returning the sentinel
//
// Callers never retry on these errors; every failure is returned to the caller
// as a typed result and mapped to a short user-facing category at the edge.
package errs
