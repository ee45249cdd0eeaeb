// Package errs provides standardized error types for the marketplace order
// service. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The package defines one error type per failure class in the service's
// taxonomy:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or out of range
//   - ObjectNotFoundError: a referenced object does not exist
//   - ForbiddenError: the actor may not perform the operation
//   - InvalidTransitionError: a legal order was asked for an illegal status change
//   - InsufficientStockError: a line item requests more than is available
//   - UnavailableError: storage timed out; the caller may retry
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Every constructed error is returned to the caller; no layer constructs an
// error without propagating it.
package errs
