// Package errs provides standardized error types for the sales order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the three client-facing error classes:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError:
//     malformed or out-of-range input (reported as 400 by the HTTP adapter)
//   - ObjectNotFoundError: a referenced object does not exist (404)
//   - ObjectConflictError: the operation is not allowed by the object's
//     current lifecycle state (409)
//
// Any other error reaching the HTTP adapter is treated as a failed transaction
// and reported as 500.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works through
//     fmt.Errorf("%w") wrapping and errors.Join aggregation alike
package errs
