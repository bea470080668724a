// Package errs provides standardized error types for the fleet custody application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value is outside its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - DuplicatePlateError: For plate-number uniqueness violations
//   - CustodyConflictError: For transitions lost to a concurrent winner
//   - InvalidStateError: For operations attempted on a record in the wrong state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinel errors double as the recovery contract for callers: a
// CustodyConflictError or InvalidStateError means the operation already lost
// to a concurrent winner, so retrying the same logical operation is wrong,
// while transient infrastructure errors pass through untouched and stay
// retryable.
package errs
