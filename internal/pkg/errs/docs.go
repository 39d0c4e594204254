// Package errs provides standardized error types for the dispatch application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package groups errors into the kinds callers act on:
//   - Validation: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - NotFound: ObjectNotFoundError
//   - Conflict: ConflictError, a business rule rejected an otherwise valid request
//   - StoreFailure: StoreFailureError, the persistence layer failed or timed out
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Only StoreFailure is safe for a caller to retry blindly. The other kinds must
// be surfaced to the user with the details carried by the error.
package errs
