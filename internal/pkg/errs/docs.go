// Package errs provides standardized error types for the forwarding service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//   - ObjectNotFoundError: a zone, rate, order or forwarder does not exist
//   - ConflictError: a write collides with existing state (duplicate names, shared countries)
//   - UnauthorizedError: an actor modifies a resource it does not own
//   - VersionIsInvalidError: a migration version is malformed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works on the category
//
// HTTP adapters classify failures by sentinel only, which keeps transport mapping
// independent of the concrete domain error.
package errs
