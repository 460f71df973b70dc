// Package errs provides standardized error types for the moving estimate service.
// Every error type wraps a sentinel so callers can classify failures with errors.Is
// while still carrying the offending parameter name and an optional cause.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed
//   - ValueIsOutOfRangeError: a value lies outside its allowed bounds
//   - ObjectNotFoundError: a referenced object does not exist
package errs
