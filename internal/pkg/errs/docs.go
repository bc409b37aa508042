// Package errs provides the typed errors shared by the delivery date packages.
//
// Every error type follows the same shape:
//   - a sentinel variable (e.g. ErrValueIsRequired) for errors.Is checks
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without a cause
//   - Unwrap returning the sentinel
//
// Callers classify failures by sentinel rather than by message text.
package errs
