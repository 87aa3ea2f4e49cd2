// Package errors provides structured error types for the gamebind library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes the entity category, the script-visible
// symbol name, and a cause chain where applicable.
//
// Use the convenience constructors for common patterns:
//
//	err := errors.UnsupportedOffset("character", 132)
//	err := errors.CapacityExceeded("hotspot", 51, 50)
//
// All errors implement the standard error interface and support errors.Is/As.
// Two *Error values match under errors.Is when Phase and Kind agree, so
// sentinel comparisons like
//
//	errors.Is(err, &errors.Error{Phase: errors.PhaseAccess, Kind: errors.KindInvalidHandle})
//
// work without exporting one sentinel per call site.
package errors
