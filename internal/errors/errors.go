// Package errors provides centralized error handling for taskdeck.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrEmptyTitle indicates a task title was empty after trimming
	// surrounding whitespace.
	ErrEmptyTitle = errors.New("task title cannot be empty")

	// ErrInvalidTaskID indicates a task id argument was not a positive integer.
	ErrInvalidTaskID = errors.New("task id must be a positive integer")

	// ErrTaskNotFound indicates the referenced task id does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrStoreCorrupt indicates the store file exists but fails schema or
	// invariant validation on load. Treated as fatal for the invocation;
	// the file is never auto-repaired.
	ErrStoreCorrupt = errors.New("store file corrupted")

	// ErrLockTimeout indicates the store's advisory lock could not be
	// acquired within the timeout period.
	ErrLockTimeout = errors.New("lock acquisition timeout")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrConfigInvalid indicates an invalid configuration value.
	ErrConfigInvalid = errors.New("invalid configuration")
)

// IsUserInput reports whether err stems from invalid user input rather
// than an internal or I/O failure. The CLI maps these to exit code 2.
func IsUserInput(err error) bool {
	return errors.Is(err, ErrEmptyTitle) ||
		errors.Is(err, ErrInvalidTaskID) ||
		errors.Is(err, ErrInvalidOutputFormat)
}
