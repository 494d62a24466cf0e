package datasets

import "errors"

// Error categories raised by the wrappers in this package. Callers can
// branch with errors.Is; the wrapped message carries the specifics.
var (
	// ErrInvalidArgument marks a bad constructor or Split argument, such
	// as a target field missing from a description.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTypeMismatch marks a description of the wrong shape (a table
	// where a single row is required, or vice versa).
	ErrTypeMismatch = errors.New("description type mismatch")

	// ErrValueMismatch marks children whose signal properties disagree
	// when building an aggregate description.
	ErrValueMismatch = errors.New("conflicting recording properties")

	// ErrIndexRange marks an out-of-range dataset index.
	ErrIndexRange = errors.New("index out of range")
)
