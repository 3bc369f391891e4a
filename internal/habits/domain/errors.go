package domain

import "errors"

var (
	// ErrInvalidTimestamp is returned when a date key is derived from a
	// non-coercible time value. The codec never silently defaults to "now".
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// ErrInvalidDateKey is returned when parsing a malformed date key.
	ErrInvalidDateKey = errors.New("invalid date key")

	// ErrInvalidTask is returned when toggling an unrecognized task name.
	ErrInvalidTask = errors.New("invalid task name")
)
