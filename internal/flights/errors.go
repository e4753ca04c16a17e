package flights

import "errors"

var (
	// ErrInvalidArgument is returned when a required collection or predicate is missing
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyInput is returned when statistics are requested over zero pairs
	ErrEmptyInput = errors.New("empty input")

	// ErrNotFound marks a lookup miss. The merger never returns it; it
	// represents a miss as a nil airport instead.
	ErrNotFound = errors.New("not found")
)
