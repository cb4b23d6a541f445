package sparse

import "errors"

// The three failure classes every operation reports. Call sites wrap them
// with operation context; classify with errors.Is.
var (
	// ErrInvalidArgument covers zero-length requests, invalid range
	// bounds, invalid seek targets, and non-positive sizes.
	ErrInvalidArgument = errors.New("sparse: invalid argument")

	// ErrAllocation is returned when the bound Allocator fails.
	ErrAllocation = errors.New("sparse: allocation failed")

	// ErrOutOfBounds is returned when a read would pass the logical end
	// of the buffer.
	ErrOutOfBounds = errors.New("sparse: out of bounds")
)
