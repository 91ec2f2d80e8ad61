package vec128

import "errors"

// Failure taxonomy shared by the memory and buffer layers. Fallible
// operations return one of these sentinels (success is a nil error);
// nothing in this module panics on a failed allocation.
var (
	// ErrNilBuffer reports that a required buffer handle was nil.
	ErrNilBuffer = errors.New("vec128: nil buffer")

	// ErrInvalidSize reports a size argument that violates an operation's
	// preconditions.
	ErrInvalidSize = errors.New("vec128: invalid size")

	// ErrInvalidAlignment reports an alignment that is zero or not a
	// power of two.
	ErrInvalidAlignment = errors.New("vec128: alignment must be a nonzero power of two")

	// ErrMisaligned reports a span that does not satisfy the vector
	// alignment an operation required. Bulk operations never return it;
	// they fall back to scalar code instead.
	ErrMisaligned = errors.New("vec128: span is not 16-byte aligned")

	// ErrOutOfMemory reports that the underlying allocation failed.
	ErrOutOfMemory = errors.New("vec128: allocation failed")
)
