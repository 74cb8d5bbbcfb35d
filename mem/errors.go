package mem

import "errors"

var (
	// ErrOutOfMemory indicates the backing resource is exhausted: the fixed
	// buffer is full, or the operating system denied a mapping request.
	ErrOutOfMemory = errors.New("mem: out of memory")

	// ErrBadAlignment indicates the requested alignment is zero, not a power
	// of two, or cannot be satisfied by the strategy.
	ErrBadAlignment = errors.New("mem: bad alignment")

	// ErrSizeOverflow indicates the element-size × count computation for a
	// slice allocation overflows, or the count is negative.
	ErrSizeOverflow = errors.New("mem: allocation size overflows")
)
