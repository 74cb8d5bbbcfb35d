package mem

import "unsafe"

// Allocator is the capability contract implemented by every allocation
// strategy. Engine code holds an Allocator value and calls only these two
// operations; it never needs to know which concrete strategy backs it.
//
// The typed helpers (New, MakeSlice, Destroy, FreeSlice) layer element size
// and alignment computation on top of this raw byte contract.
//
// Allocator values are not safe for concurrent use. Wrap with Locked or use
// one instance per goroutine.
type Allocator interface {
	// AllocBytes returns a pointer to size bytes aligned to align.
	//
	// align must be a power of two; strategies reject anything else with
	// ErrBadAlignment. A successful call never returns a nil pointer, even
	// for size == 0 (zero-byte requests yield a shared sentinel address that
	// must not be dereferenced). Exhaustion reports ErrOutOfMemory.
	AllocBytes(size, align uintptr) (unsafe.Pointer, error)

	// FreeBytes releases a region previously returned by AllocBytes on the
	// same allocator. size and align must match the original request
	// exactly; passing different values is a contract violation, not a
	// recoverable error. Freeing a zero-byte region is a no-op.
	//
	// Bump strategies (FixedBuffer, Arena) accept FreeBytes but reclaim
	// nothing until Reset or Release; see each strategy's documentation.
	FreeBytes(p unsafe.Pointer, size, align uintptr)
}

// zerobase is the byte whose address is handed out for zero-size
// allocations. Every strategy returns the same sentinel, so the pointer is
// always valid and non-nil but covers no storage.
var zerobase byte

// zeroPtr returns the shared sentinel address for zero-size allocations.
func zeroPtr() unsafe.Pointer {
	return unsafe.Pointer(&zerobase)
}
