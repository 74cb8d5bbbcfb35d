package mem

import (
	"sync"
	"unsafe"
)

// lockedAllocator serializes access to an inner Allocator with a mutex.
type lockedAllocator struct {
	mu    sync.Mutex
	inner Allocator
}

// Locked wraps a so that its operations are safe to call from multiple
// goroutines. No base strategy provides its own synchronization; shared use
// requires this wrapper or a dedicated instance per goroutine.
//
// The lock covers the Allocator contract only. Strategy-specific calls such
// as Reset or Release must still be coordinated by the caller, since they
// go through the unwrapped value.
func Locked(a Allocator) Allocator {
	return &lockedAllocator{inner: a}
}

func (l *lockedAllocator) AllocBytes(size, align uintptr) (unsafe.Pointer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.AllocBytes(size, align)
}

func (l *lockedAllocator) FreeBytes(p unsafe.Pointer, size, align uintptr) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inner.FreeBytes(p, size, align)
}

// Compile-time interface check
var _ Allocator = (*lockedAllocator)(nil)
