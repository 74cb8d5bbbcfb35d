//go:build !unix && !windows

package vmem

import (
	"fmt"
	"sync"
	"unsafe"
)

// Without mmap or VirtualAlloc we fall back to the Go heap. The heap only
// guarantees object alignment, so each reservation over-allocates by a page
// and hands out the page-aligned sub-slice, keeping the contract that
// reservations start on a page boundary. Reservations are pinned in a
// registry so the garbage collector keeps them alive while callers hold
// only raw pointers into them; the registry is keyed by the aligned address
// and holds the raw allocation.
var (
	mu     sync.Mutex
	pinned = make(map[uintptr][]byte)
)

func reserve(n int) ([]byte, error) {
	ps := uintptr(PageSize())
	raw := make([]byte, n+int(ps)-1)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	off := int((base+ps-1)&^(ps-1) - base)
	b := raw[off : off+n : off+n]

	mu.Lock()
	pinned[uintptr(unsafe.Pointer(&b[0]))] = raw
	mu.Unlock()
	return b, nil
}

func release(b []byte) error {
	key := uintptr(unsafe.Pointer(&b[0]))
	mu.Lock()
	defer mu.Unlock()
	if _, ok := pinned[key]; !ok {
		return fmt.Errorf("vmem: release of unknown region at %#x", key)
	}
	delete(pinned, key)
	return nil
}
