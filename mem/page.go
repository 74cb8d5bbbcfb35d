package mem

import (
	"math"
	"unsafe"

	"github.com/joshuapare/memkit/internal/vmem"
)

// PageAllocator obtains memory directly from the operating system's
// virtual-memory subsystem, always at page granularity. Requests are
// rounded up to a whole number of pages, so it is unsuitable as the primary
// allocator for small, frequent allocations; its role is as a backend for
// other strategies such as Arena.
//
// PageAllocator is stateless. Each call stands alone, and values can be
// created freely: PageAllocator{} is ready to use.
type PageAllocator struct{}

// PageSize returns the operating system's page size in bytes.
func PageSize() uintptr {
	return uintptr(vmem.PageSize())
}

// AllocBytes maps enough whole pages to cover size bytes. Mappings are
// page-aligned, so alignments up to the page size are always satisfied;
// anything larger fails with ErrBadAlignment. A denied mapping reports
// ErrOutOfMemory and is never retried.
func (PageAllocator) AllocBytes(size, align uintptr) (unsafe.Pointer, error) {
	if !isPowerOfTwo(align) || align > PageSize() {
		return nil, ErrBadAlignment
	}
	if size == 0 {
		return zeroPtr(), nil
	}
	n := alignUp(size, PageSize())
	if n < size || n > uintptr(math.MaxInt) {
		return nil, ErrOutOfMemory
	}
	buf, err := vmem.Reserve(int(n))
	if err != nil {
		return nil, ErrOutOfMemory
	}
	return unsafe.Pointer(unsafe.SliceData(buf)), nil
}

// FreeBytes returns the exact page range backing a prior AllocBytes call to
// the operating system. size and align must match the original request;
// releasing a region this allocator did not map is a contract violation and
// panics rather than corrupting state.
func (PageAllocator) FreeBytes(p unsafe.Pointer, size, align uintptr) {
	if size == 0 || p == nil {
		return
	}
	n := alignUp(size, PageSize())
	if err := vmem.Release(unsafe.Slice((*byte)(p), n)); err != nil {
		panic("mem: free of a region not owned by the page allocator: " + err.Error())
	}
}

// Compile-time interface check
var _ Allocator = PageAllocator{}
