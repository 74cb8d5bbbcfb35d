package mem

import "unsafe"

// Slice describes a contiguous run of n elements of type T obtained from an
// Allocator. It is a non-owning descriptor: the allocator (or the caller,
// via FreeSlice) controls the storage lifetime.
//
// A Slice returned by a successful MakeSlice call always carries a non-nil
// pointer, even when its length is zero. The zero Slice value (nil pointer)
// only appears alongside a non-nil error and must not be used.
type Slice[T any] struct {
	ptr *T
	n   int
}

// Ptr returns the address of the first element. Non-nil for every Slice
// produced by a successful allocation; for zero-length slices it is the
// shared sentinel address and must not be dereferenced.
func (s Slice[T]) Ptr() *T { return s.ptr }

// Len returns the element count. This is a count, not a byte size; the byte
// size is Len() × unsafe.Sizeof(T).
func (s Slice[T]) Len() int { return s.n }

// Elems returns a []T view over the allocation. The view is valid only
// while the underlying allocation is live; it is empty for zero-length
// slices.
func (s Slice[T]) Elems() []T {
	return unsafe.Slice(s.ptr, s.n)
}
