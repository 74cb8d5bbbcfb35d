package mem

import "unsafe"

// New allocates space for one value of type T from a, aligned to T's
// natural alignment. The returned memory is not zeroed unless the strategy
// zeroes it (fresh OS pages are zero; FixedBuffer and Arena memory may
// carry stale bytes).
func New[T any](a Allocator) (*T, error) {
	var zero T
	return NewAligned[T](a, unsafe.Alignof(zero))
}

// NewAligned allocates space for one value of type T aligned to align,
// which must be a power of two.
func NewAligned[T any](a Allocator, align uintptr) (*T, error) {
	var zero T
	p, err := a.AllocBytes(unsafe.Sizeof(zero), align)
	if err != nil {
		return nil, err
	}
	return (*T)(p), nil
}

// Destroy releases a single value previously obtained with New. The pointer
// must have come from the same allocator with T's natural alignment.
func Destroy[T any](a Allocator, p *T) {
	var zero T
	DestroyAligned(a, p, unsafe.Alignof(zero))
}

// DestroyAligned releases a single value previously obtained with
// NewAligned using the same align value.
func DestroyAligned[T any](a Allocator, p *T, align uintptr) {
	var zero T
	a.FreeBytes(unsafe.Pointer(p), unsafe.Sizeof(zero), align)
}

// MakeSlice allocates contiguous space for n elements of type T, aligned to
// T's natural alignment. n == 0 is legal and returns a valid zero-length
// Slice with a non-nil pointer.
func MakeSlice[T any](a Allocator, n int) (Slice[T], error) {
	var zero T
	return MakeSliceAligned[T](a, n, unsafe.Alignof(zero))
}

// MakeSliceAligned allocates contiguous space for n elements of type T
// aligned to align. A negative n or an n whose total byte size overflows is
// rejected with ErrSizeOverflow, never truncated.
func MakeSliceAligned[T any](a Allocator, n int, align uintptr) (Slice[T], error) {
	var zero T
	if n < 0 {
		return Slice[T]{}, ErrSizeOverflow
	}
	size := unsafe.Sizeof(zero)
	if mulOverflows(size, uintptr(n)) {
		return Slice[T]{}, ErrSizeOverflow
	}
	p, err := a.AllocBytes(size*uintptr(n), align)
	if err != nil {
		return Slice[T]{}, err
	}
	return Slice[T]{ptr: (*T)(p), n: n}, nil
}

// FreeSlice releases a slice previously obtained with MakeSlice.
func FreeSlice[T any](a Allocator, s Slice[T]) {
	var zero T
	FreeSliceAligned(a, s, unsafe.Alignof(zero))
}

// FreeSliceAligned releases a slice previously obtained with
// MakeSliceAligned using the same align value.
func FreeSliceAligned[T any](a Allocator, s Slice[T], align uintptr) {
	var zero T
	a.FreeBytes(unsafe.Pointer(s.ptr), unsafe.Sizeof(zero)*uintptr(s.n), align)
}
