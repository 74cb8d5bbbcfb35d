package mem

import "unsafe"

// FixedBuffer is a bump allocator over a caller-supplied byte region. It
// never touches the operating system: allocation advances a cursor through
// the buffer and fails with ErrOutOfMemory when the region is exhausted.
//
// FreeBytes reclaims nothing; the only way to reuse the region is Reset,
// which discards every prior allocation at once. This is slab bump
// allocation, not a general-purpose free.
//
// Alignment is computed against absolute addresses, so requested alignments
// hold regardless of how the caller's buffer happens to be aligned.
type FixedBuffer struct {
	buf []byte
	off uintptr
}

// NewFixedBuffer binds buf as the backing region and returns a ready
// allocator with the cursor at zero. The buffer is borrowed, not copied;
// the caller must keep it alive for the allocator's lifetime.
func NewFixedBuffer(buf []byte) *FixedBuffer {
	return &FixedBuffer{buf: buf}
}

// AllocBytes bumps the cursor to the next align-aligned address and claims
// size bytes. Fails with ErrOutOfMemory when the aligned request does not
// fit in the remaining region; the allocator never grows and never falls
// back to another source.
func (f *FixedBuffer) AllocBytes(size, align uintptr) (unsafe.Pointer, error) {
	if !isPowerOfTwo(align) {
		return nil, ErrBadAlignment
	}
	if size == 0 {
		return zeroPtr(), nil
	}
	base := unsafe.Pointer(unsafe.SliceData(f.buf))
	cur := uintptr(base) + f.off
	pad := alignUp(cur, align) - cur
	avail := uintptr(len(f.buf)) - f.off
	if size > avail || pad > avail-size {
		return nil, ErrOutOfMemory
	}
	p := unsafe.Add(base, f.off+pad)
	f.off += pad + size
	return p, nil
}

// FreeBytes is a no-op. Memory is only reclaimed in bulk by Reset.
func (f *FixedBuffer) FreeBytes(p unsafe.Pointer, size, align uintptr) {}

// Reset moves the cursor back to the start of the region in O(1). Every
// pointer issued since the last reset becomes invalid; continuing to use
// one is a caller bug.
func (f *FixedBuffer) Reset() {
	f.off = 0
}

// Cap returns the capacity of the backing region in bytes.
func (f *FixedBuffer) Cap() uintptr { return uintptr(len(f.buf)) }

// Used returns the number of bytes consumed since the last reset,
// including alignment padding.
func (f *FixedBuffer) Used() uintptr { return f.off }

// Remaining returns the number of bytes left before exhaustion, ignoring
// any padding a future aligned request would add. Only for align-1 requests
// is Remaining() the exact largest size that still succeeds (and
// Remaining()+1 the exact first size that fails); aligned requests may fail
// earlier because of padding.
func (f *FixedBuffer) Remaining() uintptr { return uintptr(len(f.buf)) - f.off }

// Compile-time interface check
var _ Allocator = (*FixedBuffer)(nil)
