package mem

import "unsafe"

// region records one allocation owned by an Arena: the exact pointer, size,
// and alignment needed to hand it back to the backing allocator.
type region struct {
	p     unsafe.Pointer
	size  uintptr
	align uintptr
}

// Arena wraps a backing Allocator, forwards every allocation request to it
// one-for-one, and releases all of them in a single bulk operation at
// teardown. Per-allocation bookkeeping is traded for O(1) amortized
// teardown, the dominant pattern for per-frame or per-level allocations.
//
// FreeBytes on an arena is a true no-op: no memory returns to the backing
// allocator until Release. Callers must not rely on per-call frees to
// relieve memory pressure.
//
// Every pointer the arena has granted stays valid until Release; after
// Release any further use of the arena panics.
type Arena struct {
	backing Allocator
	regions []region
	bytes   uintptr
}

// ArenaStats describes what an arena currently owns.
type ArenaStats struct {
	// Allocs is the number of live regions obtained from the backing
	// allocator. Zero-size requests are served by a sentinel and not
	// counted.
	Allocs int

	// Bytes is the total requested size across live regions, before any
	// page rounding the backing strategy applies.
	Bytes uintptr
}

// NewArena returns an arena that forwards to backing. The arena owns the
// lifetime relationship: it will release every region it obtained through
// backing when Release is called. The backing allocator itself is borrowed
// and stays usable after the arena is gone.
func NewArena(backing Allocator) *Arena {
	return &Arena{backing: backing}
}

// AllocBytes forwards the request to the backing allocator and records the
// resulting region for bulk release. Failures from the backing allocator
// pass through unchanged and leave the arena untouched.
func (a *Arena) AllocBytes(size, align uintptr) (unsafe.Pointer, error) {
	a.panicIfReleased()
	p, err := a.backing.AllocBytes(size, align)
	if err != nil {
		return nil, err
	}
	if size > 0 {
		a.regions = append(a.regions, region{p: p, size: size, align: align})
		a.bytes += size
	}
	return p, nil
}

// FreeBytes is accepted but reclaims nothing; all reclamation is deferred
// to Release.
func (a *Arena) FreeBytes(p unsafe.Pointer, size, align uintptr) {
	a.panicIfReleased()
}

// Release hands every recorded region back to the backing allocator, most
// recent first, then invalidates the arena. Every pointer the arena issued
// becomes invalid. Calling Release twice, or using the arena afterwards,
// panics.
func (a *Arena) Release() {
	a.panicIfReleased()
	for i := len(a.regions) - 1; i >= 0; i-- {
		r := a.regions[i]
		a.backing.FreeBytes(r.p, r.size, r.align)
	}
	a.backing = nil
	a.regions = nil
	a.bytes = 0
}

// Stats reports the arena's live ownership: how many regions it holds and
// their total requested bytes.
func (a *Arena) Stats() ArenaStats {
	a.panicIfReleased()
	return ArenaStats{Allocs: len(a.regions), Bytes: a.bytes}
}

func (a *Arena) panicIfReleased() {
	if a.backing == nil {
		panic("mem: arena used after Release")
	}
}

// Compile-time interface check
var _ Allocator = (*Arena)(nil)
