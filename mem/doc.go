// Package mem provides explicit memory management strategies behind a
// single allocator interface, for engine-style workloads with deterministic
// lifetimes.
//
// # Overview
//
// Engine code holds an Allocator value and requests memory through it
// without knowing the concrete strategy. Three strategies are provided:
//
//   - FixedBuffer: bump allocation from a caller-supplied region, bulk
//     reuse via Reset
//   - PageAllocator: whole pages straight from the operating system,
//     intended as a backend for other strategies
//   - Arena: wraps any other Allocator and releases everything it granted
//     in one bulk Release
//
// # Allocator Interface
//
// The raw contract is two operations:
//
//   - AllocBytes(size, align): pointer to size bytes aligned to align
//   - FreeBytes(p, size, align): release with the exact original size and
//     alignment
//
// Typed helpers layer the common shapes on top: New and Destroy for a
// single value, MakeSlice and FreeSlice for a contiguous run of elements.
// Each comes in a default-alignment form and an explicit *Aligned form.
//
// # Usage Example
//
//	frame := mem.NewArena(mem.PageAllocator{})
//	defer frame.Release()
//
//	v, err := mem.New[Particle](frame)
//	if err != nil {
//	    return err
//	}
//	verts, err := mem.MakeSlice[Vertex](frame, 1024)
//	if err != nil {
//	    return err
//	}
//	for i := range verts.Elems() {
//	    // fill vertex i
//	}
//
// # Results and Errors
//
// Every allocation returns a value and an error, never a nil pointer on
// success: failure is ErrOutOfMemory, ErrBadAlignment, or ErrSizeOverflow,
// and a pointer is only produced when the error is nil. Zero-size requests
// succeed with a shared non-nil sentinel address.
//
// Contract violations are different: freeing with mismatched size or
// alignment, using a FixedBuffer pointer after Reset, or touching an Arena
// after Release are caller bugs. They are not reported through the error
// channel; where detectable they panic.
//
// # Lifetimes
//
// There is no garbage collection, reference counting, or automatic
// reclamation in this layer. The caller owns every returned pointer and
// slice until it is freed explicitly, or until the strategy's bulk
// operation (Reset, Release) invalidates it.
//
// # Thread Safety
//
// Allocator instances are not safe for concurrent use. Share one across
// goroutines only through Locked, or give each goroutine its own instance.
//
// # Related Packages
//
//   - github.com/joshuapare/memkit/internal/vmem: OS page reservation
package mem
