package mem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// alignedBuf returns a size-byte view into a heap buffer whose first byte
// is aligned to align, so tests can assert exact offsets.
func alignedBuf(t testing.TB, size, align int) []byte {
	t.Helper()
	raw := make([]byte, size+align)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	off := int(alignUp(base, uintptr(align)) - base)
	return raw[off : off+size]
}

// TestFixedBuffer_SimpleAlloc tests basic bump allocation.
func TestFixedBuffer_SimpleAlloc(t *testing.T) {
	f := NewFixedBuffer(make([]byte, 256))

	p, err := f.AllocBytes(64, 8)
	require.NoError(t, err, "AllocBytes should succeed")
	require.NotNil(t, p, "pointer should be non-nil")
	assert.Zero(t, uintptr(p)%8, "pointer should be 8-byte aligned")
	assert.GreaterOrEqual(t, f.Used(), uintptr(64), "cursor should advance by at least the request")
}

// TestFixedBuffer_AlignmentOffsets walks the 1024-byte scenario: a 4-byte
// allocation lands at offset 0, a following 16-byte-aligned allocation
// rounds the cursor up to the next multiple of 16.
func TestFixedBuffer_AlignmentOffsets(t *testing.T) {
	buf := alignedBuf(t, 1024, 64)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	f := NewFixedBuffer(buf)

	p1, err := f.AllocBytes(4, 4)
	require.NoError(t, err)
	assert.Equal(t, base, uintptr(p1), "first allocation should land at offset 0")

	p2, err := f.AllocBytes(4, 16)
	require.NoError(t, err)
	assert.Equal(t, base+16, uintptr(p2), "cursor at 4 should round up to offset 16")
	assert.Zero(t, uintptr(p2)%16)
}

// TestFixedBuffer_Exhaustion fills the buffer and verifies the exact
// boundary: a request of Remaining()+1 fails, Remaining() still fits.
func TestFixedBuffer_Exhaustion(t *testing.T) {
	f := NewFixedBuffer(make([]byte, 1024))

	for f.Remaining() >= 100 {
		_, err := f.AllocBytes(100, 1)
		require.NoError(t, err)
	}

	rem := f.Remaining()
	_, err := f.AllocBytes(rem+1, 1)
	require.ErrorIs(t, err, ErrOutOfMemory, "request one past remaining capacity should fail")

	if rem > 0 {
		_, err = f.AllocBytes(rem, 1)
		require.NoError(t, err, "request of exactly remaining capacity should succeed")
	}
	assert.Zero(t, f.Remaining())

	_, err = f.AllocBytes(1, 1)
	require.ErrorIs(t, err, ErrOutOfMemory)
}

// TestFixedBuffer_ResetReuses tests that Reset makes the full region
// available again.
func TestFixedBuffer_ResetReuses(t *testing.T) {
	f := NewFixedBuffer(make([]byte, 128))

	_, err := f.AllocBytes(128, 1)
	require.NoError(t, err)
	_, err = f.AllocBytes(1, 1)
	require.ErrorIs(t, err, ErrOutOfMemory)

	f.Reset()
	assert.Zero(t, f.Used())

	p, err := f.AllocBytes(128, 1)
	require.NoError(t, err, "full-capacity allocation should succeed after Reset")
	require.NotNil(t, p)
}

// TestFixedBuffer_NoOverlap tests that consecutive allocations never alias
// before a reset.
func TestFixedBuffer_NoOverlap(t *testing.T) {
	f := NewFixedBuffer(make([]byte, 4096))

	type span struct{ lo, hi uintptr }
	var spans []span
	sizes := []uintptr{1, 7, 16, 3, 64, 24, 5}
	aligns := []uintptr{1, 8, 16, 2, 64, 4, 1}

	for i, size := range sizes {
		p, err := f.AllocBytes(size, aligns[i])
		require.NoError(t, err)
		spans = append(spans, span{uintptr(p), uintptr(p) + size})
	}

	for i := range spans {
		for j := i + 1; j < len(spans); j++ {
			disjoint := spans[i].hi <= spans[j].lo || spans[j].hi <= spans[i].lo
			assert.True(t, disjoint, "allocations %d and %d overlap", i, j)
		}
	}
}

// TestFixedBuffer_BadAlignment tests alignment validation.
func TestFixedBuffer_BadAlignment(t *testing.T) {
	f := NewFixedBuffer(make([]byte, 64))

	for _, align := range []uintptr{0, 3, 6, 12, 100} {
		_, err := f.AllocBytes(8, align)
		assert.ErrorIs(t, err, ErrBadAlignment, "align=%d should be rejected", align)
	}
}

// TestFixedBuffer_ZeroSize tests that zero-byte requests succeed with the
// non-nil sentinel and consume no capacity.
func TestFixedBuffer_ZeroSize(t *testing.T) {
	f := NewFixedBuffer(make([]byte, 16))

	p, err := f.AllocBytes(0, 8)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Zero(t, f.Used(), "zero-size allocation should not advance the cursor")

	f.FreeBytes(p, 0, 8)
}

// TestFixedBuffer_FreeIsNoOp tests that FreeBytes reclaims nothing.
func TestFixedBuffer_FreeIsNoOp(t *testing.T) {
	f := NewFixedBuffer(make([]byte, 64))

	p, err := f.AllocBytes(64, 1)
	require.NoError(t, err)

	f.FreeBytes(p, 64, 1)
	assert.Equal(t, uintptr(64), f.Used(), "free should not move the cursor")

	_, err = f.AllocBytes(1, 1)
	require.ErrorIs(t, err, ErrOutOfMemory, "space is only reclaimed by Reset")
}

// TestFixedBuffer_HonorsBufferBaseAlignment tests that large alignments are
// honored even when the borrowed buffer starts misaligned.
func TestFixedBuffer_HonorsBufferBaseAlignment(t *testing.T) {
	raw := alignedBuf(t, 300, 64)
	f := NewFixedBuffer(raw[1:]) // deliberately misaligned base

	p, err := f.AllocBytes(32, 64)
	require.NoError(t, err)
	assert.Zero(t, uintptr(p)%64, "alignment is against absolute addresses")
}
