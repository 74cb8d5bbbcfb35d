//go:build !unix && !windows

package vmem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReservePageAligned tests that heap-backed reservations still start on
// a page boundary, like real mappings do.
func TestReservePageAligned(t *testing.T) {
	for i := 0; i < 16; i++ {
		b, err := Reserve(PageSize())
		require.NoError(t, err)
		require.Len(t, b, PageSize())
		assert.Zero(t, uintptr(unsafe.Pointer(&b[0]))%uintptr(PageSize()),
			"reservation %d is not page-aligned", i)
		require.NoError(t, Release(b))
	}
}

// TestReleaseUnknownRegion tests that releasing a region not obtained from
// Reserve is reported.
func TestReleaseUnknownRegion(t *testing.T) {
	stray := make([]byte, PageSize())
	assert.Error(t, Release(stray))
}
