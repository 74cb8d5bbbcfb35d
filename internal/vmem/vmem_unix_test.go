//go:build unix

package vmem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserveRelease(t *testing.T) {
	n := PageSize()
	b, err := Reserve(n)
	require.NoError(t, err)
	require.Len(t, b, n)

	// Fresh anonymous pages are zeroed and writable.
	assert.Zero(t, b[0])
	assert.Zero(t, b[n-1])
	b[0] = 0xFF
	b[n-1] = 0xFF

	require.NoError(t, Release(b))
}

func TestReserveRejectsBadSizes(t *testing.T) {
	for _, n := range []int{0, -1, 1, PageSize() + 1} {
		_, err := Reserve(n)
		assert.Error(t, err, "Reserve(%d) should be rejected", n)
	}
}

func TestReleaseEmptyIsNoOp(t *testing.T) {
	assert.NoError(t, Release(nil))
}
