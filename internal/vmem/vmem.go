// Package vmem provides platform-specific helpers for reserving and
// releasing anonymous virtual memory at page granularity.
package vmem

import (
	"fmt"
	"os"
)

// PageSize returns the operating system's page size in bytes.
func PageSize() int {
	return os.Getpagesize()
}

// Reserve maps n bytes of zeroed, read-write anonymous memory. n must be a
// positive multiple of the page size; callers are expected to round up
// before reserving.
func Reserve(n int) ([]byte, error) {
	if n <= 0 || n%PageSize() != 0 {
		return nil, fmt.Errorf("vmem: reserve size %d is not a positive page multiple", n)
	}
	return reserve(n)
}

// Release unmaps a region previously returned by Reserve. The slice must
// cover the entire reservation.
func Release(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return release(b)
}
