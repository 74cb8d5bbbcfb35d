package mem

// isPowerOfTwo reports whether x is a nonzero power of two.
func isPowerOfTwo(x uintptr) bool {
	return x != 0 && x&(x-1) == 0
}

// alignUp rounds n up to the next multiple of align. align must be a power
// of two. The result wraps on overflow; callers that can receive
// near-maximal n must check the result against n.
func alignUp(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}

// mulOverflows reports whether a*b overflows uintptr.
func mulOverflows(a, b uintptr) bool {
	return a != 0 && b > ^uintptr(0)/a
}
