package main

import "fmt"

// maxAllocElems bounds any single kernel buffer request. The fixed
// workloads top out at 100M float64 elements; anything past this limit is
// a bug or an overflowed size computation, and is refused before the
// runtime attempts it.
const maxAllocElems = 1 << 31

// allocFloat64 obtains a zeroed float64 buffer or reports ErrAllocation.
// Negative and oversized requests are refused up front so no kernel ever
// proceeds with an invalid buffer.
func allocFloat64(n int) ([]float64, error) {
	if n < 0 || n > maxAllocElems {
		return nil, fmt.Errorf("%w: %d float64 elements", ErrAllocation, n)
	}
	return make([]float64, n), nil
}

// allocInt32 obtains a zeroed int32 buffer or reports ErrAllocation.
func allocInt32(n int) ([]int32, error) {
	if n < 0 || n > maxAllocElems {
		return nil, fmt.Errorf("%w: %d int32 elements", ErrAllocation, n)
	}
	return make([]int32, n), nil
}

// allocBytes obtains a zeroed byte buffer or reports ErrAllocation.
func allocBytes(n int) ([]byte, error) {
	if n < 0 || n > maxAllocElems {
		return nil, fmt.Errorf("%w: %d bytes", ErrAllocation, n)
	}
	return make([]byte, n), nil
}
