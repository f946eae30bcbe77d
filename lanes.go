package main

// Fixed-width vector lane operations. These express the vectorized inner
// loops as a small op set (multiply-accumulate across lanes, lane-wise
// reduction with a horizontal sum) so the kernel logic reads the same
// whether the lanes map to real SIMD registers or, as here, to unrolled
// scalar code the compiler can keep in independent registers.
//
// Correctness never depends on the lane width: every op finishes with an
// exact scalar remainder loop, so any length is handled, including
// lengths not divisible by the width.

// laneWidth matches 256-bit double-precision lanes (4 x float64).
const laneWidth = 4

// axpyLanes computes dst[i] += a * x[i] for all i. The unrolled body
// gives the CPU four independent multiply-adds per iteration; the tail
// loop covers the final len(dst) mod laneWidth elements exactly.
func axpyLanes(dst []float64, a float64, x []float64) {
	n := len(dst)
	i := 0
	for ; i+laneWidth <= n; i += laneWidth {
		dst[i] += a * x[i]
		dst[i+1] += a * x[i+1]
		dst[i+2] += a * x[i+2]
		dst[i+3] += a * x[i+3]
	}
	for ; i < n; i++ {
		dst[i] += a * x[i]
	}
}

// sumLanes reduces x with four independent accumulators, then a
// horizontal sum, then the remainder. The remainder is folded into the
// final sum, never recomputed into a value that later gets overwritten.
func sumLanes(x []float64) float64 {
	var s0, s1, s2, s3 float64
	i := 0
	for ; i+laneWidth <= len(x); i += laneWidth {
		s0 += x[i]
		s1 += x[i+1]
		s2 += x[i+2]
		s3 += x[i+3]
	}
	sum := s0 + s1 + s2 + s3
	for ; i < len(x); i++ {
		sum += x[i]
	}
	return sum
}
