package main

import "fmt"

// Memoized recursion workload: sum fib(i) for i below the spec bound.
// The baseline recomputes subtrees exponentially; the optimized variant
// rolls two variables forward in O(n) time and O(1) space. Integer
// results must match exactly.

// maxFibArg is the largest n for which fib(n) fits in a signed 64-bit
// integer. fib(93) = 12200160415121876738 overflows, so the iterative
// path rejects anything past fib(92) instead of silently wrapping.
const maxFibArg = 92

// fibNaive is the exponential-time double recursion.
func fibNaive(n int) int64 {
	if n <= 1 {
		return int64(n)
	}
	return fibNaive(n-1) + fibNaive(n-2)
}

// fibIter computes fib(n) iteratively.
func fibIter(n int) (int64, error) {
	if n < 0 || n > maxFibArg {
		return 0, fmt.Errorf("%w: fibonacci(%d) outside [0,%d]", ErrDomain, n, maxFibArg)
	}
	if n <= 1 {
		return int64(n), nil
	}
	a, b := int64(0), int64(1)
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b, nil
}

func fibonacciBaseline(spec KernelSpec) (Checksum, error) {
	var sum int64
	for i := 0; i < spec.Size; i++ {
		sum += fibNaive(i)
	}
	return Checksum(sum), nil
}

func fibonacciOptimized(spec KernelSpec) (Checksum, error) {
	var sum int64
	for i := 0; i < spec.Size; i++ {
		f, err := fibIter(i)
		if err != nil {
			return 0, err
		}
		sum += f
	}
	return Checksum(sum), nil
}
