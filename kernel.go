package main

// ===========================================================================
// WHAT'S GOING ON HERE
// ===========================================================================
//
// This file defines the kernel correctness-equivalence contract that the
// whole corpus hangs off: six fixed workloads, each with a baseline and an
// optimized implementation that may diverge arbitrarily in algorithm and
// instruction-level strategy but must collapse to the same checksum.
//
// INTENTION:
// Keep the contract in one place. A kernel is a pure function from an
// immutable KernelSpec to a single scalar Checksum. The spec carries the
// fixed workload shape (size, seed, value domain, pattern) so no kernel
// bakes compile-time constants into its logic, and the verifier can shrink
// shapes for tests without touching kernel code.
//
// Integer-result kernels (sort, fibonacci, prime-sieve, string-search)
// must match exactly. Floating-result kernels (array-sum, matrix-multiply)
// match within a relative tolerance: parallel and vectorized variants
// reassociate their sums, which changes rounding, not value.
//
// ===========================================================================

// Checksum is the scalar reduction of a kernel's output used for
// equivalence verification. Integer checksums are stored exactly: every
// value produced by the fixed workloads is well below 2^53.
type Checksum float64

// KernelSpec describes one fixed workload. Immutable, defined once per
// kernel; both variants of a pair receive the same spec.
type KernelSpec struct {
	// Name identifies the kernel pair.
	Name string

	// Size is the kernel's primary shape parameter: element count for
	// array-sum and sort, matrix dimension for matrix-multiply, the
	// exclusive upper bound for fibonacci and prime-sieve, text length
	// for string-search.
	Size int

	// Seed feeds the deterministic input generator for kernels that
	// consume pseudo-random data (sort, string-search).
	Seed uint32

	// Domain is the exclusive upper value bound the sort optimization
	// assumes. Zero for kernels without a bounded-domain contract.
	Domain int

	// Pattern is the string-search needle.
	Pattern string

	// Workers caps the reduction kernel's parallel worker count.
	// Zero means one worker per CPU.
	Workers int

	// RelTol is the relative checksum tolerance. Zero means the
	// checksums must compare exactly.
	RelTol float64
}

// KernelFunc runs one variant of a kernel over the spec's workload and
// collapses the output to a checksum. Each invocation generates and
// exclusively owns its input buffers, so baseline and optimized runs can
// never contaminate each other through shared state.
type KernelFunc func(spec KernelSpec) (Checksum, error)

// Kernel pairs a baseline with an optimized implementation under a shared
// equivalence contract.
type Kernel struct {
	Spec      KernelSpec
	Baseline  KernelFunc
	Optimized KernelFunc
}

// Registry returns the six kernel pairs with their fixed workload shapes,
// in canonical order.
func Registry() []Kernel {
	return []Kernel{
		{
			Spec:      KernelSpec{Name: "array-sum", Size: 100_000_000, RelTol: 1e-9},
			Baseline:  arraySumBaseline,
			Optimized: arraySumOptimized,
		},
		{
			Spec:      KernelSpec{Name: "sort", Size: 10_000, Seed: 12345, Domain: 32768},
			Baseline:  sortBaseline,
			Optimized: sortOptimized,
		},
		{
			Spec:      KernelSpec{Name: "fibonacci", Size: 40},
			Baseline:  fibonacciBaseline,
			Optimized: fibonacciOptimized,
		},
		{
			Spec:      KernelSpec{Name: "matrix-multiply", Size: 256, RelTol: 1e-9},
			Baseline:  matMulBaseline,
			Optimized: matMulOptimized,
		},
		{
			Spec:      KernelSpec{Name: "prime-sieve", Size: 100_000},
			Baseline:  primeBaseline,
			Optimized: primeOptimized,
		},
		{
			Spec:      KernelSpec{Name: "string-search", Size: 1_000_000, Seed: 42, Pattern: "ABCDABD"},
			Baseline:  searchBaseline,
			Optimized: searchOptimized,
		},
	}
}

// KernelByName looks up a registry kernel. Returns false if no kernel
// carries the name.
func KernelByName(name string) (Kernel, bool) {
	for _, k := range Registry() {
		if k.Spec.Name == name {
			return k, true
		}
	}
	return Kernel{}, false
}
