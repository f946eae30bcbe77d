package main

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ===========================================================================
// WHAT'S GOING ON HERE
// ===========================================================================
//
// Streaming reduction: sum N floating values. The input is the harmonic
// series term 1/(i+1), which makes the exact sum easy to reason about and
// keeps the magnitudes spread across several orders, so reassociation
// actually moves the rounding around.
//
// Baseline: one strictly sequential left-to-right accumulator.
//
// Optimized: the index range is statically partitioned into P contiguous
// blocks. Each worker fills and sums its own block with no shared mutable
// state, then the P partial sums are combined in worker-index order after
// the join. The combination order is fixed so repeated runs with the same
// worker count are bit-identical, which the verifier relies on.
//
// The two results differ only by floating round-off from the changed
// association, bounded by a few log(N) machine epsilons relative.
//
// ===========================================================================

// harmonicTerm is the generated input value at index i.
func harmonicTerm(i int) float64 {
	return 1.0 / float64(i+1)
}

// arraySumBaseline sums spec.Size harmonic terms left to right.
func arraySumBaseline(spec KernelSpec) (Checksum, error) {
	data, err := allocFloat64(spec.Size)
	if err != nil {
		return 0, err
	}
	for i := range data {
		data[i] = harmonicTerm(i)
	}

	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return Checksum(sum), nil
}

// arraySumOptimized computes the same sum with P parallel workers over
// disjoint contiguous blocks. N=0 returns 0.0 without spawning a worker.
func arraySumOptimized(spec KernelSpec) (Checksum, error) {
	n := spec.Size
	if n == 0 {
		return 0, nil
	}

	data, err := allocFloat64(n)
	if err != nil {
		return 0, err
	}

	workers := spec.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	partials := make([]float64, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, n)
		if start >= end {
			continue
		}
		w := w
		g.Go(func() error {
			// Fill and reduce in one pass over the worker's block.
			local := 0.0
			for i := start; i < end; i++ {
				data[i] = harmonicTerm(i)
				local += data[i]
			}
			partials[w] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	// Combine in worker-index order: deterministic across runs.
	sum := 0.0
	for _, p := range partials {
		sum += p
	}
	return Checksum(sum), nil
}
