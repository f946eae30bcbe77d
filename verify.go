package main

import (
	"fmt"
	"math"
	"time"
)

// The equivalence verifier: runs both variants of a kernel pair on
// identically specified inputs and compares the checksums under the
// kernel's declared tolerance. A divergence is a reported failure, never
// a crash, and never retried; the computations are deterministic, so a
// retry changes nothing.

// VerifyResult is the outcome of one kernel pair verification.
type VerifyResult struct {
	Kernel        string        `json:"kernel"`
	Baseline      float64       `json:"baseline_checksum"`
	Optimized     float64       `json:"optimized_checksum"`
	BaselineTime  time.Duration `json:"baseline_time_ns"`
	OptimizedTime time.Duration `json:"optimized_time_ns"`
	Err           error         `json:"-"`
}

// Pass reports whether the pair verified clean.
func (r VerifyResult) Pass() bool {
	return r.Err == nil
}

// withinTolerance compares two checksums. A zero tolerance demands exact
// equality (integer checksums); otherwise the divergence must stay within
// relTol of the larger magnitude.
func withinTolerance(a, b, relTol float64) bool {
	if relTol == 0 {
		return a == b
	}
	diff := math.Abs(a - b)
	if diff == 0 {
		return true
	}
	return diff <= relTol*math.Max(math.Abs(a), math.Abs(b))
}

// VerifyKernel runs the baseline and optimized variants and compares
// their checksums.
func VerifyKernel(k Kernel) VerifyResult {
	res := VerifyResult{Kernel: k.Spec.Name}

	start := time.Now()
	base, err := k.Baseline(k.Spec)
	res.BaselineTime = time.Since(start)
	if err != nil {
		res.Err = fmt.Errorf("%s baseline: %w", k.Spec.Name, err)
		return res
	}
	res.Baseline = float64(base)

	start = time.Now()
	opt, err := k.Optimized(k.Spec)
	res.OptimizedTime = time.Since(start)
	if err != nil {
		res.Err = fmt.Errorf("%s optimized: %w", k.Spec.Name, err)
		return res
	}
	res.Optimized = float64(opt)

	if !withinTolerance(res.Baseline, res.Optimized, k.Spec.RelTol) {
		res.Err = fmt.Errorf("%s: baseline %.10g vs optimized %.10g: %w",
			k.Spec.Name, res.Baseline, res.Optimized, ErrDivergence)
	}
	return res
}

// VerifyAll verifies every kernel in order and returns all results,
// including failures.
func VerifyAll(kernels []Kernel) []VerifyResult {
	results := make([]VerifyResult, 0, len(kernels))
	for _, k := range kernels {
		results = append(results, VerifyKernel(k))
	}
	return results
}
