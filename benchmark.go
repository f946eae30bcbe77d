package main

// ===========================================================================
// WHAT'S GOING ON HERE
// ===========================================================================
//
// The benchmark harness around the kernel pairs. It measures baseline and
// optimized wall time per kernel, derives the speedup, and emits
// structured results for comparison across machines.
//
// INTENTION:
// Make the optimization continuum visible. The six pairs cover very
// different speedup mechanisms: a complexity-class change (sort,
// fibonacci, prime-sieve), a data-layout and vectorization change
// (matrix-multiply), a two-phase algorithm family (string-search), and
// plain parallelism (array-sum). The same table shows how differently
// those mechanisms pay off on a given machine.
//
// Timing and formatting live here, outside the kernels: a kernel is a
// pure spec-to-checksum function and stays reusable by any harness.
//
// ===========================================================================

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

// BenchmarkResult is one kernel pair's measurement.
type BenchmarkResult struct {
	Kernel            string        `json:"kernel"`
	Iterations        int           `json:"iterations"`
	BaselineAvg       time.Duration `json:"baseline_avg_ns"`
	OptimizedAvg      time.Duration `json:"optimized_avg_ns"`
	BaselineChecksum  float64       `json:"baseline_checksum"`
	OptimizedChecksum float64       `json:"optimized_checksum"`
	Speedup           float64       `json:"speedup"`
}

// BenchmarkSuite is a full run on one machine.
type BenchmarkSuite struct {
	Timestamp time.Time         `json:"timestamp"`
	Hardware  HardwareInfo      `json:"hardware"`
	Results   []BenchmarkResult `json:"results"`
}

// timeVariant runs fn iterations times and returns the average duration
// with the last checksum.
func timeVariant(fn KernelFunc, spec KernelSpec, iterations int) (time.Duration, Checksum, error) {
	var last Checksum
	start := time.Now()
	for i := 0; i < iterations; i++ {
		cs, err := fn(spec)
		if err != nil {
			return 0, 0, err
		}
		last = cs
	}
	return time.Since(start) / time.Duration(iterations), last, nil
}

// RunBenchmarkSuite times every kernel pair. Checksums from both variants
// ride along in the results so a divergence is visible in saved output
// even when the run is not a verification run.
func RunBenchmarkSuite(kernels []Kernel, iterations int, logger *zap.Logger) (*BenchmarkSuite, error) {
	suite := &BenchmarkSuite{
		Timestamp: time.Now(),
		Hardware:  DetectHardware(),
		Results:   make([]BenchmarkResult, 0, len(kernels)),
	}

	for _, k := range kernels {
		logger.Info("benchmarking kernel",
			zap.String("kernel", k.Spec.Name),
			zap.Int("iterations", iterations))

		baseAvg, baseSum, err := timeVariant(k.Baseline, k.Spec, iterations)
		if err != nil {
			return nil, fmt.Errorf("benchmark %s baseline: %w", k.Spec.Name, err)
		}
		optAvg, optSum, err := timeVariant(k.Optimized, k.Spec, iterations)
		if err != nil {
			return nil, fmt.Errorf("benchmark %s optimized: %w", k.Spec.Name, err)
		}

		speedup := 0.0
		if optAvg > 0 {
			speedup = float64(baseAvg) / float64(optAvg)
		}

		logger.Debug("kernel timed",
			zap.String("kernel", k.Spec.Name),
			zap.Duration("baseline", baseAvg),
			zap.Duration("optimized", optAvg),
			zap.Float64("speedup", speedup))

		suite.Results = append(suite.Results, BenchmarkResult{
			Kernel:            k.Spec.Name,
			Iterations:        iterations,
			BaselineAvg:       baseAvg,
			OptimizedAvg:      optAvg,
			BaselineChecksum:  float64(baseSum),
			OptimizedChecksum: float64(optSum),
			Speedup:           speedup,
		})
	}

	return suite, nil
}

// PrintSummary writes a human-readable results table to stdout.
func (s *BenchmarkSuite) PrintSummary() {
	fmt.Println()
	fmt.Println("=== Kernel Benchmark Summary ===")
	fmt.Println()
	fmt.Printf("Hardware: %s/%s, %d cores\n", s.Hardware.OS, s.Hardware.Arch, s.Hardware.NumCPU)
	fmt.Printf("Timestamp: %s\n", s.Timestamp.Format(time.RFC3339))
	fmt.Println()
	fmt.Printf("  %-16s %14s %14s %9s\n", "Kernel", "Baseline", "Optimized", "Speedup")
	fmt.Println("  " + "---------------------------------------------------------")
	for _, r := range s.Results {
		fmt.Printf("  %-16s %14v %14v %8.2fx\n",
			r.Kernel, r.BaselineAvg, r.OptimizedAvg, r.Speedup)
	}
	fmt.Println()
	fmt.Print(renderSpeedupChart(s.Results))
	fmt.Println()
}

// SaveJSON writes the suite to a JSON file for cross-machine comparison.
func (s *BenchmarkSuite) SaveJSON(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal benchmark suite: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save benchmark suite: %w", err)
	}
	return nil
}
