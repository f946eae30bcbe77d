package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunBenchmarkSuite(t *testing.T) {
	kernels := shrunkRegistry(t)
	suite, err := RunBenchmarkSuite(kernels, 1, zap.NewNop())
	require.NoError(t, err)

	require.Len(t, suite.Results, len(kernels))
	assert.False(t, suite.Timestamp.IsZero())
	assert.Positive(t, suite.Hardware.NumCPU)

	for _, r := range suite.Results {
		assert.Positive(t, r.BaselineAvg, "%s baseline not timed", r.Kernel)
		assert.Positive(t, r.OptimizedAvg, "%s optimized not timed", r.Kernel)
		assert.Equal(t, 1, r.Iterations)
	}
}

func TestBenchmarkSuiteSaveJSON(t *testing.T) {
	kernels, err := SuiteConfig{Kernels: []string{"fibonacci"}}.SelectKernels()
	require.NoError(t, err)
	kernels[0].Spec.Size = 20

	suite, err := RunBenchmarkSuite(kernels, 1, zap.NewNop())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "suite.json")
	require.NoError(t, suite.SaveJSON(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded BenchmarkSuite
	require.NoError(t, json.Unmarshal(data, &loaded))
	require.Len(t, loaded.Results, 1)
	assert.Equal(t, "fibonacci", loaded.Results[0].Kernel)
	assert.Equal(t, loaded.Results[0].BaselineChecksum, loaded.Results[0].OptimizedChecksum)
}

func TestBenchmarkPropagatesKernelErrors(t *testing.T) {
	k, ok := KernelByName("sort")
	require.True(t, ok)
	k.Spec.Size = 100
	k.Spec.Domain = 8

	_, err := RunBenchmarkSuite([]Kernel{k}, 1, zap.NewNop())
	require.ErrorIs(t, err, ErrDomain)
}

func TestRenderSpeedupChart(t *testing.T) {
	results := []BenchmarkResult{
		{Kernel: "sort", Speedup: 40},
		{Kernel: "fibonacci", Speedup: 10},
	}
	chart := renderSpeedupChart(results)

	assert.Contains(t, chart, "sort")
	assert.Contains(t, chart, "fibonacci")
	// The largest speedup owns the longest bar.
	lines := strings.Split(strings.TrimRight(chart, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Greater(t, strings.Count(lines[1], "#"), strings.Count(lines[2], "#"))

	assert.Empty(t, renderSpeedupChart(nil))
}

func BenchmarkKernelVariants(b *testing.B) {
	for _, k := range shrunkRegistry(b) {
		k := k
		b.Run(fmt.Sprintf("%s/baseline", k.Spec.Name), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := k.Baseline(k.Spec); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(fmt.Sprintf("%s/optimized", k.Spec.Name), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := k.Optimized(k.Spec); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
