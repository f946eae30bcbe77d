package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSuiteConfig(t *testing.T) {
	path := writeConfig(t, `
iterations: 5
kernels:
  - sort
  - prime-sieve
workers: 4
output_json: out.json
`)

	cfg, err := LoadSuiteConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Iterations)
	assert.Equal(t, []string{"sort", "prime-sieve"}, cfg.Kernels)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "out.json", cfg.OutputJSON)
}

func TestLoadSuiteConfigDefaults(t *testing.T) {
	path := writeConfig(t, `kernels: [fibonacci]`)

	cfg, err := LoadSuiteConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultSuiteConfig().Iterations, cfg.Iterations)
}

func TestLoadSuiteConfigRejectsBadIterations(t *testing.T) {
	path := writeConfig(t, `iterations: -2`)
	_, err := LoadSuiteConfig(path)
	require.Error(t, err)
}

func TestLoadSuiteConfigMissingFile(t *testing.T) {
	_, err := LoadSuiteConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestSelectKernels(t *testing.T) {
	t.Run("empty filter selects all", func(t *testing.T) {
		kernels, err := SuiteConfig{}.SelectKernels()
		require.NoError(t, err)
		assert.Len(t, kernels, 6)
	})

	t.Run("filter by name", func(t *testing.T) {
		kernels, err := SuiteConfig{Kernels: []string{"sort", "fibonacci"}}.SelectKernels()
		require.NoError(t, err)
		require.Len(t, kernels, 2)
		assert.Equal(t, "sort", kernels[0].Spec.Name)
		assert.Equal(t, "fibonacci", kernels[1].Spec.Name)
	})

	t.Run("unknown kernel", func(t *testing.T) {
		_, err := SuiteConfig{Kernels: []string{"quicksort"}}.SelectKernels()
		require.Error(t, err)
	})

	t.Run("worker cap reaches the reduction kernel only", func(t *testing.T) {
		kernels, err := SuiteConfig{Workers: 3}.SelectKernels()
		require.NoError(t, err)
		for _, k := range kernels {
			if k.Spec.Name == "array-sum" {
				assert.Equal(t, 3, k.Spec.Workers)
			} else {
				assert.Zero(t, k.Spec.Workers)
			}
		}
	})
}
