package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SuiteConfig selects which kernels run and how, for both the verify and
// bench commands. Loaded from YAML; flags override individual fields.
type SuiteConfig struct {
	// Iterations per kernel variant in a benchmark run.
	Iterations int `yaml:"iterations"`

	// Kernels filters the registry by name. Empty means all six.
	Kernels []string `yaml:"kernels"`

	// Workers caps the reduction kernel's parallelism. Zero means one
	// worker per CPU.
	Workers int `yaml:"workers"`

	// OutputJSON, when set, is where a benchmark run saves its suite.
	OutputJSON string `yaml:"output_json"`
}

// DefaultSuiteConfig returns the configuration used when no file is given.
func DefaultSuiteConfig() SuiteConfig {
	return SuiteConfig{Iterations: 3}
}

// LoadSuiteConfig reads a YAML config file over the defaults.
func LoadSuiteConfig(path string) (SuiteConfig, error) {
	cfg := DefaultSuiteConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read suite config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse suite config %s: %w", path, err)
	}
	if cfg.Iterations <= 0 {
		return cfg, fmt.Errorf("suite config %s: iterations must be positive, got %d", path, cfg.Iterations)
	}
	return cfg, nil
}

// SelectKernels resolves the config's kernel filter against the registry
// and applies the worker cap to the reduction kernel.
func (c SuiteConfig) SelectKernels() ([]Kernel, error) {
	var kernels []Kernel
	if len(c.Kernels) == 0 {
		kernels = Registry()
	} else {
		for _, name := range c.Kernels {
			k, ok := KernelByName(name)
			if !ok {
				return nil, fmt.Errorf("unknown kernel %q", name)
			}
			kernels = append(kernels, k)
		}
	}

	if c.Workers > 0 {
		for i := range kernels {
			if kernels[i].Spec.Name == "array-sum" {
				kernels[i].Spec.Workers = c.Workers
			}
		}
	}
	return kernels, nil
}
