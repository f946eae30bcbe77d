package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newBenchCommand builds the benchmark subcommand: full-size timed runs
// of every selected kernel pair with a summary table and optional JSON
// output for cross-machine comparison.
func newBenchCommand() *cobra.Command {
	var (
		configPath string
		iterations int
		workers    int
		outputJSON string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time baseline vs optimized variants of each kernel",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			cfg := DefaultSuiteConfig()
			if configPath != "" {
				if cfg, err = LoadSuiteConfig(configPath); err != nil {
					return err
				}
			}
			if iterations > 0 {
				cfg.Iterations = iterations
			}
			if workers > 0 {
				cfg.Workers = workers
			}
			if outputJSON != "" {
				cfg.OutputJSON = outputJSON
			}

			kernels, err := cfg.SelectKernels()
			if err != nil {
				return err
			}

			suite, err := RunBenchmarkSuite(kernels, cfg.Iterations, logger)
			if err != nil {
				return err
			}
			suite.PrintSummary()

			if cfg.OutputJSON != "" {
				if err := suite.SaveJSON(cfg.OutputJSON); err != nil {
					return err
				}
				logger.Info("benchmark suite saved", zap.String("path", cfg.OutputJSON))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML suite config file")
	cmd.Flags().IntVar(&iterations, "iterations", 0, "iterations per variant (default from config)")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker cap for the array-sum reduction (0 = all CPUs)")
	cmd.Flags().StringVar(&outputJSON, "json", "", "save results to a JSON file")
	return cmd
}

// newHardwareCommand prints detected hardware information.
func newHardwareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hardware",
		Short: "Detect and print hardware information",
		RunE: func(cmd *cobra.Command, args []string) error {
			hw := DetectHardware()
			cmd.Printf("OS:        %s\n", hw.OS)
			cmd.Printf("Arch:      %s\n", hw.Arch)
			cmd.Printf("CPU cores: %d\n", hw.NumCPU)
			cmd.Printf("NEON:      %v\n", hw.HasNEON)
			cmd.Printf("SSE2:      %v\n", hw.HasSSE2)
			return nil
		},
	}
}
