package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newVerifyCommand builds the equivalence-verification subcommand. It
// runs every selected kernel pair at full workload size and fails the
// process if any pair diverges.
func newVerifyCommand() *cobra.Command {
	var (
		configPath string
		workers    int
		kernelName string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify that every optimized kernel matches its baseline checksum",
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
			if workers > 0 {
				cfg.Workers = workers
			}
			if kernelName != "" {
				cfg.Kernels = []string{kernelName}
			}

			kernels, err := cfg.SelectKernels()
			if err != nil {
				return err
			}

			failed := 0
			fmt.Printf("  %-16s %18s %18s %8s\n", "Kernel", "Baseline", "Optimized", "Result")
			fmt.Println("  " + "---------------------------------------------------------------")
			for _, k := range kernels {
				logger.Info("verifying kernel", zap.String("kernel", k.Spec.Name))
				res := VerifyKernel(k)

				status := "ok"
				if !res.Pass() {
					status = "FAIL"
					failed++
					if errors.Is(res.Err, ErrDivergence) {
						logger.Error("checksum divergence", zap.Error(res.Err))
					} else {
						logger.Error("kernel failed", zap.Error(res.Err))
					}
				}
				fmt.Printf("  %-16s %18.10g %18.10g %8s\n",
					res.Kernel, res.Baseline, res.Optimized, status)

				logger.Debug("kernel verified",
					zap.String("kernel", res.Kernel),
					zap.Duration("baseline_time", res.BaselineTime),
					zap.Duration("optimized_time", res.OptimizedTime))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d kernel pairs failed verification", failed, len(kernels))
			}
			fmt.Printf("\nAll %d kernel pairs verified.\n", len(kernels))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML suite config file")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker cap for the array-sum reduction (0 = all CPUs)")
	cmd.Flags().StringVar(&kernelName, "kernel", "", "verify a single kernel by name")
	return cmd
}
