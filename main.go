package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// verbose toggles debug logging on every subcommand.
var verbose bool

// newLogger builds the harness logger. Kernels themselves never log;
// they are pure functions, and the checksum is their only output.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func main() {
	root := &cobra.Command{
		Use:   "kernelbench",
		Short: "Baseline vs optimized kernel pairs with an equivalence contract",
		Long: `kernelbench pairs a baseline and an optimized implementation for six
fixed computational workloads (streaming reduction, sort, memoized
recursion, dense matrix multiply, trial-division primality, substring
search) and verifies that each optimized variant produces the same
checksum as its baseline.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newVerifyCommand(), newBenchCommand(), newHardwareCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
