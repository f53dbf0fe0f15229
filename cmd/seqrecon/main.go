package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seqrecon/internal/config"
	"seqrecon/internal/judge"
	"seqrecon/internal/logging"
	"seqrecon/internal/reconstruct"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// I/O flags shared by subcommands
	inputPath  string
	outputPath string
	workers    int

	cfg    *config.Config
	logger *zap.Logger
)

// newRootCmd builds the command tree. Flag variables are reset to their defaults.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "seqrecon",
		Short: "Reconstruct sequences from their pairwise minimums",
		Long: `seqrecon reads judge input from stdin (or --input) and prints one answer per
test case.

Input: T, then for each case n followed by n(n-1)/2 integers.
Output: the n-1 recovered values and the sentinel 1000000000.

Run without a subcommand to solve.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if f := cmd.Flags().Lookup("workers"); f != nil && f.Changed {
				loaded.Solver.Workers = workers
			}
			if err := loaded.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			cfg = loaded

			logger, err = logging.New(cfg.Logging, verbose)
			if err != nil {
				return err
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runSolve,
	}

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve every test case of a judge input",
		Args:  cobra.NoArgs,
		RunE:  runSolve,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "Input file (default: stdin)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file (default: stdout)")

	for _, c := range []*cobra.Command{rootCmd, solveCmd} {
		c.Flags().IntVarP(&workers, "workers", "j", 1, "Test cases solved concurrently")
	}

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newGenCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runSolve solves the input and writes answers.
func runSolve(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	in, closeIn, err := openInput(cmd, inputPath)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(cmd, outputPath)
	if err != nil {
		return err
	}

	solver := reconstruct.NewSolver(logger, reconstruct.WithSentinel(cfg.Solver.Sentinel))
	_, err = judge.Run(ctx, in, out, judge.Options{
		Workers: cfg.Solver.Workers,
		Solver:  solver,
		Logger:  logger,
	})
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	return err
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// openInput opens path for reading; empty or "-" means the command's stdin.
func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// openOutput creates path for writing; empty or "-" means the command's stdout.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output: %w", err)
	}
	return f, f.Close, nil
}
