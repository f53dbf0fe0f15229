package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seqrecon/internal/gen"
)

var genParams gen.Params

func newGenCmd() *cobra.Command {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate random solvable judge input",
		Long: `Writes T random cases, each the shuffled pairwise-minimum multiset of a random
sequence. The seed is logged; pass --seed to reproduce a file.`,
		Args: cobra.NoArgs,
		RunE: runGen,
	}
	genCmd.Flags().IntVar(&genParams.Cases, "cases", 10, "Number of test cases")
	genCmd.Flags().IntVar(&genParams.MaxN, "max-n", 10, "Maximum sequence length")
	genCmd.Flags().Int64Var(&genParams.MaxValue, "max-value", 1_000_000, "Maximum element value")
	genCmd.Flags().Int64Var(&genParams.Seed, "seed", 0, "Random seed (0 picks one)")
	return genCmd
}

func runGen(cmd *cobra.Command, args []string) error {
	out, closeOut, err := openOutput(cmd, outputPath)
	if err != nil {
		return err
	}

	seed, err := gen.Generate(out, genParams)
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	logger.Info("Generated input",
		zap.Int("cases", genParams.Cases),
		zap.Int64("seed", seed))
	return nil
}
