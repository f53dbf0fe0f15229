package judge

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"seqrecon/internal/reconstruct"
)

// Options controls a batch run.
type Options struct {
	// Workers is the number of cases solved concurrently. Values below 2 run sequentially.
	Workers int
	Solver  *reconstruct.Solver
	Logger  *zap.Logger
}

// Stats summarises a completed run.
type Stats struct {
	Cases    int
	Values   int
	Duration time.Duration
}

// Run reads every case from in, solves them and writes the answers to out in
// input order. Nothing is written unless every case succeeds.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts Options) (Stats, error) {
	start := time.Now()
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	solver := opts.Solver
	if solver == nil {
		solver = reconstruct.NewSolver(logger)
	}

	cases, err := ReadCases(in)
	if err != nil {
		return Stats{}, err
	}
	logger.Debug("Parsed input", zap.Int("cases", len(cases)))

	answers, err := SolveAll(ctx, solver, cases, opts.Workers)
	if err != nil {
		return Stats{}, err
	}

	w := NewWriter(out)
	stats := Stats{Cases: len(cases)}
	for _, a := range answers {
		if err := w.WriteValues(a); err != nil {
			return stats, fmt.Errorf("failed to write answer: %w", err)
		}
		stats.Values += len(a)
	}
	if err := w.Flush(); err != nil {
		return stats, fmt.Errorf("failed to flush output: %w", err)
	}

	stats.Duration = time.Since(start)
	logger.Info("Run complete",
		zap.Int("cases", stats.Cases),
		zap.Int("values", stats.Values),
		zap.Int("workers", max(opts.Workers, 1)),
		zap.Duration("duration", stats.Duration))
	return stats, nil
}

// SolveAll solves cases and returns the answers indexed like cases.
func SolveAll(ctx context.Context, solver *reconstruct.Solver, cases []Case, workers int) ([][]int64, error) {
	answers := make([][]int64, len(cases))
	if workers < 2 {
		for i, c := range cases {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			a, err := solver.Solve(c.N, c.Sums)
			if err != nil {
				return nil, fmt.Errorf("case %d: %w", c.Index, err)
			}
			answers[i] = a
		}
		return answers, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range cases {
		if gctx.Err() != nil {
			break
		}
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			a, err := solver.Solve(c.N, c.Sums)
			if err != nil {
				return fmt.Errorf("case %d: %w", c.Index, err)
			}
			answers[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Cancellation of the parent may have stopped the loop without any goroutine failing.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return answers, nil
}
