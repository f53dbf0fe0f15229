package reconstruct

import (
	"go.uber.org/zap"
)

// Solver runs Reconstruct with a logger and an overridable sentinel.
type Solver struct {
	logger   *zap.Logger
	sentinel int64
}

// Option configures a Solver.
type Option func(*Solver)

// WithSentinel replaces the value appended as the last element.
func WithSentinel(v int64) Option {
	return func(s *Solver) { s.sentinel = v }
}

// NewSolver returns a Solver. A nil logger is replaced by a no-op logger.
func NewSolver(logger *zap.Logger, opts ...Option) *Solver {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Solver{logger: logger, sentinel: Sentinel}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sentinel returns the value this solver appends.
func (s *Solver) Sentinel() int64 { return s.sentinel }

// Solve reconstructs one case.
func (s *Solver) Solve(n int, sums []int64) ([]int64, error) {
	out, err := reconstruct(n, sums, s.sentinel)
	if err != nil {
		s.logger.Debug("Reconstruction failed",
			zap.Int("n", n),
			zap.Int("sums", len(sums)),
			zap.Error(err))
		return nil, err
	}
	s.logger.Debug("Reconstructed sequence", zap.Int("n", n), zap.Int64s("values", out))
	return out, nil
}
