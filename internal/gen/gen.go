// Package gen produces random judge input whose cases are all solvable.
package gen

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"

	"seqrecon/internal/judge"
	"seqrecon/internal/reconstruct"
)

// Params controls generation.
type Params struct {
	Cases    int
	MaxN     int
	MaxValue int64
	// Seed fixes the output. Zero draws a fresh seed.
	Seed int64
}

// Validate rejects parameters that cannot produce a well-formed file.
func (p Params) Validate() error {
	if p.Cases < 0 {
		return fmt.Errorf("cases must be non-negative, got %d", p.Cases)
	}
	if p.MaxN < 1 {
		return fmt.Errorf("max-n must be at least 1, got %d", p.MaxN)
	}
	if p.MaxValue < 1 {
		return fmt.Errorf("max-value must be at least 1, got %d", p.MaxValue)
	}
	if p.MaxValue >= reconstruct.Sentinel {
		return fmt.Errorf("max-value must be below %d, got %d", reconstruct.Sentinel, p.MaxValue)
	}
	return nil
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// newSeed is swapped in tests.
var newSeed = NewSeed

// Generate writes p.Cases random cases to w and returns the seed it used.
// Each case is the shuffled pairwise-minimum multiset of a sequence with
// values in [1, p.MaxValue].
func Generate(w io.Writer, p Params) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	// A drawn seed is never zero, so it always replays with --seed.
	seed := p.Seed
	for seed == 0 {
		var err error
		if seed, err = newSeed(); err != nil {
			return 0, err
		}
	}
	rng := rand.New(rand.NewSource(seed))

	out := judge.NewWriter(w)
	if err := out.WriteValues([]int64{int64(p.Cases)}); err != nil {
		return seed, err
	}
	for i := 0; i < p.Cases; i++ {
		n := 1 + rng.Intn(p.MaxN)
		a := make([]int64, n)
		for j := range a {
			a[j] = 1 + rng.Int63n(p.MaxValue)
		}
		sums := reconstruct.PairwiseMinimums(a)
		rng.Shuffle(len(sums), func(x, y int) { sums[x], sums[y] = sums[y], sums[x] })

		if err := out.WriteValues([]int64{int64(n)}); err != nil {
			return seed, err
		}
		if err := out.WriteValues(sums); err != nil {
			return seed, err
		}
	}
	return seed, out.Flush()
}
