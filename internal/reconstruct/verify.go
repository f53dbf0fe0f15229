package reconstruct

import (
	"fmt"

	"seqrecon/internal/multiset"
)

// PairwiseMinimums returns min(a[i], a[j]) for every i < j, in pair order.
func PairwiseMinimums(a []int64) []int64 {
	out := make([]int64, 0, PairCount(len(a)))
	for i := range a {
		for j := i + 1; j < len(a); j++ {
			out = append(out, min(a[i], a[j]))
		}
	}
	return out
}

// Verify checks that answer is a valid reconstruction for the case (n, sums):
// it must hold n values whose pairwise-minimum multiset equals sums.
func Verify(n int, sums, answer []int64) error {
	if len(answer) != n {
		return fmt.Errorf("%w: want %d values, got %d", ErrMismatch, n, len(answer))
	}
	if want := PairCount(n); len(sums) != want {
		return Invalidf("n=%d needs %d sums, got %d", n, want, len(sums))
	}

	have := multiset.New(sums...)
	for _, v := range PairwiseMinimums(answer) {
		if !have.Remove(v) {
			return fmt.Errorf("%w: value %d is not among the input sums", ErrMismatch, v)
		}
	}
	return nil
}

