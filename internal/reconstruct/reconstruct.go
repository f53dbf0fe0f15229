// Package reconstruct recovers an ordered sequence from the multiset of its
// pairwise values.
//
// For a sorted sequence a_1 <= ... <= a_n fed as pairwise minimums, a_i is the
// smallest value left once a_1..a_{i-1} have been peeled off, and it occurs
// exactly n-i times among what remains. Reconstruct peels greedily on that rule
// and appends Sentinel in place of a_n, which the input never pins down.
package reconstruct

import (
	"seqrecon/internal/multiset"
)

// Sentinel stands in for the last element of every reconstructed sequence.
const Sentinel int64 = 1_000_000_000

// PairCount returns n(n-1)/2, the number of unordered pairs among n elements.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// Reconstruct returns n values: the n-1 values peeled from sums followed by Sentinel.
func Reconstruct(n int, sums []int64) ([]int64, error) {
	return reconstruct(n, sums, Sentinel)
}

func reconstruct(n int, sums []int64, sentinel int64) ([]int64, error) {
	if n < 1 {
		return nil, Invalidf("sequence length %d, must be at least 1", n)
	}
	if want := PairCount(n); len(sums) != want {
		return nil, Invalidf("n=%d needs %d sums, got %d", n, want, len(sums))
	}

	out, err := extract(multiset.New(sums...), n)
	if err != nil {
		return nil, err
	}
	return append(out, sentinel), nil
}

// extract peels n-1 values off b, consuming n-i occurrences of the minimum at
// step i. With n(n-1)/2 values loaded, a successful run leaves b empty.
func extract(b *multiset.Multiset[int64], n int) ([]int64, error) {
	out := make([]int64, 0, n)
	for i := 1; i < n; i++ {
		x, _ := b.Min()
		out = append(out, x)
		if err := b.RemoveN(x, n-i); err != nil {
			return nil, &InconsistentSumsError{Step: i, Value: x, Want: n - i, Have: b.Count(x)}
		}
	}
	return out, nil
}
