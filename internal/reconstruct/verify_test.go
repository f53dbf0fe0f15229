package reconstruct

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairwiseMinimums(t *testing.T) {
	got := PairwiseMinimums([]int64{3, 1, 2})
	if diff := cmp.Diff([]int64{1, 2, 1}, got); diff != "" {
		t.Errorf("PairwiseMinimums mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, PairwiseMinimums([]int64{8}))
}

func TestVerify(t *testing.T) {
	sums := []int64{1, 3, 1}

	t.Run("sentinel answer accepted", func(t *testing.T) {
		assert.NoError(t, Verify(3, sums, []int64{1, 3, Sentinel}))
	})

	t.Run("any order accepted", func(t *testing.T) {
		assert.NoError(t, Verify(3, sums, []int64{3, 1, 4}))
	})

	t.Run("wrong values rejected", func(t *testing.T) {
		err := Verify(3, sums, []int64{1, 2, Sentinel})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMismatch))
	})

	t.Run("wrong length rejected", func(t *testing.T) {
		err := Verify(3, sums, []int64{1, 3})
		assert.True(t, errors.Is(err, ErrMismatch))
	})

	t.Run("malformed case rejected", func(t *testing.T) {
		err := Verify(3, []int64{1}, []int64{1, 3, Sentinel})
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})
}
