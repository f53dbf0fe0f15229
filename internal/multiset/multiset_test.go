package multiset

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiset_Empty(t *testing.T) {
	m := New[int64]()
	_, ok := m.Min()
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Remove(1))
	assert.NoError(t, m.RemoveN(1, 0))
}

func TestMultiset_CountsDuplicates(t *testing.T) {
	m := New[int64](5, 3, 5, 5, 1)

	assert.Equal(t, 5, m.Len())
	assert.Equal(t, 3, m.Distinct())
	assert.Equal(t, 3, m.Count(5))
	assert.Equal(t, 0, m.Count(4))

	min, ok := m.Min()
	require.True(t, ok)
	assert.Equal(t, int64(1), min)
}

func TestMultiset_RemoveAdvancesMin(t *testing.T) {
	m := New(2, 1, 1, 3)

	require.True(t, m.Remove(1))
	min, _ := m.Min()
	assert.Equal(t, 1, min)

	require.True(t, m.Remove(1))
	min, _ = m.Min()
	assert.Equal(t, 2, min)
	assert.Equal(t, 2, m.Len())
}

func TestMultiset_RemoveN(t *testing.T) {
	m := New(4, 4, 4, 7)

	require.NoError(t, m.RemoveN(4, 2))
	assert.Equal(t, 1, m.Count(4))
	assert.Equal(t, 2, m.Len())

	err := m.RemoveN(4, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotEnough))
	assert.Equal(t, 1, m.Count(4), "failed RemoveN must not change state")
	assert.Equal(t, 2, m.Len())

	assert.Error(t, m.RemoveN(4, -1))
}

func TestMultiset_ReinsertAfterDrain(t *testing.T) {
	m := New(9, 9)
	require.NoError(t, m.RemoveN(9, 2))
	_, ok := m.Min()
	assert.False(t, ok)

	m.Insert(9)
	m.Insert(8)
	min, ok := m.Min()
	require.True(t, ok)
	assert.Equal(t, 8, min)
	require.True(t, m.Remove(8))
	min, _ = m.Min()
	assert.Equal(t, 9, min)
}

func TestMultiset_DrainsInSortedOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	values := make([]int, 500)
	for i := range values {
		values[i] = rng.Intn(50) - 25
	}

	m := New(values...)
	var got []int
	for m.Len() > 0 {
		v, ok := m.Min()
		require.True(t, ok)
		require.True(t, m.Remove(v))
		got = append(got, v)
	}

	want := append([]int(nil), values...)
	sort.Ints(want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("drain order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0, m.Distinct())
}
