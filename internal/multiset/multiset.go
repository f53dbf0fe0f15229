// Package multiset provides an ordered multiset with duplicate counts.
//
// Values are stored as a count per distinct key plus a min-heap of the keys.
// Keys whose count drops to zero stay in the heap until they surface at the
// top, where Min discards them.
package multiset

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrNotEnough is returned by RemoveN when fewer occurrences are present than requested.
var ErrNotEnough = errors.New("not enough occurrences")

// Multiset is an ordered collection of values where duplicates are significant.
// The zero value is not usable; call New.
type Multiset[T constraints.Ordered] struct {
	counts map[T]int
	keys   keyHeap[T]
	size   int
}

// New returns a multiset holding values.
func New[T constraints.Ordered](values ...T) *Multiset[T] {
	m := &Multiset[T]{counts: make(map[T]int, len(values))}
	for _, v := range values {
		m.Insert(v)
	}
	return m
}

// Insert adds one occurrence of v.
func (m *Multiset[T]) Insert(v T) {
	if m.counts[v] == 0 {
		m.keys.push(v)
	}
	m.counts[v]++
	m.size++
}

// Len returns the total number of occurrences.
func (m *Multiset[T]) Len() int { return m.size }

// Distinct returns the number of distinct values present.
func (m *Multiset[T]) Distinct() int { return len(m.counts) }

// Count returns how many occurrences of v are present.
func (m *Multiset[T]) Count(v T) int { return m.counts[v] }

// Min returns the smallest value present. ok is false when the multiset is empty.
func (m *Multiset[T]) Min() (min T, ok bool) {
	for len(m.keys) > 0 {
		top := m.keys[0]
		if m.counts[top] > 0 {
			return top, true
		}
		m.keys.pop()
	}
	return min, false
}

// Remove removes one occurrence of v. It reports whether v was present.
func (m *Multiset[T]) Remove(v T) bool {
	c := m.counts[v]
	if c == 0 {
		return false
	}
	m.drop(v, c, 1)
	return true
}

// RemoveN removes exactly k occurrences of v. If fewer than k are present the
// multiset is left unchanged and an error wrapping ErrNotEnough is returned.
func (m *Multiset[T]) RemoveN(v T, k int) error {
	if k < 0 {
		return fmt.Errorf("negative removal count %d", k)
	}
	if k == 0 {
		return nil
	}
	c := m.counts[v]
	if c < k {
		return fmt.Errorf("remove %v x%d, have %d: %w", v, k, c, ErrNotEnough)
	}
	m.drop(v, c, k)
	return nil
}

func (m *Multiset[T]) drop(v T, have, k int) {
	if have == k {
		delete(m.counts, v)
	} else {
		m.counts[v] = have - k
	}
	m.size -= k
}

// keyHeap is a binary min-heap of distinct keys.
type keyHeap[T constraints.Ordered] []T

func (h *keyHeap[T]) push(x T) {
	*h = append(*h, x)
	h.up(len(*h) - 1)
}

func (h *keyHeap[T]) pop() T {
	old := *h
	n := len(old) - 1
	top := old[0]
	old[0], old[n] = old[n], old[0]
	*h = old[:n]
	h.down(0, n)
	return top
}

func (h keyHeap[T]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !(h[j] < h[i]) {
			break
		}
		h[i], h[j] = h[j], h[i]
		j = i
	}
}

func (h keyHeap[T]) down(i0, n int) {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 {
			break
		}
		j := j1
		if j2 := j1 + 1; j2 < n && h[j2] < h[j1] {
			j = j2
		}
		if !(h[j] < h[i]) {
			break
		}
		h[i], h[j] = h[j], h[i]
		i = j
	}
}
