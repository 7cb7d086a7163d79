package probability

import (
	"encoding/binary"
	"fmt"
	"slices"
	"sync"
)

// Count pairs a value with the number of times it must occur.
type Count[V comparable] struct {
	Value V
	N     int
}

// CountLevelSetEvent is the set of all sequences of length Σ N that use each
// value exactly N times, in every order. For counts {red: 2, green: 1} it
// denotes (red, red, green), (red, green, red) and (green, red, red).
//
// The sequences are enumerated lazily on the first AllSequences call and
// cached for the lifetime of the event.
type CountLevelSetEvent[V comparable] struct {
	counts []Count[V]
	total  int

	once sync.Once
	seqs [][]V
}

// NewCountLevelSetEvent builds a level set from counts. The order of counts
// fixes the (deterministic) order of AllSequences. Zero counts are allowed.
//
// Errors:
//   - ErrNegativeCount   some N < 0
//   - ErrDuplicateValue  a value is listed twice
func NewCountLevelSetEvent[V comparable](counts ...Count[V]) (*CountLevelSetEvent[V], error) {
	seen := make(map[V]struct{}, len(counts))
	total := 0
	for _, c := range counts {
		if c.N < 0 {
			return nil, fmt.Errorf("NewCountLevelSetEvent: value %v count %d: %w", c.Value, c.N, ErrNegativeCount)
		}
		if _, dup := seen[c.Value]; dup {
			return nil, fmt.Errorf("NewCountLevelSetEvent: value %v: %w", c.Value, ErrDuplicateValue)
		}
		seen[c.Value] = struct{}{}
		total += c.N
	}

	return &CountLevelSetEvent[V]{counts: slices.Clone(counts), total: total}, nil
}

// CountsFromMap orders a Go map of counts with cmp, so that level sets built
// from maps enumerate deterministically.
func CountsFromMap[V comparable](m map[V]int, cmp func(a, b V) int) []Count[V] {
	out := make([]Count[V], 0, len(m))
	for v, n := range m {
		out = append(out, Count[V]{Value: v, N: n})
	}
	slices.SortFunc(out, func(a, b Count[V]) int { return cmp(a.Value, b.Value) })

	return out
}

// Counts returns a copy of the counts in construction order.
func (e *CountLevelSetEvent[V]) Counts() []Count[V] { return slices.Clone(e.counts) }

// Total returns the length of every sequence in the event.
func (e *CountLevelSetEvent[V]) Total() int { return e.total }

// Kind returns EventCountLevelSet.
func (e *CountLevelSetEvent[V]) Kind() EventKind { return EventCountLevelSet }

func (e *CountLevelSetEvent[V]) isEvent() {}

// AllSequences returns every distinct arrangement of the multiset exactly once.
// The result is computed on first use and shared afterwards.
//
// Complexity: output size n!/(k1!…km!) sequences of length n; the memo table
// holds at most ∏(ki+1) entries.
func (e *CountLevelSetEvent[V]) AllSequences() ([][]V, error) {
	e.once.Do(func() {
		e.seqs = e.enumerate()
	})

	return e.seqs, nil
}

// enumerate generates arrangements recursively on the remaining-counts tuple:
// for each value with a non-zero remaining count, prepend it to every
// arrangement of the counts with that value decremented. Sub-results are
// memoized by the exact tuple, since many branches reach the same one.
func (e *CountLevelSetEvent[V]) enumerate() [][]V {
	labels := make([]V, len(e.counts))
	remaining := make([]int, len(e.counts))
	for i, c := range e.counts {
		labels[i] = c.Value
		remaining[i] = c.N
	}

	cache := make(map[string][][]V)
	var key []byte

	var generate func(left int) [][]V
	generate = func(left int) [][]V {
		if left == 0 {
			return [][]V{{}}
		}

		key = key[:0]
		for _, r := range remaining {
			key = binary.AppendUvarint(key, uint64(r))
		}
		k := string(key)
		if cached, ok := cache[k]; ok {
			return cached
		}

		var generated [][]V
		for i, r := range remaining {
			if r == 0 {
				continue
			}
			remaining[i]-- // restored below; the tuple is shared across the recursion
			tails := generate(left - 1)
			remaining[i]++

			for _, tail := range tails {
				seq := make([]V, 0, left)
				seq = append(seq, labels[i])
				seq = append(seq, tail...)
				generated = append(generated, seq)
			}
		}
		cache[k] = generated

		return generated
	}

	return generate(e.total)
}
