package probability_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-prob/probability"
)

// rat is shorthand for big.NewRat.
func rat(a, b int64) *big.Rat { return big.NewRat(a, b) }

// requireRat asserts exact rational equality and prints both sides on failure.
func requireRat(t *testing.T, want, got *big.Rat, msgAndArgs ...interface{}) {
	t.Helper()
	require.NotNil(t, got, msgAndArgs...)
	require.Zerof(t, want.Cmp(got), "want %s, got %s", want.RatString(), got.RatString())
}

// discrete builds a DiscreteSpace from integer weights or fails the test.
func discrete[V comparable](t *testing.T, w map[V]int64) *probability.DiscreteSpace[V] {
	t.Helper()
	s, err := probability.NewDiscreteSpace(probability.IntWeights(w))
	require.NoError(t, err)

	return s
}

// levelSet builds a CountLevelSetEvent or fails the test.
func levelSet[V comparable](t *testing.T, counts ...probability.Count[V]) *probability.CountLevelSetEvent[V] {
	t.Helper()
	e, err := probability.NewCountLevelSetEvent(counts...)
	require.NoError(t, err)

	return e
}

// bruteForceIID sums, over every sequence of e, the product of per-draw
// probabilities in s. It is the slow definition the multinomial shortcut must match.
func bruteForceIID[V comparable](t *testing.T, s *probability.DiscreteSpace[V], e probability.SequenceEnumerable[V]) *big.Rat {
	t.Helper()
	seqs, err := e.AllSequences()
	require.NoError(t, err)

	total := new(big.Rat)
	for _, seq := range seqs {
		p := big.NewRat(1, 1)
		for _, v := range seq {
			p.Mul(p, s.Weight(v))
		}
		total.Add(total, p)
	}

	return total
}

// joined renders sequences of strings as "AAB" style words for compact assertions.
func joined(seqs [][]string) []string {
	out := make([]string, len(seqs))
	for i, seq := range seqs {
		out[i] = strings.Join(seq, "")
	}

	return out
}
