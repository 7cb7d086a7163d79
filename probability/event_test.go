package probability_test

import (
	"cmp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-prob/probability"
)

func TestDiscreteEvent_SetSemantics(t *testing.T) {
	e := probability.NewDiscreteEvent("b", "a", "b", "c", "a")
	assert.Equal(t, []string{"b", "a", "c"}, e.Values())
	assert.Equal(t, 3, e.Len())
	assert.True(t, e.Contains("a"))
	assert.False(t, e.Contains("z"))
	assert.Equal(t, probability.EventDiscrete, e.Kind())

	// Values hands out a copy
	vs := e.Values()
	vs[0] = "mutated"
	assert.Equal(t, []string{"b", "a", "c"}, e.Values())
}

func TestFiniteProductEvent_AllSequences(t *testing.T) {
	e := probability.NewFiniteProductEvent[string](
		probability.NewDiscreteEvent("A", "B"),
		probability.NewDiscreteEvent("x", "y", "z"),
	)
	seqs, err := e.AllSequences()
	require.NoError(t, err)
	// last coordinate varies fastest
	assert.Equal(t, []string{"Ax", "Ay", "Az", "Bx", "By", "Bz"}, joined(seqs))
	assert.Equal(t, 2, e.Len())
}

func TestFiniteProductEvent_EdgeShapes(t *testing.T) {
	empty := probability.NewFiniteProductEvent[string]()
	seqs, err := empty.AllSequences()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{}}, seqs, "zero coordinates denote the empty sequence")

	hole := probability.NewFiniteProductEvent[string](
		probability.NewDiscreteEvent("A"),
		probability.NewDiscreteEvent[string](),
	)
	seqs, err = hole.AllSequences()
	require.NoError(t, err)
	assert.Empty(t, seqs)
}

func TestFiniteProductEvent_NonDiscreteComponent(t *testing.T) {
	nested := probability.NewFiniteProductEvent[string](
		probability.NewDiscreteEvent("A"),
		levelSet(t, probability.Count[string]{Value: "A", N: 1}),
	)
	_, err := nested.AllSequences()
	assert.ErrorIs(t, err, probability.ErrNonDiscreteComponent)
	assert.ErrorIs(t, err, probability.ErrUnsupportedEvent)

	withNil := probability.NewFiniteProductEvent[string](nil)
	_, err = withNil.AllSequences()
	assert.ErrorIs(t, err, probability.ErrNonDiscreteComponent)
}

func TestCountLevelSetEvent_OrderMatchesCounts(t *testing.T) {
	e := levelSet(t,
		probability.Count[string]{Value: "A", N: 2},
		probability.Count[string]{Value: "B", N: 1},
	)
	seqs, err := e.AllSequences()
	require.NoError(t, err)
	assert.Equal(t, []string{"AAB", "ABA", "BAA"}, joined(seqs))
	assert.Equal(t, 3, e.Total())
}

func TestCountLevelSetEvent_TwoByTwo(t *testing.T) {
	e := levelSet(t,
		probability.Count[string]{Value: "A", N: 2},
		probability.Count[string]{Value: "B", N: 2},
	)
	seqs, err := e.AllSequences()
	require.NoError(t, err)
	require.Len(t, seqs, 6) // 4!/(2!2!)

	words := joined(seqs)
	assert.ElementsMatch(t, []string{"AABB", "ABAB", "ABBA", "BAAB", "BABA", "BBAA"}, words)
	for _, seq := range seqs {
		assert.Len(t, seq, 4)
	}
}

func TestCountLevelSetEvent_ArrangementCount(t *testing.T) {
	cases := []struct {
		counts []int
		want   int
	}{
		{[]int{1, 1, 1}, 6},
		{[]int{3, 2}, 10},
		{[]int{2, 2, 2}, 90},
		{[]int{4, 0, 1}, 5},
		{[]int{0, 0}, 1},
		{[]int{}, 1},
	}
	for _, tc := range cases {
		counts := make([]probability.Count[int], len(tc.counts))
		for i, n := range tc.counts {
			counts[i] = probability.Count[int]{Value: i, N: n}
		}
		seqs, err := levelSet(t, counts...).AllSequences()
		require.NoError(t, err)
		assert.Len(t, seqs, tc.want, "counts %v", tc.counts)

		// no duplicates, every sequence has the right multiset
		distinct := probability.NewSequenceEvent(seqs...)
		assert.Equal(t, tc.want, distinct.Len(), "counts %v", tc.counts)
		for _, seq := range seqs {
			got := make([]int, len(tc.counts))
			for _, v := range seq {
				got[v]++
			}
			assert.Equal(t, tc.counts, got)
		}
	}
}

func TestCountLevelSetEvent_Cached(t *testing.T) {
	e := levelSet(t,
		probability.Count[string]{Value: "A", N: 3},
		probability.Count[string]{Value: "B", N: 3},
	)
	first, err := e.AllSequences()
	require.NoError(t, err)
	second, err := e.AllSequences()
	require.NoError(t, err)
	require.Len(t, first, 20)
	assert.Same(t, &first[0], &second[0], "second call must reuse the cached slice")
}

func TestCountLevelSetEvent_ConcurrentFirstAccess(t *testing.T) {
	e := levelSet(t,
		probability.Count[string]{Value: "A", N: 3},
		probability.Count[string]{Value: "B", N: 2},
		probability.Count[string]{Value: "C", N: 2},
	)

	var wg sync.WaitGroup
	lens := make([]int, 8)
	for i := range lens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seqs, _ := e.AllSequences()
			lens[i] = len(seqs)
		}(i)
	}
	wg.Wait()

	for _, n := range lens {
		assert.Equal(t, 210, n) // 7!/(3!2!2!)
	}
}

func TestCountLevelSetEvent_Validation(t *testing.T) {
	_, err := probability.NewCountLevelSetEvent(probability.Count[string]{Value: "A", N: -1})
	assert.ErrorIs(t, err, probability.ErrNegativeCount)
	assert.ErrorIs(t, err, probability.ErrInvalidConstruction)

	_, err = probability.NewCountLevelSetEvent(
		probability.Count[string]{Value: "A", N: 1},
		probability.Count[string]{Value: "A", N: 2},
	)
	assert.ErrorIs(t, err, probability.ErrDuplicateValue)
}

func TestCountsFromMap_Deterministic(t *testing.T) {
	counts := probability.CountsFromMap(map[string]int{"c": 1, "a": 2, "b": 0}, cmp.Compare[string])
	assert.Equal(t, []probability.Count[string]{
		{Value: "a", N: 2},
		{Value: "b", N: 0},
		{Value: "c", N: 1},
	}, counts)
}

func TestSequenceEvent(t *testing.T) {
	src := []string{"A", "B"}
	e := probability.NewSequenceEvent(src, []string{"B", "A"}, []string{"A", "B"}, []string{})
	assert.Equal(t, 3, e.Len())
	assert.True(t, e.Contains([]string{"A", "B"}))
	assert.True(t, e.Contains([]string{}))
	assert.False(t, e.Contains([]string{"A"}))
	assert.False(t, e.Contains([]string{"A", "Z"}))

	// stored sequences are copies
	src[0] = "Z"
	assert.True(t, e.Contains([]string{"A", "B"}))

	seqs, err := e.AllSequences()
	require.NoError(t, err)
	assert.Equal(t, []string{"AB", "BA", ""}, joined(seqs))
}
