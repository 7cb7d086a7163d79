package probability_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-prob/probability"
	"github.com/katalvlaran/lvlath-prob/rational"
)

func TestNormalizeWeights_SumsToOne(t *testing.T) {
	inputs := []map[string]*big.Rat{
		{"a": rat(1, 1)},
		{"a": rat(1, 1), "b": rat(1, 1), "c": rat(1, 1)},
		{"a": rat(7, 3), "b": rat(2, 9), "c": rat(0, 1), "d": rat(11, 5)},
		{"x": rat(1000003, 1), "y": rat(1, 1000003)},
	}
	for _, in := range inputs {
		norm, err := probability.NormalizeWeights(in)
		require.NoError(t, err)
		require.Len(t, norm, len(in))

		sum := new(big.Rat)
		for _, p := range norm {
			sum.Add(sum, p)
		}
		assert.True(t, rational.IsOne(sum), "sum = %s", sum.RatString())
	}
}

func TestNormalizeWeights_Values(t *testing.T) {
	norm, err := probability.NormalizeWeights(probability.IntWeights(map[string]int64{"red": 2, "white": 1}))
	require.NoError(t, err)
	requireRat(t, rat(2, 3), norm["red"])
	requireRat(t, rat(1, 3), norm["white"])
}

func TestNormalizeWeights_DoesNotMutateInput(t *testing.T) {
	in := map[string]*big.Rat{"a": rat(2, 1), "b": rat(2, 1)}
	_, err := probability.NormalizeWeights(in)
	require.NoError(t, err)
	assert.Equal(t, "2", in["a"].RatString())
}

func TestNormalizeWeights_Errors(t *testing.T) {
	_, err := probability.NormalizeWeights(map[string]*big.Rat{"a": rat(0, 1), "b": rat(0, 1)})
	assert.ErrorIs(t, err, probability.ErrZeroWeightSum)
	assert.ErrorIs(t, err, probability.ErrInvalidConstruction)

	_, err = probability.NormalizeWeights(map[string]*big.Rat{})
	assert.ErrorIs(t, err, probability.ErrZeroWeightSum)

	_, err = probability.NormalizeWeights(map[string]*big.Rat{"a": rat(1, 1), "b": rat(-1, 2)})
	assert.ErrorIs(t, err, probability.ErrNegativeWeight)
	assert.ErrorIs(t, err, probability.ErrInvalidConstruction)

	_, err = probability.NormalizeWeights(map[string]*big.Rat{"a": nil})
	assert.ErrorIs(t, err, probability.ErrNegativeWeight)
}

func TestUniformWeights(t *testing.T) {
	w := probability.UniformWeights("a", "b", "a")
	require.Len(t, w, 2)
	assert.True(t, rational.IsOne(w["a"]))
	assert.True(t, rational.IsOne(w["b"]))
}
