package probability

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvlath-prob/rational"
)

// NormalizeWeights turns raw non-negative weights into exact probabilities:
// every value v maps to weights[v] / Σ weights. The result sums to exactly 1.
//
// The input map is not modified; the returned map and its values are fresh.
//
// Errors:
//   - ErrNegativeWeight  some weight is nil or < 0
//   - ErrZeroWeightSum   the weights sum to 0 (including an empty map)
//
// Complexity: O(n) big-number operations.
func NormalizeWeights[V comparable](weights map[V]*big.Rat) (map[V]*big.Rat, error) {
	// 1) validate and accumulate the total
	total := rational.Zero()
	for v, w := range weights {
		if w == nil || w.Sign() < 0 {
			return nil, fmt.Errorf("NormalizeWeights: value %v: %w", v, ErrNegativeWeight)
		}
		total.Add(total, w)
	}
	if rational.IsZero(total) {
		return nil, fmt.Errorf("NormalizeWeights: %d values: %w", len(weights), ErrZeroWeightSum)
	}

	// 2) divide every weight by the total
	out := make(map[V]*big.Rat, len(weights))
	for v, w := range weights {
		out[v] = new(big.Rat).Quo(w, total)
	}

	return out, nil
}

// IntWeights converts integer weights into rational weights.
func IntWeights[V comparable](weights map[V]int64) map[V]*big.Rat {
	out := make(map[V]*big.Rat, len(weights))
	for v, w := range weights {
		out[v] = rational.FromInt(w)
	}

	return out
}

// UniformWeights gives every listed value weight 1. Repeated values keep weight 1.
func UniformWeights[V comparable](values ...V) map[V]*big.Rat {
	out := make(map[V]*big.Rat, len(values))
	for _, v := range values {
		out[v] = rational.One()
	}

	return out
}

// weightsEqual compares two normalized weight maps exactly.
func weightsEqual[V comparable](a, b map[V]*big.Rat) bool {
	if len(a) != len(b) {
		return false
	}
	for v, wa := range a {
		wb, ok := b[v]
		if !ok || !rational.Equal(wa, wb) {
			return false
		}
	}

	return true
}

// copyWeights returns a deep copy so callers cannot mutate a space's weights.
func copyWeights[V comparable](w map[V]*big.Rat) map[V]*big.Rat {
	out := make(map[V]*big.Rat, len(w))
	for v, p := range w {
		out[v] = new(big.Rat).Set(p)
	}

	return out
}
