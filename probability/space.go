package probability

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvlath-prob/rational"
)

// Space is a probability space whose outcomes are built from values of type V.
//
// The family is closed: DiscreteSpace, FiniteProductSpace and
// SampleWithoutReplacementSpace. Each Probability implementation matches on
// the event kind and returns ErrUnsupportedEvent (or ErrNotEnumerable) for
// kinds it cannot measure; nothing is silently coerced.
type Space[V comparable] interface {
	// Probability returns the exact probability of event.
	Probability(event Event[V]) (*big.Rat, error)

	// Kind reports which variant of the family this space is.
	Kind() SpaceKind

	isSpace()
}

var (
	_ Space[int] = (*DiscreteSpace[int])(nil)
	_ Space[int] = (*FiniteProductSpace[int])(nil)
	_ Space[int] = (*SampleWithoutReplacementSpace[int])(nil)
)

// DiscreteSpace assigns a fixed probability to each of finitely many values.
type DiscreteSpace[V comparable] struct {
	weights map[V]*big.Rat // normalized, sums to 1
}

// NewDiscreteSpace normalizes weights into a discrete probability space.
// See NormalizeWeights for the errors.
func NewDiscreteSpace[V comparable](weights map[V]*big.Rat) (*DiscreteSpace[V], error) {
	norm, err := NormalizeWeights(weights)
	if err != nil {
		return nil, fmt.Errorf("NewDiscreteSpace: %w", err)
	}

	return &DiscreteSpace[V]{weights: norm}, nil
}

// Weights returns a copy of the normalized probability of each value.
func (s *DiscreteSpace[V]) Weights() map[V]*big.Rat { return copyWeights(s.weights) }

// Weight returns the probability of the single value v (0 if absent).
func (s *DiscreteSpace[V]) Weight(v V) *big.Rat {
	if w, ok := s.weights[v]; ok {
		return new(big.Rat).Set(w)
	}

	return rational.Zero()
}

// Probability accepts only *DiscreteEvent and returns the total weight of
// its values. Values the space does not know contribute 0.
func (s *DiscreteSpace[V]) Probability(event Event[V]) (*big.Rat, error) {
	ev, ok := event.(*DiscreteEvent[V])
	if !ok || ev == nil {
		return nil, unsupported[V]("DiscreteSpace.Probability", event)
	}

	ws := make([]*big.Rat, 0, len(ev.values))
	for _, v := range ev.values {
		ws = append(ws, s.weights[v]) // nil for unknown values, which Sum skips
	}

	return rational.Sum(ws...), nil
}

// Kind returns SpaceDiscrete.
func (s *DiscreteSpace[V]) Kind() SpaceKind { return SpaceDiscrete }

func (s *DiscreteSpace[V]) isSpace() {}

// SpacesEqual reports whether a and b are equal under the given policy.
// Structural equality compares kind, normalized weights, sample counts and,
// for products, every component in order.
func SpacesEqual[V comparable](a, b Space[V], eq Equality) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if eq == EqualityIdentity || a == b {
		return a == b
	}

	switch x := a.(type) {
	case *DiscreteSpace[V]:
		y, ok := b.(*DiscreteSpace[V])
		return ok && weightsEqual(x.weights, y.weights)
	case *SampleWithoutReplacementSpace[V]:
		y, ok := b.(*SampleWithoutReplacementSpace[V])
		return ok && x.n == y.n && weightsEqual(x.weights, y.weights)
	case *FiniteProductSpace[V]:
		y, ok := b.(*FiniteProductSpace[V])
		if !ok || len(x.spaces) != len(y.spaces) {
			return false
		}
		for i := range x.spaces {
			if !SpacesEqual(x.spaces[i], y.spaces[i], eq) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
