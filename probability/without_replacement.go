package probability

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvlath-prob/rational"
)

// SampleWithoutReplacementSpace models n ordered draws from a weighted
// discrete population, where a drawn value is removed before the next draw.
type SampleWithoutReplacementSpace[V comparable] struct {
	weights map[V]*big.Rat // normalized
	n       int
}

// NewSampleWithoutReplacementSpace normalizes weights and fixes the number of
// draws n.
//
// Errors:
//   - ErrTooManySamples  n < 0 or n > len(weights)
//   - see NormalizeWeights
func NewSampleWithoutReplacementSpace[V comparable](weights map[V]*big.Rat, n int) (*SampleWithoutReplacementSpace[V], error) {
	if n < 0 || n > len(weights) {
		return nil, fmt.Errorf("NewSampleWithoutReplacementSpace: %d samples from %d values: %w",
			n, len(weights), ErrTooManySamples)
	}
	norm, err := NormalizeWeights(weights)
	if err != nil {
		return nil, fmt.Errorf("NewSampleWithoutReplacementSpace: %w", err)
	}

	return &SampleWithoutReplacementSpace[V]{weights: norm, n: n}, nil
}

// NSamples returns the number of draws.
func (s *SampleWithoutReplacementSpace[V]) NSamples() int { return s.n }

// Weights returns a copy of the normalized single-draw probabilities.
func (s *SampleWithoutReplacementSpace[V]) Weights() map[V]*big.Rat { return copyWeights(s.weights) }

// Probability sums, over every sequence of the event, the probability of
// drawing exactly that sequence in order. The event must be SequenceEnumerable.
//
// For a sequence (v1, …, vk) of pairwise distinct values the probability is
//
//	Π_i w(vi) / (1 - Σ_{j<i} w(vj))
//
// Sequences with a repeated value, or with a value of zero (or no) weight,
// contribute 0.
func (s *SampleWithoutReplacementSpace[V]) Probability(event Event[V]) (*big.Rat, error) {
	se, err := enumerable[V]("SampleWithoutReplacementSpace.Probability", event)
	if err != nil {
		return nil, err
	}
	seqs, err := se.AllSequences()
	if err != nil {
		return nil, fmt.Errorf("SampleWithoutReplacementSpace.Probability: %w", err)
	}

	ps := make([]*big.Rat, 0, len(seqs))
	seen := make(map[V]struct{})
	for _, seq := range seqs {
		ps = append(ps, s.sequenceProbability(seq, seen))
	}

	return rational.Sum(ps...), nil
}

// sequenceProbability returns nil for sequences of probability 0.
// seen is scratch space reused across calls.
func (s *SampleWithoutReplacementSpace[V]) sequenceProbability(seq []V, seen map[V]struct{}) *big.Rat {
	clear(seen)
	for _, v := range seq {
		if _, dup := seen[v]; dup {
			return nil // a repeated value cannot be drawn twice
		}
		seen[v] = struct{}{}
	}

	p := rational.One()
	removed := rational.Zero()
	left := new(big.Rat)
	step := new(big.Rat)
	for _, v := range seq {
		w, ok := s.weights[v]
		if !ok || rational.IsZero(w) {
			return nil
		}
		left.Sub(one, removed) // > 0: w > 0 is still in the population
		step.Quo(w, left)
		p.Mul(p, step)
		removed.Add(removed, w)
	}

	return p
}

// Kind returns SpaceSampleWithoutReplacement.
func (s *SampleWithoutReplacementSpace[V]) Kind() SpaceKind { return SpaceSampleWithoutReplacement }

func (s *SampleWithoutReplacementSpace[V]) isSpace() {}

var one = rational.One() // read-only
