package probability

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/katalvlaran/lvlath-prob/rational"
)

// FiniteProductSpace is the cartesian product of independent component
// spaces: an outcome is one outcome per coordinate, and the probability of a
// product event is the product of the coordinate probabilities.
type FiniteProductSpace[V comparable] struct {
	spaces []Space[V]
	opts   Options
}

// NewFiniteProductSpace returns the product of spaces (typically n copies of
// the same space). Options control how "all components equal" is decided for
// the level-set shortcut; see WithEquality.
//
// Errors:
//   - ErrNilSpace  some component is nil
func NewFiniteProductSpace[V comparable](spaces []Space[V], opts ...Option) (*FiniteProductSpace[V], error) {
	for i, s := range spaces {
		if s == nil {
			return nil, fmt.Errorf("NewFiniteProductSpace: component %d: %w", i, ErrNilSpace)
		}
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &FiniteProductSpace[V]{spaces: slices.Clone(spaces), opts: cfg}, nil
}

// Repeat returns the product of n copies of the same space.
func Repeat[V comparable](space Space[V], n int, opts ...Option) (*FiniteProductSpace[V], error) {
	if n < 0 {
		return nil, fmt.Errorf("Repeat(%d): %w", n, ErrArityMismatch)
	}
	spaces := make([]Space[V], n)
	for i := range spaces {
		spaces[i] = space
	}

	return NewFiniteProductSpace(spaces, opts...)
}

// Spaces returns a copy of the component spaces.
func (s *FiniteProductSpace[V]) Spaces() []Space[V] { return slices.Clone(s.spaces) }

// Len returns the number of coordinates.
func (s *FiniteProductSpace[V]) Len() int { return len(s.spaces) }

// AllSpacesEqual reports whether every component equals the first under the
// configured equality policy. A product with no components is trivially equal.
func (s *FiniteProductSpace[V]) AllSpacesEqual() bool {
	for _, sp := range s.spaces {
		if !SpacesEqual(s.spaces[0], sp, s.opts.Equality) {
			return false
		}
	}

	return true
}

// Probability handles two event kinds:
//
//   - *FiniteProductEvent of the same arity: Π P_i(E_i) by independence.
//   - *CountLevelSetEvent when AllSpacesEqual: the multinomial closed form
//     n!/(k1!…km!) · Π p_v^{k_v}, where n = Σk must equal the arity and p_v is
//     the probability of {v} in the shared component. No sequences are enumerated.
//
// Any other kind, or a level set over unequal components, is ErrUnsupportedEvent.
func (s *FiniteProductSpace[V]) Probability(event Event[V]) (*big.Rat, error) {
	switch ev := event.(type) {
	case *FiniteProductEvent[V]:
		return s.productProbability(ev)
	case *CountLevelSetEvent[V]:
		if !s.AllSpacesEqual() {
			return nil, fmt.Errorf("FiniteProductSpace.Probability: %s over unequal component spaces: %w",
				ev.Kind(), ErrUnsupportedEvent)
		}
		return s.levelSetProbability(ev)
	default:
		return nil, unsupported[V]("FiniteProductSpace.Probability", event)
	}
}

func (s *FiniteProductSpace[V]) productProbability(ev *FiniteProductEvent[V]) (*big.Rat, error) {
	if len(ev.events) != len(s.spaces) {
		return nil, fmt.Errorf("FiniteProductSpace.Probability: event arity %d, space arity %d: %w",
			len(ev.events), len(s.spaces), ErrArityMismatch)
	}

	ps := make([]*big.Rat, len(s.spaces))
	for i, sp := range s.spaces {
		p, err := sp.Probability(ev.events[i])
		if err != nil {
			return nil, fmt.Errorf("FiniteProductSpace.Probability: coordinate %d: %w", i, err)
		}
		ps[i] = p
	}

	return rational.Product(ps...), nil
}

func (s *FiniteProductSpace[V]) levelSetProbability(ev *CountLevelSetEvent[V]) (*big.Rat, error) {
	// 1) the level set must fill every coordinate exactly
	if ev.total != len(s.spaces) {
		return nil, fmt.Errorf("FiniteProductSpace.Probability: level set length %d, space arity %d: %w",
			ev.total, len(s.spaces), ErrArityMismatch)
	}
	if len(s.spaces) == 0 {
		return rational.One(), nil // the empty sequence is certain
	}

	// 2) Π p_v^{k_v} over the shared component
	shared := s.spaces[0]
	acc := rational.One()
	ks := make([]int, len(ev.counts))
	for i, c := range ev.counts {
		ks[i] = c.N
		p, err := shared.Probability(NewDiscreteEvent(c.Value))
		if err != nil {
			return nil, fmt.Errorf("FiniteProductSpace.Probability: value %v: %w", c.Value, err)
		}
		pk, err := rational.Pow(p, c.N)
		if err != nil {
			return nil, err
		}
		acc.Mul(acc, pk)
	}

	// 3) times the number of arrangements
	coeff, err := rational.Multinomial(ks...)
	if err != nil {
		return nil, err
	}

	return acc.Mul(acc, new(big.Rat).SetInt(coeff)), nil
}

// Kind returns SpaceFiniteProduct.
func (s *FiniteProductSpace[V]) Kind() SpaceKind { return SpaceFiniteProduct }

func (s *FiniteProductSpace[V]) isSpace() {}
