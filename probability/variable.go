package probability

import (
	"fmt"
	"slices"
)

// Variable is a random variable: a map from events over In (the probability
// space) to events over Out (the observed sample space), together with its
// preimage map Inverse.
//
// The family is closed: IdentityVariable, DiscreteVariable and
// FiniteProductVariable.
type Variable[In, Out comparable] interface {
	// Apply maps an event of the probability space forward.
	Apply(event Event[In]) (Event[Out], error)

	// Inverse returns the preimage of an event of the sample space.
	Inverse(event Event[Out]) (Event[In], error)

	// Kind reports which variant of the family this variable is.
	Kind() VariableKind

	isVariable()
}

var (
	_ Variable[int, int]    = IdentityVariable[int]{}
	_ Variable[int, string] = (*DiscreteVariable[int, string])(nil)
	_ Variable[int, string] = (*FiniteProductVariable[int, string])(nil)
)

// IdentityVariable maps every event to itself.
type IdentityVariable[V comparable] struct{}

// Apply returns event unchanged.
func (IdentityVariable[V]) Apply(event Event[V]) (Event[V], error) { return event, nil }

// Inverse returns event unchanged.
func (IdentityVariable[V]) Inverse(event Event[V]) (Event[V], error) { return event, nil }

// Kind returns VariableIdentity.
func (IdentityVariable[V]) Kind() VariableKind { return VariableIdentity }

func (IdentityVariable[V]) isVariable() {}

// DiscreteVariable is a random variable given by a lookup table from input
// values to output values.
type DiscreteVariable[In, Out comparable] struct {
	mapping map[In]Out
	inverse map[Out][]In // output -> every input mapping to it
}

// NewDiscreteVariable copies mapping and precomputes its inverse index.
// The order of each preimage follows Go map iteration and is unspecified;
// use NewDiscreteVariableFunc when Preimage and Inverse must be repeatable.
func NewDiscreteVariable[In, Out comparable](mapping map[In]Out) *DiscreteVariable[In, Out] {
	return NewDiscreteVariableFunc(mapping, nil)
}

// NewDiscreteVariableFunc is NewDiscreteVariable with every preimage sorted
// by cmp, which makes Preimage, Inverse and the sequences of
// FiniteProductVariable.Inverse deterministic. A nil cmp leaves them unsorted.
func NewDiscreteVariableFunc[In, Out comparable](mapping map[In]Out, cmp func(a, b In) int) *DiscreteVariable[In, Out] {
	dv := &DiscreteVariable[In, Out]{
		mapping: make(map[In]Out, len(mapping)),
		inverse: make(map[Out][]In),
	}
	for in, out := range mapping {
		dv.mapping[in] = out
		dv.inverse[out] = append(dv.inverse[out], in)
	}
	if cmp != nil {
		for _, ins := range dv.inverse {
			slices.SortFunc(ins, cmp)
		}
	}

	return dv
}

// Lookup returns the image of a single value.
func (v *DiscreteVariable[In, Out]) Lookup(in In) (Out, bool) {
	out, ok := v.mapping[in]
	return out, ok
}

// Preimage returns a copy of the inputs that map to out (nil if none).
func (v *DiscreteVariable[In, Out]) Preimage(out Out) []In { return slices.Clone(v.inverse[out]) }

// Apply maps a *DiscreteEvent to the set of images of its values.
// A value outside the mapping is ErrUndefinedValue.
func (v *DiscreteVariable[In, Out]) Apply(event Event[In]) (Event[Out], error) {
	ev, ok := event.(*DiscreteEvent[In])
	if !ok || ev == nil {
		return nil, unsupported[In]("DiscreteVariable.Apply", event)
	}

	images := make([]Out, 0, len(ev.values))
	for _, in := range ev.values {
		out, ok := v.mapping[in]
		if !ok {
			return nil, fmt.Errorf("DiscreteVariable.Apply: value %v: %w", in, ErrUndefinedValue)
		}
		images = append(images, out)
	}

	return NewDiscreteEvent(images...), nil
}

// Inverse maps a *DiscreteEvent to the union of the preimages of its values.
// Values with no preimage contribute nothing.
func (v *DiscreteVariable[In, Out]) Inverse(event Event[Out]) (Event[In], error) {
	ev, ok := event.(*DiscreteEvent[Out])
	if !ok || ev == nil {
		return nil, unsupported[Out]("DiscreteVariable.Inverse", event)
	}

	var pre []In
	for _, out := range ev.values {
		pre = append(pre, v.inverse[out]...)
	}

	return NewDiscreteEvent(pre...), nil
}

// Kind returns VariableDiscrete.
func (v *DiscreteVariable[In, Out]) Kind() VariableKind { return VariableDiscrete }

func (v *DiscreteVariable[In, Out]) isVariable() {}

// FiniteProductVariable applies one component variable per coordinate:
// X(w1, …, wn) = (X1(w1), …, Xn(wn)).
type FiniteProductVariable[In, Out comparable] struct {
	vars []Variable[In, Out]
}

// NewFiniteProductVariable returns the coordinate-wise product of vars.
//
// Errors:
//   - ErrNilVariable  some component is nil
func NewFiniteProductVariable[In, Out comparable](vars ...Variable[In, Out]) (*FiniteProductVariable[In, Out], error) {
	for i, rv := range vars {
		if rv == nil {
			return nil, fmt.Errorf("NewFiniteProductVariable: component %d: %w", i, ErrNilVariable)
		}
	}

	return &FiniteProductVariable[In, Out]{vars: slices.Clone(vars)}, nil
}

// RepeatVariable returns the product of n copies of rv.
func RepeatVariable[In, Out comparable](rv Variable[In, Out], n int) (*FiniteProductVariable[In, Out], error) {
	if n < 0 {
		return nil, fmt.Errorf("RepeatVariable(%d): %w", n, ErrArityMismatch)
	}
	vars := make([]Variable[In, Out], n)
	for i := range vars {
		vars[i] = rv
	}

	return NewFiniteProductVariable(vars...)
}

// Len returns the number of coordinates.
func (v *FiniteProductVariable[In, Out]) Len() int { return len(v.vars) }

// Apply maps a *FiniteProductEvent of matching arity coordinate-wise.
func (v *FiniteProductVariable[In, Out]) Apply(event Event[In]) (Event[Out], error) {
	ev, ok := event.(*FiniteProductEvent[In])
	if !ok {
		return nil, unsupported[In]("FiniteProductVariable.Apply", event)
	}
	if len(ev.events) != len(v.vars) {
		return nil, fmt.Errorf("FiniteProductVariable.Apply: event arity %d, variable arity %d: %w",
			len(ev.events), len(v.vars), ErrArityMismatch)
	}

	mapped := make([]Event[Out], len(v.vars))
	var err error
	for i, rv := range v.vars {
		if mapped[i], err = rv.Apply(ev.events[i]); err != nil {
			return nil, fmt.Errorf("FiniteProductVariable.Apply: coordinate %d: %w", i, err)
		}
	}

	return &FiniteProductEvent[Out]{events: mapped}, nil
}

// Inverse returns the preimage of event.
//
//   - *FiniteProductEvent of matching arity: each coordinate is pulled back
//     independently; the result is again a *FiniteProductEvent.
//   - any other SequenceEnumerable event (e.g. a CountLevelSetEvent): every
//     sequence is pulled back element by element, the cartesian product of the
//     element preimages is formed, and all resulting sequences are collected
//     into one *SequenceEvent.
//
// Anything else is ErrUnsupportedEvent.
func (v *FiniteProductVariable[In, Out]) Inverse(event Event[Out]) (Event[In], error) {
	if ev, ok := event.(*FiniteProductEvent[Out]); ok {
		return v.inverseProduct(ev)
	}
	se, ok := event.(SequenceEnumerable[Out])
	if !ok {
		return nil, unsupported[Out]("FiniteProductVariable.Inverse", event)
	}

	return v.inverseSequences(se)
}

func (v *FiniteProductVariable[In, Out]) inverseProduct(ev *FiniteProductEvent[Out]) (Event[In], error) {
	if len(ev.events) != len(v.vars) {
		return nil, fmt.Errorf("FiniteProductVariable.Inverse: event arity %d, variable arity %d: %w",
			len(ev.events), len(v.vars), ErrArityMismatch)
	}

	pre := make([]Event[In], len(v.vars))
	var err error
	for i, rv := range v.vars {
		if pre[i], err = rv.Inverse(ev.events[i]); err != nil {
			return nil, fmt.Errorf("FiniteProductVariable.Inverse: coordinate %d: %w", i, err)
		}
	}

	return &FiniteProductEvent[In]{events: pre}, nil
}

func (v *FiniteProductVariable[In, Out]) inverseSequences(se SequenceEnumerable[Out]) (Event[In], error) {
	seqs, err := se.AllSequences()
	if err != nil {
		return nil, fmt.Errorf("FiniteProductVariable.Inverse: %w", err)
	}

	// element preimages repeat heavily across sequences; pull each back once
	memo := make([]map[Out]Event[In], len(v.vars))
	for i := range memo {
		memo[i] = make(map[Out]Event[In])
	}

	set := newSequenceSet[In]()
	parts := make([]Event[In], len(v.vars))
	for _, seq := range seqs {
		if len(seq) != len(v.vars) {
			return nil, fmt.Errorf("FiniteProductVariable.Inverse: sequence length %d, variable arity %d: %w",
				len(seq), len(v.vars), ErrArityMismatch)
		}
		for i, out := range seq {
			pre, ok := memo[i][out]
			if !ok {
				if pre, err = v.vars[i].Inverse(NewDiscreteEvent(out)); err != nil {
					return nil, fmt.Errorf("FiniteProductVariable.Inverse: coordinate %d: %w", i, err)
				}
				memo[i][out] = pre
			}
			parts[i] = pre
		}

		product := &FiniteProductEvent[In]{events: parts}
		pseqs, err := product.AllSequences()
		if err != nil {
			return nil, fmt.Errorf("FiniteProductVariable.Inverse: %w", err)
		}
		for _, ps := range pseqs {
			set.add(ps)
		}
	}

	return &SequenceEvent[In]{set: set}, nil
}

// Kind returns VariableFiniteProduct.
func (v *FiniteProductVariable[In, Out]) Kind() VariableKind { return VariableFiniteProduct }

func (v *FiniteProductVariable[In, Out]) isVariable() {}
