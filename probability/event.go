package probability

import (
	"encoding/binary"
	"fmt"
	"slices"
)

// Event is a set of outcomes in some sample space over values of type V.
//
// The family is closed: only the four event types of this package implement
// it (DiscreteEvent, FiniteProductEvent, CountLevelSetEvent, SequenceEvent).
// Operations dispatch with a type switch and reject unknown kinds with
// ErrUnsupportedEvent.
type Event[V comparable] interface {
	// Kind reports which variant of the family this event is.
	Kind() EventKind

	isEvent()
}

// SequenceEnumerable is implemented by events that can list every sequence
// of values they denote. Returned slices are shared and must not be modified.
type SequenceEnumerable[V comparable] interface {
	Event[V]

	// AllSequences returns every sequence in the event exactly once.
	AllSequences() ([][]V, error)
}

// Compile-time capability checks.
var (
	_ Event[int]              = (*DiscreteEvent[int])(nil)
	_ SequenceEnumerable[int] = (*FiniteProductEvent[int])(nil)
	_ SequenceEnumerable[int] = (*CountLevelSetEvent[int])(nil)
	_ SequenceEnumerable[int] = (*SequenceEvent[int])(nil)
)

// DiscreteEvent is a finite set of values.
type DiscreteEvent[V comparable] struct {
	values []V            // first-seen order
	index  map[V]struct{} // membership
}

// NewDiscreteEvent returns the set of the given values. Duplicates are dropped;
// the order of first occurrence is kept for deterministic iteration.
func NewDiscreteEvent[V comparable](values ...V) *DiscreteEvent[V] {
	e := &DiscreteEvent[V]{
		values: make([]V, 0, len(values)),
		index:  make(map[V]struct{}, len(values)),
	}
	for _, v := range values {
		if _, dup := e.index[v]; dup {
			continue
		}
		e.index[v] = struct{}{}
		e.values = append(e.values, v)
	}

	return e
}

// Values returns a copy of the values in the event.
func (e *DiscreteEvent[V]) Values() []V { return slices.Clone(e.values) }

// Contains reports whether v is in the event.
func (e *DiscreteEvent[V]) Contains(v V) bool {
	_, ok := e.index[v]
	return ok
}

// Len returns the number of distinct values.
func (e *DiscreteEvent[V]) Len() int { return len(e.values) }

// Kind returns EventDiscrete.
func (e *DiscreteEvent[V]) Kind() EventKind { return EventDiscrete }

func (e *DiscreteEvent[V]) isEvent() {}

// FiniteProductEvent is the cartesian product of one event per coordinate
// of a product space.
type FiniteProductEvent[V comparable] struct {
	events []Event[V]
}

// NewFiniteProductEvent returns the product of the given component events.
// The arity is fixed at construction.
func NewFiniteProductEvent[V comparable](events ...Event[V]) *FiniteProductEvent[V] {
	return &FiniteProductEvent[V]{events: slices.Clone(events)}
}

// Events returns a copy of the component events.
func (e *FiniteProductEvent[V]) Events() []Event[V] { return slices.Clone(e.events) }

// Len returns the arity of the product.
func (e *FiniteProductEvent[V]) Len() int { return len(e.events) }

// Kind returns EventFiniteProduct.
func (e *FiniteProductEvent[V]) Kind() EventKind { return EventFiniteProduct }

func (e *FiniteProductEvent[V]) isEvent() {}

// AllSequences returns the cartesian product of the components' values,
// with the last coordinate varying fastest. Every component must be a
// *DiscreteEvent; otherwise ErrNonDiscreteComponent is returned.
//
// A product with an empty component denotes no sequences; a product with
// no components denotes the single empty sequence.
//
// Complexity: O(arity · ∏|component|).
func (e *FiniteProductEvent[V]) AllSequences() ([][]V, error) {
	// 1) collect the value lists, rejecting non-discrete coordinates
	lists := make([][]V, len(e.events))
	for i, ev := range e.events {
		de, ok := ev.(*DiscreteEvent[V])
		if !ok || de == nil {
			return nil, unsupportedComponent[V](i, ev)
		}
		lists[i] = de.values
	}

	// 2) grow the product one coordinate at a time
	out := [][]V{{}}
	for _, list := range lists {
		next := make([][]V, 0, len(out)*len(list))
		for _, prefix := range out {
			for _, v := range list {
				seq := make([]V, 0, len(lists))
				seq = append(seq, prefix...)
				seq = append(seq, v)
				next = append(next, seq)
			}
		}
		out = next
		if len(out) == 0 {
			break // an empty coordinate empties the product
		}
	}

	return out, nil
}

func unsupportedComponent[V comparable](i int, ev Event[V]) error {
	kind := "nil"
	if ev != nil {
		kind = ev.Kind().String()
	}

	return fmt.Errorf("FiniteProductEvent.AllSequences: component %d is %s: %w", i, kind, ErrNonDiscreteComponent)
}

// SequenceEvent is an explicit set of sequences. It is what
// FiniteProductVariable.Inverse returns when no closed form applies.
type SequenceEvent[V comparable] struct {
	set *sequenceSet[V]
}

// NewSequenceEvent returns the set of the given sequences. Each sequence is
// copied; duplicates are dropped and first-seen order is kept.
func NewSequenceEvent[V comparable](seqs ...[]V) *SequenceEvent[V] {
	set := newSequenceSet[V]()
	for _, seq := range seqs {
		set.add(slices.Clone(seq))
	}

	return &SequenceEvent[V]{set: set}
}

// AllSequences returns the stored sequences.
func (e *SequenceEvent[V]) AllSequences() ([][]V, error) { return e.set.seqs, nil }

// Contains reports whether seq is one of the stored sequences.
func (e *SequenceEvent[V]) Contains(seq []V) bool { return e.set.contains(seq) }

// Len returns the number of distinct sequences.
func (e *SequenceEvent[V]) Len() int { return len(e.set.seqs) }

// Kind returns EventSequence.
func (e *SequenceEvent[V]) Kind() EventKind { return EventSequence }

func (e *SequenceEvent[V]) isEvent() {}

// sequenceSet stores distinct sequences in insertion order. Slices are not
// hashable, so each value is interned to a small integer and a sequence is
// keyed by the uvarint encoding of its ids.
type sequenceSet[V comparable] struct {
	ids   map[V]uint64
	index map[string]struct{}
	seqs  [][]V
	buf   []byte
}

func newSequenceSet[V comparable]() *sequenceSet[V] {
	return &sequenceSet[V]{
		ids:   make(map[V]uint64),
		index: make(map[string]struct{}),
	}
}

// add stores seq (without copying) unless already present.
func (s *sequenceSet[V]) add(seq []V) bool {
	s.buf = s.buf[:0]
	for _, v := range seq {
		id, ok := s.ids[v]
		if !ok {
			id = uint64(len(s.ids))
			s.ids[v] = id
		}
		s.buf = binary.AppendUvarint(s.buf, id)
	}
	key := string(s.buf)
	if _, dup := s.index[key]; dup {
		return false
	}
	s.index[key] = struct{}{}
	s.seqs = append(s.seqs, seq)

	return true
}

// contains is read-only and safe for concurrent use.
func (s *sequenceSet[V]) contains(seq []V) bool {
	buf := make([]byte, 0, len(seq))
	for _, v := range seq {
		id, ok := s.ids[v]
		if !ok {
			return false // a never-seen value cannot be in any stored sequence
		}
		buf = binary.AppendUvarint(buf, id)
	}
	_, ok := s.index[string(buf)]

	return ok
}
