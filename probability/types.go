package probability

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers branch with errors.Is; returned errors usually
// wrap one of these with the failing operation as context.
var (
	// ErrUnsupportedEvent indicates a space or random variable received an
	// event kind it has no logic for (e.g. a DiscreteSpace given a product event).
	ErrUnsupportedEvent = errors.New("probability: unsupported event type")

	// ErrNotEnumerable indicates an operation needed the sequences of an event
	// that does not implement SequenceEnumerable.
	ErrNotEnumerable = errors.New("probability: event does not enumerate sequences")

	// ErrInvalidConstruction is the parent of every constructor validation error.
	ErrInvalidConstruction = errors.New("probability: invalid construction")

	// ErrUndefinedValue indicates DiscreteVariable.Apply met a value outside
	// the domain of its mapping.
	ErrUndefinedValue = errors.New("probability: value not in mapping domain")

	// ErrArityMismatch indicates a product event, space or variable was combined
	// with an operand of a different length.
	ErrArityMismatch = errors.New("probability: arity mismatch")
)

var (
	// ErrNonDiscreteComponent indicates FiniteProductEvent.AllSequences found a
	// component that is not a DiscreteEvent.
	ErrNonDiscreteComponent = fmt.Errorf("%w: product component is not a discrete event", ErrUnsupportedEvent)

	// ErrTooManySamples indicates a without-replacement space asked for more
	// draws than it has values (or a negative number of draws).
	ErrTooManySamples = fmt.Errorf("%w: sample count exceeds number of values", ErrInvalidConstruction)

	// ErrZeroWeightSum indicates weights that cannot be normalized because they sum to 0.
	ErrZeroWeightSum = fmt.Errorf("%w: weights sum to zero", ErrInvalidConstruction)

	// ErrNegativeWeight indicates a nil or negative weight.
	ErrNegativeWeight = fmt.Errorf("%w: weight is nil or negative", ErrInvalidConstruction)

	// ErrNegativeCount indicates a negative occurrence count in a level set.
	ErrNegativeCount = fmt.Errorf("%w: count is negative", ErrInvalidConstruction)

	// ErrDuplicateValue indicates the same value was given two counts.
	ErrDuplicateValue = fmt.Errorf("%w: duplicate value in counts", ErrInvalidConstruction)

	// ErrNilSpace indicates a nil component space.
	ErrNilSpace = fmt.Errorf("%w: nil space", ErrInvalidConstruction)

	// ErrNilVariable indicates a nil component random variable.
	ErrNilVariable = fmt.Errorf("%w: nil random variable", ErrInvalidConstruction)
)

// EventKind tags the variants of the Event family.
type EventKind int

const (
	EventDiscrete EventKind = iota
	EventFiniteProduct
	EventCountLevelSet
	EventSequence
)

func (k EventKind) String() string {
	switch k {
	case EventDiscrete:
		return "DiscreteEvent"
	case EventFiniteProduct:
		return "FiniteProductEvent"
	case EventCountLevelSet:
		return "CountLevelSetEvent"
	case EventSequence:
		return "SequenceEvent"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// SpaceKind tags the variants of the Space family.
type SpaceKind int

const (
	SpaceDiscrete SpaceKind = iota
	SpaceFiniteProduct
	SpaceSampleWithoutReplacement
)

func (k SpaceKind) String() string {
	switch k {
	case SpaceDiscrete:
		return "DiscreteSpace"
	case SpaceFiniteProduct:
		return "FiniteProductSpace"
	case SpaceSampleWithoutReplacement:
		return "SampleWithoutReplacementSpace"
	default:
		return fmt.Sprintf("SpaceKind(%d)", int(k))
	}
}

// VariableKind tags the variants of the Variable family.
type VariableKind int

const (
	VariableIdentity VariableKind = iota
	VariableDiscrete
	VariableFiniteProduct
)

func (k VariableKind) String() string {
	switch k {
	case VariableIdentity:
		return "IdentityVariable"
	case VariableDiscrete:
		return "DiscreteVariable"
	case VariableFiniteProduct:
		return "FiniteProductVariable"
	default:
		return fmt.Sprintf("VariableKind(%d)", int(k))
	}
}

// Equality selects how FiniteProductSpace decides that its component spaces
// are "all equal" before taking the multinomial shortcut for level sets.
type Equality int

const (
	// EqualityStructural compares spaces by value: same kind, same normalized
	// weights, same sample count, and recursively equal components.
	EqualityStructural Equality = iota

	// EqualityIdentity requires every component to be the same instance.
	EqualityIdentity
)

// Options configures a FiniteProductSpace.
type Options struct {
	// Equality is the component-equality policy for the level-set shortcut.
	// Default is EqualityStructural.
	Equality Equality
}

// Option represents a functional option for NewFiniteProductSpace.
type Option func(*Options)

// DefaultOptions returns Options with structural equality.
func DefaultOptions() Options {
	return Options{Equality: EqualityStructural}
}

// WithEquality sets the component-equality policy.
// Panics on a value that is not one of the declared Equality constants.
func WithEquality(eq Equality) Option {
	if eq != EqualityStructural && eq != EqualityIdentity {
		panic(fmt.Sprintf("probability: WithEquality(%d): unknown equality policy", int(eq)))
	}

	return func(o *Options) {
		o.Equality = eq
	}
}

// unsupported builds the error returned when op cannot handle e.
func unsupported[V comparable](op string, e Event[V]) error {
	if e == nil {
		return fmt.Errorf("%s: nil event: %w", op, ErrUnsupportedEvent)
	}

	return fmt.Errorf("%s: %s: %w", op, e.Kind(), ErrUnsupportedEvent)
}

// enumerable returns e as a SequenceEnumerable or ErrNotEnumerable.
func enumerable[V comparable](op string, e Event[V]) (SequenceEnumerable[V], error) {
	if e == nil {
		return nil, fmt.Errorf("%s: nil event: %w", op, ErrNotEnumerable)
	}
	se, ok := e.(SequenceEnumerable[V])
	if !ok {
		return nil, fmt.Errorf("%s: %s: %w", op, e.Kind(), ErrNotEnumerable)
	}

	return se, nil
}
