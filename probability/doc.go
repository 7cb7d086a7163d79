// Package probability implements exact probability computation over finite
// combinatorial sample spaces: discrete spaces, their finite products and
// sampling-without-replacement spaces, together with the events used to
// query them and the random variables that map between them.
//
// All probabilities are *big.Rat values. Nothing is ever rounded: results
// can be compared with Cmp and fed into further exact arithmetic.
//
// What:
//
//	Events (closed family, see Event):
//		• DiscreteEvent        a set of values
//		• FiniteProductEvent   a cartesian product of component events
//		• CountLevelSetEvent   every sequence using each value a fixed number of times
//		• SequenceEvent        an explicit set of sequences
//	Spaces (closed family, see Space):
//		• DiscreteSpace                   normalized weights over values
//		• FiniteProductSpace              independent coordinates
//		• SampleWithoutReplacementSpace   ordered draws without replacement
//	Random variables (closed family, see Variable):
//		• IdentityVariable, DiscreteVariable, FiniteProductVariable
//
// Typical flow:
//
//  1. Build a Space over the "physical" outcomes (e.g. individual balls).
//  2. Build a Variable from those outcomes to the observed labels (e.g. colours).
//  3. Build an Event over labels and pull it back with Variable.Inverse.
//  4. Call Space.Probability on the pulled-back event.
//
// Capabilities:
//
// Some operations (without-replacement probability, the product-variable
// inverse fallback) need the explicit list of sequences an event denotes.
// Events that can produce it implement SequenceEnumerable; every other event
// is rejected with ErrNotEnumerable rather than coerced.
//
// Complexity:
//
//   - DiscreteSpace.Probability:          O(|event|)
//   - FiniteProductSpace, product event:  Σ cost of component probabilities
//   - FiniteProductSpace, level set:      O(m) big-number ops, m = distinct values (no enumeration)
//   - CountLevelSetEvent.AllSequences:    O(N · n!/(k1!…km!)) output, memoized over ∏(ki+1) sub-problems
//   - SampleWithoutReplacementSpace:      O(Σ over sequences of their length)
//   - FiniteProductVariable.Inverse:      product fast path O(arity); fallback O(output size)
//
// Concurrency:
//
// Events, spaces and variables are immutable after construction. The one
// lazily built structure, the enumeration cache of a CountLevelSetEvent, is
// filled at most once under a sync.Once, so sharing a single event across
// goroutines is safe.
//
// Errors:
//
//   - ErrUnsupportedEvent      event kind not handled by the space or variable
//   - ErrNonDiscreteComponent  product enumeration over a non-discrete component (wraps ErrUnsupportedEvent)
//   - ErrNotEnumerable         event does not implement SequenceEnumerable
//   - ErrInvalidConstruction   invalid constructor input; wrapped by ErrTooManySamples,
//     ErrZeroWeightSum, ErrNegativeWeight, ErrNegativeCount, ErrDuplicateValue,
//     ErrNilSpace, ErrNilVariable
//   - ErrUndefinedValue        DiscreteVariable.Apply on a value outside its mapping
//   - ErrArityMismatch         product event/space/variable lengths disagree
package probability
