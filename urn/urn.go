package urn

import (
	"cmp"
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/katalvlaran/lvlath-prob/probability"
)

// Bag is an immutable collection of labelled items. Items are numbered
// 0..Size()-1 in the order they were listed.
type Bag struct {
	name   string
	items  []Item
	labels map[int]string // item id -> label
	size   int
}

// New validates items and builds a bag.
//
// Errors:
//   - ErrEmptyBag        no items
//   - ErrEmptyLabel      an item has label ""
//   - ErrBadCount        an item count < 1
//   - ErrDuplicateLabel  two items share a label
func New(name string, items ...Item) (*Bag, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("urn.New(%q): %w", name, ErrEmptyBag)
	}

	b := &Bag{name: name, items: slices.Clone(items), labels: make(map[int]string)}
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		switch {
		case it.Label == "":
			return nil, fmt.Errorf("urn.New(%q): %w", name, ErrEmptyLabel)
		case it.Count < 1:
			return nil, fmt.Errorf("urn.New(%q): label %q count %d: %w", name, it.Label, it.Count, ErrBadCount)
		}
		if _, dup := seen[it.Label]; dup {
			return nil, fmt.Errorf("urn.New(%q): label %q: %w", name, it.Label, ErrDuplicateLabel)
		}
		seen[it.Label] = struct{}{}

		for i := 0; i < it.Count; i++ {
			b.labels[b.size] = it.Label
			b.size++
		}
	}

	return b, nil
}

// Name returns the bag name (may be empty).
func (b *Bag) Name() string { return b.name }

// Size returns the total number of physical items.
func (b *Bag) Size() int { return b.size }

// Items returns a copy of the item list.
func (b *Bag) Items() []Item { return slices.Clone(b.items) }

// Labels returns the distinct labels in listing order.
func (b *Bag) Labels() []string {
	out := make([]string, len(b.items))
	for i, it := range b.items {
		out[i] = it.Label
	}

	return out
}

// String renders the bag as "name{a:3, b:1}".
func (b *Bag) String() string {
	parts := make([]string, len(b.items))
	for i, it := range b.items {
		parts[i] = fmt.Sprintf("%s:%d", it.Label, it.Count)
	}

	return b.name + "{" + strings.Join(parts, ", ") + "}"
}

// Draw is the model of n draws from a bag: a space over item-id sequences
// and the variable mapping each drawn item to its label.
type Draw struct {
	// Items is the probability space over sequences of item ids.
	Items probability.Space[int]

	// Labels maps item-id events to label events coordinate-wise.
	Labels *probability.FiniteProductVariable[int, string]

	// byLabel is the label-level product space used for level sets when
	// draws are independent; nil without replacement.
	byLabel *probability.FiniteProductSpace[string]

	n    int
	mode Mode
}

// Draw builds the model for n draws in the given mode.
//
// Errors:
//   - ErrUnknownMode
//   - probability.ErrTooManySamples  n > Size() without replacement, or n < 0
func (b *Bag) Draw(n int, mode Mode) (*Draw, error) {
	if n < 0 {
		return nil, fmt.Errorf("Bag.Draw(%d): %w", n, probability.ErrTooManySamples)
	}

	ids := make([]int, b.size)
	for i := range ids {
		ids[i] = i
	}
	labelOf := probability.NewDiscreteVariableFunc(b.labels, cmp.Compare[int])
	rv, err := probability.RepeatVariable[int, string](labelOf, n)
	if err != nil {
		return nil, fmt.Errorf("Bag.Draw(%d): %w", n, err)
	}

	d := &Draw{Labels: rv, n: n, mode: mode}
	switch mode {
	case WithReplacement:
		single, err := probability.NewDiscreteSpace(probability.UniformWeights(ids...))
		if err != nil {
			return nil, fmt.Errorf("Bag.Draw(%d): %w", n, err)
		}
		if d.Items, err = probability.Repeat[int](single, n); err != nil {
			return nil, fmt.Errorf("Bag.Draw(%d): %w", n, err)
		}
		if d.byLabel, err = b.labelProduct(n); err != nil {
			return nil, fmt.Errorf("Bag.Draw(%d): %w", n, err)
		}
	case WithoutReplacement:
		if d.Items, err = probability.NewSampleWithoutReplacementSpace(probability.UniformWeights(ids...), n); err != nil {
			return nil, fmt.Errorf("Bag.Draw(%d): %w", n, err)
		}
	default:
		return nil, fmt.Errorf("Bag.Draw(%d, %s): %w", n, mode, ErrUnknownMode)
	}

	return d, nil
}

// labelProduct is the push-forward of n independent item draws onto labels:
// each label weighted by its item count.
func (b *Bag) labelProduct(n int) (*probability.FiniteProductSpace[string], error) {
	weights := make(map[string]int64, len(b.items))
	for _, it := range b.items {
		weights[it.Label] = int64(it.Count)
	}
	single, err := probability.NewDiscreteSpace(probability.IntWeights(weights))
	if err != nil {
		return nil, err
	}

	return probability.Repeat[string](single, n)
}

// N returns the number of draws.
func (d *Draw) N() int { return d.n }

// Mode returns the draw mode.
func (d *Draw) Mode() Mode { return d.mode }

// Probability measures a label event. Level sets under replacement go
// through the label-level multinomial form; everything else is pulled back
// through Labels and measured on Items.
func (d *Draw) Probability(ev probability.Event[string]) (*big.Rat, error) {
	if ls, ok := ev.(*probability.CountLevelSetEvent[string]); ok && d.byLabel != nil {
		return d.byLabel.Probability(ls)
	}

	pre, err := d.Labels.Inverse(ev)
	if err != nil {
		return nil, fmt.Errorf("Draw.Probability: %w", err)
	}
	p, err := d.Items.Probability(pre)
	if err != nil {
		return nil, fmt.Errorf("Draw.Probability: %w", err)
	}

	return p, nil
}

// SequenceProbability returns the probability that len(labels) draws show
// exactly these labels in this order. Unknown labels give 0.
func (b *Bag) SequenceProbability(labels []string, mode Mode) (*big.Rat, error) {
	d, err := b.Draw(len(labels), mode)
	if err != nil {
		return nil, err
	}

	coords := make([]probability.Event[string], len(labels))
	for i, l := range labels {
		coords[i] = probability.NewDiscreteEvent(l)
	}

	return d.Probability(probability.NewFiniteProductEvent(coords...))
}

// CountProbability returns the probability that Σ counts draws show each
// label exactly counts[label] times, in any order. Unknown labels with a
// positive count give 0.
func (b *Bag) CountProbability(counts map[string]int, mode Mode) (*big.Rat, error) {
	ls, err := probability.NewCountLevelSetEvent(probability.CountsFromMap(counts, strings.Compare)...)
	if err != nil {
		return nil, err
	}
	d, err := b.Draw(ls.Total(), mode)
	if err != nil {
		return nil, err
	}

	return d.Probability(ls)
}
