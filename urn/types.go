package urn

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBag indicates a bag without items.
	ErrEmptyBag = errors.New("urn: bag has no items")

	// ErrEmptyLabel indicates an item with an empty label.
	ErrEmptyLabel = errors.New("urn: item label is empty")

	// ErrBadCount indicates an item count below 1.
	ErrBadCount = errors.New("urn: item count must be positive")

	// ErrDuplicateLabel indicates two items sharing a label.
	ErrDuplicateLabel = errors.New("urn: duplicate item label")

	// ErrUnknownMode indicates a Mode value that is not declared below.
	ErrUnknownMode = errors.New("urn: unknown draw mode")

	// ErrDecode indicates the YAML document could not be decoded.
	ErrDecode = errors.New("urn: decode bag")
)

// Item is one kind of object in the bag: Count indistinguishable copies
// carrying Label.
type Item struct {
	Label string `yaml:"label"`
	Count int    `yaml:"count"`
}

// Mode says whether a drawn item goes back into the bag.
type Mode int

const (
	// WithReplacement returns every item before the next draw.
	WithReplacement Mode = iota

	// WithoutReplacement keeps drawn items out of the bag.
	WithoutReplacement
)

func (m Mode) String() string {
	switch m {
	case WithReplacement:
		return "with replacement"
	case WithoutReplacement:
		return "without replacement"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
