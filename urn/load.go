package urn

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the on-disk shape of a bag.
type document struct {
	Name  string `yaml:"name"`
	Items []Item `yaml:"items"`
}

// Load decodes a single YAML bag document from r and validates it with New.
// Unknown fields are rejected.
func Load(r io.Reader) (*Bag, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return New(doc.Name, doc.Items...)
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (*Bag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	b, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return b, nil
}
