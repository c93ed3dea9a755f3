package pool

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// definition is the on-disk pool format. Exactly one of Sizes or Blocks is set.
type definition struct {
	Sizes  []int      `yaml:"sizes"`
	Blocks []blockDef `yaml:"blocks"`
}

type blockDef struct {
	ID   *int `yaml:"id"`
	Size int  `yaml:"size"`
}

// Load parses a pool definition from r. JSON documents are accepted since
// they are valid YAML.
func Load(r io.Reader) (*Pool, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %w", ErrBadDefinition, ErrEmptyPool)
		}
		return nil, fmt.Errorf("%w: %w", ErrBadDefinition, err)
	}

	p, err := def.build()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDefinition, err)
	}
	return p, nil
}

// LoadFile reads a pool definition from the file at path.
func LoadFile(path string) (*Pool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pool definition: %w", err)
	}
	defer f.Close()

	p, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func (d definition) build() (*Pool, error) {
	switch {
	case len(d.Sizes) > 0 && len(d.Blocks) > 0:
		return nil, errors.New("both sizes and blocks given")
	case len(d.Sizes) > 0:
		return New(d.Sizes...)
	}

	blocks := make([]Block, len(d.Blocks))
	for i, bd := range d.Blocks {
		id := i
		if bd.ID != nil {
			id = *bd.ID
		}
		blocks[i] = Block{ID: id, Size: bd.Size}
	}
	return FromBlocks(blocks)
}
