package pool

import "errors"

var (
	// ErrEmptyPool indicates a pool definition with no blocks.
	ErrEmptyPool = errors.New("pool: no blocks defined")

	// ErrBadSize indicates a block with a zero or negative capacity.
	ErrBadSize = errors.New("pool: block size must be positive")

	// ErrBadID indicates a block with a negative id.
	ErrBadID = errors.New("pool: block id must be non-negative")

	// ErrDuplicateID indicates two blocks sharing the same id.
	ErrDuplicateID = errors.New("pool: duplicate block id")

	// ErrBadDefinition indicates a pool definition document that could not be parsed.
	ErrBadDefinition = errors.New("pool: bad definition")
)
