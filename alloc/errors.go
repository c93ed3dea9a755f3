package alloc

import "errors"

var (
	// ErrUnknownStrategy indicates a strategy value or name that is not one of
	// the four placement rules.
	ErrUnknownStrategy = errors.New("alloc: unknown strategy")

	// ErrNilPool indicates that no pool was supplied.
	ErrNilPool = errors.New("alloc: nil pool")
)
