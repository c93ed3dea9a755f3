package memfit

import (
	"errors"
	"fmt"

	"github.com/joshuapare/memfit/alloc"
)

var (
	// ErrInvalidSize indicates a process size that is zero or negative.
	ErrInvalidSize = errors.New("memfit: process size must be positive")

	// ErrNilPool indicates that no pool was supplied.
	ErrNilPool = alloc.ErrNilPool

	// ErrIndexOutOfRange indicates a workload index that does not exist.
	ErrIndexOutOfRange = errors.New("memfit: process index out of range")
)

// InvalidSizeError reports the first invalid process size in a workload.
type InvalidSizeError struct {
	Index int
	Size  int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("memfit: process %d has size %d, must be positive", e.Index+1, e.Size)
}

// Is makes errors.Is(err, ErrInvalidSize) match.
func (e *InvalidSizeError) Is(target error) bool {
	return target == ErrInvalidSize
}
