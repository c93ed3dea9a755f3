package pool

// Block is one fixed partition of the pool, plus the allocation outcome
// attached to it for a single run.
//
// ID and Size never change once the pool is built. Allocated and ProcessSize
// are only meaningful on working copies returned by Pool.Fresh.
type Block struct {
	ID          int  `json:"blockId"              yaml:"id"`
	Size        int  `json:"size"                 yaml:"size"`
	Allocated   bool `json:"isAllocated"          yaml:"-"`
	ProcessSize int  `json:"allocatedProcessSize" yaml:"-"`
}

// Free reports whether no process has been placed in the block.
func (b Block) Free() bool {
	return !b.Allocated
}

// Fits is the fit predicate: the block is free and large enough for size.
func (b Block) Fits(size int) bool {
	return !b.Allocated && b.Size >= size
}

// Fragmentation returns the unused capacity inside an allocated block.
// Free blocks report zero.
func (b Block) Fragmentation() int {
	if !b.Allocated {
		return 0
	}
	return b.Size - b.ProcessSize
}

// reset clears the per-run allocation state.
func (b Block) reset() Block {
	b.Allocated = false
	b.ProcessSize = 0
	return b
}
