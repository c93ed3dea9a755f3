package pool

import "fmt"

// defaultSizes is the demo pool used when no definition is configured.
var defaultSizes = []int{100, 500, 200, 300, 600}

// Pool is an ordered, immutable set of memory blocks.
//
// The zero value is an empty pool. Every placement against an empty pool
// fails, which is a valid (if uninteresting) simulation.
type Pool struct {
	blocks []Block
}

// New builds a pool from block sizes. Block ids are assigned from the
// position of each size, starting at 0.
func New(sizes ...int) (*Pool, error) {
	if len(sizes) == 0 {
		return nil, ErrEmptyPool
	}

	blocks := make([]Block, len(sizes))
	for i, size := range sizes {
		blocks[i] = Block{ID: i, Size: size}
	}
	return FromBlocks(blocks)
}

// FromBlocks builds a pool from blocks with explicit ids. Any allocation
// state carried by the input is discarded. The input slice is copied.
func FromBlocks(blocks []Block) (*Pool, error) {
	if len(blocks) == 0 {
		return nil, ErrEmptyPool
	}

	seen := make(map[int]int, len(blocks))
	out := make([]Block, len(blocks))
	for i, b := range blocks {
		if b.Size <= 0 {
			return nil, fmt.Errorf("%w: block %d has size %d", ErrBadSize, i, b.Size)
		}
		if b.ID < 0 {
			return nil, fmt.Errorf("%w: block %d has id %d", ErrBadID, i, b.ID)
		}
		if prev, ok := seen[b.ID]; ok {
			return nil, fmt.Errorf("%w: id %d used by blocks %d and %d", ErrDuplicateID, b.ID, prev, i)
		}
		seen[b.ID] = i
		out[i] = b.reset()
	}

	return &Pool{blocks: out}, nil
}

// Default returns the demo pool: sizes 100, 500, 200, 300 and 600 with ids 0..4.
func Default() *Pool {
	p, err := New(defaultSizes...)
	if err != nil {
		// defaultSizes is a valid constant definition
		panic(err)
	}
	return p
}

// Fresh returns a new working copy of the pool with every block unallocated.
// Order and ids match the pool. The pool is left untouched.
func (p *Pool) Fresh() []Block {
	if p == nil {
		return []Block{}
	}
	out := make([]Block, len(p.blocks))
	for i, b := range p.blocks {
		out[i] = b.reset()
	}
	return out
}

// Blocks returns a copy of the pool's blocks.
func (p *Pool) Blocks() []Block {
	return p.Fresh()
}

// Block returns the block at position i.
func (p *Pool) Block(i int) Block {
	return p.blocks[i]
}

// Len returns the number of blocks.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.blocks)
}

// TotalSize returns the combined capacity of all blocks. Renderers use it to
// size blocks proportionally.
func (p *Pool) TotalSize() int {
	if p == nil {
		return 0
	}
	total := 0
	for _, b := range p.blocks {
		total += b.Size
	}
	return total
}

// Sizes returns the block sizes in pool order.
func (p *Pool) Sizes() []int {
	if p == nil {
		return nil
	}
	sizes := make([]int, len(p.blocks))
	for i, b := range p.blocks {
		sizes[i] = b.Size
	}
	return sizes
}
