package alloc

import "github.com/joshuapare/memfit/pool"

// nextFit resumes each search just after the block used by the previous
// successful placement and wraps around the end of the pool.
//
// Every search visits each block exactly once before reporting no fit. The
// cursor only moves on success; a failed request leaves it where it was.
type nextFit struct {
	cursor int
}

func (f *nextFit) pick(blocks []pool.Block, size int) int {
	m := len(blocks)
	for n := 0; n < m; n++ {
		i := (f.cursor + n) % m
		if blocks[i].Fits(size) {
			f.cursor = (i + 1) % m
			return i
		}
	}
	return -1
}
