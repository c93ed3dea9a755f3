package alloc

import "github.com/joshuapare/memfit/pool"

// scanBy does a full scan from index 0 and returns the position of the
// preferred fitting block, or -1 if nothing fits.
//
// better(cand, cur) must be a strict ordering so the earliest block wins ties.
func scanBy(blocks []pool.Block, size int, better func(cand, cur pool.Block) bool) int {
	idx := -1
	for i, b := range blocks {
		if !b.Fits(size) {
			continue
		}
		if idx == -1 || better(b, blocks[idx]) {
			idx = i
		}
	}
	return idx
}
