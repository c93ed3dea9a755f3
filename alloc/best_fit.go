package alloc

import "github.com/joshuapare/memfit/pool"

// bestFit takes the smallest block that fits, minimizing the leftover space
// in the chosen block. Ties go to the earliest block.
type bestFit struct{}

func (bestFit) pick(blocks []pool.Block, size int) int {
	return scanBy(blocks, size, func(cand, cur pool.Block) bool {
		return cand.Size < cur.Size
	})
}
