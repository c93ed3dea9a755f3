package alloc

import "github.com/joshuapare/memfit/pool"

// worstFit takes the largest block that fits, leaving the biggest possible
// remainder in the chosen block. Ties go to the earliest block.
type worstFit struct{}

func (worstFit) pick(blocks []pool.Block, size int) int {
	return scanBy(blocks, size, func(cand, cur pool.Block) bool {
		return cand.Size > cur.Size
	})
}
