package alloc

import "github.com/joshuapare/memfit/pool"

// firstFit scans from the start of the pool on every request and takes the
// first block that fits.
type firstFit struct{}

func (firstFit) pick(blocks []pool.Block, size int) int {
	for i, b := range blocks {
		if b.Fits(size) {
			return i
		}
	}
	return -1
}
