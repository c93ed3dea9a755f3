package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memfit/pool"
)

// demoPool returns the pool used throughout the scenarios: 100, 500, 200, 300, 600.
func demoPool(t testing.TB) *pool.Pool {
	t.Helper()
	p, err := pool.New(100, 500, 200, 300, 600)
	require.NoError(t, err)
	return p
}

// mustAllocate runs the engine and fails the test on error.
func mustAllocate(t testing.TB, s Strategy, p *pool.Pool, sizes ...int) *Result {
	t.Helper()
	res, err := AllocateSizes(s, sizes, p)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

// blockIDs returns the BlockID of every placement, -1 for unplaced requests.
func blockIDs(res *Result) []int {
	ids := make([]int, len(res.Placements))
	for i, pl := range res.Placements {
		ids[i] = pl.BlockID
	}
	return ids
}

// assertInvariants checks the properties every run must satisfy regardless of
// strategy: block identity is preserved, each block holds at most one process,
// capacity is respected, and placements agree with block state.
func assertInvariants(t testing.TB, res *Result, p *pool.Pool, sizes []int) {
	t.Helper()

	require.Len(t, res.Blocks, p.Len(), "block count must match pool")
	require.Len(t, res.Placements, len(sizes), "one placement per request")

	for i, b := range res.Blocks {
		orig := p.Block(i)
		assert.Equal(t, orig.ID, b.ID, "block %d id changed", i)
		assert.Equal(t, orig.Size, b.Size, "block %d size changed", i)
		if b.Allocated {
			assert.LessOrEqual(t, b.ProcessSize, b.Size, "block %d over capacity", i)
			assert.Positive(t, b.ProcessSize, "block %d allocated with empty process", i)
		} else {
			assert.Zero(t, b.ProcessSize, "free block %d carries a process size", i)
		}
	}

	owners := make(map[int]int)
	for i, pl := range res.Placements {
		assert.Equal(t, i, pl.Index)
		assert.Equal(t, sizes[i], pl.Size)

		if !pl.IsPlaced() {
			assert.Equal(t, -1, pl.Block, "unplaced request %d points at a block", i)
			assert.Equal(t, -1, pl.BlockID)
			continue
		}

		prev, taken := owners[pl.Block]
		assert.False(t, taken, "block %d holds requests %d and %d", pl.Block, prev, i)
		owners[pl.Block] = i

		b := res.Blocks[pl.Block]
		assert.True(t, b.Allocated)
		assert.Equal(t, pl.Size, b.ProcessSize)
		assert.Equal(t, b.ID, pl.BlockID)
	}

	allocated := 0
	for _, b := range res.Blocks {
		if b.Allocated {
			allocated++
		}
	}
	assert.Equal(t, len(owners), allocated, "allocated blocks without a placement")
}
