package alloc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAllocationDeterminism verifies that repeated runs with the same pool,
// requests and strategy produce identical results.
func TestAllocationDeterminism(t *testing.T) {
	sizes := []int{212, 417, 112, 426, 50, 99, 300}
	p := demoPool(t)

	for _, s := range Strategies() {
		t.Run(s.String(), func(t *testing.T) {
			first := mustAllocate(t, s, p, sizes...)
			for range 5 {
				again := mustAllocate(t, s, p, sizes...)
				assert.True(t, first.Equal(again), "runs must be identical")
			}
		})
	}
}

// TestNoCrossRunContamination verifies that running one strategy and then
// another on the same pool gives the same result as running the second alone.
func TestNoCrossRunContamination(t *testing.T) {
	sizes := []int{212, 417, 112, 426}

	for _, a := range Strategies() {
		for _, b := range Strategies() {
			shared := demoPool(t)
			mustAllocate(t, a, shared, sizes...)
			afterA := mustAllocate(t, b, shared, sizes...)

			alone := mustAllocate(t, b, demoPool(t), sizes...)
			assert.True(t, alone.Equal(afterA), "%s then %s", a, b)
		}
	}
}

// TestConcurrentRuns verifies that concurrent calls against one pool are
// independent of each other.
func TestConcurrentRuns(t *testing.T) {
	p := demoPool(t)
	sizes := []int{212, 417, 112, 426}

	want := make(map[Strategy]*Result)
	for _, s := range Strategies() {
		want[s] = mustAllocate(t, s, p, sizes...)
	}

	const workers = 16
	results := make([]*Result, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s := Strategies()[i%len(Strategies())]
			results[i], errs[i] = AllocateSizes(s, sizes, p)
		}(i)
	}
	wg.Wait()

	for i, res := range results {
		require.NoError(t, errs[i])
		assert.True(t, want[res.Strategy].Equal(res), "worker %d (%s)", i, res.Strategy)
	}
	assert.Equal(t, p.Fresh(), p.Blocks(), "pool must stay unallocated")
}
