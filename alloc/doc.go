// Package alloc places process requests into the blocks of a fixed memory pool.
//
// # Overview
//
// The engine implements the four classic contiguous placement rules:
//
//   - FirstFit: first free block, in pool order, that is large enough
//   - BestFit: smallest free block that is large enough
//   - WorstFit: largest free block that is large enough
//   - NextFit: like FirstFit, but each search resumes just after the block
//     used by the previous successful placement and wraps around the pool
//
// Ties for BestFit and WorstFit go to the earliest block in pool order.
//
// # Usage Example
//
//	p := pool.Default()
//	res, err := alloc.AllocateSizes(alloc.BestFit, []int{212, 417, 112, 426}, p)
//	if err != nil {
//	    return err
//	}
//
//	for _, pl := range res.Unplaced() {
//	    fmt.Printf("process %d (%d) could not be allocated\n", pl.Index, pl.Size)
//	}
//
// # Run Semantics
//
// Every call works on its own copy of the pool (pool.Pool.Fresh), processes
// the requests strictly in order and returns one Result. A block goes from
// free to allocated at most once per run and never back; blocks are not
// split. A request that fits no free block is recorded with outcome NoFit
// and the run continues with the next request. Requests with a zero or
// negative size are recorded as InvalidSize without touching any block.
//
// The next-fit cursor lives only for the duration of one call. Each next-fit
// search visits every block once, starting at the cursor, before giving up.
//
// # Thread Safety
//
// Allocate has no shared state. The pool is only read, so concurrent calls
// against the same pool are independent and need no locking.
package alloc
