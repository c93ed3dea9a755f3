// Package pool defines the fixed memory pool that placement strategies run against.
//
// # Overview
//
// A Pool is an ordered, immutable sequence of fixed-size partitions (blocks).
// It is built once from static configuration and then shared by every
// simulation run:
//
//	p, err := pool.New(100, 500, 200, 300, 600)
//	if err != nil {
//	    return err
//	}
//
//	blocks := p.Fresh() // independent, unallocated working copy
//
// Block order is significant. It is the scan order for first-fit and next-fit
// and the tie-break order for best-fit and worst-fit.
//
// # Working Copies
//
// Fresh returns a new slice on every call with each block reset to
// unallocated. Callers may mutate the returned blocks freely; the pool itself
// is never modified after construction, so any number of goroutines can take
// working copies concurrently without synchronization.
//
// # Pool Definitions
//
// Pools can be loaded from YAML or JSON documents (JSON is parsed as YAML):
//
//	sizes: [100, 500, 200, 300, 600]
//
// or, with explicit block ids:
//
//	blocks:
//	  - {id: 0, size: 100}
//	  - {id: 1, size: 500}
//
// Block ids default to the block's position when omitted.
package pool
