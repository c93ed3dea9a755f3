/*
Package memfit provides a high-level API for running placement simulations.

It sits between user input and the allocation engine: it validates process
sizes, resolves strategy names, tags each run with an id and logs what
happened. The engine itself lives in package alloc and never sees invalid
input coming through this package.

# Quick Start

Run one strategy against the demo pool:

	rep, err := memfit.Simulate(pool.Default(), "best-fit", []int{212, 417, 112, 426}, nil)
	if err != nil {
	    log.Fatal(err)
	}
	for _, pl := range rep.Result.Unplaced() {
	    fmt.Printf("process %d could not be allocated\n", pl.Index+1)
	}

Compare all strategies on the same workload:

	reports, err := memfit.Compare(ctx, pool.Default(), sizes, nil)

# Building a Workload

Workload is an ordered process list with add/remove editing:

	var w memfit.Workload
	_ = w.Add(212)
	_ = w.Add(417)
	_ = w.Remove(0)
	rep, err := memfit.Run(p, alloc.FirstFit, w.Sizes(), nil)

# Error Handling

Unplaced processes are never errors; they are reported in the result.
Errors are returned for input the engine should never see:

  - ErrInvalidSize (as *InvalidSizeError) for zero or negative sizes
  - ErrNilPool when no pool is given
  - alloc.ErrUnknownStrategy for unrecognized strategy names
*/
package memfit
