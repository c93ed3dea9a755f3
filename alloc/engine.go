package alloc

import (
	"fmt"

	"github.com/joshuapare/memfit/pool"
)

// selector is the candidate-selection rule of a strategy.
//
// pick is called once per valid request, in request order, and returns the
// position of the chosen block or -1. A non-negative return is always
// allocated by the caller, so stateful selectors may commit their state in
// pick.
type selector interface {
	pick(blocks []pool.Block, size int) int
}

func newSelector(s Strategy) (selector, error) {
	switch s {
	case FirstFit:
		return firstFit{}, nil
	case BestFit:
		return bestFit{}, nil
	case NextFit:
		return &nextFit{}, nil
	case WorstFit:
		return worstFit{}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
}

// Allocate runs one simulation: it takes a fresh copy of p and places every
// request in order using the given strategy.
//
// Unplaceable requests are not errors; they show up in Result.Placements.
// Errors are only returned for an unknown strategy or a nil pool. Neither p
// nor requests is modified.
func Allocate(s Strategy, requests []Request, p *pool.Pool) (*Result, error) {
	if p == nil {
		return nil, ErrNilPool
	}
	sel, err := newSelector(s)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Strategy:   s,
		Blocks:     p.Fresh(),
		Placements: make([]Placement, len(requests)),
	}

	for i, req := range requests {
		pl := Placement{Index: i, Size: req.Size, Block: -1, BlockID: -1}

		switch {
		case req.Size <= 0:
			pl.Outcome = InvalidSize
		default:
			idx := sel.pick(res.Blocks, req.Size)
			if idx < 0 {
				pl.Outcome = NoFit
				break
			}
			res.Blocks[idx].Allocated = true
			res.Blocks[idx].ProcessSize = req.Size
			pl.Outcome = Placed
			pl.Block = idx
			pl.BlockID = res.Blocks[idx].ID
		}

		res.Placements[i] = pl
	}

	return res, nil
}

// AllocateSizes is Allocate for plain request sizes.
func AllocateSizes(s Strategy, sizes []int, p *pool.Pool) (*Result, error) {
	return Allocate(s, Requests(sizes...), p)
}
