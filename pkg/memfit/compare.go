package memfit

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/memfit/alloc"
	"github.com/joshuapare/memfit/pool"
)

// Compare runs every strategy over the same workload concurrently and returns
// the reports in alloc.Strategies order.
//
// Each run works on its own copy of the pool, so the reports are identical
// to running the strategies one after another. If ctx is cancelled before a
// run starts, Compare returns the context error.
func Compare(ctx context.Context, p *pool.Pool, sizes []int, opts *Options) ([]*Report, error) {
	if p == nil {
		return nil, ErrNilPool
	}
	if err := ValidateSizes(sizes); err != nil {
		return nil, err
	}

	strategies := alloc.Strategies()
	reports := make([]*Report, len(strategies))

	g, ctx := errgroup.WithContext(ctx)
	for i, s := range strategies {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rep, err := run(p, s, sizes, opts)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
