package memfit

import (
	"github.com/rs/xid"

	"github.com/joshuapare/memfit/alloc"
	"github.com/joshuapare/memfit/pool"
)

// Report is the outcome of one simulation run.
type Report struct {
	// RunID identifies the run in logs.
	RunID    string         `json:"runId"`
	Strategy alloc.Strategy `json:"strategy"`
	Result   *alloc.Result  `json:"result"`

	// TotalSize is the combined capacity of the pool the run used.
	TotalSize int `json:"totalSize"`
}

// Summary condenses a report into counters suitable for tables.
type Summary struct {
	Strategy      alloc.Strategy `json:"strategy"`
	Requests      int            `json:"requests"`
	Placed        int            `json:"placed"`
	Unplaced      int            `json:"unplaced"`
	Allocated     int            `json:"allocated"`
	Fragmentation int            `json:"fragmentation"`
	TotalSize     int            `json:"totalSize"`
	Utilization   float64        `json:"utilization"`
}

// Summary computes the report's summary.
func (r *Report) Summary() Summary {
	placed := len(r.Result.Placed())
	return Summary{
		Strategy:      r.Strategy,
		Requests:      len(r.Result.Placements),
		Placed:        placed,
		Unplaced:      len(r.Result.Placements) - placed,
		Allocated:     r.Result.AllocatedSize(),
		Fragmentation: r.Result.Fragmentation(),
		TotalSize:     r.TotalSize,
		Utilization:   r.Result.Utilization(r.TotalSize),
	}
}

// Simulate resolves the strategy name and runs it. See Run.
func Simulate(p *pool.Pool, strategy string, sizes []int, opts *Options) (*Report, error) {
	s, err := alloc.ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}
	return Run(p, s, sizes, opts)
}

// Run validates the process sizes and runs one strategy over them.
// The pool and sizes are not modified.
func Run(p *pool.Pool, s alloc.Strategy, sizes []int, opts *Options) (*Report, error) {
	if p == nil {
		return nil, ErrNilPool
	}
	if err := ValidateSizes(sizes); err != nil {
		return nil, err
	}
	return run(p, s, sizes, opts)
}

// ValidateSizes returns an *InvalidSizeError for the first size that is not positive.
func ValidateSizes(sizes []int) error {
	for i, size := range sizes {
		if size <= 0 {
			return &InvalidSizeError{Index: i, Size: size}
		}
	}
	return nil
}

// run assumes validated input.
func run(p *pool.Pool, s alloc.Strategy, sizes []int, opts *Options) (*Report, error) {
	res, err := alloc.AllocateSizes(s, sizes, p)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		RunID:     xid.New().String(),
		Strategy:  s,
		Result:    res,
		TotalSize: p.TotalSize(),
	}

	log := opts.logger().With("run", rep.RunID, "strategy", s.String())
	for _, pl := range res.Unplaced() {
		log.Warn("process could not be allocated", "process", pl.Index+1, "size", pl.Size)
	}

	sum := rep.Summary()
	log.Info("simulation finished",
		"requests", sum.Requests,
		"placed", sum.Placed,
		"unplaced", sum.Unplaced,
		"fragmentation", sum.Fragmentation,
	)

	return rep, nil
}
