package alloc

import (
	"fmt"
	"slices"

	"github.com/joshuapare/memfit/pool"
)

// Request is one pending allocation demand. Requests are identified by their
// position in the request list.
type Request struct {
	Size int `json:"size"`
}

// Requests converts plain sizes into requests.
func Requests(sizes ...int) []Request {
	reqs := make([]Request, len(sizes))
	for i, size := range sizes {
		reqs[i] = Request{Size: size}
	}
	return reqs
}

// Outcome records what happened to a single request.
type Outcome uint8

const (
	// Placed means the request occupies a block.
	Placed Outcome = iota
	// NoFit means no free block was large enough.
	NoFit
	// InvalidSize means the request size was zero or negative.
	InvalidSize
)

func (o Outcome) String() string {
	switch o {
	case Placed:
		return "placed"
	case NoFit:
		return "unplaced"
	case InvalidSize:
		return "invalid"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Placement is the per-request record of a run.
type Placement struct {
	// Index is the request's position in the request list.
	Index int `json:"index"`
	// Size is the requested size.
	Size    int     `json:"size"`
	Outcome Outcome `json:"outcome"`
	// Block is the position of the target block in Result.Blocks, or -1.
	Block int `json:"block"`
	// BlockID is the id of the target block, or -1.
	BlockID int `json:"blockId"`
}

// IsPlaced reports whether the request was placed.
func (p Placement) IsPlaced() bool {
	return p.Outcome == Placed
}

// Result is the snapshot produced by one run.
type Result struct {
	Strategy Strategy `json:"strategy"`

	// Blocks is the pool after all requests were applied, in pool order.
	Blocks []pool.Block `json:"blocks"`

	// Placements holds one record per request, in request order.
	Placements []Placement `json:"placements"`
}

// Placed returns the records of requests that were placed.
func (r *Result) Placed() []Placement {
	return r.filter(true)
}

// Unplaced returns the records of requests that were not placed, for any reason.
func (r *Result) Unplaced() []Placement {
	return r.filter(false)
}

func (r *Result) filter(placed bool) []Placement {
	var out []Placement
	for _, p := range r.Placements {
		if p.IsPlaced() == placed {
			out = append(out, p)
		}
	}
	return out
}

// AllocatedSize returns the combined size of all placed processes.
func (r *Result) AllocatedSize() int {
	total := 0
	for _, b := range r.Blocks {
		if b.Allocated {
			total += b.ProcessSize
		}
	}
	return total
}

// Fragmentation returns the unused capacity inside allocated blocks.
func (r *Result) Fragmentation() int {
	total := 0
	for _, b := range r.Blocks {
		total += b.Fragmentation()
	}
	return total
}

// Utilization returns the placed size as a fraction of total capacity.
func (r *Result) Utilization(total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(r.AllocatedSize()) / float64(total)
}

// Equal reports whether two results describe the same run outcome.
func (r *Result) Equal(other *Result) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Strategy == other.Strategy &&
		slices.Equal(r.Blocks, other.Blocks) &&
		slices.Equal(r.Placements, other.Placements)
}
