package memfit

import "fmt"

// Workload is an ordered list of process sizes being prepared for a run.
// The zero value is an empty workload ready to use.
type Workload struct {
	sizes []int
}

// NewWorkload builds a workload from sizes, rejecting any that are not positive.
func NewWorkload(sizes ...int) (*Workload, error) {
	if err := ValidateSizes(sizes); err != nil {
		return nil, err
	}
	return &Workload{sizes: append([]int(nil), sizes...)}, nil
}

// Add appends a process.
func (w *Workload) Add(size int) error {
	if size <= 0 {
		return &InvalidSizeError{Index: len(w.sizes), Size: size}
	}
	w.sizes = append(w.sizes, size)
	return nil
}

// Remove deletes the process at index, shifting later processes down.
func (w *Workload) Remove(index int) error {
	if index < 0 || index >= len(w.sizes) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(w.sizes))
	}
	out := make([]int, 0, len(w.sizes)-1)
	out = append(out, w.sizes[:index]...)
	w.sizes = append(out, w.sizes[index+1:]...)
	return nil
}

// Sizes returns a copy of the process sizes in order.
func (w *Workload) Sizes() []int {
	return append([]int(nil), w.sizes...)
}

// Len returns the number of processes.
func (w *Workload) Len() int {
	return len(w.sizes)
}

// Clear removes every process.
func (w *Workload) Clear() {
	w.sizes = nil
}
