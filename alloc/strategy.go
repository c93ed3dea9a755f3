package alloc

import (
	"fmt"
	"strings"
)

// Strategy selects the candidate-selection rule used for a run.
type Strategy uint8

const (
	// FirstFit picks the first fitting block in pool order.
	FirstFit Strategy = iota + 1
	// BestFit picks the smallest fitting block.
	BestFit
	// NextFit picks the first fitting block after the previous placement.
	NextFit
	// WorstFit picks the largest fitting block.
	WorstFit
)

var strategyNames = map[Strategy]string{
	FirstFit: "first-fit",
	BestFit:  "best-fit",
	NextFit:  "next-fit",
	WorstFit: "worst-fit",
}

// Strategies returns every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{FirstFit, BestFit, NextFit, WorstFit}
}

// String returns the canonical name, e.g. "best-fit".
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// Valid reports whether s is one of the four strategies.
func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]
	return ok
}

// ParseStrategy resolves a strategy name. Matching ignores case and the
// separators '-', '_' and ' ', and the "fit" suffix is optional, so
// "best-fit", "bestFit", "BEST_FIT" and "best" are all BestFit.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(name)
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	key = strings.TrimSuffix(key, "fit")

	switch key {
	case "first":
		return FirstFit, nil
	case "best":
		return BestFit, nil
	case "next":
		return NextFit, nil
	case "worst":
		return WorstFit, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
