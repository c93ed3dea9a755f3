// Package termsize reports the width of the terminal attached to a file.
package termsize

import "os"

// Width returns the column count of the terminal behind f, or fallback if f
// is not a terminal or its size cannot be read.
func Width(f *os.File, fallback int) int {
	if f == nil {
		return fallback
	}
	w, err := width(f.Fd())
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
