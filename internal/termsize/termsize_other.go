//go:build !unix && !windows

package termsize

import "errors"

func width(uintptr) (int, error) {
	return 0, errors.New("termsize: unsupported platform")
}
