// Package units formats sizes for display.
package units

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Suffix is the unit block and process sizes are displayed in.
const Suffix = "KB"

var printer = message.NewPrinter(language.English)

// Number formats n with thousands separators, e.g. 12,345.
func Number(n int) string {
	return printer.Sprintf("%d", n)
}

// Size formats n as a size, e.g. "1,700 KB".
func Size(n int) string {
	return Number(n) + " " + Suffix
}

// Percent formats a fraction as a percentage with one decimal, e.g. "43.6%".
func Percent(f float64) string {
	return printer.Sprintf("%.1f%%", f*100)
}
