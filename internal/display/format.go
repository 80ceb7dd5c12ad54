// Package display turns a signed remaining duration into the big-digit
// block shown on screen: formatting, glyph labelling, state
// classification and fitting the block into the terminal.
package display

import (
	"fmt"
	"time"
)

// Format renders d as MM:SS using whole elapsed seconds (fractions are
// dropped, not rounded). Minutes are padded to two digits and grow
// past two when needed. A leading '-' is added when showSign is set and
// d is negative.
func Format(d time.Duration, showSign bool) string {
	ms := d.Milliseconds()
	abs := ms
	if abs < 0 {
		abs = -abs
	}

	totalSeconds := abs / 1000
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60

	sign := ""
	if showSign && ms < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%02d:%02d", sign, minutes, seconds)
}
