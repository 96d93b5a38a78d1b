package pgr

import "bytes"

// Rows returns the number of terminal rows needed to display buf with
// lines wrapped at exactly width columns. Every newline-delimited
// segment occupies at least one row, including the empty segment after
// a trailing newline; a segment whose visible width is an exact
// multiple of width wraps to exactly that many rows. width must be
// positive; callers guard unknown geometry before sizing.
func Rows(buf []byte, width int) int {
	rows := 0
	for _, line := range bytes.Split(buf, []byte{'\n'}) {
		vis := VisibleWidth(line)
		if vis > 0 {
			vis--
		}
		rows += vis/width + 1
	}
	return rows
}
