package pgr

// scanState tracks progress through a possible SGR escape sequence.
type scanState int

const (
	scanNormal scanState = iota
	// scanEsc means an ESC byte was seen and a '[' is expected next.
	scanEsc
	// scanCSI means the first byte of the two-byte UTF-8 encoding of
	// the CSI codepoint (0xc2) was seen and 0x9b is expected next.
	scanCSI
	// scanMid means we are inside an introduced sequence, counting
	// consumed bytes in case the sequence turns out unrecognized.
	scanMid
)

// VisibleWidth estimates how many terminal columns a single line (no
// newline bytes) occupies when rendered. Recognized SGR sequences
// (ESC [ ... m, or the single-codepoint CSI form) contribute zero
// columns; every other byte contributes exactly one. The estimate is
// byte-granular on purpose: wide glyphs and non-SGR escapes are not
// interpreted, so heavily styled input errs toward paging rather than
// truncation.
func VisibleWidth(line []byte) int {
	width := 0
	state := scanNormal
	consumed := 0
	for _, b := range line {
		switch state {
		case scanNormal:
			switch b {
			case 0x1b:
				state = scanEsc
			case 0xc2:
				state = scanCSI
			default:
				width++
			}
		case scanEsc:
			if b == '[' {
				state = scanMid
				consumed = 2
			} else {
				// Not a sequence after all: the ESC and this byte
				// both count as visible.
				state = scanNormal
				width += 2
			}
		case scanCSI:
			if b == 0x9b {
				state = scanMid
				consumed = 2
			} else {
				state = scanNormal
				width += 2
			}
		case scanMid:
			switch {
			case b >= '0' && b <= '9' || b == ';':
				consumed++
			case b == 'm':
				state = scanNormal
			default:
				// Unrecognized sequence: count the whole accumulated
				// run plus this byte as visible text.
				width += consumed + 1
				state = scanNormal
			}
		}
	}
	// A sequence still open at end of line was never completed; its
	// bytes count as visible.
	switch state {
	case scanEsc, scanCSI:
		width++
	case scanMid:
		width += consumed
	}
	return width
}
