package pgr

import (
	"errors"
	"io"
	"syscall"
)

// Verdict says whether the input fits on one screen.
type Verdict int

const (
	// ShowAll means the source was exhausted before overflowing the
	// screen; the Decision's Prefix holds the entire input.
	ShowAll Verdict = iota
	// Page means the buffered prefix already overflows the screen, or
	// the screen size is unknown; the rest of the source is still
	// unread and must be streamed after the prefix.
	Page
)

// Decision is the outcome of the sizing phase. Prefix owns every byte
// consumed from the source while deciding, truncated to what was
// actually read; the remainder of the source is untouched.
type Decision struct {
	Verdict Verdict
	Prefix  []byte
}

// ReadPrefix reads just enough of src to decide whether its contents
// fit within the usable screen height. With unknown geometry it decides
// Page immediately without touching src, deferring all sizing to the
// pager. Interrupted reads are retried; on any other read error the
// partial prefix read so far is returned alongside the error so the
// caller can still flush it.
func ReadPrefix(src io.Reader, geo Geometry) (Decision, error) {
	if !geo.Valid() {
		return Decision{Verdict: Page}, nil
	}
	usable := geo.UsableHeight()
	block := geo.Width * usable
	buf := make([]byte, block)
	n := 0
	for Rows(buf[:n], geo.Width) <= usable {
		m, err := src.Read(buf[n:])
		if m > 0 {
			n += m
			if n == len(buf) {
				// Keep capacity a whole number of screen blocks so the
				// next read never gets an empty slice.
				buf = append(buf, make([]byte, block)...)
			}
		}
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			// A reader may deliver its final bytes together with EOF;
			// the overflow check still applies to them.
			if Rows(buf[:n], geo.Width) > usable {
				return Decision{Verdict: Page, Prefix: buf[:n]}, nil
			}
			return Decision{Verdict: ShowAll, Prefix: buf[:n]}, nil
		case errors.Is(err, syscall.EINTR):
		default:
			return Decision{Verdict: ShowAll, Prefix: buf[:n]}, err
		}
	}
	return Decision{Verdict: Page, Prefix: buf[:n]}, nil
}
