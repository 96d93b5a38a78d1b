package pgr

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// reservedRows is subtracted from the terminal height before sizing so
// the pager's status line and prompt do not push content off screen.
const reservedRows = 3

// Geometry is a point-in-time snapshot of the terminal dimensions in
// character cells. The zero value means the size is unknown.
type Geometry struct {
	Width  int
	Height int
}

// Valid reports whether both dimensions are known.
func (g Geometry) Valid() bool {
	return g.Width > 0 && g.Height > 0
}

// UsableHeight returns the number of rows available for content,
// saturating at zero.
func (g Geometry) UsableHeight() int {
	if g.Height <= reservedRows {
		return 0
	}
	return g.Height - reservedRows
}

// DetectGeometry queries the terminal attached to f, falling back to
// the COLUMNS and LINES environment variables when f is not a
// terminal. ok is false when the size cannot be determined either way.
func DetectGeometry(f *os.File) (geo Geometry, ok bool) {
	fd := int(f.Fd())
	if term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
			return Geometry{Width: w, Height: h}, true
		}
	}
	geo = Geometry{Width: envDim("COLUMNS"), Height: envDim("LINES")}
	return geo, geo.Valid()
}

func envDim(name string) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
