package pgr

import (
	"testing"

	"github.com/muesli/reflow/ansi"
)

func TestVisibleWidthBasic(t *testing.T) {
	cases := map[string]int{
		"":    0,
		"abc": 3,
	}
	for input, want := range cases {
		if got := VisibleWidth([]byte(input)); got != want {
			t.Fatalf("VisibleWidth(%q)=%d want %d", input, got, want)
		}
	}
}

func TestVisibleWidthEscapes(t *testing.T) {
	cases := map[string]int{
		"\x1b[1mfoo\x1b[0m bar": 7,
		"\x1b[1;2m":             0,
		"\xc2\x9b1mhi":          2,
	}
	for input, want := range cases {
		if got := VisibleWidth([]byte(input)); got != want {
			t.Fatalf("VisibleWidth(%q)=%d want %d", input, got, want)
		}
	}
}

func TestVisibleWidthUnterminatedEscapes(t *testing.T) {
	cases := map[string]int{
		"\x1b":     1,
		"\x1b[":    2,
		"\x1b[39":  4,
		"\xc2":     1,
		"\xc2\x9b": 2,
	}
	for input, want := range cases {
		if got := VisibleWidth([]byte(input)); got != want {
			t.Fatalf("VisibleWidth(%q)=%d want %d", input, got, want)
		}
	}
}

func TestVisibleWidthUnrecognizedEscapes(t *testing.T) {
	cases := map[string]int{
		"\x1b[foo":   5,
		"\x1b[1;2z":  6,
		"\x1bxab":    4,
		"\xc2a":      2,
		"\xc2\x9b2J": 4,
	}
	for input, want := range cases {
		if got := VisibleWidth([]byte(input)); got != want {
			t.Fatalf("VisibleWidth(%q)=%d want %d", input, got, want)
		}
	}
}

// On plain ASCII with recognized SGR sequences the byte-level estimate
// must agree with reflow's rune-based printable width.
func TestVisibleWidthMatchesReflowOnSGR(t *testing.T) {
	cases := []string{
		"plain text here",
		"\x1b[1mfoo\x1b[0m bar",
		"\x1b[38;5;8mbar\x1b[39m",
		"\x1b[1;31mred\x1b[0m and \x1b[4munder\x1b[24m",
		"",
	}
	for _, input := range cases {
		got := VisibleWidth([]byte(input))
		want := ansi.PrintableRuneWidth(input)
		if got != want {
			t.Fatalf("VisibleWidth(%q)=%d, reflow says %d", input, got, want)
		}
	}
}
