// Package pgr implements a transparent pager: it prints its input
// directly when the content fits on one terminal screen and pipes it
// through an interactive pager otherwise.
//
// The sizing phase reads just enough of the input to decide. Visible
// width is estimated per byte, treating recognized SGR escape sequences
// (colors and styles) as zero columns; the decision loop stops as soon
// as one screen's worth of rows is confirmed, and every byte consumed
// while deciding is carried into the output, so nothing is re-read or
// lost.
//
// Core properties:
//   - Single pass over the input; the source is never rewound
//   - SGR-aware width estimate; unrecognized escapes count in full
//   - Prefix buffer capacity grows in whole screen blocks
//   - The spawned pager owns the terminal; interrupts go to it
//
// Example:
//
//	geo, _ := pgr.DetectGeometry(os.Stdout)
//	code, err := pgr.Run(pgr.Request{
//		Reader:   os.Stdin,
//		Stdout:   os.Stdout,
//		Geometry: geo,
//		Pager:    pgr.PagerCommand(""),
//	})
//	if err != nil {
//		fmt.Fprintln(os.Stderr, err)
//	}
//	os.Exit(code)
package pgr
