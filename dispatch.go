package pgr

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
)

// streamChunk is the read size used when piping the remainder of the
// source into the pager.
const streamChunk = 16 * 1024

// Request configures Run.
type Request struct {
	// Reader is the input source. A screen-sized prefix is consumed
	// while deciding; the rest is streamed untouched.
	Reader io.Reader
	// Stdout receives direct output when the content fits on screen.
	// Defaults to os.Stdout. The pager subprocess always inherits the
	// real stdout, since it needs the terminal.
	Stdout io.Writer
	// Geometry is the terminal snapshot. The zero value means the size
	// is unknown and paging is unconditional.
	Geometry Geometry
	// Pager is the pager argv. Empty means DefaultPager.
	Pager []string
}

// Run sizes the input and either prints it or pipes it through the
// pager. The returned code is the process exit code to use: 0 for
// direct display, the pager's own exit code when paging. When err is
// non-nil, whatever prefix was already decided has been flushed
// best-effort before returning.
func Run(req Request) (int, error) {
	if req.Reader == nil {
		return 1, fmt.Errorf("run: Reader is nil")
	}
	if req.Stdout == nil {
		req.Stdout = os.Stdout
	}
	dec, err := ReadPrefix(req.Reader, req.Geometry)
	if err != nil {
		// The head of the input belongs to the user even when the tail
		// is unreadable.
		_ = writeBenign(req.Stdout, dec.Prefix)
		return 1, fmt.Errorf("read input: %w", err)
	}
	switch dec.Verdict {
	case ShowAll:
		if err := writeBenign(req.Stdout, dec.Prefix); err != nil {
			return 1, fmt.Errorf("write output: %w", err)
		}
		return 0, nil
	case Page:
		return PageThrough(dec.Prefix, req.Reader, req.Pager)
	}
	return 1, fmt.Errorf("run: unknown verdict %d", dec.Verdict)
}

// PageThrough pipes prefix plus the unread remainder of src through the
// pager argv, unconditionally, and blocks until the pager exits. The
// pager's exit code is returned; 1 stands in when it is unavailable
// (e.g. the pager was killed by a signal). A pager that closes its
// input early is not an error: streaming stops and the wrapper still
// waits and reports the pager's code.
func PageThrough(prefix []byte, src io.Reader, pager []string) (int, error) {
	if len(pager) == 0 {
		pager = []string{DefaultPager}
	}
	// Once the pager owns the terminal, ctrl-c is its concern: it may
	// exit or swallow the interrupt, and the wrapper follows its lead
	// by waiting. There is already a screenful of content committed
	// either way.
	signal.Ignore(os.Interrupt)
	cmd := exec.Command(pager[0], pager[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return 1, fmt.Errorf("pager stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return 1, fmt.Errorf("start pager %q: %w", pager[0], err)
	}
	werr := streamInto(stdin, prefix, src)
	// Close on every path; a pager blocked on more input never exits.
	_ = stdin.Close()
	code := 1
	if waitErr := cmd.Wait(); waitErr == nil {
		code = 0
	} else {
		var exit *exec.ExitError
		if errors.As(waitErr, &exit) {
			if c := exit.ExitCode(); c >= 0 {
				code = c
			}
		}
	}
	if werr != nil && !isBrokenPipe(werr) {
		return code, fmt.Errorf("feed pager: %w", werr)
	}
	return code, nil
}

// Passthrough copies src to dst without sizing, for callers that have
// disabled paging. A closed downstream ends the copy silently.
func Passthrough(dst io.Writer, src io.Reader) error {
	err := streamInto(dst, nil, src)
	if err != nil && isBrokenPipe(err) {
		return nil
	}
	return err
}

// streamInto writes prefix and then the rest of src to dst in
// fixed-size chunks, in source order, retrying interrupted reads.
func streamInto(dst io.Writer, prefix []byte, src io.Reader) error {
	if len(prefix) > 0 {
		if _, err := dst.Write(prefix); err != nil {
			return err
		}
	}
	buf := make([]byte, streamChunk)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, syscall.EINTR):
		default:
			return err
		}
	}
}

// writeBenign writes buf to w, treating a closed downstream as benign
// early termination rather than a failure.
func writeBenign(w io.Writer, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	if _, err := w.Write(buf); err != nil && !isBrokenPipe(err) {
		return err
	}
	return nil
}

func isBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, os.ErrClosed)
}
