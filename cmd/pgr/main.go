package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"pkt.systems/pgr"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("pkt.systems/pgr")
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// A write to stdout after a downstream like `head` exits must
	// surface as EPIPE, not raise SIGPIPE and kill the process.
	signal.Ignore(syscall.SIGPIPE)

	var (
		pagerFlag   string
		forcePager  bool
		noPager     bool
		widthFlag   int
		heightFlag  int
		showVersion bool
	)

	flags := pflag.NewFlagSet("pgr", pflag.ExitOnError)
	flags.StringVarP(&pagerFlag, "pager", "p", "", "Pager command line (overrides $PGRPAGER and $PAGER)")
	flags.BoolVarP(&forcePager, "force", "f", false, "Always pipe through the pager, even if the input fits on screen")
	flags.BoolVarP(&noPager, "no-pager", "n", false, "Never page; copy input straight to stdout")
	flags.IntVarP(&widthFlag, "width", "w", 0, "Terminal width override (0 detects)")
	flags.IntVar(&heightFlag, "height", 0, "Terminal height override (0 detects)")
	flags.BoolVarP(&showVersion, "version", "V", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: pgr [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, text is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if showVersion {
		fmt.Fprintln(os.Stdout, version.Module(), version.Current())
		return 0
	}
	if forcePager && noPager {
		fmt.Fprintln(os.Stderr, "--force and --no-pager are mutually exclusive")
		return 2
	}

	reader, closer, err := openInputs(flags.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		return 1
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}

	if noPager {
		if err := pgr.Passthrough(os.Stdout, reader); err != nil {
			fmt.Fprintf(os.Stderr, "copy input: %v\n", err)
			return 1
		}
		return 0
	}

	pager := pgr.PagerCommand(pagerFlag)

	if forcePager {
		code, err := pgr.PageThrough(nil, reader, pager)
		return report(code, err)
	}

	code, err := pgr.Run(pgr.Request{
		Reader:   reader,
		Stdout:   os.Stdout,
		Geometry: resolveGeometry(widthFlag, heightFlag),
		Pager:    pager,
	})
	return report(code, err)
}

func report(code int, err error) int {
	if err != nil {
		fmt.Fprintf(os.Stderr, "pgr: %v\n", err)
		if code == 0 {
			code = 1
		}
	}
	return code
}

func resolveGeometry(width, height int) pgr.Geometry {
	geo, _ := pgr.DetectGeometry(os.Stdout)
	if width > 0 {
		geo.Width = width
	}
	if height > 0 {
		geo.Height = height
	}
	return geo
}
