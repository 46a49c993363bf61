// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --config, --print, --follow, --width, --stats, --rtl, --debug, --theme, --verbose, --version

package main

import (
	"errors"
	"flag"
	"io"
)

type cliArgs struct {
	config  string
	print   bool
	follow  bool
	width   int
	stats   bool
	rtl     bool
	debug   bool
	theme   string
	once    bool
	verbose bool
	version bool
}

var errExclusiveModes = errors.New("--print and --follow are mutually exclusive")

func parseFlags(name string, argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&args.config, "config", "", "Menu file (default: $PRIORITYNAV_CONFIG, .prioritynav.yaml, user config, built-in sample)")
	fs.BoolVar(&args.print, "print", false, "Render one frame and exit")
	fs.BoolVar(&args.follow, "follow", false, "Redraw whenever the layout settles, until interrupted")
	fs.IntVar(&args.width, "width", 0, "Container width in cells for --print (default: terminal width)")
	fs.BoolVar(&args.stats, "stats", false, "Emit diagnostic JSON after the frame")
	fs.BoolVar(&args.rtl, "rtl", false, "Lay the row out right to left")
	fs.BoolVar(&args.debug, "debug", false, "Show the debug panel under the row")
	fs.StringVar(&args.theme, "theme", "", "Theme name (default, dark, light, monochrome)")
	fs.BoolVar(&args.once, "once", false, "Exit after the first selection in interactive mode")
	fs.BoolVar(&args.verbose, "verbose", false, "Log debug traces to stderr")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return args, err
	}
	if args.print && args.follow {
		return args, errExclusiveModes
	}
	if args.width < 0 {
		return args, errors.New("--width must not be negative")
	}
	return args, nil
}
