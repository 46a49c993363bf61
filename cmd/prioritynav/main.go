// ABOUTME: CLI entry point for prioritynav with terminal crash recovery
// ABOUTME: Parses flags, loads the menu file and theme, dispatches to interactive, print or follow mode

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	// termfix must be imported before any package that imports bubbletea so
	// the background is known before bubbletea's init queries the terminal.
	_ "github.com/mauromedda/prioritynav/internal/termfix"

	"github.com/mauromedda/prioritynav/internal/config"
	pnlog "github.com/mauromedda/prioritynav/internal/log"
	"github.com/mauromedda/prioritynav/pkg/tui/terminal"
	"github.com/mauromedda/prioritynav/pkg/tui/theme"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	out := terminal.NewProcessTerminal(os.Stdout)
	defer terminal.RestoreOnPanic(out)

	args, err := parseFlags("prioritynav", os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("prioritynav %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, args, out)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration and dispatches to the selected mode.
func run(ctx context.Context, args cliArgs, out *terminal.ProcessTerminal) error {
	if args.verbose {
		pnlog.SetLevel(pnlog.LevelDebug)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	path := config.Resolve(args.config, cwd)
	f, err := config.LoadOrDefault(path)
	if err != nil {
		return fmt.Errorf("loading menu: %w", err)
	}
	applyOverrides(f, args)
	if path == "" {
		pnlog.Debug("no menu file found, using the built-in sample")
	} else {
		pnlog.Debug("menu file: %s (%d items)", path, len(f.Items))
	}

	if err := resolveTheme(args.theme, f.Theme); err != nil {
		return err
	}

	switch {
	case args.print:
		w := args.width
		if w == 0 {
			w = terminalWidth(out)
		}
		return printFrame(out, f, frameOptions{
			Width: w,
			Stats: args.stats,
			Color: out.IsTerminal(),
		})
	case args.follow:
		return runFollow(ctx, out, f, path, args.stats)
	}
	return runInteractive(ctx, f, path, args.once)
}

// applyOverrides folds CLI flags into the loaded menu file.
func applyOverrides(f *config.MenuFile, args cliArgs) {
	if args.rtl {
		f.Direction = "rtl"
	}
	if args.debug {
		f.Debug = true
	}
}

// resolveTheme activates the theme named by the flag, else by the menu file.
// An empty name keeps the default.
func resolveTheme(flagName, fileName string) error {
	name := flagName
	if name == "" {
		name = fileName
	}
	th, err := theme.Lookup(name)
	if err != nil {
		return fmt.Errorf("resolving theme: %w", err)
	}
	theme.Set(th)
	return nil
}

// terminalWidth returns the width of out, or 80 when it is not a terminal.
func terminalWidth(out *terminal.ProcessTerminal) int {
	if !out.IsTerminal() {
		return 80
	}
	w, _, err := out.Size()
	if err != nil || w <= 0 {
		pnlog.Debug("terminal size: %v", err)
		return 80
	}
	return w
}
