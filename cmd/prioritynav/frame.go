// ABOUTME: Non-interactive modes: print renders one settled frame, follow redraws in place on every change
// ABOUTME: Both draw the menu with theme colors through the inline engine's Component interface

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/prioritynav/internal/config"
	pnlog "github.com/mauromedda/prioritynav/internal/log"
	"github.com/mauromedda/prioritynav/pkg/overflow"
	"github.com/mauromedda/prioritynav/pkg/tui"
	"github.com/mauromedda/prioritynav/pkg/tui/component"
	"github.com/mauromedda/prioritynav/pkg/tui/terminal"
	"github.com/mauromedda/prioritynav/pkg/tui/theme"
)

type frameOptions struct {
	Width int
	Stats bool
	Color bool
}

// menuConfig maps a menu file onto a component config drawn with the
// active theme. Hidden items are listed one per line under the row.
func menuConfig(f *config.MenuFile, color bool) (component.MenuConfig[config.Item], error) {
	dir, err := component.ParseDirection(f.Direction)
	if err != nil {
		return component.MenuConfig[config.Item]{}, fmt.Errorf("menu direction: %w", err)
	}
	paint := func(c theme.Color, s string) string {
		if !color {
			return s
		}
		return c.Apply(s)
	}
	more := f.MoreLabel
	return component.MenuConfig[config.Item]{
		Items: f.Items,
		Key:   func(it config.Item) string { return it.Key },
		Label: func(it config.Item) string { return it.Label },
		RenderItem: func(it config.Item, _ int, visible bool) string {
			p := theme.Current().Palette
			if visible {
				return paint(p.Item, " "+it.Label+" ")
			}
			return paint(p.Muted, "  · "+it.Label)
		},
		RenderMore: func(bool) string {
			return paint(theme.Current().Palette.More, " "+more+" ↓ ")
		},
		RowHeight: f.RowHeight,
		Direction: dir,
		Debug:     f.Debug,
		Debounce:  f.Delay(),
		Logf:      pnlog.Debug,
	}, nil
}

// printFrame measures the menu at opts.Width and writes one frame to w.
func printFrame(w io.Writer, f *config.MenuFile, opts frameOptions) error {
	cfg, err := menuConfig(f, opts.Color)
	if err != nil {
		return err
	}
	menu, err := component.NewMenu(cfg)
	if err != nil {
		return err
	}
	menu.Mount()
	defer menu.Unmount()

	menu.SetWidth(opts.Width)
	if !menu.Controller().Measure() {
		return fmt.Errorf("measuring menu at width %d: nothing to measure", opts.Width)
	}

	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)
	menu.Render(buf, opts.Width)
	for _, line := range buf.Lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if opts.Stats {
		return writeStats(w, menu.Controller().Stats())
	}
	return nil
}

func writeStats(w io.Writer, s overflow.Stats) error {
	data, err := s.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encoding stats: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

// runFollow drives the inline engine until ctx is done. The menu re-measures
// on terminal resizes and, when path is set, on menu file changes.
func runFollow(ctx context.Context, out *terminal.ProcessTerminal, f *config.MenuFile, path string, stats bool) (err error) {
	cfg, err := menuConfig(f, out.IsTerminal())
	if err != nil {
		return err
	}
	w, h, serr := out.Size()
	if serr != nil || w <= 0 || h <= 0 {
		w, h = 80, 24
	}

	engine := tui.New(out, w, h)
	cfg.Resize = out
	cfg.OnChange = func(overflow.State) { engine.RequestRender() }
	menu, err := component.NewMenu(cfg)
	if err != nil {
		return err
	}
	engine.SetRoot(menu)

	cancelResize := out.OnResize(engine.SetSize)
	engine.Start()
	defer func() {
		cancelResize()
		final := menu.Controller().Stats()
		engine.Stop()
		_, _ = io.WriteString(out, "\r\n")
		terminal.ShowCursor(out)
		if err == nil && stats {
			err = writeStats(out, final)
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	if path != "" {
		watcher := config.NewWatcher(path,
			func(nf *config.MenuFile) {
				pnlog.Debug("menu file reloaded: %d items", len(nf.Items))
				menu.SetItems(nf.Items)
				engine.RequestRender()
			},
			func(err error) { pnlog.Warn("reloading %s: %v", path, err) },
		)
		g.Go(func() (err error) {
			defer terminal.RecoverGoroutine(out, &err)
			return watcher.Run(gctx)
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		return gctx.Err()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
