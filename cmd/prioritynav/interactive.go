// ABOUTME: Interactive mode: runs the Bubble Tea menu and forwards menu file reloads into it
// ABOUTME: The chosen item is printed to stdout so the command composes in shell pipelines

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/prioritynav/internal/btea"
	"github.com/mauromedda/prioritynav/internal/config"
	pnlog "github.com/mauromedda/prioritynav/internal/log"
)

func runInteractive(ctx context.Context, f *config.MenuFile, path string, once bool) error {
	m, err := btea.NewMenuModel(f, btea.Options{
		Logf:         pnlog.Debug,
		QuitOnSelect: once,
	})
	if err != nil {
		return err
	}

	wctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(wctx)

	sel, ok, err := btea.Run(ctx, m, func(n btea.Notifier) {
		if path == "" {
			return
		}
		watcher := config.NewWatcher(path,
			func(nf *config.MenuFile) { n.Send(btea.ItemsMsg{Items: nf.Items}) },
			func(err error) { n.Send(btea.ReloadErrMsg{Err: err}) },
		)
		g.Go(func() error { return watcher.Run(gctx) })
	})
	cancel()
	if werr := g.Wait(); werr != nil && !errors.Is(werr, context.Canceled) {
		pnlog.Warn("menu watcher: %v", werr)
	}

	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return err
	}
	if ok {
		if sel.Item.Href != "" {
			fmt.Fprintf(os.Stdout, "%s\t%s\n", sel.Item.Label, sel.Item.Href)
		} else {
			fmt.Fprintln(os.Stdout, sel.Item.Label)
		}
	}
	return nil
}
