// ABOUTME: Polling watcher that reloads the menu file when its mtime or size changes
// ABOUTME: Reload results go to a callback; parse errors keep the previous menu and are reported

package config

import (
	"context"
	"os"
	"sync"
	"time"
)

type fileStamp struct {
	mtime time.Time
	size  int64
	ok    bool
}

func stat(path string) fileStamp {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{}
	}
	return fileStamp{mtime: info.ModTime(), size: info.Size(), ok: true}
}

func (a fileStamp) same(b fileStamp) bool {
	return a.ok == b.ok && a.size == b.size && a.mtime.Equal(b.mtime)
}

// Watcher polls a menu file and reloads it on change.
type Watcher struct {
	path     string
	onReload func(*MenuFile)
	onError  func(error)

	mu       sync.Mutex
	interval time.Duration
	last     fileStamp
}

// NewWatcher returns a watcher for path. onError may be nil.
func NewWatcher(path string, onReload func(*MenuFile), onError func(error)) *Watcher {
	return &Watcher{
		path:     path,
		onReload: onReload,
		onError:  onError,
		interval: 2 * time.Second,
		last:     stat(path),
	}
}

// SetInterval overrides the default polling interval (2s).
func (w *Watcher) SetInterval(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.interval = d
}

// Run polls until ctx is done. It always returns ctx.Err().
func (w *Watcher) Run(ctx context.Context) error {
	w.mu.Lock()
	interval := w.interval
	w.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.ForceCheck()
		}
	}
}

// ForceCheck reloads now if the file changed since the last check. It
// reports whether a reload was attempted.
func (w *Watcher) ForceCheck() bool {
	cur := stat(w.path)

	w.mu.Lock()
	changed := !cur.same(w.last)
	w.last = cur
	w.mu.Unlock()

	if !changed {
		return false
	}
	if !cur.ok {
		w.fail(&os.PathError{Op: "stat", Path: w.path, Err: os.ErrNotExist})
		return true
	}
	f, err := Load(w.path)
	if err != nil {
		w.fail(err)
		return true
	}
	w.onReload(f)
	return true
}

func (w *Watcher) fail(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
