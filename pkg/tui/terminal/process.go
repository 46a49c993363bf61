// ABOUTME: ProcessTerminal implements Terminal over an *os.File using golang.org/x/term.
// ABOUTME: The platform resize listener runs only while at least one subscriber is registered.

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by a file descriptor,
// usually os.Stdout.
type ProcessTerminal struct {
	out  *os.File
	subs listeners

	mu         sync.Mutex
	stopListen func()
}

// NewProcessTerminal returns a ProcessTerminal writing to out.
func NewProcessTerminal(out *os.File) *ProcessTerminal {
	return &ProcessTerminal{out: out}
}

// IsTerminal reports whether the underlying file is a terminal.
func (t *ProcessTerminal) IsTerminal() bool {
	return term.IsTerminal(int(t.out.Fd()))
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Write sends bytes to the terminal.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}

// OnResize registers fn for resize events. The first subscription starts
// the platform listener; cancelling the last one stops it.
func (t *ProcessTerminal) OnResize(fn func(width, height int)) (cancel func()) {
	id, first := t.subs.add(fn)
	if first {
		t.mu.Lock()
		t.stopListen = t.startResizeListener()
		t.mu.Unlock()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			if !t.subs.remove(id) {
				return
			}
			t.mu.Lock()
			stop := t.stopListen
			t.stopListen = nil
			t.mu.Unlock()
			if stop != nil {
				stop()
			}
		})
	}
}

// notifyResize reads the new size and fans it out to every subscriber.
func (t *ProcessTerminal) notifyResize() {
	w, h, err := t.Size()
	if err != nil {
		return
	}
	t.subs.notify(w, h)
}
