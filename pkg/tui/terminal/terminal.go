// ABOUTME: Defines the Terminal interface for size queries, output, and resize subscriptions.
// ABOUTME: Resize listeners are registered with a cancel func so a menu can release them on unmount.

package terminal

import "sync"

// Terminal abstracts the terminal operations the menu needs: size
// queries, output writing, and resize notifications. OnResize has the
// shape of overflow.ResizeSource, so a Terminal can drive a Controller.
type Terminal interface {
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
	OnResize(fn func(width, height int)) (cancel func())
}

// listeners is a registry of resize callbacks keyed by subscription id.
type listeners struct {
	mu   sync.Mutex
	next int
	fns  map[int]func(width, height int)
}

// add registers fn and reports whether it is the only listener.
func (l *listeners) add(fn func(width, height int)) (id int, first bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fns == nil {
		l.fns = make(map[int]func(width, height int))
	}
	l.next++
	l.fns[l.next] = fn
	return l.next, len(l.fns) == 1
}

// remove drops id and reports whether no listeners remain.
func (l *listeners) remove(id int) (last bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.fns[id]; !ok {
		return false
	}
	delete(l.fns, id)
	return len(l.fns) == 0
}

func (l *listeners) snapshot() []func(width, height int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]func(width, height int), 0, len(l.fns))
	for _, fn := range l.fns {
		out = append(out, fn)
	}
	return out
}

func (l *listeners) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.fns)
}

func (l *listeners) notify(width, height int) {
	for _, fn := range l.snapshot() {
		fn(width, height)
	}
}
