// ABOUTME: Reactive controller: owns the cut state and re-measures on mount, resize, and item changes
// ABOUTME: Passes are debounced through a single-slot queue; unchanged results are never written back

package overflow

import (
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"
)

// DefaultDebounce is the coalescing window for measurement passes.
const DefaultDebounce = 100 * time.Millisecond

// State is the result of the last measurement pass.
type State struct {
	Cut        Cut
	MoreWidth  int
	ItemHeight int
}

// Options configures a Controller. All fields are optional.
type Options[T any] struct {
	// Key returns a stable identity for measurement. Defaults to PositionalKey.
	Key func(item T) string

	// Label renders an item for diagnostics. Defaults to fmt.Sprint.
	Label func(item T) string

	// Debounce is the coalescing window. Zero means DefaultDebounce; use a
	// negative value to fire on the next scheduler tick.
	Debounce time.Duration

	// Scheduler defaults to WallClock.
	Scheduler Scheduler

	// Resize is subscribed on Mount and released on Unmount.
	Resize ResizeSource

	// OnChange is called after a pass stores a new state. It runs outside
	// the controller's locks but must not call Unmount or Measure.
	OnChange func(State)

	// FixedHeight pins ItemHeight instead of measuring the first item.
	FixedHeight int

	// Logf receives debug traces.
	Logf func(format string, args ...any)
}

// PositionalKey is the default measurement key: the item's index.
func PositionalKey(index int) string {
	return strconv.Itoa(index)
}

// Controller bridges a Geometry provider and the layout engine. It is safe
// for concurrent use: triggers may arrive from any goroutine, and the
// debounced pass runs on the scheduler's goroutine.
type Controller[T any] struct {
	geom Geometry
	opts Options[T]
	co   *coalescer

	// passMu serializes passes against Unmount.
	passMu sync.Mutex

	mu           sync.Mutex
	items        []T
	state        State
	mounted      bool
	passes       int
	cancelResize func()
}

// NewController returns an unmounted controller reading from geom.
func NewController[T any](geom Geometry, opts Options[T]) *Controller[T] {
	delay := opts.Debounce
	switch {
	case delay == 0:
		delay = DefaultDebounce
	case delay < 0:
		delay = 0
	}
	return &Controller[T]{
		geom:  geom,
		opts:  opts,
		co:    newCoalescer(opts.Scheduler, delay),
		state: State{Cut: Unset},
	}
}

// KeyOf returns the measurement key for item at index.
func (c *Controller[T]) KeyOf(item T, index int) string {
	if c.opts.Key != nil {
		return c.opts.Key(item)
	}
	return PositionalKey(index)
}

// Mount starts the controller with items and schedules the first pass.
// Mounting an already mounted controller is a no-op.
func (c *Controller[T]) Mount(items []T) {
	c.mu.Lock()
	if c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = true
	c.items = slices.Clone(items)
	c.state = State{Cut: Unset}
	c.mu.Unlock()

	c.co.start()
	if c.opts.Resize != nil {
		cancel := c.opts.Resize.OnResize(func(int, int) { c.Resize() })
		c.mu.Lock()
		c.cancelResize = cancel
		c.mu.Unlock()
	}
	c.schedule("mount")
}

// Resize schedules a pass after the container changed size.
func (c *Controller[T]) Resize() {
	c.schedule("resize")
}

// SetItems replaces the item list and schedules a pass. The previous cut
// keeps rendering until the pass settles.
func (c *Controller[T]) SetItems(items []T) {
	c.mu.Lock()
	c.items = slices.Clone(items)
	c.mu.Unlock()
	c.schedule("items")
}

// Measure runs a pass now, dropping any pending one. It returns false when
// the pass was skipped.
func (c *Controller[T]) Measure() bool {
	c.co.cancel()
	return c.pass()
}

// Flush runs the pending pass, if any, on the calling goroutine.
func (c *Controller[T]) Flush() bool {
	return c.co.flush()
}

// Pending reports whether a pass is scheduled.
func (c *Controller[T]) Pending() bool {
	return c.co.isPending()
}

// Unmount cancels the pending pass, releases the resize subscription and
// resets the state to Unset. Once it returns no pass runs and OnChange is
// not called until the next Mount.
func (c *Controller[T]) Unmount() {
	c.co.stop()

	c.passMu.Lock()
	defer c.passMu.Unlock()

	c.mu.Lock()
	cancel := c.cancelResize
	c.cancelResize = nil
	c.mounted = false
	c.state = State{Cut: Unset}
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Mounted reports whether the controller is live.
func (c *Controller[T]) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mounted
}

// State returns the current cut state.
func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Passes returns the number of completed (not skipped) passes.
func (c *Controller[T]) Passes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.passes
}

// Items returns a copy of the current item list.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

// Partition returns the visible and overflow items for the current state.
func (c *Controller[T]) Partition() (visible, hidden []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Partition(c.items, c.state.Cut)
}

// Snapshot returns the state together with its partition, read under one
// lock so the two always agree.
func (c *Controller[T]) Snapshot() (st State, visible, hidden []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	visible, hidden = Partition(c.items, c.state.Cut)
	return c.state, visible, hidden
}

// Visible returns the items on the row.
func (c *Controller[T]) Visible() []T {
	v, _ := c.Partition()
	return v
}

// Overflow returns the items behind the more indicator.
func (c *Controller[T]) Overflow() []T {
	_, h := c.Partition()
	return h
}

func (c *Controller[T]) schedule(reason string) {
	if !c.Mounted() {
		return
	}
	if c.co.schedule(func() { c.pass() }) {
		c.logf("overflow: %s trigger superseded pending pass", reason)
		return
	}
	c.logf("overflow: %s trigger scheduled pass", reason)
}

// pass performs one measurement: read geometry, compute the cut, store it
// when it differs from the current state.
func (c *Controller[T]) pass() bool {
	c.passMu.Lock()
	defer c.passMu.Unlock()

	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return false
	}
	items := c.items
	c.mu.Unlock()

	next, err := c.measure(items)
	if err != nil {
		c.logf("overflow: pass skipped: %v", err)
		return false
	}

	c.mu.Lock()
	c.passes++
	prev := c.state
	changed := prev.Cut != next.Cut || prev.ItemHeight != next.ItemHeight
	if changed {
		c.state = next
	}
	onChange := c.opts.OnChange
	c.mu.Unlock()

	if !changed {
		c.logf("overflow: pass settled at cut=%s (unchanged)", next.Cut)
		return true
	}
	c.logf("overflow: cut %s -> %s height=%d more=%d", prev.Cut, next.Cut, next.ItemHeight, next.MoreWidth)
	if onChange != nil {
		onChange(next)
	}
	return true
}

func (c *Controller[T]) measure(items []T) (State, error) {
	cw, ok := c.geom.ContainerWidth()
	if !ok {
		return State{}, ErrContainerDetached
	}
	mw, ok := c.geom.MoreWidth()
	if !ok {
		return State{}, ErrMoreDetached
	}

	widths := make([]int, len(items))
	for i, item := range items {
		key := c.KeyOf(item, i)
		w, ok := c.geom.WidthOf(key)
		if !ok {
			return State{}, fmt.Errorf("item %q: %w", key, ErrItemUnmeasured)
		}
		widths[i] = Ceil(w)
	}

	height := c.opts.FixedHeight
	if height <= 0 && len(items) > 0 {
		key := c.KeyOf(items[0], 0)
		h, ok := c.geom.HeightOf(key)
		if !ok {
			return State{}, fmt.Errorf("item %q: %w", key, ErrItemUnmeasured)
		}
		height = Ceil(h)
	}

	more := Ceil(mw)
	return State{
		Cut:        ComputeCut(widths, Ceil(cw), more),
		MoreWidth:  more,
		ItemHeight: max(height, 0),
	}, nil
}

func (c *Controller[T]) label(item T) string {
	if c.opts.Label != nil {
		return c.opts.Label(item)
	}
	return fmt.Sprint(item)
}

func (c *Controller[T]) logf(format string, args ...any) {
	if c.opts.Logf != nil {
		c.opts.Logf(format, args...)
	}
}
