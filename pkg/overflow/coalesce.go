// ABOUTME: Single-slot debounce queue: a new trigger replaces the pending pass instead of queueing
// ABOUTME: Scheduler abstracts time.AfterFunc so tests can fire timers deterministically

package overflow

import (
	"sync"
	"time"
)

// Timer is the handle returned by a Scheduler.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d on some goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// WallClock schedules with time.AfterFunc.
type WallClock struct{}

func (WallClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// coalescer holds at most one pending callback. Every Schedule bumps the
// generation, so a timer that already fired for an older generation is a
// no-op.
type coalescer struct {
	mu      sync.Mutex
	sched   Scheduler
	delay   time.Duration
	pending Timer
	fn      func()
	gen     uint64
	stopped bool
}

func newCoalescer(s Scheduler, delay time.Duration) *coalescer {
	if s == nil {
		s = WallClock{}
	}
	return &coalescer{sched: s, delay: delay}
}

// schedule arms fn, replacing any pending callback. It reports whether a
// pending callback was superseded.
func (c *coalescer) schedule(fn func()) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return false
	}
	replaced := c.cancelLocked()
	c.gen++
	gen := c.gen
	c.fn = fn
	c.pending = c.sched.AfterFunc(c.delay, func() { c.fire(gen) })
	return replaced
}

func (c *coalescer) fire(gen uint64) {
	c.mu.Lock()
	if c.stopped || gen != c.gen || c.pending == nil {
		c.mu.Unlock()
		return
	}
	fn := c.fn
	c.pending, c.fn = nil, nil
	c.mu.Unlock()

	fn()
}

// flush runs the pending callback now. Returns false when nothing was pending.
func (c *coalescer) flush() bool {
	c.mu.Lock()
	fn := c.fn
	if !c.cancelLocked() || fn == nil {
		c.mu.Unlock()
		return false
	}
	c.mu.Unlock()

	fn()
	return true
}

// cancel drops the pending callback. Returns false when nothing was pending.
func (c *coalescer) cancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancelLocked()
}

// cancelLocked stops the pending timer and invalidates its generation. Must hold mu.
func (c *coalescer) cancelLocked() bool {
	if c.pending == nil {
		return false
	}
	c.pending.Stop()
	c.pending, c.fn = nil, nil
	c.gen++
	return true
}

func (c *coalescer) isPending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

// stop cancels and refuses further scheduling until start.
func (c *coalescer) stop() {
	c.mu.Lock()
	c.cancelLocked()
	c.stopped = true
	c.mu.Unlock()
}

func (c *coalescer) start() {
	c.mu.Lock()
	c.stopped = false
	c.mu.Unlock()
}
