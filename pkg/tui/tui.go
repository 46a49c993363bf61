// ABOUTME: Inline render engine: redraws a root component in place with line-level diffing
// ABOUTME: Buffered channel of size 1 coalesces render requests; CSI 2026 synchronized output

package tui

import (
	"strconv"
	"strings"
	"sync"
)

// Writer is the minimal interface for terminal output.
type Writer interface {
	Write(p []byte) (n int, err error)
}

// TUI redraws a single root component below the cursor. It does not take
// over the screen: the region grows and shrinks with the component.
type TUI struct {
	writer Writer

	mu            sync.Mutex
	root          Component
	width         int
	height        int
	previousLines []string
	renderCh      chan struct{}
	stopCh        chan struct{}
	stopOnce      sync.Once
	running       bool

	rstate renderState
}

// New creates an engine writing to w with the given dimensions.
func New(w Writer, termWidth, termHeight int) *TUI {
	return &TUI{
		writer:   w,
		width:    termWidth,
		height:   termHeight,
		renderCh: make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
		rstate:   renderState{firstRender: true},
	}
}

// SetRoot replaces the component being drawn.
func (t *TUI) SetRoot(c Component) {
	t.mu.Lock()
	t.root = c
	t.mu.Unlock()
	t.RequestRender()
}

// Size returns the current dimensions.
func (t *TUI) Size() (width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height
}

// SetSize updates the terminal dimensions and triggers a re-render.
func (t *TUI) SetSize(w, h int) {
	t.mu.Lock()
	t.width = w
	t.height = h
	t.previousLines = nil
	root := t.root
	t.mu.Unlock()
	if root != nil {
		root.Invalidate()
	}
	t.RequestRender()
}

// RequestRender signals that a render is needed. Multiple calls coalesce
// into a single render via a buffered channel of size 1.
func (t *TUI) RequestRender() {
	select {
	case t.renderCh <- struct{}{}:
	default:
	}
}

// Start mounts the root (if it is Mountable) and begins the render loop.
func (t *TUI) Start() {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return
	}
	t.running = true
	root := t.root
	t.mu.Unlock()

	if m, ok := root.(Mountable); ok {
		m.Mount()
	}
	go t.renderLoop()
}

// Stop terminates the render loop and unmounts the root. Safe to call
// multiple times.
func (t *TUI) Stop() {
	t.stopOnce.Do(func() {
		t.mu.Lock()
		if !t.running {
			t.mu.Unlock()
			return
		}
		t.running = false
		root := t.root
		t.mu.Unlock()
		close(t.stopCh)

		if m, ok := root.(Mountable); ok {
			m.Unmount()
		}
	})
}

// RenderOnce performs a single synchronous render. Useful for testing.
func (t *TUI) RenderOnce() {
	t.render()
}

func (t *TUI) renderLoop() {
	for {
		select {
		case <-t.stopCh:
			return
		case <-t.renderCh:
			t.render()
		}
	}
}

func (t *TUI) render() {
	t.mu.Lock()
	w := t.width
	h := t.height
	root := t.root
	prevLines := t.previousLines
	rstate := t.rstate
	t.mu.Unlock()

	if w <= 0 || h <= 0 || root == nil {
		return
	}

	buf := AcquireBuffer()
	defer ReleaseBuffer(buf)
	root.Render(buf, w)

	lines := buf.Lines
	if len(lines) > h {
		lines = lines[:h]
	}

	output := relativeRender(&rstate, prevLines, lines, w)
	if output != "" {
		syncOutput := "\x1b[?25l\x1b[?2026h" + output + "\x1b[?2026l"
		_, _ = t.writer.Write([]byte(syncOutput))
	}

	saved := prevLines
	if cap(saved) >= len(lines) {
		saved = saved[:len(lines)]
	} else {
		saved = make([]string, len(lines))
	}
	copy(saved, lines)
	t.mu.Lock()
	t.previousLines = saved
	t.rstate = rstate
	t.mu.Unlock()
}

// renderState tracks cursor position across renders for relative movement.
type renderState struct {
	maxRendered int  // max lines ever rendered
	cursorRow   int  // cursor row (0-based, relative to our output region)
	firstRender bool // true until first render completes
	prevWidth   int  // detect width changes
}

// relativeRender generates ANSI commands using relative cursor movement so
// the region redraws in place without clearing the rest of the screen.
func relativeRender(state *renderState, prev, curr []string, termWidth int) string {
	var b strings.Builder
	var numBuf [20]byte

	// Width change: rewrite every line of the region.
	if state.prevWidth != 0 && state.prevWidth != termWidth {
		prev = nil
	}
	state.prevWidth = termWidth

	if state.firstRender {
		for i, line := range curr {
			if i > 0 {
				b.WriteString("\r\n")
			}
			b.WriteString(line)
		}
		state.cursorRow = max(len(curr)-1, 0)
		state.maxRendered = len(curr)
		state.firstRender = false
		return b.String()
	}

	commonLen := min(len(prev), len(curr))
	for i := range commonLen {
		if prev[i] == curr[i] {
			continue
		}
		moveCursor(&b, numBuf[:], state.cursorRow, i)
		state.cursorRow = i
		b.WriteString("\r\x1b[2K")
		b.WriteString(curr[i])
	}

	// Lines beyond what the previous frame covered: rewrite rows that still
	// exist on screen, append the rest.
	for i := commonLen; i < len(curr); i++ {
		switch {
		case i < state.maxRendered:
			moveCursor(&b, numBuf[:], state.cursorRow, i)
			b.WriteString("\r\x1b[2K")
		case i == 0:
			b.WriteString("\r\x1b[2K")
		default:
			moveCursor(&b, numBuf[:], state.cursorRow, i-1)
			b.WriteString("\r\n")
		}
		state.cursorRow = i
		b.WriteString(curr[i])
	}

	if len(curr) < state.maxRendered {
		for i := len(curr); i < state.maxRendered; i++ {
			moveCursor(&b, numBuf[:], state.cursorRow, i)
			state.cursorRow = i
			b.WriteString("\r\x1b[2K")
		}
		if len(curr) > 0 {
			moveCursor(&b, numBuf[:], state.cursorRow, len(curr)-1)
			state.cursorRow = len(curr) - 1
		}
		state.maxRendered = len(curr)
	}
	state.maxRendered = max(state.maxRendered, len(curr))

	return b.String()
}

// moveCursor emits relative cursor movement sequences to move from fromRow to toRow.
func moveCursor(b *strings.Builder, numBuf []byte, fromRow, toRow int) {
	if fromRow == toRow {
		return
	}
	delta := toRow - fromRow
	b.WriteString("\x1b[")
	if delta < 0 {
		b.Write(strconv.AppendInt(numBuf[:0], int64(-delta), 10))
		b.WriteByte('A')
		return
	}
	b.Write(strconv.AppendInt(numBuf[:0], int64(delta), 10))
	b.WriteByte('B')
}
