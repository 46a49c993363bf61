// ABOUTME: Priority-navigation menu: one row of items that collapses the tail behind a More trigger
// ABOUTME: Measures its own items in terminal cells and feeds them to an overflow.Controller

package component

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/mauromedda/prioritynav/pkg/overflow"
	"github.com/mauromedda/prioritynav/pkg/tui"
	"github.com/mauromedda/prioritynav/pkg/tui/theme"
	"github.com/mauromedda/prioritynav/pkg/tui/width"
)

// ErrMissingRenderer is returned by NewMenu when RenderItem or RenderMore is nil.
var ErrMissingRenderer = errors.New("menu: RenderItem and RenderMore are required")

// Direction is the reading order of the row.
type Direction int

const (
	LTR Direction = iota
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// ParseDirection accepts "ltr", "rtl" or an empty string (LTR).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ltr":
		return LTR, nil
	case "rtl":
		return RTL, nil
	}
	return LTR, fmt.Errorf("unknown direction %q", s)
}

// MenuConfig describes the items and how to draw them.
type MenuConfig[T any] struct {
	Items []T

	// Key gives items a stable identity across SetItems. Defaults to the index.
	Key func(item T) string

	// Label names an item in the debug panel. Defaults to fmt.Sprint.
	Label func(item T) string

	// RenderItem draws one item. The result may span several lines; its
	// cell width and line count are what the layout measures.
	RenderItem func(item T, index int, visible bool) string

	// RenderMore draws the More trigger; open reports whether the overflow
	// panel is expanded. The wider of both forms is reserved.
	RenderMore func(open bool) string

	// RenderOverflow draws the hidden items under the row. When nil, each
	// hidden item is drawn with RenderItem(item, index, false).
	RenderOverflow func(hidden []T) []string

	// RowHeight pins the row to this many lines. Zero uses the measured
	// height of the first item.
	RowHeight int

	Direction Direction
	Debug     bool

	Debounce  time.Duration
	Scheduler overflow.Scheduler
	Resize    overflow.ResizeSource
	OnChange  func(overflow.State)
	Logf      func(format string, args ...any)
}

type extent struct {
	width, height int
}

// Menu is a tui.Component and the overflow.Geometry of its own controller.
type Menu[T any] struct {
	cfg  MenuConfig[T]
	ctrl *overflow.Controller[T]

	mu      sync.Mutex
	width   int
	open    bool
	extents map[string]extent
	more    extent
}

var (
	_ tui.Component     = (*Menu[string])(nil)
	_ tui.Mountable     = (*Menu[string])(nil)
	_ overflow.Geometry = (*Menu[string])(nil)
)

// NewMenu builds an unmounted menu.
func NewMenu[T any](cfg MenuConfig[T]) (*Menu[T], error) {
	if cfg.RenderItem == nil || cfg.RenderMore == nil {
		return nil, ErrMissingRenderer
	}
	m := &Menu[T]{cfg: cfg}
	m.ctrl = overflow.NewController[T](m, overflow.Options[T]{
		Key:         cfg.Key,
		Label:       cfg.Label,
		Debounce:    cfg.Debounce,
		Scheduler:   cfg.Scheduler,
		Resize:      cfg.Resize,
		OnChange:    cfg.OnChange,
		FixedHeight: cfg.RowHeight,
		Logf:        cfg.Logf,
	})
	m.remeasure(cfg.Items)
	return m, nil
}

// Controller exposes the underlying controller.
func (m *Menu[T]) Controller() *overflow.Controller[T] {
	return m.ctrl
}

// Mount starts measuring the configured items.
func (m *Menu[T]) Mount() {
	m.mu.Lock()
	items := slices.Clone(m.cfg.Items)
	m.mu.Unlock()
	m.ctrl.Mount(items)
}

// Unmount stops the controller and drops the resize subscription.
func (m *Menu[T]) Unmount() {
	m.ctrl.Unmount()
}

// SetItems replaces the items. The current row keeps rendering until the
// next pass settles.
func (m *Menu[T]) SetItems(items []T) {
	m.mu.Lock()
	m.cfg.Items = slices.Clone(items)
	m.mu.Unlock()
	m.remeasure(items)
	m.ctrl.SetItems(items)
}

// SetWidth records the container width and triggers a pass when it changed.
func (m *Menu[T]) SetWidth(w int) {
	m.mu.Lock()
	changed := w != m.width
	m.width = w
	m.mu.Unlock()
	if changed {
		m.ctrl.Resize()
	}
}

// Invalidate re-measures every item, e.g. after a theme change.
func (m *Menu[T]) Invalidate() {
	m.mu.Lock()
	items := slices.Clone(m.cfg.Items)
	m.mu.Unlock()
	m.remeasure(items)
	m.ctrl.Resize()
}

// Visible returns the items on the row.
func (m *Menu[T]) Visible() []T { return m.ctrl.Visible() }

// Overflow returns the items behind the More trigger.
func (m *Menu[T]) Overflow() []T { return m.ctrl.Overflow() }

// Height returns the pinned row height.
func (m *Menu[T]) Height() int {
	return m.rowHeight(m.ctrl.State())
}

// IsMoreVisible reports whether the More trigger is drawn.
func (m *Menu[T]) IsMoreVisible() bool {
	_, _, hidden := m.ctrl.Snapshot()
	return len(hidden) > 0
}

// SetOpen records whether the overflow panel is expanded.
func (m *Menu[T]) SetOpen(open bool) {
	m.mu.Lock()
	m.open = open
	m.mu.Unlock()
}

// IsOpen reports whether the overflow panel is expanded.
func (m *Menu[T]) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

func (m *Menu[T]) remeasure(items []T) {
	ext := make(map[string]extent, len(items))
	for i, item := range items {
		w, h := width.Block(m.cfg.RenderItem(item, i, true))
		ext[m.ctrl.KeyOf(item, i)] = extent{width: w, height: h}
	}
	cw, ch := width.Block(m.cfg.RenderMore(false))
	ow, oh := width.Block(m.cfg.RenderMore(true))

	m.mu.Lock()
	m.extents = ext
	m.more = extent{width: max(cw, ow), height: max(ch, oh)}
	m.mu.Unlock()
}

func (m *Menu[T]) rowHeight(st overflow.State) int {
	if m.cfg.RowHeight > 0 {
		return m.cfg.RowHeight
	}
	return max(st.ItemHeight, 1)
}

// ContainerWidth implements overflow.Geometry. A menu that has not been
// rendered yet has no width. A zero width is reported the same way: a
// terminal never lays out into zero columns, so such a pass is skipped
// rather than collapsing every item behind More.
func (m *Menu[T]) ContainerWidth() (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.width <= 0 {
		return 0, false
	}
	return float64(m.width), true
}

// MoreWidth implements overflow.Geometry.
func (m *Menu[T]) MoreWidth() (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return float64(m.more.width), true
}

// WidthOf implements overflow.Geometry.
func (m *Menu[T]) WidthOf(key string) (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.extents[key]
	return float64(e.width), ok
}

// HeightOf implements overflow.Geometry.
func (m *Menu[T]) HeightOf(key string) (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.extents[key]
	return float64(e.height), ok
}

// Render draws the row, then the overflow panel and the debug panel when
// enabled. Until the first pass settles the row is drawn blank at its
// pinned height so nothing jumps once the cut is known.
func (m *Menu[T]) Render(out *tui.RenderBuffer, w int) {
	m.SetWidth(w)

	st, visible, hidden := m.ctrl.Snapshot()
	height := m.rowHeight(st)

	if !st.Cut.Measured() {
		out.WriteRow(nil, height, w)
		m.renderDebug(out, w)
		return
	}

	out.WriteRow(m.row(visible, hidden, w), height, w)

	for _, line := range m.overflowLines(len(visible), hidden) {
		out.WriteLine(width.TruncateToWidth(line, w))
	}
	m.renderDebug(out, w)
}

func (m *Menu[T]) overflowLines(offset int, hidden []T) []string {
	if len(hidden) == 0 {
		return nil
	}
	if m.cfg.RenderOverflow != nil {
		return m.cfg.RenderOverflow(hidden)
	}
	var lines []string
	for j, item := range hidden {
		lines = append(lines, strings.Split(m.cfg.RenderItem(item, offset+j, false), "\n")...)
	}
	return lines
}

// Row returns the row lines for the current state, unpinned. Unmeasured
// menus return nil.
func (m *Menu[T]) Row(w int) []string {
	st, visible, hidden := m.ctrl.Snapshot()
	if !st.Cut.Measured() {
		return nil
	}
	return m.row(visible, hidden, w)
}

func (m *Menu[T]) row(visible, hidden []T, w int) []string {
	blocks := make([]string, 0, len(visible)+1)
	for i, item := range visible {
		blocks = append(blocks, m.cfg.RenderItem(item, i, true))
	}
	if len(hidden) > 0 {
		blocks = append(blocks, m.cfg.RenderMore(m.IsOpen()))
	}
	if len(blocks) == 0 {
		return nil
	}

	if m.cfg.Direction == RTL {
		slices.Reverse(blocks)
	}
	lines := width.JoinHorizontal(blocks...)
	for i, line := range lines {
		if m.cfg.Direction == RTL {
			lines[i] = width.PadLeft(line, w)
			continue
		}
		lines[i] = width.TruncateToWidth(line, w)
	}
	return lines
}

func (m *Menu[T]) renderDebug(out *tui.RenderBuffer, w int) {
	if !m.cfg.Debug {
		return
	}
	c := theme.Current().Palette.Debug
	for _, line := range m.ctrl.Stats().Lines() {
		out.WriteLine(c.Apply(width.TruncateToWidth(line, w)))
	}
}
