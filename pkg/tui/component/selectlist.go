// ABOUTME: Filterable scrollable list used as the overflow panel of the menu
// ABOUTME: Fuzzy filtering by label, viewport scrolling, and selection that maps back to the source item

package component

import (
	"github.com/mauromedda/prioritynav/pkg/tui"
	"github.com/mauromedda/prioritynav/pkg/tui/fuzzy"
	"github.com/mauromedda/prioritynav/pkg/tui/theme"
	"github.com/mauromedda/prioritynav/pkg/tui/width"
)

// SelectList is a filterable, scrollable list of items.
type SelectList[T any] struct {
	items     []T
	label     func(T) string
	matches   []fuzzy.Match
	selected  int
	scrollOff int
	maxHeight int
	filter    string
}

// NewSelectList creates a SelectList over items, matched and drawn by label.
func NewSelectList[T any](items []T, label func(T) string) *SelectList[T] {
	sl := &SelectList[T]{
		items:     items,
		label:     label,
		maxHeight: 10,
	}
	sl.applyFilter()
	return sl
}

// SetItems replaces the item list, keeps the filter, and resets selection.
func (sl *SelectList[T]) SetItems(items []T) {
	sl.items = items
	sl.reset()
}

// SetFilter sets the fuzzy filter string and refilters.
func (sl *SelectList[T]) SetFilter(f string) {
	sl.filter = f
	sl.reset()
}

// Filter returns the current filter string.
func (sl *SelectList[T]) Filter() string {
	return sl.filter
}

// SetMaxHeight limits the number of visible rows.
func (sl *SelectList[T]) SetMaxHeight(h int) {
	sl.maxHeight = max(h, 1)
	sl.adjustScroll()
}

// Len returns the number of items passing the filter.
func (sl *SelectList[T]) Len() int {
	return len(sl.matches)
}

// SelectedIndex returns the index within the filtered items.
func (sl *SelectList[T]) SelectedIndex() int {
	return sl.selected
}

// Selected returns the selected item and its index in the unfiltered
// list. ok is false when nothing matches.
func (sl *SelectList[T]) Selected() (item T, index int, ok bool) {
	if len(sl.matches) == 0 {
		return item, -1, false
	}
	idx := sl.matches[sl.selected].Index
	return sl.items[idx], idx, true
}

// VisibleItems returns the items passing the filter, best match first.
func (sl *SelectList[T]) VisibleItems() []T {
	out := make([]T, len(sl.matches))
	for i, m := range sl.matches {
		out[i] = sl.items[m.Index]
	}
	return out
}

// Invalidate is a no-op; the list renders from its state every frame.
func (sl *SelectList[T]) Invalidate() {}

// MoveUp selects the previous item.
func (sl *SelectList[T]) MoveUp() {
	if sl.selected > 0 {
		sl.selected--
		sl.adjustScroll()
	}
}

// MoveDown selects the next item.
func (sl *SelectList[T]) MoveDown() {
	if sl.selected < len(sl.matches)-1 {
		sl.selected++
		sl.adjustScroll()
	}
}

func (sl *SelectList[T]) reset() {
	sl.selected = 0
	sl.scrollOff = 0
	sl.applyFilter()
}

func (sl *SelectList[T]) adjustScroll() {
	if sl.selected < sl.scrollOff {
		sl.scrollOff = sl.selected
	}
	if sl.selected >= sl.scrollOff+sl.maxHeight {
		sl.scrollOff = sl.selected - sl.maxHeight + 1
	}
}

func (sl *SelectList[T]) applyFilter() {
	sl.matches = fuzzy.Filter(sl.filter, sl.items, sl.label)
}

// Lines returns the rows of the viewport, the selected one highlighted.
func (sl *SelectList[T]) Lines(w int) []string {
	end := min(sl.scrollOff+sl.maxHeight, len(sl.matches))
	if sl.scrollOff >= end {
		return nil
	}
	p := theme.Current().Palette
	lines := make([]string, 0, end-sl.scrollOff)
	for i := sl.scrollOff; i < end; i++ {
		line := width.TruncateToWidth("  "+sl.matches[i].Str, w)
		if i == sl.selected {
			line = p.Bold.Code() + p.Selection.Code() + line + "\x1b[0m"
		}
		lines = append(lines, line)
	}
	return lines
}

// Render writes the viewport into the buffer.
func (sl *SelectList[T]) Render(out *tui.RenderBuffer, w int) {
	out.WriteLines(sl.Lines(w))
}
