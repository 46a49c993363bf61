// ABOUTME: Diagnostic snapshot of a controller: total/visible/hidden counts and the hidden list
// ABOUTME: Lines renders the human debug panel; JSON encoding lives in stats_easyjson.go

//go:generate easyjson stats.go

package overflow

import (
	"fmt"
	"strings"
)

// Stats summarises the current partition.
//
//easyjson:json
type Stats struct {
	Total       int      `json:"total"`
	Visible     int      `json:"visible"`
	Hidden      int      `json:"hidden"`
	Cut         Cut      `json:"slice_position"`
	ItemHeight  int      `json:"item_height"`
	MoreWidth   int      `json:"more_width"`
	Passes      int      `json:"passes"`
	HiddenItems []string `json:"hidden_items"`
}

// Stats returns a diagnostic snapshot.
func (c *Controller[T]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	visible, hidden := Partition(c.items, c.state.Cut)
	labels := make([]string, len(hidden))
	for i, item := range hidden {
		labels[i] = c.label(item)
	}
	return Stats{
		Total:       len(c.items),
		Visible:     len(visible),
		Hidden:      len(hidden),
		Cut:         c.state.Cut,
		ItemHeight:  c.state.ItemHeight,
		MoreWidth:   c.state.MoreWidth,
		Passes:      c.passes,
		HiddenItems: labels,
	}
}

// Lines renders the debug panel.
func (s Stats) Lines() []string {
	hidden := "none"
	if len(s.HiddenItems) > 0 {
		hidden = strings.Join(s.HiddenItems, ", ")
	}
	return []string{
		fmt.Sprintf("Total items: %d", s.Total),
		fmt.Sprintf("Visible: %d", s.Visible),
		fmt.Sprintf("Hidden: %d", s.Hidden),
		fmt.Sprintf("slicePosition: %s", s.Cut),
		"",
		"Hidden items: " + hidden,
	}
}
