// ABOUTME: Tests for diagnostic stats: counts, debug panel lines, easyjson encoding
// ABOUTME: Decodes the encoded form back to check the slice position text encoding

package overflow

import (
	"strings"
	"testing"
)

func TestController_Stats(t *testing.T) {
	t.Parallel()

	c, sched, _ := newTestController(scenarioGeometry(), Options[string]{})
	c.Mount(scenarioItems)

	before := c.Stats()
	if before.Cut != Unset || before.Total != 4 || before.Visible != 0 || before.Hidden != 0 {
		t.Errorf("Stats() before pass = %+v", before)
	}

	sched.Fire()
	s := c.Stats()
	if s.Total != 4 || s.Visible != 2 || s.Hidden != 2 || s.Cut != 1 || s.Passes != 1 {
		t.Errorf("Stats() = %+v", s)
	}
	if got := strings.Join(s.HiddenItems, ","); got != "About,Contact" {
		t.Errorf("HiddenItems = %q", got)
	}
}

func TestStats_Lines(t *testing.T) {
	t.Parallel()

	lines := Stats{Total: 3, Cut: AllFit}.Lines()
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"Total items: 3", "Hidden: 0", "slicePosition: all", "Hidden items: none"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Lines() missing %q in:\n%s", want, joined)
		}
	}

	lines = Stats{Total: 3, Hidden: 2, Cut: 0, HiddenItems: []string{"b", "c"}}.Lines()
	if last := lines[len(lines)-1]; last != "Hidden items: b, c" {
		t.Errorf("last line = %q", last)
	}
}

func TestStats_JSON(t *testing.T) {
	t.Parallel()

	in := Stats{Total: 4, Visible: 2, Hidden: 2, Cut: 1, ItemHeight: 1, MoreWidth: 6, Passes: 3, HiddenItems: []string{"About", "Contact"}}
	data, err := in.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error: %v", err)
	}
	want := `{"total":4,"visible":2,"hidden":2,"slice_position":"1","item_height":1,"more_width":6,"passes":3,"hidden_items":["About","Contact"]}`
	if string(data) != want {
		t.Errorf("MarshalJSON() =\n%s\nwant\n%s", data, want)
	}

	var out Stats
	if err := out.UnmarshalJSON([]byte(`{"total":1,"slice_position":"none","hidden_items":["x"],"extra":{"a":1}}`)); err != nil {
		t.Fatalf("UnmarshalJSON() error: %v", err)
	}
	if out.Cut != NoneVisible || out.Total != 1 || len(out.HiddenItems) != 1 {
		t.Errorf("UnmarshalJSON() = %+v", out)
	}
}
