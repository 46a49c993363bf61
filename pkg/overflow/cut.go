// ABOUTME: Layout engine: computes where a one-row item list must be cut to fit its container
// ABOUTME: Pure functions over pre-rounded cell/pixel widths; Partition derives visible/overflow slices

package overflow

import (
	"fmt"
	"math"
	"slices"
	"strconv"
)

// Cut is the index of the last visible item. Items [0..Cut] stay on the row
// and items [Cut+1..] move to the overflow panel.
type Cut int

const (
	// NoneVisible means every item overflows; only the more indicator is shown.
	NoneVisible Cut = -1

	// AllFit means the whole list fits and no more indicator is needed.
	AllFit Cut = math.MaxInt

	// Unset means no measurement pass has completed yet.
	Unset Cut = math.MinInt
)

// String returns "unset", "all", "none" or the numeric index.
func (c Cut) String() string {
	switch c {
	case Unset:
		return "unset"
	case AllFit:
		return "all"
	case NoneVisible:
		return "none"
	default:
		return strconv.Itoa(int(c))
	}
}

// ParseCut is the inverse of Cut.String.
func ParseCut(s string) (Cut, error) {
	switch s {
	case "unset":
		return Unset, nil
	case "all":
		return AllFit, nil
	case "none":
		return NoneVisible, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Unset, err
	}
	if n < int(NoneVisible) {
		return NoneVisible, nil
	}
	return Cut(n), nil
}

// MarshalText encodes the cut as its String form.
func (c Cut) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes the String form.
func (c *Cut) UnmarshalText(b []byte) error {
	v, err := ParseCut(string(b))
	if err != nil {
		return fmt.Errorf("parsing cut %q: %w", b, err)
	}
	*c = v
	return nil
}

// Measured reports whether c came from a measurement pass.
func (c Cut) Measured() bool {
	return c != Unset
}

// VisibleCount returns how many of n items are on the row.
func (c Cut) VisibleCount(n int) int {
	switch {
	case c == Unset || n <= 0:
		return 0
	case c == AllFit:
		return n
	case c < 0:
		return 0
	default:
		return min(int(c)+1, n)
	}
}

// IsOverflowing reports whether at least one of n items is hidden.
// An unmeasured cut hides nothing: the whole row is invisible instead.
func (c Cut) IsOverflowing(n int) bool {
	if c == Unset {
		return false
	}
	return c.VisibleCount(n) < n
}

// ComputeCut returns the cut for items of the given widths laid out left to
// right in a container, reserving room for the more indicator once anything
// is hidden. Widths are expected to be already rounded up (see Ceil);
// negative values are treated as zero. Comparisons are made against the
// remaining room, so widths up to math.MaxInt cannot overflow the sum.
func ComputeCut(widths []int, container, more int) Cut {
	container = max(container, 0)
	more = max(more, 0)

	used := 0
	for i, w := range widths {
		w = max(w, 0)
		if w <= container-used {
			used += w
			continue
		}

		// Item i does not fit; start from the last accepted item and give
		// back space until the more indicator fits too.
		cut := i - 1
		for cut >= 0 && more > container-used {
			used -= max(widths[cut], 0)
			cut--
		}
		return Cut(cut)
	}
	return AllFit
}

// Ceil rounds a measured extent up to a whole unit. Non-positive and NaN
// values become zero so repeated passes over the same geometry agree.
func Ceil(v float64) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if math.IsInf(v, 1) {
		return math.MaxInt32
	}
	return int(math.Ceil(v))
}

// Partition splits items into the visible prefix and the overflow suffix
// for the given cut. Both results are fresh slices; concatenated they equal
// items. An unmeasured cut yields two empty slices.
func Partition[T any](items []T, c Cut) (visible, hidden []T) {
	if c == Unset {
		return nil, nil
	}
	n := c.VisibleCount(len(items))
	return slices.Clone(items[:n]), slices.Clone(items[n:])
}
