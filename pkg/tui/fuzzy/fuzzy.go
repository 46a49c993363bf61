// ABOUTME: Thin wrapper over sahilm/fuzzy used to filter the overflow panel
// ABOUTME: Matches arbitrary items through a label func; an empty pattern keeps every item in order

package fuzzy

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Match represents a single fuzzy match result.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// Find performs fuzzy matching of pattern against the given strings.
// Returns matches sorted by score (best first).
func Find(pattern string, items []string) []Match {
	return convert(fuzzy.Find(pattern, items))
}

// labelSource adapts a slice of items to fuzzy.Source.
type labelSource[T any] struct {
	items []T
	label func(T) string
}

func (s labelSource[T]) String(i int) string { return s.label(s.items[i]) }
func (s labelSource[T]) Len() int            { return len(s.items) }

// Filter matches pattern against label(item) for each item. A blank
// pattern matches everything in input order with no highlighted runes.
func Filter[T any](pattern string, items []T, label func(T) string) []Match {
	if strings.TrimSpace(pattern) == "" {
		out := make([]Match, len(items))
		for i, item := range items {
			out[i] = Match{Str: label(item), Index: i}
		}
		return out
	}
	return convert(fuzzy.FindFrom(pattern, labelSource[T]{items: items, label: label}))
}

func convert(results fuzzy.Matches) []Match {
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}
