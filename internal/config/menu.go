// ABOUTME: YAML menu file: items, direction, row height, debounce, theme and debug switches
// ABOUTME: Labels are NFC-normalised and every item gets a unique key before the menu sees it

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid menu file")

// Item is one menu entry. In YAML it is either a bare label or a mapping
// with label, key and href.
type Item struct {
	Label string `yaml:"label"`
	Key   string `yaml:"key,omitempty"`
	Href  string `yaml:"href,omitempty"`
}

// UnmarshalYAML accepts a scalar label as shorthand for {label: ...}.
func (it *Item) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		it.Label = node.Value
		return nil
	}
	type plain Item
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*it = Item(p)
	return nil
}

func (it Item) String() string { return it.Label }

// Duration is a time.Duration that decodes from "150ms" style strings.
type Duration time.Duration

// UnmarshalYAML parses a Go duration string or a bare number of milliseconds.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if ms, err := strconv.Atoi(node.Value); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}
	v, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(v)
	return nil
}

// MenuFile is the decoded menu configuration.
type MenuFile struct {
	Items     []Item   `yaml:"items"`
	Direction string   `yaml:"direction"`
	RowHeight int      `yaml:"row_height"`
	Debounce  Duration `yaml:"debounce"`
	Debug     bool     `yaml:"debug"`
	MoreLabel string   `yaml:"more_label"`
	Theme     string   `yaml:"theme"`
}

// Delay converts Debounce to the controller convention, where zero selects
// the default window and a negative value fires on the next tick. An
// explicit "debounce: 0" in the file therefore means no delay.
func (f *MenuFile) Delay() time.Duration {
	if f.Debounce == 0 {
		return -1
	}
	return time.Duration(f.Debounce)
}

// sampleItems is the built-in menu used when no file is configured.
var sampleItems = []string{
	"Pizza", "Burger", "Risotto", "Pasta", "Salad", "Cereal", "Steak", "Tacos",
	"Sushi", "Curry", "Sandwich", "Soup", "Sushi", "Pasta", "Curry",
}

// Default returns the built-in sample menu.
func Default() *MenuFile {
	f := &MenuFile{
		Direction: "ltr",
		Debounce:  Duration(100 * time.Millisecond),
		MoreLabel: "More",
	}
	for _, label := range sampleItems {
		f.Items = append(f.Items, Item{Label: label})
	}
	f.normalize()
	return f
}

// Load reads, normalises and validates a menu file.
func Load(path string) (*MenuFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading menu file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML bytes. Missing fields take their defaults.
func Parse(data []byte) (*MenuFile, error) {
	f := &MenuFile{
		Debounce:  Duration(100 * time.Millisecond),
		MoreLabel: "More",
	}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, err
	}
	ResolveEnvVars(f)
	f.normalize()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate reports the first problem with the file.
func (f *MenuFile) Validate() error {
	switch strings.ToLower(f.Direction) {
	case "", "ltr", "rtl":
	default:
		return fmt.Errorf("%w: direction %q (want ltr or rtl)", ErrInvalid, f.Direction)
	}
	if f.RowHeight < 0 {
		return fmt.Errorf("%w: row_height %d is negative", ErrInvalid, f.RowHeight)
	}
	if f.Debounce < 0 {
		return fmt.Errorf("%w: debounce %s is negative", ErrInvalid, time.Duration(f.Debounce))
	}
	if strings.TrimSpace(f.MoreLabel) == "" {
		return fmt.Errorf("%w: more_label is empty", ErrInvalid)
	}
	seen := make(map[string]int, len(f.Items))
	for i, it := range f.Items {
		if strings.TrimSpace(it.Label) == "" {
			return fmt.Errorf("%w: item %d has no label", ErrInvalid, i)
		}
		if j, dup := seen[it.Key]; dup {
			return fmt.Errorf("%w: items %d and %d share key %q", ErrInvalid, j, i, it.Key)
		}
		seen[it.Key] = i
	}
	return nil
}

// normalize NFC-composes labels so cell widths do not depend on how the
// text was typed, and derives missing keys from labels. Repeated labels
// get a "~N" suffix.
func (f *MenuFile) normalize() {
	f.MoreLabel = norm.NFC.String(f.MoreLabel)
	f.Direction = strings.ToLower(strings.TrimSpace(f.Direction))

	used := make(map[string]bool, len(f.Items))
	for _, it := range f.Items {
		if it.Key != "" {
			used[it.Key] = true
		}
	}
	counts := make(map[string]int, len(f.Items))
	for i := range f.Items {
		it := &f.Items[i]
		it.Label = norm.NFC.String(strings.TrimSpace(it.Label))
		if it.Key != "" {
			continue
		}
		var key string
		for {
			counts[it.Label]++
			key = it.Label
			if n := counts[it.Label]; n > 1 {
				key = it.Label + "~" + strconv.Itoa(n)
			}
			if !used[key] {
				break
			}
		}
		used[key] = true
		it.Key = key
	}
}

// Labels returns the item labels in order.
func (f *MenuFile) Labels() []string {
	out := make([]string, len(f.Items))
	for i, it := range f.Items {
		out[i] = it.Label
	}
	return out
}
