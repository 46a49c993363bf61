// ABOUTME: Built-in themes: default, dark, light, monochrome
// ABOUTME: Provides Builtin(name) lookup, Lookup with an error, and BuiltinNames() enumeration

package theme

import (
	"errors"
	"fmt"
)

// ErrUnknownTheme is returned by Lookup for names that are not built in.
var ErrUnknownTheme = errors.New("unknown theme")

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"dark": {
		Name: "dark",
		Palette: Palette{
			Item:      NewColor("\x1b[97m"),
			More:      NewColor("\x1b[38;5;214m"),
			Separator: NewColor("\x1b[38;5;240m"),

			Border:    NewColor("\x1b[38;5;240m"),
			Selection: NewColor("\x1b[48;5;236m"),
			Filter:    NewColor("\x1b[38;5;117m"),
			Muted:     NewColor("\x1b[2m"),

			Debug: NewColor("\x1b[38;5;221m"),

			Bold: NewColor("\x1b[1m"),
			Dim:  NewColor("\x1b[2m"),
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Item:      NewColor("\x1b[30m"),
			More:      NewColor("\x1b[38;5;166m"),
			Separator: NewColor("\x1b[38;5;249m"),

			Border:    NewColor("\x1b[38;5;249m"),
			Selection: NewColor("\x1b[48;5;254m"),
			Filter:    NewColor("\x1b[38;5;25m"),
			Muted:     NewColor("\x1b[2m"),

			Debug: NewColor("\x1b[38;5;130m"),

			Bold: NewColor("\x1b[1m"),
			Dim:  NewColor("\x1b[2m"),
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Item:      NewColor("\x1b[0m"),
			More:      NewColor("\x1b[1m"),
			Separator: NewColor("\x1b[2m"),

			Border:    NewColor("\x1b[2m"),
			Selection: NewColor("\x1b[7m"),
			Filter:    NewColor("\x1b[4m"),
			Muted:     NewColor("\x1b[2m"),

			Debug: NewColor("\x1b[0m"),

			Bold: NewColor("\x1b[1m"),
			Dim:  NewColor("\x1b[2m"),
		},
	},
}

// Builtin returns a built-in theme by name, or nil if unknown.
func Builtin(name string) *Theme {
	return builtins[name]
}

// Lookup is Builtin with an error for unknown names. An empty name
// selects the default theme.
func Lookup(name string) (*Theme, error) {
	if name == "" {
		name = "default"
	}
	th := builtins[name]
	if th == nil {
		return nil, fmt.Errorf("theme %q: %w", name, ErrUnknownTheme)
	}
	return th, nil
}

// BuiltinNames returns the names of all built-in themes.
func BuiltinNames() []string {
	return []string{"default", "dark", "light", "monochrome"}
}
