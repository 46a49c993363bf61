// ABOUTME: Semantic color theme types for the menu bar: Color, Palette, Theme
// ABOUTME: Color.Apply wraps text in ANSI codes; Palette maps menu roles to colors

package theme

// Color represents a terminal color that can style text.
type Color struct {
	code string
}

// NewColor creates a Color from a raw ANSI escape code.
func NewColor(code string) Color {
	return Color{code: code}
}

// Apply wraps text with the ANSI color code and a reset suffix.
// If the color code is empty, the text is returned unchanged.
func (c Color) Apply(text string) string {
	if c.code == "" {
		return text
	}
	return c.code + text + "\x1b[0m"
}

// Code returns the raw ANSI escape code.
func (c Color) Code() string {
	return c.code
}

// Bold returns a new Color that prepends bold (\x1b[1m) to the code.
func (c Color) Bold() Color {
	return Color{code: "\x1b[1m" + c.code}
}

// Dim returns a new Color that prepends dim (\x1b[2m) to the code.
func (c Color) Dim() Color {
	return Color{code: "\x1b[2m" + c.code}
}

// Palette holds the colors of the menu roles.
type Palette struct {
	// Row
	Item      Color
	More      Color
	Separator Color

	// Overflow panel
	Border    Color
	Selection Color
	Filter    Color
	Muted     Color

	// Debug panel
	Debug Color

	// Formatting
	Bold Color
	Dim  Color
}

// Theme holds a named palette.
type Theme struct {
	Name    string
	Palette Palette
}

// DefaultPalette returns the palette used when no theme is configured.
func DefaultPalette() Palette {
	return Palette{
		Item:      NewColor("\x1b[0m"),
		More:      NewColor("\x1b[38;5;208m"),
		Separator: NewColor("\x1b[90m"),

		Border:    NewColor("\x1b[90m"),
		Selection: NewColor("\x1b[7m"),
		Filter:    NewColor("\x1b[36m"),
		Muted:     NewColor("\x1b[2m"),

		Debug: NewColor("\x1b[33m"),

		Bold: NewColor("\x1b[1m"),
		Dim:  NewColor("\x1b[2m"),
	}
}
