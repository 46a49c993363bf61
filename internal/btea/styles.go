// ABOUTME: Lipgloss style bridge from theme.Color ANSI escape codes
// ABOUTME: Parses SGR sequences into lipgloss styles; Styles() caches one set per theme pointer

package btea

import (
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/prioritynav/pkg/tui/theme"
)

// sgrRe matches a single ANSI SGR sequence like \x1b[38;5;208m.
var sgrRe = regexp.MustCompile(`\x1b\[([\d;]+)m`)

// sgr is the parsed content of one or more SGR sequences. Colors are
// lipgloss specs ("208", "1"); the last color of each kind wins.
type sgr struct {
	fg, bg    string
	bold      bool
	dim       bool
	italic    bool
	underline bool
	reverse   bool
}

func parseSGR(code string) sgr {
	var s sgr
	for _, m := range sgrRe.FindAllStringSubmatch(code, -1) {
		params := strings.Split(m[1], ";")
		if len(params) >= 3 && params[1] == "5" {
			switch params[0] {
			case "38":
				s.fg = params[2]
				continue
			case "48":
				s.bg = params[2]
				continue
			}
		}
		for _, p := range params {
			n, err := strconv.Atoi(p)
			if err != nil {
				continue
			}
			switch {
			case n == 1:
				s.bold = true
			case n == 2:
				s.dim = true
			case n == 3:
				s.italic = true
			case n == 4:
				s.underline = true
			case n == 7:
				s.reverse = true
			case n >= 30 && n <= 37:
				s.fg = strconv.Itoa(n - 30)
			case n >= 90 && n <= 97:
				s.fg = strconv.Itoa(n - 90 + 8)
			case n >= 40 && n <= 47:
				s.bg = strconv.Itoa(n - 40)
			case n >= 100 && n <= 107:
				s.bg = strconv.Itoa(n - 100 + 8)
			}
		}
	}
	return s
}

// colorToStyle builds a lipgloss.Style from a raw ANSI escape code string.
func colorToStyle(code string) lipgloss.Style {
	a := parseSGR(code)
	s := lipgloss.NewStyle()
	if a.fg != "" {
		s = s.Foreground(lipgloss.Color(a.fg))
	}
	if a.bg != "" {
		s = s.Background(lipgloss.Color(a.bg))
	}
	return s.Bold(a.bold).
		Faint(a.dim).
		Italic(a.italic).
		Underline(a.underline).
		Reverse(a.reverse)
}

// ThemeStyles holds the lipgloss styles of the menu roles.
type ThemeStyles struct {
	Item      lipgloss.Style
	More      lipgloss.Style
	Separator lipgloss.Style

	Panel     lipgloss.Style
	Selection lipgloss.Style
	Filter    lipgloss.Style
	Muted     lipgloss.Style
	Debug     lipgloss.Style
}

type themeStylesEntry struct {
	theme  *theme.Theme
	styles ThemeStyles
}

var cachedStyles atomic.Pointer[themeStylesEntry]

// Styles returns ThemeStyles for the current theme, rebuilt only when the
// theme pointer changes.
func Styles() ThemeStyles {
	t := theme.Current()
	if e := cachedStyles.Load(); e != nil && e.theme == t {
		return e.styles
	}
	s := buildStyles(t)
	cachedStyles.Store(&themeStylesEntry{theme: t, styles: s})
	return s
}

func buildStyles(t *theme.Theme) ThemeStyles {
	p := t.Palette
	border := parseSGR(p.Border.Code())
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if border.fg != "" {
		panel = panel.BorderForeground(lipgloss.Color(border.fg))
	}
	return ThemeStyles{
		Item:      colorToStyle(p.Item.Code()).Padding(0, 1),
		More:      colorToStyle(p.More.Code()).Padding(0, 1),
		Separator: colorToStyle(p.Separator.Code()),

		Panel:     panel,
		Selection: colorToStyle(p.Selection.Code()),
		Filter:    colorToStyle(p.Filter.Code()),
		Muted:     colorToStyle(p.Muted.Code()),
		Debug:     colorToStyle(p.Debug.Code()),
	}
}
