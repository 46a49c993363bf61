// ABOUTME: Decides the terminal background before Bubble Tea's init() can send OSC 10/11 queries
// ABOUTME: Reads $COLORFGBG when set and assumes dark otherwise; import it with _ before bubbletea

package termfix

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// This package must not import bubbletea, directly or transitively, so
// that init order runs this first.
func init() {
	lipgloss.SetHasDarkBackground(darkBackground(os.Getenv("COLORFGBG")))
}

// darkBackground interprets COLORFGBG ("fg;bg" or "fg;default;bg").
// Background colors 0-6 and 8 are dark; unknown values count as dark.
func darkBackground(colorfgbg string) bool {
	if colorfgbg == "" {
		return true
	}
	parts := strings.Split(colorfgbg, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return true
	}
	return bg < 7 || bg == 8
}
