// ABOUTME: Cell-accurate row helpers: truncation, padding, and side-by-side block joining
// ABOUTME: ANSI-aware; used to assemble the one-row menu and pin its height

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

// TruncateToWidth truncates s to at most maxWidth visible columns.
// If truncation occurs, the last visible character is replaced with ellipsis.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisibleWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}

	var b strings.Builder
	col := 0
	target := maxWidth - 1
	i := 0
	for i < len(s) && col < target {
		if s[i] == '\x1b' {
			end := skipANSISequence(s, i)
			b.WriteString(s[i:end])
			i = end
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s[i:], -1)
		cw := graphemeWidth(cluster)
		if col+cw > target {
			break
		}
		b.WriteString(cluster)
		col += cw
		i += len(s[i:]) - len(rest)
	}
	b.WriteString("\x1b[0m")
	b.WriteRune('…')
	return b.String()
}

// PadRight appends spaces so s occupies exactly w cells, truncating if it
// is wider.
func PadRight(s string, w int) string {
	vw := VisibleWidth(s)
	if vw > w {
		return TruncateToWidth(s, w)
	}
	return s + strings.Repeat(" ", w-vw)
}

// PadLeft prepends spaces so s occupies exactly w cells, truncating if it
// is wider.
func PadLeft(s string, w int) string {
	vw := VisibleWidth(s)
	if vw > w {
		return TruncateToWidth(s, w)
	}
	return strings.Repeat(" ", w-vw) + s
}

// JoinHorizontal places blocks side by side, top aligned. Each block is
// padded to its own widest line so columns stay put on every row.
func JoinHorizontal(blocks ...string) []string {
	if len(blocks) == 0 {
		return nil
	}

	split := make([][]string, len(blocks))
	widths := make([]int, len(blocks))
	rows := 0
	for i, blk := range blocks {
		split[i] = strings.Split(blk, "\n")
		widths[i], _ = Block(blk)
		rows = max(rows, len(split[i]))
	}

	out := make([]string, rows)
	var b strings.Builder
	for r := range rows {
		b.Reset()
		for i, lines := range split {
			line := ""
			if r < len(lines) {
				line = lines[r]
			}
			b.WriteString(PadRight(line, widths[i]))
		}
		out[r] = b.String()
	}
	return out
}
