// ABOUTME: Pooled line buffer for TUI rendering; recycled via sync.Pool
// ABOUTME: WriteRow pins a block to a fixed number of lines so a row can never grow

package tui

import (
	"strings"
	"sync"
)

var bufferPool = sync.Pool{
	New: func() any {
		return &RenderBuffer{
			Lines: make([]string, 0, 64),
		}
	},
}

// AcquireBuffer gets a RenderBuffer from the pool.
func AcquireBuffer() *RenderBuffer {
	buf := bufferPool.Get().(*RenderBuffer)
	buf.Reset()
	return buf
}

// ReleaseBuffer returns a RenderBuffer to the pool.
func ReleaseBuffer(buf *RenderBuffer) {
	if buf == nil {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}

// RenderBuffer is a pooled line buffer that components write into.
// The TUI engine allocates from sync.Pool and recycles after each frame.
type RenderBuffer struct {
	Lines []string
}

// WriteLine appends a single line to the buffer.
func (b *RenderBuffer) WriteLine(line string) {
	b.Lines = append(b.Lines, line)
}

// WriteLines appends multiple lines to the buffer.
func (b *RenderBuffer) WriteLines(lines []string) {
	b.Lines = append(b.Lines, lines...)
}

// WriteRow writes exactly height lines: extra lines are dropped and missing
// ones are filled with blanks of the given width.
func (b *RenderBuffer) WriteRow(lines []string, height, width int) {
	blank := strings.Repeat(" ", max(width, 0))
	for i := range max(height, 0) {
		if i < len(lines) {
			b.Lines = append(b.Lines, lines[i])
			continue
		}
		b.Lines = append(b.Lines, blank)
	}
}

// Reset clears the buffer for reuse without deallocating.
func (b *RenderBuffer) Reset() {
	b.Lines = b.Lines[:0]
}

// Len returns the number of lines in the buffer.
func (b *RenderBuffer) Len() int {
	return len(b.Lines)
}
