// ABOUTME: Tests for the inline render engine: differential rendering, row pinning, mount lifecycle
// ABOUTME: Uses in-memory writer to capture output for assertions

package tui

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

type mockComponent struct {
	mu      sync.Mutex
	lines   []string
	dirty   bool
	mounted int
	unmount int
}

func (m *mockComponent) Render(out *RenderBuffer, width int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out.WriteLines(m.lines)
}

func (m *mockComponent) Invalidate() {
	m.mu.Lock()
	m.dirty = true
	m.mu.Unlock()
}

func (m *mockComponent) Mount() {
	m.mu.Lock()
	m.mounted++
	m.mu.Unlock()
}

func (m *mockComponent) Unmount() {
	m.mu.Lock()
	m.unmount++
	m.mu.Unlock()
}

func (m *mockComponent) setLines(lines ...string) {
	m.mu.Lock()
	m.lines = lines
	m.mu.Unlock()
}

var (
	_ Component = (*mockComponent)(nil)
	_ Mountable = (*mockComponent)(nil)
)

func TestRenderBuffer_Pool(t *testing.T) {
	t.Parallel()

	buf := AcquireBuffer()
	buf.WriteLine("line1")
	buf.WriteLine("line2")

	if buf.Len() != 2 {
		t.Errorf("Len() = %d, want 2", buf.Len())
	}

	ReleaseBuffer(buf)

	// Re-acquire should give a clean buffer
	buf2 := AcquireBuffer()
	if buf2.Len() != 0 {
		t.Errorf("re-acquired buffer Len() = %d, want 0", buf2.Len())
	}
	ReleaseBuffer(buf2)
}

func TestRenderBuffer_WriteRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		lines  []string
		height int
		want   []string
	}{
		{name: "exact", lines: []string{"a"}, height: 1, want: []string{"a"}},
		{name: "extra lines dropped", lines: []string{"a", "b", "c"}, height: 2, want: []string{"a", "b"}},
		{name: "missing lines blank", lines: []string{"a"}, height: 3, want: []string{"a", "   ", "   "}},
		{name: "zero height", lines: []string{"a"}, height: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf RenderBuffer
			buf.WriteRow(tt.lines, tt.height, 3)
			if strings.Join(buf.Lines, "|") != strings.Join(tt.want, "|") {
				t.Errorf("WriteRow() = %q, want %q", buf.Lines, tt.want)
			}
		})
	}
}

func TestTUI_RenderOnce(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	ui := New(&out, 80, 24)
	ui.SetRoot(&mockComponent{lines: []string{"test line"}})

	ui.RenderOnce()

	result := out.String()
	if !strings.Contains(result, "test line") {
		t.Errorf("expected output to contain 'test line', got %q", result)
	}
	if !strings.Contains(result, "\x1b[?2026h") {
		t.Error("expected synchronized output markers")
	}
}

func TestTUI_NoRootNoOutput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	ui := New(&out, 80, 24)
	ui.RenderOnce()
	if out.Len() != 0 {
		t.Errorf("render without root wrote %q", out.String())
	}
}

func TestTUI_DifferentialRender(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	ui := New(&out, 80, 24)

	comp := &mockComponent{lines: []string{"first", "second"}}
	ui.SetRoot(comp)
	ui.RenderOnce()

	// Same content: nothing to write.
	out.Reset()
	ui.RenderOnce()
	if out.Len() != 0 {
		t.Errorf("unchanged frame wrote %q", out.String())
	}

	// One changed line: only that line is rewritten.
	comp.setLines("first", "SECOND")
	out.Reset()
	ui.RenderOnce()
	result := out.String()
	if strings.Contains(result, "first") {
		t.Errorf("unchanged line was rewritten: %q", result)
	}
	if !strings.Contains(result, "SECOND") {
		t.Errorf("changed line missing: %q", result)
	}
}

func TestTUI_ShrinkClearsExcessLines(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	ui := New(&out, 80, 24)
	comp := &mockComponent{lines: []string{"a", "b", "c"}}
	ui.SetRoot(comp)
	ui.RenderOnce()

	comp.setLines("a")
	out.Reset()
	ui.RenderOnce()
	if n := strings.Count(out.String(), "\x1b[2K"); n != 2 {
		t.Errorf("expected 2 erased lines, got %d in %q", n, out.String())
	}
}

func TestTUI_ClampsToHeight(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	ui := New(&out, 80, 2)
	ui.SetRoot(&mockComponent{lines: []string{"one", "two", "three"}})
	ui.RenderOnce()

	if strings.Contains(out.String(), "three") {
		t.Errorf("rendered past terminal height: %q", out.String())
	}
}

func TestTUI_WidthChangeRewritesRegion(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	ui := New(&out, 80, 24)
	ui.SetRoot(&mockComponent{lines: []string{"row"}})
	ui.RenderOnce()

	ui.SetSize(40, 24)
	out.Reset()
	ui.RenderOnce()
	if !strings.Contains(out.String(), "row") {
		t.Errorf("width change did not redraw: %q", out.String())
	}
	if w, h := ui.Size(); w != 40 || h != 24 {
		t.Errorf("Size() = (%d, %d), want (40, 24)", w, h)
	}
}

func TestTUI_StartStopMountsRoot(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	ui := New(&out, 80, 24)
	comp := &mockComponent{lines: []string{"x"}}
	ui.SetRoot(comp)

	ui.Start()
	ui.Start()
	ui.Stop()
	ui.Stop()

	comp.mu.Lock()
	defer comp.mu.Unlock()
	if comp.mounted != 1 || comp.unmount != 1 {
		t.Errorf("mounted=%d unmounted=%d, want 1 and 1", comp.mounted, comp.unmount)
	}
}
