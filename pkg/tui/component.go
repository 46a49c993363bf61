// ABOUTME: Core TUI interfaces: Component and Mountable
// ABOUTME: Components render whole lines into a RenderBuffer and never exceed the given width

package tui

// Component is the base interface for all TUI elements.
// Components render into a pooled RenderBuffer and must not exceed the given width.
type Component interface {
	// Render writes the component's visual lines into out.
	// Lines must not exceed width visible columns.
	Render(out *RenderBuffer, width int)

	// Invalidate clears any cached render state, forcing a full re-render
	// on the next Render call.
	Invalidate()
}

// Mountable is implemented by components that own observers or timers.
// The engine mounts the root before the first frame and unmounts it on Stop.
type Mountable interface {
	Mount()
	Unmount()
}
