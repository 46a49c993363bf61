// ABOUTME: Geometry provider contract: live widths/heights of rendered items, container and more indicator
// ABOUTME: StaticGeometry is a mutex-guarded in-memory provider for tests and precomputed layouts

package overflow

import "sync"

// Geometry exposes the rendered extents a measurement pass reads. Every
// method reports ok=false while the corresponding node is not attached yet;
// the pass is then skipped and retried on the next trigger.
type Geometry interface {
	ContainerWidth() (float64, bool)
	MoreWidth() (float64, bool)
	WidthOf(key string) (float64, bool)
	HeightOf(key string) (float64, bool)
}

// ResizeSource delivers container resize notifications. OnResize returns a
// function that releases the subscription.
type ResizeSource interface {
	OnResize(fn func(width, height int)) (cancel func())
}

// Extent is the measured size of one item.
type Extent struct {
	Width  float64
	Height float64
}

// StaticGeometry is a Geometry backed by explicit values. The zero value has
// no container and no more indicator attached.
type StaticGeometry struct {
	mu        sync.RWMutex
	container float64
	hasCont   bool
	more      float64
	hasMore   bool
	items     map[string]Extent
}

// NewStaticGeometry returns a provider with the container and more indicator
// attached at the given widths.
func NewStaticGeometry(container, more float64) *StaticGeometry {
	g := &StaticGeometry{}
	g.SetContainer(container)
	g.SetMore(more)
	return g
}

// SetContainer attaches the container at width w.
func (g *StaticGeometry) SetContainer(w float64) {
	g.mu.Lock()
	g.container, g.hasCont = w, true
	g.mu.Unlock()
}

// DetachContainer simulates a container that is not mounted.
func (g *StaticGeometry) DetachContainer() {
	g.mu.Lock()
	g.hasCont = false
	g.mu.Unlock()
}

// SetMore attaches the more indicator at width w.
func (g *StaticGeometry) SetMore(w float64) {
	g.mu.Lock()
	g.more, g.hasMore = w, true
	g.mu.Unlock()
}

// DetachMore simulates a more indicator that is not mounted.
func (g *StaticGeometry) DetachMore() {
	g.mu.Lock()
	g.hasMore = false
	g.mu.Unlock()
}

// Set records the extent of the item with the given key.
func (g *StaticGeometry) Set(key string, e Extent) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.items == nil {
		g.items = make(map[string]Extent)
	}
	g.items[key] = e
}

// SetWidths records items keyed "0".."n-1" (the positional keys) with the
// given widths and a height of one unit.
func (g *StaticGeometry) SetWidths(widths ...float64) {
	for i, w := range widths {
		g.Set(PositionalKey(i), Extent{Width: w, Height: 1})
	}
}

// Remove forgets the extent for key.
func (g *StaticGeometry) Remove(key string) {
	g.mu.Lock()
	delete(g.items, key)
	g.mu.Unlock()
}

func (g *StaticGeometry) ContainerWidth() (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.container, g.hasCont
}

func (g *StaticGeometry) MoreWidth() (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.more, g.hasMore
}

func (g *StaticGeometry) WidthOf(key string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.items[key]
	return e.Width, ok
}

func (g *StaticGeometry) HeightOf(key string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.items[key]
	return e.Height, ok
}
