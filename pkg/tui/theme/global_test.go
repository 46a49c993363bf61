// ABOUTME: Tests for lock-free global theme pointer: Current, Set, concurrent access
// ABOUTME: Verifies atomic swap semantics, nil rejection, and default theme initialization

package theme

import (
	"sync"
	"testing"
)

// Set mutates package state, so these tests run sequentially.

func TestCurrent_ReturnsDefault(t *testing.T) {
	th := Current()
	if th == nil {
		t.Fatal("Current() returned nil")
	}
	if th.Name != "default" {
		t.Errorf("Current().Name = %q; want %q", th.Name, "default")
	}
}

func TestSet_ChangesCurrent(t *testing.T) {
	custom := &Theme{Name: "custom", Palette: DefaultPalette()}
	old := Current()
	Set(custom)
	defer Set(old)

	if got := Current(); got.Name != "custom" {
		t.Errorf("after Set(), Current().Name = %q; want %q", got.Name, "custom")
	}
}

func TestSet_NilIgnored(t *testing.T) {
	old := Current()
	Set(nil)
	if Current() != old {
		t.Error("Set(nil) replaced the current theme")
	}
}

func TestCurrent_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for range 100 {
		wg.Go(func() {
			_ = Current()
		})
	}
	wg.Wait()
}
