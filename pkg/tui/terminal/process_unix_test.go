// ABOUTME: Tests for the SIGWINCH listener of ProcessTerminal against a real pseudo-terminal
// ABOUTME: Sends SIGWINCH to the test process and checks subscribers see the pty's new size

//go:build unix

package terminal

import (
	"syscall"
	"testing"
	"time"

	"github.com/creack/pty"
)

// Signals are process-wide, so this test does not run in parallel.
func TestProcessTerminal_SIGWINCHNotifiesSubscribers(t *testing.T) {
	ptmx, tty := openPTY(t, 80, 24)
	pt := NewProcessTerminal(tty)

	sizes := make(chan [2]int, 4)
	cancel := pt.OnResize(func(w, h int) { sizes <- [2]int{w, h} })
	defer cancel()

	if err := pty.Setsize(ptmx, &pty.Winsize{Cols: 100, Rows: 30}); err != nil {
		t.Fatalf("Setsize: %v", err)
	}
	if err := syscall.Kill(syscall.Getpid(), syscall.SIGWINCH); err != nil {
		t.Fatalf("kill: %v", err)
	}

	select {
	case got := <-sizes:
		if got != [2]int{100, 30} {
			t.Errorf("resize callback got %v, want [100 30]", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no resize notification after SIGWINCH")
	}

	cancel()
	pt.mu.Lock()
	stopped := pt.stopListen == nil
	pt.mu.Unlock()
	if !stopped {
		t.Error("listener still running after the last subscriber cancelled")
	}
}
