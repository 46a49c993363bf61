// ABOUTME: Panic recovery that shows the cursor again before reporting the panic.
// ABOUTME: The inline renderer hides the cursor while drawing, so a crash must undo it.

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

const showCursor = "\x1b[?25h"

// ShowCursor writes the show-cursor sequence to w.
func ShowCursor(w io.Writer) {
	_, _ = io.WriteString(w, showCursor)
}

// RestoreOnPanic should be deferred at the top of main. On panic it shows
// the cursor via t, prints the panic value and stack trace, and exits 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}
	ShowCursor(t)
	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}

// RecoverGoroutine is RestoreOnPanic for background goroutines: it does
// not exit, and reports the panic through errp when errp is non-nil.
func RecoverGoroutine(t Terminal, errp *error) {
	r := recover()
	if r == nil {
		return
	}
	ShowCursor(t)
	fmt.Fprintf(os.Stderr, "\ngoroutine panic: %v\n\n%s\n", r, debug.Stack())
	if errp != nil {
		*errp = fmt.Errorf("goroutine panic: %v", r)
	}
}
