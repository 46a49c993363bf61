// ABOUTME: Entry point for the interactive Bubble Tea menu
// ABOUTME: Creates the tea.Program, injects it as the pass notifier, and blocks until exit

package btea

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the program and blocks until the user exits. start, when
// non-nil, receives the program before it runs so callers can forward
// events (file reloads) with Send. The returned selection is the last
// item chosen, if any.
func Run(ctx context.Context, m MenuModel, start func(Notifier)) (SelectedMsg, bool, error) {
	p := tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	)

	// tea.NewProgram copies the model value but shares the pointer.
	m.sh.mu.Lock()
	m.sh.program = p
	m.sh.mu.Unlock()
	defer func() {
		m.sh.mu.Lock()
		m.sh.program = nil
		m.sh.mu.Unlock()
		m.menu.Unmount()
	}()

	if start != nil {
		start(p)
	}

	final, err := p.Run()
	if err != nil {
		return SelectedMsg{}, false, fmt.Errorf("bubble tea: %w", err)
	}
	sel, ok := final.(MenuModel).Chosen()
	return sel, ok, nil
}
