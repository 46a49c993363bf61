// ABOUTME: MenuModel is the Bubble Tea front end of the priority-navigation menu
// ABOUTME: Settled passes arrive as messages; tab opens the overflow panel, typing filters it

package btea

import (
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/prioritynav/internal/config"
	"github.com/mauromedda/prioritynav/pkg/overflow"
	"github.com/mauromedda/prioritynav/pkg/tui"
	"github.com/mauromedda/prioritynav/pkg/tui/component"
)

// Notifier delivers messages to a running program. *tea.Program satisfies it.
type Notifier interface {
	Send(msg tea.Msg)
}

// settledMsg reports that a measurement pass stored a new cut.
type settledMsg struct {
	state overflow.State
}

// SelectedMsg is emitted when an item is chosen from the row or the panel.
type SelectedMsg struct {
	Item  config.Item
	Index int
}

// ItemsMsg replaces the menu items, e.g. after the menu file changed.
type ItemsMsg struct {
	Items []config.Item
}

// ReloadErrMsg reports a menu file that could not be reloaded.
type ReloadErrMsg struct {
	Err error
}

// shared is the state every copy of the model points at.
type shared struct {
	mu      sync.Mutex
	program Notifier
}

func (s *shared) send(msg tea.Msg) {
	s.mu.Lock()
	p := s.program
	s.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Options configures NewMenuModel beyond the menu file.
type Options struct {
	Scheduler    overflow.Scheduler
	Logf         func(format string, args ...any)
	QuitOnSelect bool
}

// MenuModel implements tea.Model.
type MenuModel struct {
	sh   *shared
	menu *component.Menu[config.Item]
	list *component.SelectList[config.Item]
	dir  component.Direction
	opts Options

	width  int
	height int
	open   bool
	status string
	chosen *SelectedMsg
}

// NewMenuModel builds the model for f.
func NewMenuModel(f *config.MenuFile, opts Options) (MenuModel, error) {
	dir, err := component.ParseDirection(f.Direction)
	if err != nil {
		return MenuModel{}, fmt.Errorf("menu direction: %w", err)
	}
	sh := &shared{}
	more := f.MoreLabel
	menu, err := component.NewMenu(component.MenuConfig[config.Item]{
		Items: f.Items,
		Key:   func(it config.Item) string { return it.Key },
		Label: func(it config.Item) string { return it.Label },
		RenderItem: func(it config.Item, _ int, _ bool) string {
			return Styles().Item.Render(it.Label)
		},
		RenderMore: func(open bool) string {
			arrow := "↓"
			if open {
				arrow = "↑"
			}
			return Styles().More.Render(more + " " + arrow)
		},
		RenderOverflow: func([]config.Item) []string { return nil },
		RowHeight:      f.RowHeight,
		Direction:      dir,
		Debug:          f.Debug,
		Debounce:       f.Delay(),
		Scheduler:      opts.Scheduler,
		OnChange:       func(st overflow.State) { sh.send(settledMsg{state: st}) },
		Logf:           opts.Logf,
	})
	if err != nil {
		return MenuModel{}, err
	}
	return MenuModel{
		sh:   sh,
		menu: menu,
		list: component.NewSelectList[config.Item](nil, func(it config.Item) string { return it.Label }),
		dir:  dir,
		opts: opts,
	}, nil
}

// Menu exposes the underlying component.
func (m MenuModel) Menu() *component.Menu[config.Item] {
	return m.menu
}

// Chosen returns the last selection, if any.
func (m MenuModel) Chosen() (SelectedMsg, bool) {
	if m.chosen == nil {
		return SelectedMsg{}, false
	}
	return *m.chosen, true
}

// IsOpen reports whether the overflow panel is shown.
func (m MenuModel) IsOpen() bool {
	return m.open
}

// Init mounts the menu so the first pass is scheduled.
func (m MenuModel) Init() tea.Cmd {
	m.menu.Mount()
	return nil
}

// Update handles window, pass, reload and key messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.menu.SetWidth(msg.Width)
		m.list.SetMaxHeight(max(msg.Height-m.menu.Height()-4, 1))
	case settledMsg:
		m.syncPanel()
	case ItemsMsg:
		m.menu.SetItems(msg.Items)
		// The next pass may keep the cut and send nothing, so refill now.
		m.syncPanel()
		m.status = fmt.Sprintf("reloaded %d items", len(msg.Items))
	case ReloadErrMsg:
		m.status = "reload failed: " + msg.Err.Error()
	case SelectedMsg:
		m.chosen = &msg
		m.status = "selected " + msg.Item.Label
		if msg.Item.Href != "" {
			m.status += " (" + msg.Item.Href + ")"
		}
		if m.opts.QuitOnSelect {
			return m, tea.Quit
		}
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.toggle()
		return m, nil
	case "esc":
		m.close()
		return m, nil
	}

	if m.open {
		switch msg.Type {
		case tea.KeyUp:
			m.list.MoveUp()
		case tea.KeyDown:
			m.list.MoveDown()
		case tea.KeyEnter:
			item, idx, ok := m.list.Selected()
			if !ok {
				return m, nil
			}
			offset := len(m.menu.Visible())
			m.close()
			return m, selectCmd(item, offset+idx)
		case tea.KeyBackspace:
			if f := []rune(m.list.Filter()); len(f) > 0 {
				m.list.SetFilter(string(f[:len(f)-1]))
			}
		case tea.KeyRunes, tea.KeySpace:
			m.list.SetFilter(m.list.Filter() + string(msg.Runes))
		}
		return m, nil
	}

	switch s := msg.String(); s {
	case "q":
		return m, tea.Quit
	case "m":
		m.toggle()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		n := int(s[0] - '1')
		if visible := m.menu.Visible(); n < len(visible) {
			return m, selectCmd(visible[n], n)
		}
	}
	return m, nil
}

func selectCmd(item config.Item, index int) tea.Cmd {
	return func() tea.Msg {
		return SelectedMsg{Item: item, Index: index}
	}
}

func (m *MenuModel) toggle() {
	if m.open || !m.menu.IsMoreVisible() {
		m.close()
		return
	}
	m.open = true
	m.menu.SetOpen(true)
	m.list.SetFilter("")
	m.syncPanel()
}

func (m *MenuModel) close() {
	m.open = false
	m.menu.SetOpen(false)
	m.list.SetFilter("")
}

// syncPanel refills the panel from the current overflow and closes it when
// nothing is hidden any more.
func (m *MenuModel) syncPanel() {
	hidden := m.menu.Overflow()
	m.list.SetItems(hidden)
	if len(hidden) == 0 && m.open {
		m.close()
	}
}

// View renders the row, the panel when open, and the footer.
func (m MenuModel) View() string {
	buf := tui.AcquireBuffer()
	defer tui.ReleaseBuffer(buf)
	m.menu.Render(buf, m.width)

	parts := []string{strings.Join(buf.Lines, "\n")}
	if m.open {
		panel := m.panelView()
		if m.dir == component.RTL {
			panel = lipgloss.PlaceHorizontal(m.width, lipgloss.Right, panel)
		}
		parts = append(parts, panel)
	}
	parts = append(parts, m.footer())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m MenuModel) panelView() string {
	s := Styles()
	inner := max(min(m.width-4, 40), 1)

	var lines []string
	if f := m.list.Filter(); f != "" {
		lines = append(lines, s.Filter.Render("/"+f))
	}
	if m.list.Len() == 0 {
		lines = append(lines, s.Muted.Render("no match"))
	}
	lines = append(lines, m.list.Lines(inner)...)
	return s.Panel.Render(strings.Join(lines, "\n"))
}

func (m MenuModel) footer() string {
	s := Styles()
	dot := s.Separator.Render(" · ")
	help := strings.Join([]string{"tab more", "↑↓ move", "enter select", "esc close", "q quit"}, dot)
	if m.status == "" {
		return s.Muted.Render(help)
	}
	return s.Muted.Render(help) + "\n" + m.status
}
