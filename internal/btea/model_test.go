// ABOUTME: Tests for MenuModel: settle via Flush, panel toggling, fuzzy filter, selection and reloads
// ABOUTME: Calls Update/View directly; the debounce is an hour so only Flush runs passes

package btea

import (
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/prioritynav/internal/config"
)

type fakeNotifier struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (f *fakeNotifier) Send(msg tea.Msg) {
	f.mu.Lock()
	f.msgs = append(f.msgs, msg)
	f.mu.Unlock()
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.msgs)
}

func testFile(t *testing.T, extra string) *config.MenuFile {
	t.Helper()
	f, err := config.Parse([]byte("items: [Home, Products, About, Contact]\ndebounce: 1h\n" + extra))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return f
}

func update(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(MenuModel), cmd
}

// settled builds a mounted model at width and runs the first pass.
func settled(t *testing.T, f *config.MenuFile, width int, opts Options) MenuModel {
	t.Helper()
	m, err := NewMenuModel(f, opts)
	if err != nil {
		t.Fatalf("NewMenuModel: %v", err)
	}
	t.Cleanup(m.Menu().Unmount)
	m.Init()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: width, Height: 20})
	m.Menu().Controller().Flush()
	m, _ = update(t, m, settledMsg{})
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestMenuModel_SettledRow(t *testing.T) {
	t.Parallel()

	m := settled(t, testFile(t, ""), 25, Options{})
	view := m.View()

	if !strings.Contains(view, "Products") || !strings.Contains(view, "More") {
		t.Errorf("view missing row items: %q", view)
	}
	if strings.Contains(view, "Contact") {
		t.Errorf("hidden item on the row: %q", view)
	}
}

func TestMenuModel_FirstViewIsBlank(t *testing.T) {
	t.Parallel()

	m, err := NewMenuModel(testFile(t, ""), Options{})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(m.Menu().Unmount)
	m.Init()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 25, Height: 20})

	if view := m.View(); strings.Contains(view, "Home") || strings.Contains(view, "More") {
		t.Errorf("unmeasured view shows items: %q", view)
	}
}

func TestMenuModel_PanelFilterAndSelect(t *testing.T) {
	t.Parallel()

	m := settled(t, testFile(t, ""), 25, Options{})

	m, _ = update(t, m, key("tab"))
	if !m.IsOpen() {
		t.Fatal("tab did not open the panel")
	}
	if view := m.View(); !strings.Contains(view, "About") || !strings.Contains(view, "Contact") {
		t.Errorf("panel missing hidden items: %q", view)
	}

	m, _ = update(t, m, key("c"))
	m, _ = update(t, m, key("x"))
	m, _ = update(t, m, key("backspace"))
	m, _ = update(t, m, key("o"))
	if m.list.Filter() != "co" || m.list.Len() != 1 {
		t.Fatalf("filter = %q with %d matches, want co with 1", m.list.Filter(), m.list.Len())
	}

	m, cmd := update(t, m, key("enter"))
	if m.IsOpen() {
		t.Error("panel still open after enter")
	}
	if cmd == nil {
		t.Fatal("enter produced no command")
	}
	sel, ok := cmd().(SelectedMsg)
	if !ok || sel.Item.Label != "Contact" || sel.Index != 3 {
		t.Fatalf("selection = %+v", sel)
	}

	m, _ = update(t, m, sel)
	if got, ok := m.Chosen(); !ok || got.Item.Label != "Contact" {
		t.Errorf("Chosen() = %+v, %v", got, ok)
	}
}

func TestMenuModel_KeysWhileOpenGoToFilter(t *testing.T) {
	t.Parallel()

	m := settled(t, testFile(t, ""), 25, Options{})
	m, _ = update(t, m, key("m"))
	if !m.IsOpen() {
		t.Fatal("m did not open the panel")
	}

	m, cmd := update(t, m, key("q"))
	if isQuit(cmd) {
		t.Fatal("q quit while typing a filter")
	}
	if m.list.Filter() != "q" {
		t.Errorf("filter = %q, want q", m.list.Filter())
	}

	m, _ = update(t, m, key("esc"))
	if m.IsOpen() || m.list.Filter() != "" {
		t.Error("esc should close the panel and clear the filter")
	}
	if _, cmd := update(t, m, key("q")); !isQuit(cmd) {
		t.Error("q should quit when the panel is closed")
	}
	if _, cmd := update(t, m, key("ctrl+c")); !isQuit(cmd) {
		t.Error("ctrl+c should always quit")
	}
}

func TestMenuModel_PanelNavigation(t *testing.T) {
	t.Parallel()

	m := settled(t, testFile(t, ""), 25, Options{})
	m, _ = update(t, m, key("tab"))
	m, _ = update(t, m, key("down"))
	m, _ = update(t, m, key("down"))
	m, _ = update(t, m, key("up"))
	_, cmd := update(t, m, key("enter"))

	sel := cmd().(SelectedMsg)
	if sel.Item.Label != "About" || sel.Index != 2 {
		t.Errorf("selection = %+v, want About at 2", sel)
	}
}

func TestMenuModel_NumberSelectsVisible(t *testing.T) {
	t.Parallel()

	m := settled(t, testFile(t, ""), 25, Options{QuitOnSelect: true})

	_, cmd := update(t, m, key("2"))
	sel, ok := cmd().(SelectedMsg)
	if !ok || sel.Item.Label != "Products" || sel.Index != 1 {
		t.Fatalf("selection = %+v", sel)
	}
	if _, cmd := update(t, m, key("4")); cmd != nil {
		t.Error("a hidden item was selectable by number")
	}
	if _, cmd := update(t, m, sel); !isQuit(cmd) {
		t.Error("QuitOnSelect did not quit")
	}
}

func TestMenuModel_TabWithoutOverflowStaysClosed(t *testing.T) {
	t.Parallel()

	m := settled(t, testFile(t, ""), 80, Options{})
	m, _ = update(t, m, key("tab"))
	if m.IsOpen() {
		t.Error("panel opened with nothing hidden")
	}
}

func TestMenuModel_ReloadKeepingCutRefillsPanel(t *testing.T) {
	t.Parallel()

	m := settled(t, testFile(t, ""), 25, Options{})
	m, _ = update(t, m, key("tab"))
	cut := m.Menu().Controller().State().Cut

	reloaded := testFile(t, "")
	reloaded.Items[2] = config.Item{Label: "Abcde", Key: "Abcde"}
	reloaded.Items[3] = config.Item{Label: "Contxyz", Key: "Contxyz"}
	m, _ = update(t, m, ItemsMsg{Items: reloaded.Items})
	m.Menu().Controller().Flush()

	if got := m.Menu().Controller().State().Cut; got != cut {
		t.Fatalf("cut moved from %s to %s; widths were chosen to keep it", cut, got)
	}
	if !m.IsOpen() {
		t.Fatal("panel closed although items are still hidden")
	}
	if view := m.View(); strings.Contains(view, "About") || !strings.Contains(view, "Abcde") {
		t.Errorf("panel shows stale items: %q", view)
	}

	_, cmd := update(t, m, key("enter"))
	sel := cmd().(SelectedMsg)
	if sel.Item.Label != "Abcde" || sel.Index != 2 {
		t.Errorf("selection = %+v, want Abcde at 2", sel)
	}
}

func TestMenuModel_ReloadClosesEmptyPanel(t *testing.T) {
	t.Parallel()

	m := settled(t, testFile(t, ""), 25, Options{})
	m, _ = update(t, m, key("tab"))

	m, _ = update(t, m, ItemsMsg{Items: []config.Item{{Label: "Home", Key: "Home"}}})
	if !strings.Contains(m.View(), "reloaded 1 items") {
		t.Errorf("status missing after reload: %q", m.View())
	}
	m.Menu().Controller().Flush()
	m, _ = update(t, m, settledMsg{})
	if m.IsOpen() {
		t.Error("panel still open with nothing hidden")
	}

	m, _ = update(t, m, ReloadErrMsg{Err: errors.New("bad yaml")})
	if !strings.Contains(m.View(), "reload failed: bad yaml") {
		t.Errorf("reload error not shown: %q", m.View())
	}
}

func TestMenuModel_PassesNotifyProgram(t *testing.T) {
	t.Parallel()

	m, err := NewMenuModel(testFile(t, ""), Options{})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(m.Menu().Unmount)
	n := &fakeNotifier{}
	m.sh.program = n

	m.Init()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 25, Height: 20})
	m.Menu().Controller().Flush()

	if n.count() != 1 {
		t.Fatalf("notifier got %d messages, want 1", n.count())
	}
	if _, ok := n.msgs[0].(settledMsg); !ok {
		t.Errorf("message = %T, want settledMsg", n.msgs[0])
	}

	// Same geometry again: the cut is unchanged, so nothing is sent.
	m.Menu().Controller().Measure()
	if n.count() != 1 {
		t.Errorf("unchanged pass notified the program")
	}
}

func TestMenuModel_RTLRow(t *testing.T) {
	t.Parallel()

	m := settled(t, testFile(t, "direction: rtl\n"), 25, Options{})
	first := strings.TrimRight(strings.Split(m.View(), "\n")[0], " ")
	if !strings.HasSuffix(first, "Home") {
		t.Errorf("RTL row should end with the first item: %q", first)
	}
	if strings.Index(first, "More") > strings.Index(first, "Products") {
		t.Errorf("RTL row should lead with More: %q", first)
	}
}

func TestNewMenuModel_BadDirection(t *testing.T) {
	t.Parallel()

	f := testFile(t, "")
	f.Direction = "diagonal"
	if _, err := NewMenuModel(f, Options{}); err == nil {
		t.Error("NewMenuModel accepted an unknown direction")
	}
}
