package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/tafel/internal/config"
	"github.com/javiermolinar/tafel/internal/departure"
	"github.com/javiermolinar/tafel/internal/led"
	"github.com/javiermolinar/tafel/internal/station"
	"github.com/javiermolinar/tafel/internal/tui/commands"
)

type fakeController struct {
	mu        sync.Mutex
	selected  []station.Selection
	refreshes int
}

func (f *fakeController) Select(_ context.Context, sel station.Selection) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selected = append(f.selected, sel)
}

func (f *fakeController) Restore(context.Context) station.Selection {
	return station.Default()
}

func (f *fakeController) Refresh() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshes++
}

var fixedNow = time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)

func newTestModel(t *testing.T) (Model, *fakeController) {
	t.Helper()
	ctrl := &fakeController{}
	m := New(ctrl, config.Default(), WithClock(func() time.Time { return fixedNow }))
	return m, ctrl
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return model, cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNew_ShowsPlaceholders(t *testing.T) {
	m, _ := newTestModel(t)
	if len(m.board) != 2 {
		t.Fatalf("board rows = %d, want 2", len(m.board))
	}
	for _, line := range m.board.Lines() {
		if !strings.HasPrefix(line, "---") {
			t.Errorf("row = %q, want placeholder", line)
		}
	}
}

func TestUpdate_BoardAndSelection(t *testing.T) {
	m, _ := newTestModel(t)

	board := led.RenderBoard(2, []departure.Departure{{Destination: "Leopoldau", Countdown: departure.In(3)}})
	m, _ = update(t, m, commands.BoardMsg{Board: board, At: fixedNow.Add(-20 * time.Second)})
	m, _ = update(t, m, commands.SelectionMsg{Selection: station.Default()})

	if m.board.Lines()[0] != board.Lines()[0] {
		t.Errorf("board not stored")
	}
	if !m.hasLine || m.line.Name != "U1" {
		t.Errorf("line = %q (%v), want U1", m.line.Name, m.hasLine)
	}
}

func TestUpdate_LoadingStartsSpinner(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, commands.LoadingMsg{Loading: true})
	if !m.loading || cmd == nil {
		t.Fatal("expected loading with a spinner tick")
	}
	m, cmd = update(t, m, commands.LoadingMsg{Loading: true})
	if cmd != nil {
		t.Error("second loading message must not start another spinner loop")
	}

	m, _ = update(t, m, commands.LoadingMsg{Loading: false})
	if _, cmd = update(t, m, spinner.TickMsg{}); cmd != nil {
		t.Error("spinner should stop ticking once loading ends")
	}
}

func TestUpdate_BlinkToggles(t *testing.T) {
	m, _ := newTestModel(t)
	if !m.blinkOn {
		t.Fatal("blink should start on")
	}
	m, cmd := update(t, m, commands.BlinkMsg{})
	if m.blinkOn || cmd == nil {
		t.Fatal("blink should toggle off and schedule the next blink")
	}
}

func TestUpdate_StatusClears(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(t, m, commands.StatusMsgCmd{Msg: "Refreshing..."})
	if m.statusMsg != "Refreshing..." {
		t.Fatalf("status = %q", m.statusMsg)
	}

	// Not yet expired.
	m, _ = update(t, m, commands.ClearStatusMsg{})
	if m.statusMsg == "" {
		t.Fatal("status cleared too early")
	}

	m.now = func() time.Time { return fixedNow.Add(statusDuration) }
	m, _ = update(t, m, commands.ClearStatusMsg{})
	if m.statusMsg != "" {
		t.Fatalf("status = %q, want cleared", m.statusMsg)
	}
}

func TestKeys_RefreshWaitsForRestore(t *testing.T) {
	m, ctrl := newTestModel(t)

	if _, cmd := update(t, m, key("r")); cmd != nil {
		t.Fatal("refresh before restore should be ignored")
	}

	m, _ = update(t, m, commands.RestoredMsg{Selection: station.Default()})
	_, cmd := update(t, m, key("r"))
	if cmd == nil {
		t.Fatal("expected refresh command")
	}
	cmd()
	if ctrl.refreshes != 1 {
		t.Fatalf("refreshes = %d, want 1", ctrl.refreshes)
	}
}

func TestKeys_PickerSelects(t *testing.T) {
	m, ctrl := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	m, _ = update(t, m, key("s"))
	if m.mode != ModePicker {
		t.Fatal("expected picker mode")
	}

	m, _ = update(t, m, key("j"))
	m, cmd := update(t, m, key("enter"))
	if m.mode != ModeBoard {
		t.Fatal("enter should close the picker")
	}
	if cmd == nil {
		t.Fatal("expected select command")
	}
	cmd()

	want := station.All()[1].Selection()
	if len(ctrl.selected) != 1 || ctrl.selected[0] != want {
		t.Fatalf("selected = %+v, want %+v", ctrl.selected, want)
	}
	if m.selection != want {
		t.Errorf("model selection = %+v", m.selection)
	}
}

func TestKeys_PickerEscape(t *testing.T) {
	m, ctrl := newTestModel(t)
	m, _ = update(t, m, key("s"))
	m, _ = update(t, m, key("esc"))
	if m.mode != ModeBoard {
		t.Fatal("esc should close the picker")
	}
	if len(ctrl.selected) != 0 {
		t.Fatal("esc must not select")
	}
}

func TestKeys_Quit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := update(t, m, key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestView_Board(t *testing.T) {
	asciiProfile(t)
	m, _ := newTestModel(t)

	board := led.RenderBoard(2, []departure.Departure{{Destination: "Leopoldau", Countdown: departure.In(3)}})
	m, _ = update(t, m, commands.BoardMsg{Board: board, At: fixedNow.Add(-20 * time.Second)})
	m, _ = update(t, m, commands.SelectionMsg{Selection: station.Default()})
	m, _ = update(t, m, commands.FeedErrorMsg{Failed: true})

	out := ansi.Strip(m.View())
	for _, want := range []string{
		"U1",
		"Stephansplatz",
		"LEOPOLDAU",
		"Gleis",
		"updated 20 seconds ago",
		"departures unavailable",
		"s stations",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
}

func TestView_Picker(t *testing.T) {
	asciiProfile(t)
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = update(t, m, key("s"))

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "Station wählen") {
		t.Errorf("picker title missing:\n%s", out)
	}
	if !strings.Contains(out, "Richtung") {
		t.Errorf("picker directions missing:\n%s", out)
	}
}

func TestKeys_InfoOverlay(t *testing.T) {
	asciiProfile(t)
	m, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = update(t, m, commands.SelectionMsg{Selection: station.Default()})

	m, _ = update(t, m, key("i"))
	out := ansi.Strip(m.View())
	for _, want := range []string{
		"U1 Stephansplatz",
		"Richtung Leopoldau",
		fmt.Sprintf("Gleis 1 · RBL %d", station.Default().RBL),
		"Polling every 30s",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("info overlay missing %q:\n%s", want, out)
		}
	}

	m, cmd := update(t, m, key("esc"))
	if cmd != nil {
		t.Fatal("esc should close the overlay, not quit")
	}
	if m.info.active {
		t.Fatal("overlay still active")
	}
	if strings.Contains(ansi.Strip(m.View()), "Polling every") {
		t.Error("overlay still drawn after closing")
	}
}
