// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tafel/internal/led"
	"github.com/javiermolinar/tafel/internal/station"
)

// BoardMsg carries a freshly rendered board.
type BoardMsg struct {
	Board led.Board
	At    time.Time
}

// SelectionMsg is sent when the controller switches platform.
type SelectionMsg struct {
	Selection station.Selection
}

// LoadingMsg toggles the loading indicator.
type LoadingMsg struct {
	Loading bool
}

// FeedErrorMsg toggles the feed error indicator.
type FeedErrorMsg struct {
	Failed bool
}

// RestoredMsg is sent once the saved selection has been applied.
type RestoredMsg struct {
	Selection station.Selection
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// ClockTickMsg advances the clock face.
type ClockTickMsg time.Time

// BlinkMsg flips the arrival marker.
type BlinkMsg struct{}

// Controller is the part of the board controller the TUI drives.
type Controller interface {
	Select(ctx context.Context, sel station.Selection)
	Restore(ctx context.Context) station.Selection
	Refresh()
}

// Sender delivers messages into a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Display forwards controller output into the bubbletea event loop.
// Messages sent before Attach are dropped.
type Display struct {
	mu     sync.Mutex
	sender Sender
	now    func() time.Time
}

// NewDisplay creates a detached display.
func NewDisplay() *Display {
	return &Display{now: time.Now}
}

// Attach connects the display to a program.
func (d *Display) Attach(s Sender) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sender = s
}

func (d *Display) send(msg tea.Msg) {
	d.mu.Lock()
	s := d.sender
	d.mu.Unlock()
	if s != nil {
		s.Send(msg)
	}
}

// ShowBoard implements controller.Display.
func (d *Display) ShowBoard(board led.Board) {
	d.send(BoardMsg{Board: board, At: d.now()})
}

// ShowSelection implements controller.Display.
func (d *Display) ShowSelection(sel station.Selection) {
	d.send(SelectionMsg{Selection: sel})
}

// SetLoading implements controller.Display.
func (d *Display) SetLoading(loading bool) {
	d.send(LoadingMsg{Loading: loading})
}

// SetError implements controller.Display.
func (d *Display) SetError(failed bool) {
	d.send(FeedErrorMsg{Failed: failed})
}

// Restore applies the saved selection off the event loop.
func Restore(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		sel := ctrl.Restore(context.Background())
		return RestoredMsg{Selection: sel}
	}
}

// Select switches platform off the event loop.
func Select(ctrl Controller, sel station.Selection) tea.Cmd {
	return func() tea.Msg {
		ctrl.Select(context.Background(), sel)
		return StatusMsgCmd{Msg: "Showing " + sel.Name}
	}
}

// Refresh triggers an immediate fetch.
func Refresh(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		ctrl.Refresh()
		return StatusMsgCmd{Msg: "Refreshing..."}
	}
}

// ClockTick fires once per second, aligned to the wall clock.
func ClockTick() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg {
		return ClockTickMsg(t)
	})
}

// Blink fires after one blink interval.
func Blink(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return BlinkMsg{}
	})
}

// ClearStatusAfter clears the status line after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
