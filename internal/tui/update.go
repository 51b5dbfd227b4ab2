package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tafel/internal/station"
	"github.com/javiermolinar/tafel/internal/tui/commands"
)

const statusDuration = 3 * time.Second

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.picker.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case commands.BoardMsg:
		m.board = msg.Board
		m.updated = msg.At
		return m, nil

	case commands.SelectionMsg:
		m.setSelection(msg.Selection)
		return m, nil

	case commands.RestoredMsg:
		m.restoring = false
		m.setSelection(msg.Selection)
		return m, nil

	case commands.LoadingMsg:
		wasLoading := m.loading
		m.loading = msg.Loading
		if m.loading && !wasLoading {
			return m, m.spinner.Tick
		}
		return m, nil

	case commands.FeedErrorMsg:
		m.failed = msg.Failed
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case commands.ClockTickMsg:
		m.clock = time.Time(msg)
		return m, commands.ClockTick()

	case commands.BlinkMsg:
		m.blinkOn = !m.blinkOn
		return m, commands.Blink(m.config.BlinkInterval())

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = m.now().Add(statusDuration)
		return m, commands.ClearStatusAfter(statusDuration)

	case commands.ClearStatusMsg:
		if !m.now().Before(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	if m.mode == ModePicker {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) setSelection(sel station.Selection) {
	m.selection = sel
	m.line, m.hasLine = station.LineOf(sel)
	selectIndex(&m.picker, sel)
}
