package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tafel/internal/logging"
	"github.com/javiermolinar/tafel/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	logging.Event("KEY", map[string]any{"key": msg.String(), "mode": int(m.mode)})

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModePicker:
		return m.handlePickerKeys(msg)
	default:
		return m.handleBoardKeys(msg)
	}
}

func (m Model) handleBoardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		if m.info.active {
			m.info.toggle()
			return m, nil
		}
		return m, tea.Quit
	case "i":
		m.info.toggle()
		return m, nil
	case "s", "/":
		m.info.active = false
		m.mode = ModePicker
		return m, nil
	case "r":
		if m.restoring {
			return m, nil
		}
		return m, commands.Refresh(m.ctrl)
	}
	return m, nil
}

func (m Model) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While filtering, keys belong to the filter input.
	if m.picker.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc", "q":
		if m.picker.FilterState() == list.FilterApplied {
			m.picker.ResetFilter()
			return m, nil
		}
		m.mode = ModeBoard
		return m, nil
	case "enter":
		item, ok := m.picker.SelectedItem().(directionItem)
		if !ok {
			return m, nil
		}
		m.mode = ModeBoard
		m.picker.ResetFilter()
		sel := item.dir.Selection()
		m.setSelection(sel)
		return m, commands.Select(m.ctrl, sel)
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}
