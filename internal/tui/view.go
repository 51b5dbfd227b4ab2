package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/javiermolinar/tafel/internal/clock"
)

const (
	clockRadius   = 3
	sidebarMargin = 3
	// horizontal space taken by the app padding and board housing
	chromeWidth = 2*2 + 2*2 + 2
)

// View renders the TUI.
func (m Model) View() string {
	if m.mode == ModePicker {
		return m.styles.AppStyle.Render(m.picker.View())
	}

	board := m.renderBoard()
	side := m.renderSidebar()
	body := board
	if m.width == 0 || lipgloss.Width(board)+lipgloss.Width(side)+sidebarMargin+4 <= m.width {
		body = lipgloss.JoinHorizontal(lipgloss.Top, board, strings.Repeat(" ", sidebarMargin), side)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, board, side)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		body,
		"",
		m.renderStatus(),
		m.renderHelp(),
	)
	view := m.styles.AppStyle.Render(content)
	return m.info.render(view, m.width, m.height, m.platformInfo())
}

func (m Model) paintMode() PaintMode {
	if m.width == 0 {
		return PaintText
	}
	return paintModeFor(m.width-chromeWidth, m.layout.Width())
}

func (m Model) renderBoard() string {
	return m.styles.BoardStyle.Render(m.painter.Board(m.board, m.paintMode(), m.blinkOn))
}

func (m Model) renderHeader() string {
	name := m.selection.Name
	if name == "" {
		name = "…"
	}
	parts := []string{}
	if m.hasLine {
		parts = append(parts, m.styles.LineBadge(m.line.Name, m.line.Color))
	}
	parts = append(parts, m.styles.StationStyle.Render(name))

	header := strings.Join(parts, " ")
	if m.width > 0 {
		header = ansi.Truncate(header, m.width-4, "…")
	}
	return header
}

func (m Model) renderSidebar() string {
	face := m.styles.ClockStyle.Render(strings.Join(clock.Face(m.clock, clockRadius), "\n"))
	gleis := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.GleisStyle.Render("Gleis "),
		m.styles.GleisNumber.Render(m.gleisLabel()),
	)
	return lipgloss.JoinVertical(lipgloss.Center, face, "", gleis)
}

func (m Model) gleisLabel() string {
	if m.selection.Platform == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", m.selection.Platform)
}

func (m Model) renderStatus() string {
	var parts []string
	if m.loading {
		parts = append(parts, m.spinner.View()+m.styles.StatusStyle.Render(" loading"))
	}
	if m.failed {
		parts = append(parts, m.styles.ErrorStyle.Render("⚠ departures unavailable"))
	}
	if !m.updated.IsZero() {
		parts = append(parts, m.styles.StatusStyle.Render("updated "+humanize.RelTime(m.updated, m.now(), "ago", "from now")))
	}
	if m.statusMsg != "" {
		parts = append(parts, m.styles.StatusStyle.Render(m.statusMsg))
	}
	return strings.Join(parts, m.styles.StatusStyle.Render("  ·  "))
}

func (m Model) renderHelp() string {
	return m.styles.HelpStyle.Render("s stations · r refresh · i info · q quit")
}

// platformInfo is the content of the info overlay.
func (m Model) platformInfo() string {
	sel := m.selection
	if sel.Name == "" {
		return "No platform selected"
	}

	title := sel.Name
	if m.hasLine {
		title = m.line.Name + " " + sel.Name
	}
	lines := []string{m.styles.StationStyle.Render(title)}
	if m.hasLine {
		towards := m.line.Last().Name
		if sel.Platform == 2 {
			towards = m.line.First().Name
		}
		lines = append(lines, "Richtung "+towards)
	}
	lines = append(lines, fmt.Sprintf("Gleis %s · RBL %d", m.gleisLabel(), sel.RBL))
	if sel.Terminus {
		lines = append(lines, "Terminus, no departures")
	} else {
		lines = append(lines, "Polling every "+m.config.PollInterval().String())
	}
	lines = append(lines, "", m.styles.HelpStyle.Render("i close"))
	return strings.Join(lines, "\n")
}
