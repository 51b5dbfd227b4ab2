// Package tui provides the terminal departure board.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/tafel/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg      lipgloss.Color
	colorPanel   lipgloss.Color
	colorLit     lipgloss.Color
	colorUnlit   lipgloss.Color
	colorFg      lipgloss.Color
	colorFgMuted lipgloss.Color
	colorError   lipgloss.Color

	AppStyle     lipgloss.Style
	BoardStyle   lipgloss.Style // housing around the LED rows
	StationStyle lipgloss.Style
	GleisStyle   lipgloss.Style
	GleisNumber  lipgloss.Style
	ClockStyle   lipgloss.Style
	StatusStyle  lipgloss.Style
	ErrorStyle   lipgloss.Style
	HelpStyle    lipgloss.Style
	SpinnerStyle lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	s := &Styles{
		colorBg:      p.Bg,
		colorPanel:   p.Panel,
		colorLit:     p.Lit,
		colorUnlit:   p.Unlit,
		colorFg:      p.Fg,
		colorFgMuted: p.FgMuted,
		colorError:   p.Error,
	}

	s.AppStyle = lipgloss.NewStyle().
		Background(p.Bg).
		Padding(1, 2)

	s.BoardStyle = lipgloss.NewStyle().
		Background(p.Panel).
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Unlit).
		BorderBackground(p.Bg)

	s.StationStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.Bg).
		Bold(true)

	s.GleisStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg)

	s.GleisNumber = lipgloss.NewStyle().
		Foreground(p.TextOnLED).
		Background(p.Lit).
		Bold(true).
		Padding(0, 1)

	s.ClockStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Background(p.Bg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Error).
		Background(p.Bg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Background(p.Bg)

	s.SpinnerStyle = lipgloss.NewStyle().
		Foreground(p.Lit).
		Background(p.Bg)

	return s
}

// LineBadge renders a line name on its line colour.
func (s *Styles) LineBadge(name, color string) string {
	if color == "" {
		return s.StationStyle.Render(name)
	}
	return lipgloss.NewStyle().
		Foreground(theme.TextOn(color)).
		Background(theme.Color(color)).
		Bold(true).
		Padding(0, 1).
		Render(name)
}
