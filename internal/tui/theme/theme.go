// Package theme derives the board colours from the configured LED colour.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/tafel/internal/config"
)

// Defaults used when a configured colour is not a #rrggbb value.
const (
	DefaultLED        = "#ffb000"
	DefaultBackground = "#1a1a1a"
	errorColor        = "#e5484d"
)

// Theme holds the two base colours of the board.
type Theme struct {
	LED        string // lit dots
	Background string // board and app background
}

// FromConfig builds a theme from the [ui] section.
func FromConfig(ui config.UIConfig) *Theme {
	t := &Theme{LED: ui.LEDColor, Background: ui.Background}
	t.applyDefaults()
	return t
}

func (t *Theme) applyDefaults() {
	if !isHexColor(t.LED) {
		t.LED = DefaultLED
	}
	if !isHexColor(t.Background) {
		t.Background = DefaultBackground
	}
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

// RGB splits a #rrggbb colour into its channels.
func RGB(hex string) (r, g, b int, ok bool) {
	if !isHexColor(hex) {
		return 0, 0, 0, false
	}
	parseHex(hex[1:3], &r)
	parseHex(hex[3:5], &g)
	parseHex(hex[5:7], &b)
	return r, g, b, true
}
