package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/tafel/internal/tui/theme"
)

// Color definitions for consistent styling across the UI.
var (
	// LED text: bold amber-ish yellow like the board
	colorLED = color.New(color.FgYellow, color.Bold)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Found items: green
	colorFound = color.New(color.FgGreen)

	// Warnings: red
	colorWarn = color.New(color.FgRed)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// formatLED formats board text.
func formatLED(s string) string {
	return colorLED.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatFound formats a discovery hit.
func formatFound(s string) string {
	return colorFound.Sprint(s)
}

// formatWarn formats a warning.
func formatWarn(s string) string {
	return colorWarn.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// formatLine paints a line name in its own colour, e.g. U1 in red.
func formatLine(name, hex string) string {
	r, g, b, ok := theme.RGB(hex)
	if !ok {
		return formatHeader(name)
	}
	return color.RGB(r, g, b).Add(color.Bold).Sprint(name)
}
