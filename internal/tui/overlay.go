package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	overlayMinWidth  = 18
	overlayMinHeight = 5
	overlayPadX      = 2
	overlayPadY      = 1
)

// infoOverlay draws an opaque box centred over the board.
type infoOverlay struct {
	active bool
	bg     lipgloss.Color
}

func newInfoOverlay(bg lipgloss.Color) infoOverlay {
	return infoOverlay{bg: bg}
}

func (o *infoOverlay) toggle() {
	o.active = !o.active
}

// render stamps content over base, which is first padded or cut to
// width x height. Inactive overlays return base unchanged.
func (o infoOverlay) render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 {
		return base
	}

	body := splitContent(content)
	boxW, boxH := o.boxSize(body, width, height)
	top := (height - boxH) / 2
	left := (width - boxW) / 2

	box := o.box(body, boxW, boxH)
	lines := fitLines(base, width, height)
	for i, line := range box {
		row := top + i
		lines[row] = ansi.Cut(lines[row], 0, left) + line + ansi.Cut(lines[row], left+boxW, width)
	}
	return strings.Join(lines, "\n")
}

// boxSize wraps the content in padding, clamped to the screen.
func (o infoOverlay) boxSize(body []string, width, height int) (int, int) {
	contentW := 0
	for _, line := range body {
		contentW = max(contentW, lipgloss.Width(line))
	}
	boxW := max(contentW+2*overlayPadX, overlayMinWidth)
	boxH := max(len(body)+2*overlayPadY, overlayMinHeight)
	return min(boxW, width), min(boxH, height)
}

// box renders the filled rectangle with content centred vertically and
// left-aligned after the padding.
func (o infoOverlay) box(body []string, boxW, boxH int) []string {
	bg := ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.bg))).String()
	blank := bg + strings.Repeat(" ", boxW) + ansi.ResetStyle

	out := make([]string, boxH)
	for i := range out {
		out[i] = blank
	}

	top := max((boxH-len(body))/2, 0)
	innerW := max(boxW-2*overlayPadX, 0)
	for i, line := range body {
		if top+i >= boxH {
			break
		}
		if lipgloss.Width(line) > innerW {
			line = ansi.Cut(line, 0, innerW)
		}
		line += strings.Repeat(" ", innerW-lipgloss.Width(line))
		// styled content resets the background; re-apply it after each reset
		line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bg)
		line = strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+bg)

		pad := strings.Repeat(" ", overlayPadX)
		out[top+i] = bg + pad + line + bg + pad + ansi.ResetStyle
	}
	return out
}

func splitContent(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(content, "\n"), "\n")
}

// fitLines pads or cuts s to exactly width x height cells.
func fitLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	for i, line := range lines {
		w := lipgloss.Width(line)
		switch {
		case w > width:
			lines[i] = ansi.Cut(line, 0, width)
		case w < width:
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	return lines
}
