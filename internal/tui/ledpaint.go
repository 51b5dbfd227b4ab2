package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/tafel/internal/led"
	"github.com/javiermolinar/tafel/internal/segment"
)

// PaintMode selects how LED cells are drawn in the terminal.
type PaintMode int

const (
	PaintText      PaintMode = iota // one terminal cell per LED cell
	PaintBraille                    // 2x4 dots per rune, lit dots only
	PaintHalfBlock                  // 1x2 dots per rune, lit and unlit dots
)

const (
	brailleCols  = (segment.Cols + 1) / 2
	brailleLines = segment.Rows / 4
	halfLines    = segment.Rows / 2
	cellGap      = 1
)

// paintModeFor picks the densest mode that fits cells LED cells in width
// terminal columns.
func paintModeFor(width, cells int) PaintMode {
	switch {
	case width >= cells*(segment.Cols+cellGap):
		return PaintHalfBlock
	case width >= cells*(brailleCols+cellGap):
		return PaintBraille
	default:
		return PaintText
	}
}

// dotGrid is the lit state of every dot of one cell.
type dotGrid [segment.Rows][segment.Cols]bool

// cellDots returns the dots of c. Arrival cells go dark while the blink is
// off.
func cellDots(c segment.Cell, blinkOn bool) dotGrid {
	var g dotGrid
	if c.Arriving() && !blinkOn {
		return g
	}
	for r := 0; r < segment.Rows; r++ {
		for col := 0; col < segment.Cols; col++ {
			g[r][col] = c.Dot(r, col)
		}
	}
	return g
}

func (g dotGrid) at(r, c int) bool {
	if r < 0 || r >= segment.Rows || c < 0 || c >= segment.Cols {
		return false
	}
	return g[r][c]
}

// brailleBits maps a dot at (row, col) inside a 4x2 block to its bit.
var brailleBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// brailleRunes packs the grid into braille patterns, top line first.
func brailleRunes(g dotGrid) [brailleLines][brailleCols]rune {
	var out [brailleLines][brailleCols]rune
	for line := 0; line < brailleLines; line++ {
		for bc := 0; bc < brailleCols; bc++ {
			r := rune(0x2800)
			for dr := 0; dr < 4; dr++ {
				for dc := 0; dc < 2; dc++ {
					if g.at(line*4+dr, bc*2+dc) {
						r |= brailleBits[dr][dc]
					}
				}
			}
			out[line][bc] = r
		}
	}
	return out
}

// ledPainter turns boards into styled terminal text.
type ledPainter struct {
	bg    lipgloss.Style
	lit   lipgloss.Style
	unlit lipgloss.Style
	half  [2][2]lipgloss.Style // [top lit][bottom lit]
}

func newLEDPainter(s *Styles) ledPainter {
	lit, unlit, bg := s.colorLit, s.colorUnlit, s.colorPanel
	p := ledPainter{
		bg:    lipgloss.NewStyle().Background(bg),
		lit:   lipgloss.NewStyle().Foreground(lit).Background(bg),
		unlit: lipgloss.NewStyle().Foreground(unlit).Background(bg),
	}
	colors := [2]lipgloss.Color{unlit, lit}
	for top := 0; top < 2; top++ {
		for bottom := 0; bottom < 2; bottom++ {
			p.half[top][bottom] = lipgloss.NewStyle().Foreground(colors[top]).Background(colors[bottom])
		}
	}
	return p
}

// Board paints every row of b. Rows are separated by one blank line.
func (p ledPainter) Board(b led.Board, mode PaintMode, blinkOn bool) string {
	var lines []string
	for i, row := range b {
		if i > 0 {
			lines = append(lines, p.bg.Render(strings.Repeat(" ", p.rowWidth(row, mode))))
		}
		lines = append(lines, p.Row(row, mode, blinkOn)...)
	}
	return strings.Join(lines, "\n")
}

func (p ledPainter) rowWidth(r led.Row, mode PaintMode) int {
	n := len(r.Cells)
	switch mode {
	case PaintHalfBlock:
		return n*(segment.Cols+cellGap) - cellGap
	case PaintBraille:
		return n*(brailleCols+cellGap) - cellGap
	default:
		return n
	}
}

// Row paints one board row as one or more terminal lines.
func (p ledPainter) Row(r led.Row, mode PaintMode, blinkOn bool) []string {
	switch mode {
	case PaintHalfBlock:
		return p.halfBlockRow(r, blinkOn)
	case PaintBraille:
		return p.brailleRow(r, blinkOn)
	default:
		return []string{p.textRow(r, blinkOn)}
	}
}

func (p ledPainter) halfBlockRow(r led.Row, blinkOn bool) []string {
	gap := p.bg.Render(strings.Repeat(" ", cellGap))
	lines := make([]strings.Builder, halfLines)
	for i, c := range r.Cells {
		g := cellDots(c, blinkOn)
		for l := 0; l < halfLines; l++ {
			if i > 0 {
				lines[l].WriteString(gap)
			}
			for col := 0; col < segment.Cols; col++ {
				top, bottom := b2i(g[2*l][col]), b2i(g[2*l+1][col])
				lines[l].WriteString(p.half[top][bottom].Render("▀"))
			}
		}
	}
	return finish(lines)
}

func (p ledPainter) brailleRow(r led.Row, blinkOn bool) []string {
	gap := p.bg.Render(strings.Repeat(" ", cellGap))
	lines := make([]strings.Builder, brailleLines)
	for i, c := range r.Cells {
		runes := brailleRunes(cellDots(c, blinkOn))
		for l := 0; l < brailleLines; l++ {
			if i > 0 {
				lines[l].WriteString(gap)
			}
			lines[l].WriteString(p.lit.Render(string(runes[l][:])))
		}
	}
	return finish(lines)
}

func (p ledPainter) textRow(r led.Row, blinkOn bool) string {
	var b strings.Builder
	for _, c := range r.Cells {
		g := c.Glyph
		if c.Arriving() && !blinkOn {
			g = segment.Blank
		}
		b.WriteString(p.lit.Render(string(g)))
	}
	return b.String()
}

func finish(lines []strings.Builder) []string {
	out := make([]string, len(lines))
	for i := range lines {
		out[i] = lines[i].String()
	}
	return out
}

func b2i(v bool) int {
	if v {
		return 1
	}
	return 0
}
