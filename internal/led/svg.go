package led

import (
	"fmt"
	"strconv"
	"strings"
)

// SVG geometry of a board, in cell view box units. cellW and cellH match the
// segment view box.
const (
	cellW   = 54.908
	cellH   = 97.526
	cellGap = 6.0
	rowGap  = 24.0
	margin  = 12.0
)

// SVGColors are the fills used by Board.SVG.
type SVGColors struct {
	Lit        string
	Unlit      string
	Background string
}

// DefaultSVGColors is the amber board.
var DefaultSVGColors = SVGColors{Lit: "#ffb000", Unlit: "#3b2f12", Background: "#1a1a1a"}

// ColorsFor derives the board fills from a #rrggbb LED colour: unlit dots
// are the LED colour at a fifth of its brightness.
func ColorsFor(lit, background string) SVGColors {
	return SVGColors{Lit: lit, Unlit: unlitColor(lit), Background: background}
}

func unlitColor(hex string) string {
	if len(hex) != 7 || hex[0] != '#' {
		return DefaultSVGColors.Unlit
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return DefaultSVGColors.Unlit
	}
	r, g, b := (v>>16)&0xff, (v>>8)&0xff, v&0xff
	return fmt.Sprintf("#%02x%02x%02x", r/5, g/5, b/5)
}

// SVG paints the whole board as one standalone SVG document.
func (b Board) SVG(colors SVGColors) string {
	cols := 0
	for _, r := range b {
		if len(r.Cells) > cols {
			cols = len(r.Cells)
		}
	}
	width := 2*margin + float64(cols)*(cellW+cellGap) - cellGap
	height := 2*margin + float64(len(b))*(cellH+rowGap) - rowGap
	if len(b) == 0 || cols == 0 {
		width, height = 2*margin, 2*margin
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg class="led-board" viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg">`, num(width), num(height))
	fmt.Fprintf(&sb, `<style>.segment{fill:%s}.segment.lit{fill:%s}</style>`, colors.Unlit, colors.Lit)
	fmt.Fprintf(&sb, `<rect class="led-background" width="100%%" height="100%%" fill="%s"/>`, colors.Background)
	for ri, r := range b {
		y := margin + float64(ri)*(cellH+rowGap)
		for ci, c := range r.Cells {
			x := margin + float64(ci)*(cellW+cellGap)
			sb.WriteString(c.SVGAt(x, y, cellW, cellH))
		}
	}
	sb.WriteString(`</svg>`)
	return sb.String()
}

func num(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}
