package segment

import (
	"strconv"
	"strings"
)

// SVG paints the cell as an inline SVG element with one path per segment.
func (c Cell) SVG() string {
	var b strings.Builder
	c.writeSVG(&b, "")
	return b.String()
}

// SVGAt paints the cell as a nested SVG element placed at x, y and scaled
// to w x h user units of the enclosing drawing.
func (c Cell) SVGAt(x, y, w, h float64) string {
	var b strings.Builder
	c.writeSVG(&b, ` x="`+num(x)+`" y="`+num(y)+`" width="`+num(w)+`" height="`+num(h)+`"`)
	return b.String()
}

func (c Cell) writeSVG(b *strings.Builder, placement string) {
	b.Grow(len(c.Segments) * 64)

	b.WriteString(`<svg class="led-segment`)
	if classes := c.Classes(); classes != "" {
		b.WriteByte(' ')
		b.WriteString(classes)
	}
	b.WriteString(`"`)
	b.WriteString(placement)
	b.WriteString(` viewBox="`)
	b.WriteString(ViewBox)
	b.WriteString(`" xmlns="http://www.w3.org/2000/svg">`)

	for _, s := range c.Segments {
		if s.Lit {
			b.WriteString(`<path class="segment lit" d="`)
		} else {
			b.WriteString(`<path class="segment" d="`)
		}
		b.WriteString(s.D)
		b.WriteString(`"/>`)
	}

	b.WriteString(`</svg>`)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
