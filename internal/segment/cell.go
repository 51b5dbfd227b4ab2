package segment

import "strings"

// Blank is the glyph of an empty cell.
const Blank = ' '

// Style tags a cell with a presentation state.
type Style string

const (
	// StyleArrivingLead marks the first cell of the two-cell arrival marker.
	StyleArrivingLead Style = "arriving-lead"
	// StyleArrivingTrail marks the second cell of the arrival marker.
	StyleArrivingTrail Style = "arriving-trail"
	// StyleTerminus marks free-text terminus messages.
	StyleTerminus Style = "terminus"
)

// SegmentState is the rendering instruction for one segment of a cell.
type SegmentState struct {
	Segment
	Lit bool
}

// Cell is one rendered display position.
type Cell struct {
	Glyph    rune
	Segments []SegmentState
	Styles   []Style
}

// RenderCell renders glyph with the given styles. Every base segment is
// present in the result, lit or dark.
func RenderCell(glyph rune, styles ...Style) Cell {
	glyph = Normalize(glyph)
	lit := SegmentsFor(glyph)

	segs := Segments()
	states := make([]SegmentState, len(segs))
	for i, seg := range segs {
		states[i] = SegmentState{Segment: seg, Lit: lit.Has(seg.ID)}
	}

	var applied []Style
	if len(styles) > 0 {
		applied = append(applied, styles...)
	}

	return Cell{Glyph: glyph, Segments: states, Styles: applied}
}

// LitSet returns the IDs of the lit segments.
func (c Cell) LitSet() Set {
	var ids []ID
	for _, s := range c.Segments {
		if s.Lit {
			ids = append(ids, s.ID)
		}
	}
	return NewSet(ids...)
}

// LitCount returns the number of lit segments.
func (c Cell) LitCount() int {
	n := 0
	for _, s := range c.Segments {
		if s.Lit {
			n++
		}
	}
	return n
}

// Dot reports whether the segment at row, col is lit.
func (c Cell) Dot(row, col int) bool {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return false
	}
	i := row*Cols + col
	if i >= len(c.Segments) {
		return false
	}
	return c.Segments[i].Lit
}

// Has reports whether the cell carries style s.
func (c Cell) Has(s Style) bool {
	for _, st := range c.Styles {
		if st == s {
			return true
		}
	}
	return false
}

// Arriving reports whether the cell is part of the arrival marker.
func (c Cell) Arriving() bool {
	return c.Has(StyleArrivingLead) || c.Has(StyleArrivingTrail)
}

// Classes returns the CSS class list for the cell's styles. Both arrival
// cells also get the shared "arriving" class.
func (c Cell) Classes() string {
	var parts []string
	if c.Arriving() {
		parts = append(parts, "arriving")
	}
	for _, s := range c.Styles {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, " ")
}
