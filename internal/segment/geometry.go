// Package segment provides the LED dot-matrix cell model: the shared segment
// geometry, the glyph-to-segment table and the per-cell renderer.
package segment

import (
	"fmt"
	"math/bits"
)

// Cell grid dimensions. Every cell is a Cols x Rows matrix of dots and each
// dot is one addressable segment.
const (
	Cols  = 7
	Rows  = 12
	Count = Cols * Rows
)

// ViewBox is the SVG view box every cell is drawn in.
const ViewBox = "8.346 8.578 54.908 97.526"

const (
	originX = 8.346
	originY = 8.578
	boxW    = 54.908
	boxH    = 97.526

	pitchX  = boxW / Cols
	pitchY  = boxH / Rows
	dotSize = pitchX * 0.8
)

// ID identifies a segment. IDs are row-major: ID = row*Cols + col.
type ID int

// Valid reports whether the ID addresses a segment of the base table.
func (id ID) Valid() bool {
	return id >= 0 && id < Count
}

// Row returns the matrix row of the segment.
func (id ID) Row() int { return int(id) / Cols }

// Col returns the matrix column of the segment.
func (id ID) Col() int { return int(id) % Cols }

// Segment is one stroke of a cell: a stable ID and its SVG path data.
type Segment struct {
	ID ID
	D  string
}

// base is computed once at package init and never mutated.
var base = buildSegments()

func buildSegments() []Segment {
	segs := make([]Segment, 0, Count)
	inset := (pitchX - dotSize) / 2
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			x := originX + float64(col)*pitchX + inset
			y := originY + float64(row)*pitchY + (pitchY-dotSize)/2
			segs = append(segs, Segment{
				ID: ID(row*Cols + col),
				D:  fmt.Sprintf("M%.3f %.3fh%.3fv%.3fh-%.3fz", x, y, dotSize, dotSize, dotSize),
			})
		}
	}
	return segs
}

// Segments returns the ordered base table shared by all cells.
// Callers must not modify the returned slice.
func Segments() []Segment {
	return base
}

// Set is an immutable set of segment IDs.
type Set struct {
	bits [2]uint64
}

// NewSet builds a set from the given IDs. Invalid IDs are ignored.
func NewSet(ids ...ID) Set {
	var s Set
	for _, id := range ids {
		if id.Valid() {
			s.bits[id/64] |= 1 << (uint(id) % 64)
		}
	}
	return s
}

// Has reports whether id is in the set.
func (s Set) Has(id ID) bool {
	if !id.Valid() {
		return false
	}
	return s.bits[id/64]&(1<<(uint(id)%64)) != 0
}

// Len returns the number of IDs in the set.
func (s Set) Len() int {
	return bits.OnesCount64(s.bits[0]) + bits.OnesCount64(s.bits[1])
}

// Empty reports whether the set has no IDs.
func (s Set) Empty() bool {
	return s.bits[0] == 0 && s.bits[1] == 0
}

// IDs returns the members in ascending order.
func (s Set) IDs() []ID {
	ids := make([]ID, 0, s.Len())
	for id := ID(0); id < Count; id++ {
		if s.Has(id) {
			ids = append(ids, id)
		}
	}
	return ids
}
