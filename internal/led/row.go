// Package led composes LED display rows and boards out of segment cells.
package led

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/javiermolinar/tafel/internal/departure"
	"github.com/javiermolinar/tafel/internal/segment"
)

// Row geometry.
const (
	DefaultStationWidth = 17 // destination zone
	CountdownWidth      = 2
	gapWidth            = 1
)

// PlaceholderDestination fills rows without a departure.
const PlaceholderDestination = "---"

var (
	arrivalMarker        = [CountdownWidth]rune{segment.Blank, '★'}
	arrivalStyles        = [CountdownWidth]segment.Style{segment.StyleArrivingLead, segment.StyleArrivingTrail}
	placeholderCountdown = "--"
)

// Layout fixes the column layout shared by every row of a board.
type Layout struct {
	StationWidth int
}

// DefaultLayout returns the 17 + 1 + 2 layout of the physical board.
func DefaultLayout() Layout {
	return Layout{StationWidth: DefaultStationWidth}
}

func (l Layout) stationWidth() int {
	if l.StationWidth <= 0 {
		return DefaultStationWidth
	}
	return l.StationWidth
}

// Width returns the number of cells in every row.
func (l Layout) Width() int {
	return l.stationWidth() + gapWidth + CountdownWidth
}

// Row is a fixed-length sequence of cells.
type Row struct {
	Cells []segment.Cell
}

// Text returns the glyphs of the row as a string.
func (r Row) Text() string {
	runes := make([]rune, len(r.Cells))
	for i, c := range r.Cells {
		runes[i] = c.Glyph
	}
	return string(runes)
}

// ComposeRow renders a departure row with the default layout.
func ComposeRow(destination string, countdown departure.Countdown) Row {
	return DefaultLayout().ComposeRow(destination, countdown)
}

// ComposeFreeTextRow renders a free-text row with the default layout.
func ComposeFreeTextRow(text string) Row {
	return DefaultLayout().ComposeFreeTextRow(text)
}

// ComposeRow renders destination left-aligned in the station zone, one gap
// cell, and the countdown right-aligned in the last two cells. A countdown of
// zero or Arriving shows the arrival marker instead of digits.
func (l Layout) ComposeRow(destination string, countdown departure.Countdown) Row {
	if countdown.IsArriving() {
		return l.compose(destination, arrivalMarker[:], arrivalStyles[:])
	}
	// Out-of-range minutes keep whatever the first two columns of %2d show.
	digits := fit(fmt.Sprintf("%2d", countdown.Minutes()), CountdownWidth)
	return l.compose(destination, digits, nil)
}

// ComposePlaceholder renders the filler row shown when no departure exists.
func (l Layout) ComposePlaceholder() Row {
	return l.compose(PlaceholderDestination, []rune(placeholderCountdown), nil)
}

// ComposeFreeTextRow renders text across the full row width with no
// countdown zone. Every cell is tagged as terminus text.
func (l Layout) ComposeFreeTextRow(text string) Row {
	glyphs := fit(upper(text), l.Width())
	cells := make([]segment.Cell, len(glyphs))
	for i, g := range glyphs {
		cells[i] = segment.RenderCell(g, segment.StyleTerminus)
	}
	return Row{Cells: cells}
}

func (l Layout) compose(destination string, countdown []rune, styles []segment.Style) Row {
	station := fit(upper(destination), l.stationWidth())

	cells := make([]segment.Cell, 0, l.Width())
	for _, g := range station {
		cells = append(cells, segment.RenderCell(g))
	}
	cells = append(cells, segment.RenderCell(segment.Blank))
	for i, g := range countdown {
		if styles != nil {
			cells = append(cells, segment.RenderCell(g, styles[i]))
			continue
		}
		cells = append(cells, segment.RenderCell(g))
	}
	return Row{Cells: cells}
}

// fit pads text with blanks to width, then truncates it to width.
func fit(text string, width int) []rune {
	runes := []rune(text)
	for len(runes) < width {
		runes = append(runes, segment.Blank)
	}
	return runes[:width]
}

// upper applies full Unicode upper-casing, so "ß" becomes "SS".
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}
