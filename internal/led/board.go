package led

import "github.com/javiermolinar/tafel/internal/departure"

// Board is the full set of physical rows, top to bottom.
type Board []Row

// Lines returns the text of every row.
func (b Board) Lines() []string {
	out := make([]string, len(b))
	for i, r := range b {
		out[i] = r.Text()
	}
	return out
}

// RenderBoard renders departures with the default layout.
func RenderBoard(rowCount int, departures []departure.Departure) Board {
	return DefaultLayout().RenderBoard(rowCount, departures)
}

// TerminusBoard renders terminus messages with the default layout.
func TerminusBoard(rowCount int, lines []string) Board {
	return DefaultLayout().TerminusBoard(rowCount, lines)
}

// RenderBoard maps departures onto exactly rowCount rows in the given order.
// Rows without a departure show the placeholder.
func (l Layout) RenderBoard(rowCount int, departures []departure.Departure) Board {
	if rowCount < 0 {
		rowCount = 0
	}
	board := make(Board, rowCount)
	for i := range board {
		if i < len(departures) {
			d := departures[i]
			board[i] = l.ComposeRow(d.Destination, d.Countdown)
			continue
		}
		board[i] = l.ComposePlaceholder()
	}
	return board
}

// TerminusBoard renders one free-text row per message line. Rows past the
// last line are blank.
func (l Layout) TerminusBoard(rowCount int, lines []string) Board {
	if rowCount < 0 {
		rowCount = 0
	}
	board := make(Board, rowCount)
	for i := range board {
		text := ""
		if i < len(lines) {
			text = lines[i]
		}
		board[i] = l.ComposeFreeTextRow(text)
	}
	return board
}
