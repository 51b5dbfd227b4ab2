package segment

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
)

//go:embed glyphs.toml
var embeddedGlyphs []byte

// glyphFile mirrors the layout of glyphs.toml.
type glyphFile struct {
	Glyphs map[string]string `toml:"glyphs"`
}

var (
	tableOnce sync.Once
	table     map[rune]Set
)

// Load parses a glyph table. Each entry maps a single-rune key to a bitmap
// of Rows lines with Cols characters each, '#' for lit and '.' for dark.
func Load(data []byte) (map[rune]Set, error) {
	var f glyphFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing glyph table: %w", err)
	}

	t := make(map[rune]Set, len(f.Glyphs))
	for key, bitmap := range f.Glyphs {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("glyph key %q must be a single character", key)
		}
		r, _ := utf8.DecodeRuneInString(key)
		set, err := parseBitmap(bitmap)
		if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", key, err)
		}
		t[r] = set
	}
	return t, nil
}

func parseBitmap(bitmap string) (Set, error) {
	var ids []ID
	row := 0
	for _, line := range strings.Split(bitmap, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if row >= Rows {
			return Set{}, fmt.Errorf("more than %d rows", Rows)
		}
		if len(line) != Cols {
			return Set{}, fmt.Errorf("row %d has %d columns, want %d", row, len(line), Cols)
		}
		for col, c := range line {
			switch c {
			case '#':
				ids = append(ids, ID(row*Cols+col))
			case '.':
			default:
				return Set{}, fmt.Errorf("row %d: unexpected %q", row, c)
			}
		}
		row++
	}
	if row != Rows {
		return Set{}, fmt.Errorf("got %d rows, want %d", row, Rows)
	}
	return NewSet(ids...), nil
}

// glyphTable returns the embedded table, loading it on first use.
func glyphTable() map[rune]Set {
	tableOnce.Do(func() {
		t, err := Load(embeddedGlyphs)
		if err != nil {
			panic(fmt.Sprintf("segment: embedded glyph table: %v", err))
		}
		table = t
	})
	return table
}

// Normalize folds ASCII letters to upper case. Every other rune, including
// umlauts and symbols, is returned unchanged.
func Normalize(glyph rune) rune {
	if glyph >= 'a' && glyph <= 'z' {
		return glyph - 'a' + 'A'
	}
	return glyph
}

// SegmentsFor returns the segments lit for glyph. Unknown glyphs yield the
// empty set.
func SegmentsFor(glyph rune) Set {
	return glyphTable()[Normalize(glyph)]
}

// Known reports whether the table has an entry for glyph.
func Known(glyph rune) bool {
	_, ok := glyphTable()[Normalize(glyph)]
	return ok
}

// Glyphs lists every glyph of the table in ascending order.
func Glyphs() []rune {
	t := glyphTable()
	out := make([]rune, 0, len(t))
	for r := range t {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
