// Package station provides the static U-Bahn line and station directory and
// resolves the two selectable directions of every station.
package station

import (
	"fmt"
	"strings"
)

// Station is one stop of a line with its two directional RBL identifiers.
type Station struct {
	Name string
	RBLs [2]int
}

// Line is a U-Bahn line with its stations in running order.
type Line struct {
	ID       string
	Name     string
	Color    string
	Stations []Station
}

// First returns the first terminus of the line.
func (l Line) First() Station { return l.Stations[0] }

// Last returns the last terminus of the line.
func (l Line) Last() Station { return l.Stations[len(l.Stations)-1] }

// Direction is one selectable platform of a station.
type Direction struct {
	Line     string
	Station  string
	Towards  string
	RBL      int
	Platform int  // 1 towards the last station, 2 towards the first
	Terminus bool // the station is the end of the line in this direction
}

// Label returns the picker text, e.g. "→ Richtung Leopoldau".
func (d Direction) Label() string {
	arrow := "→"
	if d.Platform == 2 {
		arrow = "←"
	}
	return fmt.Sprintf("%s Richtung %s", arrow, d.Towards)
}

// Selection returns the persisted form of the direction.
func (d Direction) Selection() Selection {
	return Selection{
		Name:     d.Station,
		RBL:      d.RBL,
		Platform: d.Platform,
		Terminus: d.Terminus,
	}
}

// Directions returns both directions of the station at index i.
func (l Line) Directions(i int) ([2]Direction, error) {
	if i < 0 || i >= len(l.Stations) {
		return [2]Direction{}, fmt.Errorf("station index %d out of range for %s", i, l.Name)
	}
	st := l.Stations[i]
	first, last := l.First().Name, l.Last().Name

	return [2]Direction{
		{
			Line:     l.Name,
			Station:  st.Name,
			Towards:  last,
			RBL:      st.RBLs[0],
			Platform: 1,
			Terminus: st.Name == last,
		},
		{
			Line:     l.Name,
			Station:  st.Name,
			Towards:  first,
			RBL:      st.RBLs[1],
			Platform: 2,
			Terminus: st.Name == first,
		},
	}, nil
}

// Selection is the flat record of the chosen platform.
type Selection struct {
	Name     string `json:"name"`
	RBL      int    `json:"rblId"`
	Platform int    `json:"gleisNum"`
	Terminus bool   `json:"atTerminus"`
}

// Lines returns the directory. Callers must not modify it.
func Lines() []Line {
	return lines
}

// FindLine looks a line up by ID or name, case-insensitively.
func FindLine(id string) (Line, bool) {
	for _, l := range lines {
		if strings.EqualFold(l.ID, id) || strings.EqualFold(l.Name, id) {
			return l, true
		}
	}
	return Line{}, false
}

// Find looks a station up on a line by name, case-insensitively.
func Find(lineID, name string) (Line, int, bool) {
	l, ok := FindLine(lineID)
	if !ok {
		return Line{}, 0, false
	}
	for i, st := range l.Stations {
		if strings.EqualFold(st.Name, name) {
			return l, i, true
		}
	}
	return Line{}, 0, false
}

// Default returns the fallback selection: Stephansplatz on the U1 towards
// Leopoldau.
func Default() Selection {
	l, i, ok := Find("u1", "Stephansplatz")
	if !ok {
		panic("station: default station missing from directory")
	}
	dirs, _ := l.Directions(i)
	return dirs[0].Selection()
}

// All returns every direction of every station, line by line.
func All() []Direction {
	var out []Direction
	for _, l := range lines {
		for i := range l.Stations {
			dirs, _ := l.Directions(i)
			out = append(out, dirs[0], dirs[1])
		}
	}
	return out
}

// LineOf returns the line serving sel, matched by station name and RBL.
func LineOf(sel Selection) (Line, bool) {
	for _, l := range lines {
		for _, st := range l.Stations {
			if st.Name == sel.Name && (st.RBLs[0] == sel.RBL || st.RBLs[1] == sel.RBL) {
				return l, true
			}
		}
	}
	return Line{}, false
}
