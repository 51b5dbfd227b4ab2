// Package departure defines the departure values the board displays.
package departure

import (
	"fmt"
	"sort"
)

// Countdown is the time until a departure: whole minutes, or the arriving
// state. The zero value means zero minutes, which also displays as arriving.
type Countdown struct {
	minutes  int
	arriving bool
}

// Arriving is the sentinel for a train that is at or entering the platform.
var Arriving = Countdown{arriving: true}

// In returns a countdown of the given minutes.
func In(minutes int) Countdown {
	return Countdown{minutes: minutes}
}

// Minutes returns the minute value. It is 0 for Arriving.
func (c Countdown) Minutes() int {
	if c.arriving {
		return 0
	}
	return c.minutes
}

// IsArriving reports whether the countdown shows the arrival marker.
func (c Countdown) IsArriving() bool {
	return c.arriving || c.minutes == 0
}

// String implements fmt.Stringer.
func (c Countdown) String() string {
	if c.IsArriving() {
		return "arriving"
	}
	return fmt.Sprintf("%d min", c.minutes)
}

// sortKey orders arriving before every minute value.
func (c Countdown) sortKey() int {
	if c.IsArriving() {
		return -1
	}
	return c.minutes
}

// Departure is one upcoming train.
type Departure struct {
	Line        string
	Destination string
	Countdown   Countdown
}

// SortEarliestFirst orders departures arriving first, then by ascending
// minutes. Equal countdowns keep their input order.
func SortEarliestFirst(deps []Departure) {
	sort.SliceStable(deps, func(i, j int) bool {
		return deps[i].Countdown.sortKey() < deps[j].Countdown.sortKey()
	})
}
