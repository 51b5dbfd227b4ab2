package departure

import (
	"testing"
)

func TestCountdown(t *testing.T) {
	tests := []struct {
		name     string
		c        Countdown
		arriving bool
		minutes  int
		str      string
	}{
		{name: "arriving sentinel", c: Arriving, arriving: true, minutes: 0, str: "arriving"},
		{name: "zero minutes", c: In(0), arriving: true, minutes: 0, str: "arriving"},
		{name: "zero value", c: Countdown{}, arriving: true, minutes: 0, str: "arriving"},
		{name: "three minutes", c: In(3), arriving: false, minutes: 3, str: "3 min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IsArriving(); got != tt.arriving {
				t.Errorf("IsArriving() = %v, want %v", got, tt.arriving)
			}
			if got := tt.c.Minutes(); got != tt.minutes {
				t.Errorf("Minutes() = %d, want %d", got, tt.minutes)
			}
			if got := tt.c.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}

func TestSortEarliestFirst(t *testing.T) {
	deps := []Departure{
		{Destination: "LEOPOLDAU", Countdown: In(7)},
		{Destination: "OBERLAA", Countdown: In(2)},
		{Destination: "SEESTADT", Countdown: Arriving},
		{Destination: "KARLSPLATZ", Countdown: In(2)},
		{Destination: "SIMMERING", Countdown: In(0)},
	}

	SortEarliestFirst(deps)

	want := []string{"SEESTADT", "SIMMERING", "OBERLAA", "KARLSPLATZ", "LEOPOLDAU"}
	for i, d := range deps {
		if d.Destination != want[i] {
			t.Fatalf("position %d = %s, want %s (got order %v)", i, d.Destination, want[i], deps)
		}
	}
}
