package station

import (
	"testing"
)

func TestLines_Directory(t *testing.T) {
	want := []string{"U1", "U2", "U3", "U4", "U6"}
	got := Lines()
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
	for i, l := range got {
		if l.Name != want[i] {
			t.Errorf("line %d = %s, want %s", i, l.Name, want[i])
		}
		if len(l.Stations) < 2 {
			t.Errorf("%s has %d stations", l.Name, len(l.Stations))
		}
		for _, st := range l.Stations {
			if st.RBLs[0] == 0 || st.RBLs[1] == 0 {
				t.Errorf("%s %s has a zero RBL: %v", l.Name, st.Name, st.RBLs)
			}
		}
	}
}

func TestDirections(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		station   string
		towards   [2]string
		rbls      [2]int
		terminals [2]bool
	}{
		{
			name:      "through station",
			line:      "u1",
			station:   "Stephansplatz",
			towards:   [2]string{"Leopoldau", "Oberlaa"},
			rbls:      [2]int{4111, 4118},
			terminals: [2]bool{false, false},
		},
		{
			name:      "first terminus",
			line:      "U1",
			station:   "Oberlaa",
			towards:   [2]string{"Leopoldau", "Oberlaa"},
			rbls:      [2]int{4101, 4128},
			terminals: [2]bool{false, true},
		},
		{
			name:      "last terminus",
			line:      "u2",
			station:   "seestadt",
			towards:   [2]string{"Seestadt", "Karlsplatz"},
			rbls:      [2]int{4271, 4251},
			terminals: [2]bool{true, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, i, ok := Find(tt.line, tt.station)
			if !ok {
				t.Fatalf("station %s/%s not found", tt.line, tt.station)
			}
			dirs, err := l.Directions(i)
			if err != nil {
				t.Fatalf("Directions: %v", err)
			}
			for k, d := range dirs {
				if d.Towards != tt.towards[k] {
					t.Errorf("dir %d towards = %s, want %s", k, d.Towards, tt.towards[k])
				}
				if d.RBL != tt.rbls[k] {
					t.Errorf("dir %d rbl = %d, want %d", k, d.RBL, tt.rbls[k])
				}
				if d.Terminus != tt.terminals[k] {
					t.Errorf("dir %d terminus = %v, want %v", k, d.Terminus, tt.terminals[k])
				}
				if d.Platform != k+1 {
					t.Errorf("dir %d platform = %d, want %d", k, d.Platform, k+1)
				}
			}
		})
	}
}

func TestDirections_OutOfRange(t *testing.T) {
	l, _ := FindLine("u4")
	if _, err := l.Directions(len(l.Stations)); err == nil {
		t.Fatal("expected error for index past the end")
	}
	if _, err := l.Directions(-1); err == nil {
		t.Fatal("expected error for negative index")
	}
}

func TestDirection_Label(t *testing.T) {
	l, i, _ := Find("u1", "Karlsplatz")
	dirs, _ := l.Directions(i)

	if got := dirs[0].Label(); got != "→ Richtung Leopoldau" {
		t.Errorf("Label() = %q", got)
	}
	if got := dirs[1].Label(); got != "← Richtung Oberlaa" {
		t.Errorf("Label() = %q", got)
	}
}

func TestDefault(t *testing.T) {
	sel := Default()
	want := Selection{Name: "Stephansplatz", RBL: 4111, Platform: 1, Terminus: false}
	if sel != want {
		t.Fatalf("Default() = %+v, want %+v", sel, want)
	}
}

func TestAll(t *testing.T) {
	total := 0
	for _, l := range Lines() {
		total += len(l.Stations)
	}
	if got := len(All()); got != 2*total {
		t.Fatalf("All() returned %d directions, want %d", got, 2*total)
	}
	if _, _, ok := Find("u5", "Karlsplatz"); ok {
		t.Fatal("U5 is not in the directory")
	}
}

func TestLineOf(t *testing.T) {
	l, ok := LineOf(Default())
	if !ok || l.Name != "U1" {
		t.Fatalf("LineOf(default) = %q, %v; want U1", l.Name, ok)
	}

	if _, ok := LineOf(Selection{Name: "Nowhere", RBL: 1}); ok {
		t.Error("expected unknown selection to have no line")
	}
}
