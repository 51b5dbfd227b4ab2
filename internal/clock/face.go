package clock

import (
	"math"
	"time"
)

// Runes used by the text dial.
const (
	RimRune    = '·'
	HourRune   = '●'
	MinuteRune = '•'
	PinRune    = '◉'
)

// Face paints the dial for t on a grid of 2*radius+1 lines. Terminal cells
// are about twice as tall as wide, so every line holds 4*radius+1 columns.
func Face(t time.Time, radius int) []string {
	if radius < 2 {
		radius = 2
	}
	rows, cols := 2*radius+1, 4*radius+1
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	set := func(angle, length float64, r rune) {
		rad := angle * math.Pi / 180
		x := int(math.Round(float64(2*radius) + 2*length*math.Sin(rad)))
		y := int(math.Round(float64(radius) - length*math.Cos(rad)))
		if y >= 0 && y < rows && x >= 0 && x < cols {
			grid[y][x] = r
		}
	}

	for i := 0; i < 12; i++ {
		set(float64(i*30), float64(radius), RimRune)
	}

	hands := Angles(t)
	r := float64(radius)
	for step := 1; step <= radius*2; step++ {
		l := float64(step) / 2
		if l <= r*0.9 {
			set(hands.Minute, l, MinuteRune)
		}
		if l <= r*0.55 {
			set(hands.Hour, l, HourRune)
		}
	}
	grid[radius][2*radius] = PinRune

	out := make([]string, rows)
	for i, line := range grid {
		out[i] = string(line)
	}
	return out
}
