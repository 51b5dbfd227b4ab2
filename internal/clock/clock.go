// Package clock computes analog clock hand positions and paints the dial as
// SVG for the web page and as text for the terminal.
package clock

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Center is the rotation origin of the SVG dial, which spans 0..100.
const Center = 50

// Hands holds hand angles in degrees, clockwise from twelve o'clock.
type Hands struct {
	Hour   float64
	Minute float64
}

// Angles returns the hand angles for t. The hour hand advances with the
// minutes; the minute hand moves in whole-minute steps.
func Angles(t time.Time) Hands {
	h := t.Hour() % 12
	m := t.Minute()
	return Hands{
		Hour:   (float64(h) + float64(m)/60) * 30,
		Minute: float64(m) * 6,
	}
}

// Transform returns the SVG rotate transform for angle around the dial
// centre.
func Transform(angle float64) string {
	return fmt.Sprintf("rotate(%s %d %d)", formatAngle(angle), Center, Center)
}

func formatAngle(a float64) string {
	if a == math.Trunc(a) {
		return fmt.Sprintf("%d", int(a))
	}
	return fmt.Sprintf("%.1f", a)
}

// SVG returns a self-contained dial showing t.
func SVG(t time.Time) string {
	hands := Angles(t)

	var b strings.Builder
	b.WriteString(`<svg class="clock" viewBox="0 0 100 100" xmlns="http://www.w3.org/2000/svg">`)
	b.WriteString(`<circle class="clock-face" cx="50" cy="50" r="48"/>`)
	for i := 0; i < 12; i++ {
		fmt.Fprintf(&b, `<line class="clock-mark" x1="50" y1="6" x2="50" y2="12" transform="%s"/>`, Transform(float64(i*30)))
	}
	fmt.Fprintf(&b, `<line class="clock-hour" x1="50" y1="50" x2="50" y2="26" transform="%s"/>`, Transform(hands.Hour))
	fmt.Fprintf(&b, `<line class="clock-minute" x1="50" y1="50" x2="50" y2="14" transform="%s"/>`, Transform(hands.Minute))
	b.WriteString(`<circle class="clock-pin" cx="50" cy="50" r="3"/>`)
	b.WriteString(`</svg>`)
	return b.String()
}
