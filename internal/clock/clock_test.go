package clock

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(h, m int) time.Time {
	return time.Date(2026, 3, 14, h, m, 0, 0, time.UTC)
}

func TestAngles(t *testing.T) {
	tests := []struct {
		h, m         int
		hour, minute float64
	}{
		{3, 30, 105, 180},
		{0, 0, 0, 0},
		{12, 0, 0, 0},
		{15, 30, 105, 180},
		{9, 45, 292.5, 270},
		{23, 59, 359.5, 354},
	}
	for _, tt := range tests {
		got := Angles(at(tt.h, tt.m))
		assert.InDelta(t, tt.hour, got.Hour, 1e-9, "hour hand at %02d:%02d", tt.h, tt.m)
		assert.InDelta(t, tt.minute, got.Minute, 1e-9, "minute hand at %02d:%02d", tt.h, tt.m)
	}
}

func TestTransform(t *testing.T) {
	assert.Equal(t, "rotate(105 50 50)", Transform(105))
	assert.Equal(t, "rotate(292.5 50 50)", Transform(292.5))
}

func TestSVG(t *testing.T) {
	svg := SVG(at(3, 30))
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, `class="clock-hour" x1="50" y1="50" x2="50" y2="26" transform="rotate(105 50 50)"`)
	assert.Contains(t, svg, `class="clock-minute" x1="50" y1="50" x2="50" y2="14" transform="rotate(180 50 50)"`)
	assert.Equal(t, 12, strings.Count(svg, "clock-mark"))
}

func TestFace(t *testing.T) {
	lines := Face(at(3, 0), 3)
	require.Len(t, lines, 7)
	for _, l := range lines {
		assert.Equal(t, 13, utf8.RuneCountInString(l))
	}

	// 03:00: minute hand points up, hour hand points right.
	center := []rune(lines[3])
	assert.Equal(t, PinRune, center[6])
	assert.Equal(t, HourRune, center[7])
	assert.Equal(t, MinuteRune, []rune(lines[2])[6])
	assert.Equal(t, RimRune, []rune(lines[0])[6])
}

func TestFaceMinimumRadius(t *testing.T) {
	assert.Len(t, Face(at(1, 0), 0), 5)
}
