package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMod(t *testing.T) {
	tests := []struct {
		name     string
		n, m     int
		expected int
	}{
		{"zero", 0, 360, 0},
		{"positive below modulus", 90, 360, 90},
		{"exact modulus", 360, 360, 0},
		{"positive wrap", 450, 360, 90},
		{"negative", -90, 360, 270},
		{"negative full turn", -360, 360, 0},
		{"negative wrap", -450, 360, 270},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Mod(tt.n, tt.m))
		})
	}
}

func TestModSymmetricAndInRange(t *testing.T) {
	for m := 0; m <= 1080; m += 15 {
		pos := Mod(m, FullTurn)
		neg := Mod(-m, FullTurn)
		require.GreaterOrEqual(t, pos, 0)
		require.Less(t, pos, FullTurn)
		require.GreaterOrEqual(t, neg, 0)
		require.Less(t, neg, FullTurn)
		assert.Equal(t, 0, Mod(pos+neg, FullTurn), "m=%d", m)
	}
}

func TestTranslate(t *testing.T) {
	p := NewPoint(1, 2)
	p.Translate(3, -5)
	assert.Equal(t, NewPoint(4, -3), p)

	p.Translate(0, 0)
	assert.Equal(t, NewPoint(4, -3), p)
}

func TestMoveInDirection(t *testing.T) {
	tests := []struct {
		heading  Heading
		expected Point
	}{
		{East, NewPoint(5, 0)},
		{North, NewPoint(0, 5)},
		{West, NewPoint(-5, 0)},
		{South, NewPoint(0, -5)},
		{Heading(45), NewPoint(0, 0)},
		{Heading(360), NewPoint(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.heading.String(), func(t *testing.T) {
			var p Point
			p.MoveInDirection(tt.heading, 5)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name     string
		by       int
		expected Point
	}{
		{"identity", 0, NewPoint(10, 4)},
		{"left 90", 90, NewPoint(-4, 10)},
		{"half turn", 180, NewPoint(-10, -4)},
		{"left 270", 270, NewPoint(4, -10)},
		{"right 90", -90, NewPoint(4, -10)},
		{"right 270", -270, NewPoint(-4, 10)},
		{"full turn", 360, NewPoint(10, 4)},
		{"not a right angle", 45, NewPoint(10, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPoint(10, 4)
			p.Rotate(tt.by)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestRotateGroupAction(t *testing.T) {
	start := NewPoint(7, -3)

	p := start
	for i := 0; i < 4; i++ {
		p.Rotate(90)
	}
	assert.Equal(t, start, p)

	angles := []int{-270, -180, -90, 0, 90, 180, 270, 360, 450}
	for _, a := range angles {
		for _, b := range angles {
			composed := start
			composed.Rotate(a)
			composed.Rotate(b)

			direct := start
			direct.Rotate(a + b)

			assert.Equal(t, direct, composed, "a=%d b=%d", a, b)
		}
	}
}

func TestScaleAndAccumulate(t *testing.T) {
	p := NewPoint(0, 0)
	wp := NewPoint(10, 1)

	p.ScaleAndAccumulate(wp, 10)
	assert.Equal(t, NewPoint(100, 10), p)

	p.ScaleAndAccumulate(wp, 0)
	assert.Equal(t, NewPoint(100, 10), p)
	assert.Equal(t, NewPoint(10, 1), wp)
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(214,-72)", NewPoint(214, -72).String())
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, Point{}.Manhattan())
	assert.Equal(t, 25, NewPoint(17, -8).Manhattan())
	assert.Equal(t, 286, NewPoint(214, -72).Manhattan())
	assert.Equal(t, 286, NewPoint(-214, 72).Manhattan())

	p := NewPoint(3, 4)
	p.Translate(-3, -4)
	assert.Equal(t, 0, p.Manhattan())
}

func TestHeading(t *testing.T) {
	assert.Equal(t, South, East.Turn(-90))
	assert.Equal(t, North, East.Turn(90))
	assert.Equal(t, West, North.Turn(450))
	assert.Equal(t, East, West.Turn(-540))
	assert.Equal(t, "south", South.String())
	assert.Equal(t, "unknown", Heading(30).String())
}
