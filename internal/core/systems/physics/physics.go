package physics

import "fmt"

// Point is a mutable 2D integer vector on a grid where +X is east and +Y is
// north. It is used both for absolute positions and for offsets relative to
// another point.
type Point struct {
	X, Y int
}

// NewPoint creates a point at (x, y).
func NewPoint(x, y int) Point { return Point{X: x, Y: y} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Translate adds dx and dy to the coordinates.
func (p *Point) Translate(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// MoveInDirection moves by magnitude along the axis given by heading.
// Only the cardinal headings 0, 90, 180 and 270 move the point.
func (p *Point) MoveInDirection(heading Heading, magnitude int) {
	switch heading {
	case East:
		p.X += magnitude
	case North:
		p.Y += magnitude
	case West:
		p.X -= magnitude
	case South:
		p.Y -= magnitude
	}
}

// Rotate turns the vector about the origin by byDegrees, counter-clockwise
// for positive angles. The angle is normalized into [0, 360) first; values
// that are not multiples of 90 leave the point unchanged.
func (p *Point) Rotate(byDegrees int) {
	switch Mod(byDegrees, FullTurn) {
	case 90:
		p.X, p.Y = -p.Y, p.X
	case 180:
		p.X, p.Y = -p.X, -p.Y
	case 270:
		p.X, p.Y = p.Y, -p.X
	}
}

// ScaleAndAccumulate adds other scaled by magnitude: p += other * magnitude.
func (p *Point) ScaleAndAccumulate(other Point, magnitude int) {
	p.X += other.X * magnitude
	p.Y += other.Y * magnitude
}

// Manhattan returns |x| + |y|.
func (p Point) Manhattan() int { return abs(p.X) + abs(p.Y) }

// Mod is the floored modulo: for m > 0 the result is always in [0, m),
// including when n is negative.
func Mod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
