package physics

// FullTurn is the number of degrees in a full rotation.
const FullTurn = 360

// Heading is a compass direction in degrees, 0 = east, 90 = north.
type Heading int

const (
	East  Heading = 0
	North Heading = 90
	West  Heading = 180
	South Heading = 270
)

// Turn returns the heading rotated by delta degrees, counter-clockwise for
// positive delta. The result is always normalized.
func (h Heading) Turn(delta int) Heading { return Heading(Mod(int(h)+delta, FullTurn)) }

func (h Heading) String() string {
	switch h {
	case East:
		return "east"
	case North:
		return "north"
	case West:
		return "west"
	case South:
		return "south"
	default:
		return "unknown"
	}
}
