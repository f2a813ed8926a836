package navigation

import "github.com/zeusync/navsim/internal/core/systems/physics"

var _ Navigator = (*HeadingNavigator)(nil)

// HeadingNavigator moves the ship directly and turns it in place.
// The ship starts at the origin facing east.
type HeadingNavigator struct {
	position physics.Point
	heading  physics.Heading
}

func NewHeadingNavigator() *HeadingNavigator {
	return &HeadingNavigator{heading: physics.East}
}

func (n *HeadingNavigator) Mode() Mode               { return ModeHeading }
func (n *HeadingNavigator) Position() physics.Point  { return n.position }
func (n *HeadingNavigator) Heading() physics.Heading { return n.heading }

func (n *HeadingNavigator) Apply(ins Instruction) Step {
	m := ins.Magnitude
	switch ins.Action {
	case MoveNorth:
		n.position.Translate(0, m)
	case MoveSouth:
		n.position.Translate(0, -m)
	case MoveEast:
		n.position.Translate(m, 0)
	case MoveWest:
		n.position.Translate(-m, 0)
	case RotateRight:
		n.heading = n.heading.Turn(-m)
	case RotateLeft:
		n.heading = n.heading.Turn(m)
	case MoveForward:
		n.position.MoveInDirection(n.heading, m)
	}

	return Step{
		Mode:        ModeHeading,
		Instruction: ins,
		Position:    n.position,
		Heading:     n.heading,
	}
}
