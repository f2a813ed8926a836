package navigation

import "github.com/zeusync/navsim/internal/core/systems/physics"

var _ Navigator = (*WaypointNavigator)(nil)

// DefaultWaypoint is the starting waypoint offset: 10 east, 1 north.
var DefaultWaypoint = physics.NewPoint(10, 1)

// WaypointNavigator steers a waypoint held relative to the ship; only
// MoveForward moves the ship itself.
type WaypointNavigator struct {
	position physics.Point
	waypoint physics.Point
}

func NewWaypointNavigator(waypoint physics.Point) *WaypointNavigator {
	return &WaypointNavigator{waypoint: waypoint}
}

func (n *WaypointNavigator) Mode() Mode              { return ModeWaypoint }
func (n *WaypointNavigator) Position() physics.Point { return n.position }
func (n *WaypointNavigator) Waypoint() physics.Point { return n.waypoint }

func (n *WaypointNavigator) Apply(ins Instruction) Step {
	m := ins.Magnitude
	switch ins.Action {
	case MoveNorth:
		n.waypoint.Translate(0, m)
	case MoveSouth:
		n.waypoint.Translate(0, -m)
	case MoveEast:
		n.waypoint.Translate(m, 0)
	case MoveWest:
		n.waypoint.Translate(-m, 0)
	case RotateRight:
		n.waypoint.Rotate(-m)
	case RotateLeft:
		n.waypoint.Rotate(m)
	case MoveForward:
		n.position.ScaleAndAccumulate(n.waypoint, m)
	}

	return Step{
		Mode:        ModeWaypoint,
		Instruction: ins,
		Position:    n.position,
		Waypoint:    n.waypoint,
	}
}
