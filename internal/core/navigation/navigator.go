package navigation

import "github.com/zeusync/navsim/internal/core/systems/physics"

// Mode selects how instructions are interpreted.
type Mode uint8

const (
	// ModeHeading moves and turns the ship itself.
	ModeHeading Mode = iota + 1
	// ModeWaypoint moves and rotates a waypoint relative to the ship.
	ModeWaypoint
)

func (m Mode) String() string {
	switch m {
	case ModeHeading:
		return "heading"
	case ModeWaypoint:
		return "waypoint"
	default:
		return "unknown"
	}
}

// Navigator owns the mutable state of one simulation.
type Navigator interface {
	Mode() Mode
	// Apply executes one instruction and returns the resulting state.
	Apply(ins Instruction) Step
	Position() physics.Point
}

// Result is the outcome of running a full instruction sequence.
type Result struct {
	Mode     Mode
	Position physics.Point
	Distance int
	Steps    int
}

// Run applies every instruction in order and reports the final Manhattan
// distance from the origin. obs may be nil.
func Run(nav Navigator, ins Instructions, obs Observer) Result {
	for idx, i := range ins {
		step := nav.Apply(i)
		step.Index = idx
		if obs != nil {
			obs.OnStep(step)
		}
	}

	pos := nav.Position()
	return Result{
		Mode:     nav.Mode(),
		Position: pos,
		Distance: pos.Manhattan(),
		Steps:    len(ins),
	}
}
