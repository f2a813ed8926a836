package navigation

import "github.com/zeusync/navsim/internal/core/systems/physics"

// Step is the state of a navigator right after one instruction was applied.
type Step struct {
	Mode        Mode
	Index       int
	Instruction Instruction
	Position    physics.Point
	Heading     physics.Heading // ModeHeading only
	Waypoint    physics.Point   // ModeWaypoint only
}

// Observer receives one Step per applied instruction.
// When both modes run concurrently OnStep is called from two goroutines.
type Observer interface {
	OnStep(step Step)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(step Step)

func (f ObserverFunc) OnStep(step Step) { f(step) }
