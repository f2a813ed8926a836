package navigation

// Action is a single navigation command.
type Action uint8

const (
	MoveNorth Action = iota
	MoveSouth
	MoveEast
	MoveWest
	RotateRight
	RotateLeft
	MoveForward
)

// ParseAction maps a command letter to its Action.
func ParseAction(letter byte) (Action, bool) {
	switch letter {
	case 'N':
		return MoveNorth, true
	case 'S':
		return MoveSouth, true
	case 'E':
		return MoveEast, true
	case 'W':
		return MoveWest, true
	case 'R':
		return RotateRight, true
	case 'L':
		return RotateLeft, true
	case 'F':
		return MoveForward, true
	default:
		return MoveNorth, false
	}
}

// Letter returns the command letter used in input files.
func (a Action) Letter() byte {
	switch a {
	case MoveNorth:
		return 'N'
	case MoveSouth:
		return 'S'
	case MoveEast:
		return 'E'
	case MoveWest:
		return 'W'
	case RotateRight:
		return 'R'
	case RotateLeft:
		return 'L'
	case MoveForward:
		return 'F'
	default:
		return '?'
	}
}

func (a Action) String() string { return string(a.Letter()) }
