package core

// Direction is a discrete directional input token.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "None"
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the unit step for the direction.
// The four cardinal directions map to exactly one axis; anything else is (0,0).
func (d Direction) Delta() Coord {
	switch d {
	case DirRight:
		return Coord{X: 1}
	case DirLeft:
		return Coord{X: -1}
	case DirDown:
		return Coord{Y: 1}
	case DirUp:
		return Coord{Y: -1}
	default:
		return Coord{}
	}
}

// InputFrame is the read-only input snapshot for one simulation tick.
// The platform builds it from its own key buffer; the engine never mutates it.
type InputFrame struct {
	// Held is the directional key currently held, or DirNone.
	Held Direction
	// Action is the edge-triggered interact pulse. It is true for one tick per press.
	Action bool
	// Run is true while the run modifier is held.
	Run bool
	// Pressed is a directional press (or key repeat) seen since the previous
	// frame, delivered once. Terminals report presses but not releases, so a
	// second press of the held key shows up here and not in Held.
	Pressed Direction
}

// HasDirection returns true if a directional key is held.
func (f InputFrame) HasDirection() bool {
	return f.Held != DirNone
}
