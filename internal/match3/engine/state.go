package engine

// GameState gates player input.
type GameState uint8

const (
	StateReady GameState = iota // accepting swipes
	StateWait                   // a swipe or cascade is resolving
)

// String returns a human-readable name for the state.
func (s GameState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateWait:
		return "wait"
	default:
		return "unknown"
	}
}

// transition returns the state after ev. Events that do not drive the state
// machine leave it unchanged.
func transition(s GameState, ev Event) GameState {
	switch ev.(type) {
	case SwipeAccepted:
		if s == StateReady {
			return StateWait
		}
	case SwipeRolledBack, BoardSettled:
		if s == StateWait {
			return StateReady
		}
	}
	return s
}
