// Package command implements the undoable movement actions of the match-3
// engine. A command only starts a movement; the Mover collaborator animates it
// and reports completion back to the engine.
package command

import "github.com/vovakirdan/tui-match3/internal/match3/board"

// Command is an atomic, undoable action on one cell.
type Command interface {
	Execute()
	Undo()
}

// MotionKind tells the mover which completion to report.
type MotionKind uint8

const (
	MotionSwap     MotionKind = iota // reported as cell-finished-move
	MotionSwapBack                   // reported as cell-finished-move-back
	MotionFall                       // reported as cell-fell
)

// String returns a human-readable name for the motion kind.
func (k MotionKind) String() string {
	switch k {
	case MotionSwap:
		return "swap"
	case MotionSwapBack:
		return "swap-back"
	case MotionFall:
		return "fall"
	default:
		return "unknown"
	}
}

// Motion describes one tile travelling between two grid positions.
// Cell is the slot whose completion is reported.
type Motion struct {
	Cell board.Coord
	From board.Coord
	To   board.Coord
	Tile *board.Tile
	Kind MotionKind
}

// Mover starts the visual movement of a tile. Implementations must report
// completion asynchronously or after Move returns; the engine queues events
// raised while it is dispatching.
type Mover interface {
	Move(m Motion)
}
