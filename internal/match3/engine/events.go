package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-match3/internal/match3/board"
)

// Event is anything the engine dispatches. The set is closed: every event
// kind is declared in this file.
type Event interface {
	engineEvent()
}

// Point is a pointer position in board units. Cell (x, y) is centered on the
// integer point (x, y).
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Y)
}

// PointerDown records where a drag starts.
type PointerDown struct {
	Point Point
}

func (PointerDown) engineEvent() {}

// PointerUp ends a drag. A long enough drag inside the board becomes a swipe.
type PointerUp struct {
	Point Point
}

func (PointerUp) engineEvent() {}

// SwipeAccepted starts a swipe cycle. From and To have already been swapped
// on the board.
type SwipeAccepted struct {
	Cycle uuid.UUID
	From  board.Coord
	To    board.Coord
	Dir   board.Dir
}

func (SwipeAccepted) engineEvent() {}

// CellFinishedMove reports that a swapped tile reached its cell.
type CellFinishedMove struct {
	Cell board.Coord
}

func (CellFinishedMove) engineEvent() {}

// CellFinishedMoveBack reports that a rolled-back tile reached its old cell.
type CellFinishedMoveBack struct {
	Cell board.Coord
}

func (CellFinishedMoveBack) engineEvent() {}

// CellFell reports that a falling tile reached its cell.
type CellFell struct {
	Cell board.Coord
}

func (CellFell) engineEvent() {}

// PowerActivated is raised when a power tile is cleared.
type PowerActivated struct {
	Kind board.PowerKind
	Pos  board.Coord
}

func (PowerActivated) engineEvent() {}

// Collapse executes the planned gravity falls.
type Collapse struct{}

func (Collapse) engineEvent() {}

// DestructionComplete fires once the destroy settle delay has elapsed.
type DestructionComplete struct{}

func (DestructionComplete) engineEvent() {}

// SwipeRolledBack ends a cycle that produced no match. The board is back to
// its layout before the swipe.
type SwipeRolledBack struct {
	Cycle uuid.UUID
}

func (SwipeRolledBack) engineEvent() {}

// BoardSettled ends a cascade: no matches remain.
type BoardSettled struct{}

func (BoardSettled) engineEvent() {}

// EventName returns a short name for logging.
func EventName(ev Event) string {
	switch ev.(type) {
	case PointerDown:
		return "pointer-down"
	case PointerUp:
		return "pointer-up"
	case SwipeAccepted:
		return "swipe-accepted"
	case CellFinishedMove:
		return "cell-finished-move"
	case CellFinishedMoveBack:
		return "cell-finished-move-back"
	case CellFell:
		return "cell-fell"
	case PowerActivated:
		return "power-activated"
	case Collapse:
		return "collapse"
	case DestructionComplete:
		return "destruction-complete"
	case SwipeRolledBack:
		return "swipe-rolled-back"
	case BoardSettled:
		return "board-settled"
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("%T", ev)
	}
}
