package command

import "github.com/vovakirdan/tui-match3/internal/match3/board"

// Swipe moves the occupant of a cell one step in Dir, ending in the cell.
// The board swap has already happened when Execute runs.
type Swipe struct {
	dir   board.Dir
	cell  *board.Cell
	mover Mover
}

// NewSwipe creates a swipe command for the tile that arrives in cell travelling
// in dir.
func NewSwipe(dir board.Dir, cell *board.Cell, mover Mover) *Swipe {
	return &Swipe{dir: dir, cell: cell, mover: mover}
}

// SwipeUp moves the occupant of cell up into it.
func SwipeUp(cell *board.Cell, mover Mover) *Swipe {
	return NewSwipe(board.DirUp, cell, mover)
}

// SwipeDown moves the occupant of cell down into it.
func SwipeDown(cell *board.Cell, mover Mover) *Swipe {
	return NewSwipe(board.DirDown, cell, mover)
}

// SwipeLeft moves the occupant of cell left into it.
func SwipeLeft(cell *board.Cell, mover Mover) *Swipe {
	return NewSwipe(board.DirLeft, cell, mover)
}

// SwipeRight moves the occupant of cell right into it.
func SwipeRight(cell *board.Cell, mover Mover) *Swipe {
	return NewSwipe(board.DirRight, cell, mover)
}

// Dir returns the direction of travel.
func (s *Swipe) Dir() board.Dir {
	return s.dir
}

// Cell returns the slot the command acts on.
func (s *Swipe) Cell() *board.Cell {
	return s.cell
}

// origin is where the tile came from before the swap.
func (s *Swipe) origin() board.Coord {
	return s.cell.Pos.Step(s.dir.Opposite())
}

// Execute starts the forward move.
func (s *Swipe) Execute() {
	s.cell.State = board.CellMoving
	s.cell.Target = s.cell.Pos
	s.mover.Move(Motion{
		Cell: s.cell.Pos,
		From: s.origin(),
		To:   s.cell.Pos,
		Tile: s.cell.Occupant,
		Kind: MotionSwap,
	})
}

// Undo sends the tile back where it came from. The board is restored by the
// engine once every move-back has been reported.
func (s *Swipe) Undo() {
	s.cell.State = board.CellMoving
	s.cell.Target = s.origin()
	s.mover.Move(Motion{
		Cell: s.cell.Pos,
		From: s.cell.Pos,
		To:   s.origin(),
		Tile: s.cell.Occupant,
		Kind: MotionSwapBack,
	})
}
