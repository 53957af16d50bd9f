package command

import "github.com/vovakirdan/tui-match3/internal/match3/board"

// Fall drops the occupant of a cell from a position further up the column
// (or from beyond the board edge for freshly spawned tiles).
type Fall struct {
	cell  *board.Cell
	from  board.Coord
	mover Mover
}

// NewFall creates a fall command for the tile now occupying cell.
func NewFall(cell *board.Cell, from board.Coord, mover Mover) *Fall {
	return &Fall{cell: cell, from: from, mover: mover}
}

// Cell returns the destination slot.
func (f *Fall) Cell() *board.Cell {
	return f.cell
}

// From returns the starting position.
func (f *Fall) From() board.Coord {
	return f.from
}

// Execute starts the fall.
func (f *Fall) Execute() {
	f.cell.State = board.CellMoving
	f.cell.Target = f.cell.Pos
	f.mover.Move(Motion{
		Cell: f.cell.Pos,
		From: f.from,
		To:   f.cell.Pos,
		Tile: f.cell.Occupant,
		Kind: MotionFall,
	})
}

// Undo lifts the tile back to where it fell from. Falls are never undone by
// the engine; this keeps Fall a complete Command.
func (f *Fall) Undo() {
	f.cell.State = board.CellMoving
	f.cell.Target = f.from
	f.mover.Move(Motion{
		Cell: f.cell.Pos,
		From: f.cell.Pos,
		To:   f.from,
		Tile: f.cell.Occupant,
		Kind: MotionSwapBack,
	})
}
