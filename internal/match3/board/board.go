package board

import "strings"

// Board is a fixed W x H grid of cells.
// Cells are stored in row-major order: index = y*W + x.
type Board struct {
	w     int
	h     int
	cells []Cell
}

// New creates an empty board. It panics on non-positive dimensions.
func New(w, h int) *Board {
	if w <= 0 || h <= 0 {
		panic("board: dimensions must be positive")
	}
	b := &Board{
		w:     w,
		h:     h,
		cells: make([]Cell, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := C(x, y)
			b.cells[b.index(c)] = Cell{Pos: c, Target: c}
		}
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.w
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.h
}

func (b *Board) index(c Coord) int {
	return c.Y*b.w + c.X
}

// InBounds returns true if the coordinate is within the board.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.w && c.Y >= 0 && c.Y < b.h
}

// Cell returns the slot at c, or nil if c is out of bounds.
func (b *Board) Cell(c Coord) *Cell {
	if !b.InBounds(c) {
		return nil
	}
	return &b.cells[b.index(c)]
}

// Occupant returns the tile at c, or nil for empty or out-of-bounds slots.
func (b *Board) Occupant(c Coord) *Tile {
	if cell := b.Cell(c); cell != nil {
		return cell.Occupant
	}
	return nil
}

// Set places a tile at c. Out-of-bounds coordinates are ignored.
func (b *Board) Set(c Coord, t *Tile) {
	if cell := b.Cell(c); cell != nil {
		cell.Occupant = t
	}
}

// Swap exchanges the occupants of two slots.
func (b *Board) Swap(a, c Coord) {
	ca, cc := b.Cell(a), b.Cell(c)
	if ca == nil || cc == nil {
		return
	}
	ca.Occupant, cc.Occupant = cc.Occupant, ca.Occupant
}

// Cells returns every cell, column by column (x outer, y inner).
func (b *Board) Cells() []*Cell {
	out := make([]*Cell, 0, len(b.cells))
	for x := 0; x < b.w; x++ {
		for y := 0; y < b.h; y++ {
			out = append(out, &b.cells[b.index(C(x, y))])
		}
	}
	return out
}

// EmptyCoords returns the positions of empty slots, row by row from row 0.
func (b *Board) EmptyCoords() []Coord {
	var out []Coord
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			if b.cells[b.index(C(x, y))].Empty() {
				out = append(out, C(x, y))
			}
		}
	}
	return out
}

// Layout returns the occupant IDs indexed [y][x], 0 for empty slots.
// Two boards with equal layouts hold the same tiles in the same places.
func (b *Board) Layout() [][]uint64 {
	out := make([][]uint64, b.h)
	for y := range out {
		out[y] = make([]uint64, b.w)
		for x := range out[y] {
			if t := b.cells[b.index(C(x, y))].Occupant; t != nil {
				out[y][x] = t.ID
			}
		}
	}
	return out
}

// String renders the board with the top row first. Empty slots are '.',
// power tiles are lowercase.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.w + 1) * b.h)
	for y := b.h - 1; y >= 0; y-- {
		for x := 0; x < b.w; x++ {
			sb.WriteRune(TileRune(b.cells[b.index(C(x, y))].Occupant))
		}
		if y > 0 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// TileRune returns the single-character form of a tile used by String and
// layouts.
func TileRune(t *Tile) rune {
	if t == nil {
		return '.'
	}
	r := t.Color.Char()
	if t.IsPower() {
		r += 'a' - 'A'
	}
	return r
}
