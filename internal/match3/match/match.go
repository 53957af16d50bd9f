// Package match finds same-colored runs on a match-3 board and computes the
// cells affected by power tiles.
package match

import "github.com/vovakirdan/tui-match3/internal/match3/board"

// MinRun is the shortest run that counts as a match.
const MinRun = 3

// LineChecker matches horizontal and vertical runs of the same color.
type LineChecker struct {
	b          *board.Board
	bombRadius int
}

// NewLineChecker creates a checker over b. Bomb powers clear a square of
// side 2*bombRadius+1 around the power tile.
func NewLineChecker(b *board.Board, bombRadius int) *LineChecker {
	if b == nil {
		panic("match: nil board")
	}
	if bombRadius < 0 {
		bombRadius = 0
	}
	return &LineChecker{b: b, bombRadius: bombRadius}
}

// Check returns the cells of every run of at least MinRun through c, starting
// with c itself. Returned cells are marked CellCheck. A cell with no run
// returns nil.
func (lc *LineChecker) Check(c board.Coord) []board.Coord {
	h := lc.run(c, board.DirLeft, board.DirRight)
	v := lc.run(c, board.DirDown, board.DirUp)

	var out []board.Coord
	if len(h) >= MinRun {
		out = append(out, h...)
	}
	if len(v) >= MinRun {
		if out == nil {
			out = append(out, v...)
		} else {
			// c is already the head of the horizontal run
			out = append(out, v[1:]...)
		}
	}
	lc.mark(out)
	return out
}

// PowerEffect returns the cells a power of the given kind clears when it fires
// at c. Occupied cells in the result are marked CellCheck.
func (lc *LineChecker) PowerEffect(kind board.PowerKind, c board.Coord) []board.Coord {
	var out []board.Coord
	switch kind {
	case board.PowerLine:
		out = append(out, c)
		for x := 0; x < lc.b.Width(); x++ {
			if x != c.X {
				out = append(out, board.C(x, c.Y))
			}
		}
		for y := 0; y < lc.b.Height(); y++ {
			if y != c.Y {
				out = append(out, board.C(c.X, y))
			}
		}
	case board.PowerBomb:
		out = append(out, c)
		r := lc.bombRadius
		for y := c.Y - r; y <= c.Y+r; y++ {
			for x := c.X - r; x <= c.X+r; x++ {
				p := board.C(x, y)
				if p != c && lc.b.InBounds(p) {
					out = append(out, p)
				}
			}
		}
	case board.PowerGravity:
		out = append(out, c)
	default:
		return nil
	}
	lc.mark(out)
	return out
}

// HasAnyMatch reports whether any run of at least MinRun exists on the board.
// It does not change cell states.
func (lc *LineChecker) HasAnyMatch() bool {
	for y := 0; y < lc.b.Height(); y++ {
		for x := 0; x < lc.b.Width(); x++ {
			c := board.C(x, y)
			if lc.b.Occupant(c) == nil {
				continue
			}
			if len(lc.run(c, board.DirLeft, board.DirRight)) >= MinRun ||
				len(lc.run(c, board.DirDown, board.DirUp)) >= MinRun {
				return true
			}
		}
	}
	return false
}

// run collects c plus every same-colored neighbor walking back, then forward.
func (lc *LineChecker) run(c board.Coord, back, fwd board.Dir) []board.Coord {
	t := lc.b.Occupant(c)
	if t == nil {
		return nil
	}
	out := []board.Coord{c}
	for _, d := range []board.Dir{back, fwd} {
		for p := c.Step(d); ; p = p.Step(d) {
			o := lc.b.Occupant(p)
			if o == nil || o.Color != t.Color {
				break
			}
			out = append(out, p)
		}
	}
	return out
}

func (lc *LineChecker) mark(cs []board.Coord) {
	for _, c := range cs {
		if cell := lc.b.Cell(c); cell != nil && !cell.Empty() {
			cell.State = board.CellCheck
		}
	}
}
