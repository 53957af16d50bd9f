package board

// CellState is the movement state of a cell.
type CellState uint8

const (
	CellIdle   CellState = iota
	CellMoving           // occupant is animating toward Target
	CellWait             // occupant settled after a move or fall
	CellCheck            // claimed by a match during the current cascade pass
)

// String returns a human-readable name for the state.
func (s CellState) String() string {
	switch s {
	case CellIdle:
		return "idle"
	case CellMoving:
		return "moving"
	case CellWait:
		return "wait"
	case CellCheck:
		return "check"
	default:
		return "unknown"
	}
}

// Cell is one fixed slot of the board. Pos never changes; the occupant does.
type Cell struct {
	Pos      Coord
	Occupant *Tile
	State    CellState
	Target   Coord
}

// Empty reports whether the cell has no occupant.
func (c *Cell) Empty() bool {
	return c.Occupant == nil
}

// Clear removes the occupant and returns it. Clearing an empty cell is a no-op
// that returns nil.
func (c *Cell) Clear() *Tile {
	t := c.Occupant
	c.Occupant = nil
	c.State = CellIdle
	return t
}
