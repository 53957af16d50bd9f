package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/match3/board"
	"github.com/vovakirdan/tui-match3/internal/match3/command"
)

// refill places queued power tiles, compacts every column along the current
// gravity and schedules the spawn of new tiles.
func (e *Engine) refill() error {
	for _, ps := range e.spawns.items {
		if e.board.Occupant(ps.Pos) != nil {
			e.logger.Warn("power spawn blocked", "pos", ps.Pos, "kind", ps.Kind)
			continue
		}
		t := e.spawner.SpawnPower(ps.Kind, ps.Color, ps.Pos)
		e.board.Set(ps.Pos, t)
		e.logger.Debug("power spawned", "pos", ps.Pos, "kind", ps.Kind, "color", ps.Color)
	}
	e.spawns.reset()

	e.collapse = e.compact()
	e.raise(Collapse{})
	e.after(e.cfg.CollapseSettle, e.startSpawn)
	return nil
}

// fallPlan is one tile moving down its column during compaction.
type fallPlan struct {
	id       uint64
	from, to board.Coord
}

// compact moves every tile as far along the gravity direction as it can go
// and returns the falls as one macro.
func (e *Engine) compact() *command.Macro {
	w, h := e.board.Width(), e.board.Height()
	var plan []fallPlan

	column := func(x int) {
		if e.gravity == board.GravityFlipped {
			for y := h - 1; y >= 0; y-- {
				if e.board.Occupant(board.C(x, y)) != nil {
					continue
				}
				for k := y - 1; k >= 0; k-- {
					if p, ok := e.pull(board.C(x, k), board.C(x, y)); ok {
						plan = append(plan, p)
						break
					}
				}
			}
			return
		}
		for y := 0; y < h; y++ {
			if e.board.Occupant(board.C(x, y)) != nil {
				continue
			}
			for k := y + 1; k < h; k++ {
				if p, ok := e.pull(board.C(x, k), board.C(x, y)); ok {
					plan = append(plan, p)
					break
				}
			}
		}
	}

	if e.gravity == board.GravityFlipped {
		for x := w - 1; x >= 0; x-- {
			column(x)
		}
	} else {
		for x := 0; x < w; x++ {
			column(x)
		}
	}

	cmds := make([]command.Command, 0, len(plan))
	for _, p := range plan {
		cmds = append(cmds, command.NewFall(e.board.Cell(p.to), p.from, e.mover))
	}
	e.logger.Debug("compacted", "falls", len(plan), "gravity", e.gravity)
	return command.NewMacro(cmds...)
}

// pull moves the occupant of from into the empty slot to.
func (e *Engine) pull(from, to board.Coord) (fallPlan, bool) {
	t := e.board.Occupant(from)
	if t == nil {
		return fallPlan{}, false
	}
	e.board.Set(to, t)
	e.board.Set(from, nil)
	return fallPlan{id: t.ID, from: from, to: to}, true
}

func (e *Engine) onCollapse() error {
	m := e.collapse
	e.collapse = nil
	if m == nil {
		e.logger.Warn("collapse with no planned falls")
		return nil
	}
	if err := e.slot.Run(m); err != nil {
		return fmt.Errorf("engine: collapse: %w", err)
	}
	return nil
}

// spawnEdge returns the row new tiles enter from.
func (e *Engine) spawnEdge() int {
	if e.gravity == board.GravityFlipped {
		return -1
	}
	return e.board.Height()
}

// startSpawn groups the empty slots by row, starting from the row furthest
// from the spawn edge, and spawns the first row.
func (e *Engine) startSpawn() error {
	byRow := make(map[int][]board.Coord)
	for _, c := range e.board.EmptyCoords() {
		byRow[c.Y] = append(byRow[c.Y], c)
	}

	h := e.board.Height()
	e.spawnRows = e.spawnRows[:0]
	for i := 0; i < h; i++ {
		y := i
		if e.gravity == board.GravityFlipped {
			y = h - 1 - i
		}
		if row := byRow[y]; len(row) > 0 {
			e.spawnRows = append(e.spawnRows, row)
		}
	}

	if len(e.spawnRows) == 0 {
		return e.rescan()
	}
	return e.spawnNextRow()
}

// spawnNextRow fills one row and schedules the next. The last tile of the
// last row becomes the sentinel.
func (e *Engine) spawnNextRow() error {
	if len(e.spawnRows) == 0 {
		return nil
	}
	row := e.spawnRows[0]
	e.spawnRows = e.spawnRows[1:]

	edge := e.spawnEdge()
	cmds := make([]command.Command, 0, len(row))
	var t *board.Tile
	for _, c := range row {
		from := board.C(c.X, edge)
		t = e.spawner.SpawnTile(from)
		e.board.Set(c, t)
		cmds = append(cmds, command.NewFall(e.board.Cell(c), from, e.mover))
	}

	if len(e.spawnRows) == 0 {
		e.last = &sentinel{pos: row[len(row)-1], id: t.ID}
	} else {
		e.after(e.cfg.SpawnInterval, e.spawnNextRow)
	}

	if err := e.slot.Run(command.NewMacro(cmds...)); err != nil {
		return fmt.Errorf("engine: spawn row %d: %w", row[0].Y, err)
	}
	return nil
}

// onCellFell settles a fallen tile. The sentinel's landing starts the rescan.
func (e *Engine) onCellFell(ev CellFell) error {
	cell := e.board.Cell(ev.Cell)
	if cell == nil {
		e.logger.Warn("fall finished outside the board", "cell", ev.Cell)
		return nil
	}
	cell.State = board.CellWait

	if e.last == nil || e.last.pos != ev.Cell || cell.Occupant == nil || cell.Occupant.ID != e.last.id {
		return nil
	}
	e.last = nil
	return e.rescan()
}

// rescan starts another cascade pass if the board still has matches and
// settles it otherwise.
func (e *Engine) rescan() error {
	if e.checker.HasAnyMatch() {
		e.logger.Debug("rescan found matches")
		return e.scan()
	}
	e.raise(BoardSettled{})
	return nil
}
