package engine

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-match3/internal/match3/board"
	"github.com/vovakirdan/tui-match3/internal/match3/command"
)

// onCellFinishedMove counts a swapped tile in. Once both have reported, the
// swipe is committed if either side matched and rolled back otherwise.
func (e *Engine) onCellFinishedMove(ev CellFinishedMove) error {
	if !e.confirm {
		e.logger.Warn("move finished outside a swipe cycle", "cell", ev.Cell)
		return nil
	}
	cell := e.board.Cell(ev.Cell)
	if cell == nil {
		e.logger.Warn("move finished outside the board", "cell", ev.Cell)
		return nil
	}

	e.confirmed++
	cell.State = board.CellWait

	cells := e.checker.Check(ev.Cell)
	power := cell.Occupant.IsPower()
	if len(cells) > 2 || power {
		if power && !slices.Contains(cells, ev.Cell) {
			cells = append(cells, ev.Cell)
		}
		e.matches.Add(ev.Cell, cells)
		e.matched = true
	}

	if e.confirmed < 2 {
		return nil
	}

	matched := e.matched
	e.confirm = false
	e.confirmed = 0
	e.matched = false

	if matched {
		e.logger.Debug("swipe committed", "cycle", e.cycle, "matches", e.matches.Len())
		if err := e.slot.Resolve(); err != nil {
			return fmt.Errorf("engine: commit %s: %w", e.cycle, err)
		}
		return e.destroy()
	}

	e.logger.Debug("swipe rolling back", "cycle", e.cycle)
	e.matches.Clear()
	m := e.slot.Current()
	if m == nil {
		return fmt.Errorf("engine: roll back %s: %w", e.cycle, command.ErrNoMacro)
	}
	e.rollback = m.Len()
	return e.slot.Undo()
}

// onCellFinishedMoveBack waits for every rolled-back tile, then restores the
// board and ends the cycle.
func (e *Engine) onCellFinishedMoveBack(ev CellFinishedMoveBack) error {
	if e.rollback == 0 {
		e.logger.Warn("move-back finished with no rollback in progress", "cell", ev.Cell)
		return nil
	}
	if cell := e.board.Cell(ev.Cell); cell != nil {
		cell.State = board.CellWait
	}

	e.rollback--
	if e.rollback > 0 {
		return nil
	}

	e.board.Swap(e.swiped[0], e.swiped[1])
	if err := e.slot.Resolve(); err != nil {
		return fmt.Errorf("engine: resolve rollback %s: %w", e.cycle, err)
	}
	e.raise(SwipeRolledBack{Cycle: e.cycle})
	return nil
}
