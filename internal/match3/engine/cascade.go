package engine

import "github.com/vovakirdan/tui-match3/internal/match3/board"

// collectMatches records every match on the board. Cells already claimed by
// a match in this pass are skipped, so repeated calls add nothing new.
func (e *Engine) collectMatches() {
	for _, cell := range e.board.Cells() {
		if cell.Empty() || cell.State == board.CellCheck {
			continue
		}
		cells := e.checker.Check(cell.Pos)
		if len(cells) < 3 {
			continue
		}
		e.matches.Add(cell.Pos, cells)
	}
}

// scan collects the board's matches and destroys them.
func (e *Engine) scan() error {
	e.collectMatches()
	return e.destroy()
}

// destroy clears every recorded match, queues power spawns for large
// matches, and schedules DestructionComplete.
func (e *Engine) destroy() error {
	if e.destroying {
		return ErrDestroyInFlight
	}
	if e.matches.Len() == 0 && e.pending.len() == 0 {
		e.logger.Debug("nothing to destroy")
		e.raise(BoardSettled{})
		return nil
	}

	cleared := 0
	for _, origin := range e.matches.Origins() {
		cells, _ := e.matches.Get(origin)
		if t := e.board.Occupant(origin); t != nil && len(cells) > 3 {
			if kind := e.cfg.Powers.Lookup(len(cells)); kind != board.PowerNone {
				e.spawns.add(PowerSpawn{Pos: origin, Kind: kind, Color: t.Color})
			}
		}
		for _, c := range cells {
			cell := e.board.Cell(c)
			if cell == nil {
				continue
			}
			t := cell.Clear()
			if t == nil {
				continue
			}
			cleared++
			if t.IsPower() {
				e.raise(PowerActivated{Kind: t.Power, Pos: c})
			}
		}
	}
	e.logger.Debug("destroyed", "origins", e.matches.Len(), "tiles", cleared)
	e.matches.Clear()

	e.destroying = true
	e.after(e.cfg.DestroySettle, func() error {
		return e.Dispatch(DestructionComplete{})
	})
	return nil
}

func (e *Engine) onPowerActivated(ev PowerActivated) {
	e.logger.Debug("power activated", "kind", ev.Kind, "pos", ev.Pos)
	e.pending.put(ev.Pos, ev.Kind)
}

// onDestructionComplete fires queued powers or moves on to refill.
func (e *Engine) onDestructionComplete() error {
	e.destroying = false
	if e.pending.len() == 0 {
		return e.refill()
	}

	for _, pos := range e.pending.keys {
		kind := e.pending.kinds[pos]
		if kind == board.PowerGravity {
			e.gravity = e.gravity.Flip()
			e.logger.Debug("gravity flipped", "gravity", e.gravity)
		}
		e.matches.Add(pos, e.checker.PowerEffect(kind, pos))
	}
	e.pending.reset()
	return e.destroy()
}
