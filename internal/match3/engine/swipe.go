package engine

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-match3/internal/match3/board"
	"github.com/vovakirdan/tui-match3/internal/match3/command"
)

func (e *Engine) onPointerDown(ev PointerDown) {
	p := ev.Point
	e.press = &p
}

func (e *Engine) onPointerUp(ev PointerUp) error {
	press := e.press
	e.press = nil
	if press == nil || e.state != StateReady {
		return nil
	}

	from, dir, ok := e.resolveSwipe(*press, ev.Point)
	if !ok {
		return nil
	}
	return e.acceptSwipe(from, dir)
}

// resolveSwipe turns a drag into an origin cell and a direction. Drags that
// start outside the board or do not exceed the sensitivity on either axis are
// rejected.
func (e *Engine) resolveSwipe(down, up Point) (board.Coord, board.Dir, bool) {
	w, h := float64(e.board.Width()), float64(e.board.Height())
	if down.X < 0 || down.X >= w || down.Y < 0 || down.Y >= h {
		return board.Coord{}, 0, false
	}

	dx, dy := up.X-down.X, up.Y-down.Y
	if math.Abs(dx) <= e.cfg.Sensitivity && math.Abs(dy) <= e.cfg.Sensitivity {
		return board.Coord{}, 0, false
	}

	origin := board.C(int(math.Round(down.X)), int(math.Round(down.Y)))
	if !e.board.InBounds(origin) {
		return board.Coord{}, 0, false
	}
	return origin, swipeDir(dx, dy), true
}

// swipeDir picks the dominant axis of a drag. Ties go horizontal.
func swipeDir(dx, dy float64) board.Dir {
	if math.Abs(dx) >= math.Abs(dy) {
		if dx > 0 {
			return board.DirRight
		}
		return board.DirLeft
	}
	if dy > 0 {
		return board.DirUp
	}
	return board.DirDown
}

// acceptSwipe swaps two occupied neighbors and starts a swipe cycle. Invalid
// swipes change nothing.
func (e *Engine) acceptSwipe(from board.Coord, dir board.Dir) error {
	to := from.Step(dir)
	fc, tc := e.board.Cell(from), e.board.Cell(to)
	if fc == nil || tc == nil || fc.Empty() || tc.Empty() {
		return nil
	}

	// The tile from `from` now sits at `to` having moved in dir, and the other
	// tile moved the opposite way.
	e.board.Swap(from, to)
	m := command.NewMacro(
		command.NewSwipe(dir, tc, e.mover),
		command.NewSwipe(dir.Opposite(), fc, e.mover),
	)
	if err := e.slot.Store(m); err != nil {
		e.board.Swap(from, to)
		return fmt.Errorf("engine: swipe %v %v: %w", from, dir, err)
	}

	e.cycle = uuid.New()
	e.swiped = [2]board.Coord{from, to}
	e.logger.Debug("swipe accepted", "cycle", e.cycle, "from", from, "to", to, "dir", dir)
	e.raise(SwipeAccepted{Cycle: e.cycle, From: from, To: to, Dir: dir})
	return nil
}

func (e *Engine) onSwipeAccepted(ev SwipeAccepted) error {
	e.confirm = true
	e.confirmed = 0
	e.matched = false
	if err := e.slot.Execute(); err != nil {
		return fmt.Errorf("engine: execute swipe %s: %w", ev.Cycle, err)
	}
	return nil
}
