package match3

import "github.com/vovakirdan/tui-match3/internal/match3/board"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Variant   string
	State     string // engine state: "ready" or "wait"
	Gravity   string
	Board     string // rows top first, as rendered by board.String
	Cursor    board.Coord
	Grabbed   bool
	Animating int // tweens in flight
	Timers    int // scheduled engine callbacks
	Stats     Stats
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Variant:   string(g.variant),
		State:     g.engine.State().String(),
		Gravity:   g.engine.Gravity().String(),
		Board:     g.board.String(),
		Cursor:    g.cursor,
		Grabbed:   g.grabbed,
		Animating: len(g.animator.Tweens()),
		Timers:    g.clock.Pending(),
		Stats:     g.stats,
	}
}
