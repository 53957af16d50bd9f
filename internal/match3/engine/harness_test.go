package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/match3/anim"
	"github.com/vovakirdan/tui-match3/internal/match3/board"
	"github.com/vovakirdan/tui-match3/internal/match3/clock"
	"github.com/vovakirdan/tui-match3/internal/match3/command"
	"github.com/vovakirdan/tui-match3/internal/match3/layout"
	"github.com/vovakirdan/tui-match3/internal/match3/match"
)

// seqSpawner hands out colors from a fixed list, cycling when it runs out.
type seqSpawner struct {
	colors []board.Color
	next   int
	id     uint64
}

func newSeqSpawner(colors ...board.Color) *seqSpawner {
	return &seqSpawner{colors: colors, id: 1000}
}

func (s *seqSpawner) SpawnTile(_ board.Coord) *board.Tile {
	c := board.ColorOrange
	if len(s.colors) > 0 {
		c = s.colors[s.next%len(s.colors)]
		s.next++
	}
	s.id++
	return &board.Tile{ID: s.id, Color: c}
}

func (s *seqSpawner) SpawnPower(kind board.PowerKind, color board.Color, _ board.Coord) *board.Tile {
	s.id++
	return &board.Tile{ID: s.id, Color: color, Power: kind}
}

// motionLog records every motion and optionally completes it at once.
type motionLog struct {
	motions []command.Motion
	done    func(command.Motion)
}

func (l *motionLog) Move(m command.Motion) {
	l.motions = append(l.motions, m)
	if l.done != nil {
		l.done(m)
	}
}

func (l *motionLog) kinds(k command.MotionKind) []command.Motion {
	var out []command.Motion
	for _, m := range l.motions {
		if m.Kind == k {
			out = append(out, m)
		}
	}
	return out
}

type harness struct {
	t      *testing.T
	e      *Engine
	b      *board.Board
	clk    *clock.Manual
	events []Event
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Sensitivity = 0.5
	cfg.DestroySettle = 100 * time.Millisecond
	cfg.CollapseSettle = 100 * time.Millisecond
	cfg.SpawnInterval = 50 * time.Millisecond
	return cfg
}

func buildLayout(t *testing.T, rows ...string) *layout.Layout {
	t.Helper()
	l, err := layout.FromRows(rows...)
	require.NoError(t, err)
	return l
}

// newHarness wires an engine whose motions complete instantly.
func newHarness(t *testing.T, l *layout.Layout, sp Spawner) *harness {
	t.Helper()
	mover := &anim.Instant{}
	h := newHarnessWithMover(t, l, sp, mover)
	mover.OnDone = h.e.MotionDone
	return h
}

func newHarnessWithMover(t *testing.T, l *layout.Layout, sp Spawner, mover command.Mover) *harness {
	t.Helper()
	b := l.Build(layout.Counter())
	clk := clock.NewManual()
	cfg := testConfig()
	cfg.Gravity = l.GravityDir()

	h := &harness{t: t, b: b, clk: clk}
	h.e = New(cfg, b, match.NewLineChecker(b, 1), sp, mover, clk)
	h.e.Subscribe(func(ev Event) { h.events = append(h.events, ev) })
	return h
}

func pt(c board.Coord) Point {
	return Point{X: float64(c.X), Y: float64(c.Y)}
}

// swipe drags from the center of one cell to the center of another.
func (h *harness) swipe(from, to board.Coord) {
	h.t.Helper()
	require.NoError(h.t, h.e.Dispatch(PointerDown{Point: pt(from)}))
	require.NoError(h.t, h.e.Dispatch(PointerUp{Point: pt(to)}))
}

// settle runs the scheduler until no timers remain.
func (h *harness) settle() {
	h.t.Helper()
	require.True(h.t, h.clk.RunUntilIdle(10*time.Millisecond, 10000), "scheduler never went idle")
}

func (h *harness) count(name string) int {
	n := 0
	for _, ev := range h.events {
		if EventName(ev) == name {
			n++
		}
	}
	return n
}

func (h *harness) names() []string {
	out := make([]string, len(h.events))
	for i, ev := range h.events {
		out[i] = EventName(ev)
	}
	return out
}
