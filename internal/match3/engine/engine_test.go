package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/match3/board"
	"github.com/vovakirdan/tui-match3/internal/match3/clock"
	"github.com/vovakirdan/tui-match3/internal/match3/command"
	"github.com/vovakirdan/tui-match3/internal/match3/layout"
	"github.com/vovakirdan/tui-match3/internal/match3/match"
	"github.com/vovakirdan/tui-match3/internal/match3/spawn"
)

// Swapping (1,0) left completes a red column at x=0.
var verticalRows = []string{
	"BGY",
	"RBG",
	"RGB",
	"GRY",
}

func TestVerticalMatchClearsAndRefills(t *testing.T) {
	h := newHarness(t, buildLayout(t, verticalRows...),
		newSeqSpawner(board.ColorYellow, board.ColorRed, board.ColorPurple))

	h.swipe(board.C(1, 0), board.C(0, 0))
	assert.Equal(t, StateWait, h.e.State())
	assert.Equal(t, 2, h.count("cell-finished-move"))

	// the red column is gone before the settle delay elapses
	for y := 0; y < 3; y++ {
		assert.Nil(t, h.b.Occupant(board.C(0, y)), "(0,%d) should be cleared", y)
	}

	h.settle()

	assert.Equal(t, StateReady, h.e.State())
	assert.Equal(t, "PGY\nRBG\nYGB\nBGY", h.b.String())
	assert.False(t, match.NewLineChecker(h.b, 1).HasAnyMatch())
	assert.Equal(t, 1, h.count("swipe-accepted"))
	assert.Equal(t, 1, h.count("destruction-complete"))
	assert.Equal(t, 1, h.count("collapse"))
	assert.Equal(t, 0, h.count("swipe-rolled-back"))
	assert.Equal(t, "board-settled", h.names()[len(h.events)-1])
	assert.False(t, h.e.slot.Pending())

	for _, c := range h.b.Cells() {
		assert.Equal(t, board.CellIdle, c.State, "cell %v", c.Pos)
	}
}

func TestNoMatchRollsBack(t *testing.T) {
	h := newHarness(t, buildLayout(t, verticalRows...), newSeqSpawner())
	before := h.b.Layout()

	h.swipe(board.C(1, 3), board.C(2, 3))
	h.settle()

	assert.Equal(t, StateReady, h.e.State())
	assert.Equal(t, before, h.b.Layout())
	assert.Equal(t, 1, h.count("swipe-rolled-back"))
	assert.Equal(t, 2, h.count("cell-finished-move-back"))
	assert.Equal(t, 0, h.count("destruction-complete"))
	assert.False(t, h.e.slot.Pending())
	assert.Zero(t, h.e.matches.Len())
}

func TestFourMatchSpawnsLinePower(t *testing.T) {
	h := newHarness(t, buildLayout(t,
		"BYBP",
		"GBRB",
		"RRGR",
	), newSeqSpawner(board.ColorOrange, board.ColorPurple, board.ColorYellow))

	h.swipe(board.C(2, 1), board.C(2, 0))
	h.settle()

	require.Equal(t, StateReady, h.e.State())
	assert.Equal(t, "OPBY\nBYGP\nGBrB", h.b.String())

	p := h.b.Occupant(board.C(2, 0))
	require.NotNil(t, p)
	assert.Equal(t, board.PowerLine, p.Power)
	assert.Equal(t, board.ColorRed, p.Color)
	assert.Equal(t, 0, h.count("power-activated"))
}

func TestGravityPowerFlipsRefill(t *testing.T) {
	l, err := layout.Parse([]byte(`
rows:
  - "GrB"
  - "BYG"
  - "YGR"
powers:
  - {x: 1, y: 2, kind: gravity}
`))
	require.NoError(t, err)

	moves := &motionLog{}
	h := newHarnessWithMover(t, l, newSeqSpawner(board.ColorPurple), moves)
	moves.done = h.e.MotionDone

	h.swipe(board.C(1, 2), board.C(2, 2))
	h.settle()

	require.Equal(t, StateReady, h.e.State())
	assert.Equal(t, board.GravityFlipped, h.e.Gravity())
	assert.Equal(t, 1, h.count("power-activated"))
	assert.Equal(t, "GBG\nBYR\nYGP", h.b.String())

	falls := moves.kinds(command.MotionFall)
	require.Len(t, falls, 3)
	// tiles fall toward the top row and new ones enter from below row 0
	assert.Equal(t, board.C(2, 1), falls[0].From)
	assert.Equal(t, board.C(2, 2), falls[0].To)
	assert.Equal(t, board.C(2, 0), falls[1].From)
	assert.Equal(t, board.C(2, 1), falls[1].To)
	assert.Equal(t, board.C(2, -1), falls[2].From)
	assert.Equal(t, board.C(2, 0), falls[2].To)
}

func TestLinePowerClearsRowAndColumn(t *testing.T) {
	// Swapping the line power right lands it in the middle of the board.
	h := newHarness(t, buildLayout(t,
		"GBYB",
		"YrGY",
		"BGRG",
	), newSeqSpawner(board.ColorOrange, board.ColorPurple))

	h.swipe(board.C(1, 1), board.C(2, 1))
	assert.Equal(t, 1, h.count("power-activated"))
	h.settle()

	assert.Equal(t, StateReady, h.e.State())
	assert.Equal(t, board.GravityNormal, h.e.Gravity())
	assert.Empty(t, h.b.EmptyCoords())
	assert.False(t, match.NewLineChecker(h.b, 1).HasAnyMatch())
	// row 1 and column 2 were cleared: 4 + 3 - 1 tiles
	assert.Equal(t, 1, h.count("collapse"))
}

func TestUndoSymmetry(t *testing.T) {
	rollbacks := 0
	for seed := int64(1); seed <= 4; seed++ {
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				for _, dir := range []board.Dir{board.DirRight, board.DirUp} {
					from := board.C(x, y)
					to := from.Step(dir)
					if to.X >= 5 || to.Y >= 5 {
						continue
					}

					b := board.New(5, 5)
					sp := spawn.NewRandom(seed, 4)
					sp.Fill(b)
					before := b.Layout()

					clk := clock.NewManual()
					moves := &motionLog{}
					e := New(testConfig(), b, match.NewLineChecker(b, 1), sp, moves, clk)
					moves.done = e.MotionDone
					var names []string
					e.Subscribe(func(ev Event) { names = append(names, EventName(ev)) })

					require.NoError(t, e.Dispatch(PointerDown{Point: pt(from)}))
					require.NoError(t, e.Dispatch(PointerUp{Point: pt(to)}))
					require.True(t, clk.RunUntilIdle(10*time.Millisecond, 10000))

					rolled := contains(names, "swipe-rolled-back")
					committed := contains(names, "destruction-complete")
					require.NotEqual(t, rolled, committed, "seed %d swipe %v %v: exactly one of commit and rollback", seed, from, dir)
					require.Equal(t, StateReady, e.State())
					if rolled {
						rollbacks++
						assert.Equal(t, before, b.Layout(), "seed %d swipe %v %v", seed, from, dir)
					}
				}
			}
		}
	}
	assert.Positive(t, rollbacks)
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func TestRollbackWaitsForEveryMoveBack(t *testing.T) {
	moves := &motionLog{}
	h := newHarnessWithMover(t, buildLayout(t, verticalRows...), newSeqSpawner(), moves)
	before := h.b.Layout()

	h.swipe(board.C(1, 3), board.C(2, 3))
	swaps := moves.kinds(command.MotionSwap)
	require.Len(t, swaps, 2)
	for _, m := range swaps {
		h.e.MotionDone(m)
	}

	backs := moves.kinds(command.MotionSwapBack)
	require.Len(t, backs, 2)

	h.e.MotionDone(backs[0])
	assert.Equal(t, StateWait, h.e.State())
	assert.NotEqual(t, before, h.b.Layout(), "board is restored only after both move-backs")

	h.e.MotionDone(backs[1])
	assert.Equal(t, StateReady, h.e.State())
	assert.Equal(t, before, h.b.Layout())
}

func TestSecondSwipeWhilePendingIsRejected(t *testing.T) {
	moves := &motionLog{}
	h := newHarnessWithMover(t, buildLayout(t, verticalRows...), newSeqSpawner(), moves)

	h.swipe(board.C(1, 3), board.C(2, 3))
	require.Equal(t, StateWait, h.e.State())
	swapped := h.b.Layout()

	// pointer input is ignored while waiting
	h.swipe(board.C(0, 0), board.C(0, 1))
	assert.Equal(t, swapped, h.b.Layout())
	assert.Equal(t, 1, h.count("swipe-accepted"))

	err := h.e.acceptSwipe(board.C(0, 0), board.DirUp)
	require.ErrorIs(t, err, command.ErrSlotBusy)
	assert.Equal(t, swapped, h.b.Layout())
}

func TestInvalidSwipesAreIgnored(t *testing.T) {
	tests := []struct {
		name     string
		down, up Point
	}{
		{"below sensitivity", Point{1, 1}, Point{1.25, 1.5}},
		{"exactly sensitivity", Point{1, 1}, Point{1.5, 1}},
		{"press outside", Point{-0.6, 1}, Point{0.5, 1}},
		{"press past the edge", Point{3.1, 1}, Point{2, 1}},
		{"rounds outside", Point{2.6, 1}, Point{1.6, 1}},
		{"neighbor outside", Point{2, 1}, Point{3, 1}},
		{"empty origin", Point{1, 2}, Point{1, 1}},
		{"empty neighbor", Point{1, 1}, Point{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, buildLayout(t,
				"B.Y",
				"RBG",
				"RGB",
			), newSeqSpawner())
			before := h.b.Layout()

			require.NoError(t, h.e.Dispatch(PointerDown{Point: tt.down}))
			require.NoError(t, h.e.Dispatch(PointerUp{Point: tt.up}))

			assert.Equal(t, StateReady, h.e.State())
			assert.Equal(t, before, h.b.Layout())
			assert.Equal(t, []string{"pointer-down", "pointer-up"}, h.names())
		})
	}
}

func TestPointerUpWithoutPress(t *testing.T) {
	h := newHarness(t, buildLayout(t, verticalRows...), newSeqSpawner())
	require.NoError(t, h.e.Dispatch(PointerUp{Point: Point{1, 1}}))
	assert.Equal(t, StateReady, h.e.State())
	assert.Equal(t, 0, h.count("swipe-accepted"))
}

type unknownEvent struct{}

func (unknownEvent) engineEvent() {}

func TestUnknownAndSpuriousEventsAreDropped(t *testing.T) {
	h := newHarness(t, buildLayout(t, verticalRows...), newSeqSpawner())
	before := h.b.Layout()

	for _, ev := range []Event{
		unknownEvent{},
		CellFinishedMove{Cell: board.C(0, 0)},
		CellFinishedMoveBack{Cell: board.C(0, 0)},
		CellFell{Cell: board.C(0, 0)},
		CellFell{Cell: board.C(9, 9)},
		Collapse{},
	} {
		require.NoError(t, h.e.Dispatch(ev), EventName(ev))
	}

	assert.Equal(t, StateReady, h.e.State())
	assert.Equal(t, before, h.b.Layout())
	assert.Equal(t, board.CellIdle, h.b.Cell(board.C(0, 1)).State)
}

func TestScanIsIdempotent(t *testing.T) {
	h := newHarness(t, buildLayout(t,
		"GBY",
		"RRR",
		"BGB",
	), newSeqSpawner())

	h.e.collectMatches()
	require.Equal(t, 1, h.e.matches.Len())
	cells, ok := h.e.matches.Get(board.C(0, 1))
	require.True(t, ok)
	assert.Len(t, cells, 3)
	for _, c := range cells {
		assert.Equal(t, board.CellCheck, h.b.Cell(c).State)
	}

	h.e.collectMatches()
	assert.Equal(t, 1, h.e.matches.Len())
}

func TestDestroyInFlight(t *testing.T) {
	h := newHarness(t, buildLayout(t, verticalRows...), newSeqSpawner())
	h.e.matches.Add(board.C(0, 1), []board.Coord{board.C(0, 1), board.C(0, 2), board.C(0, 3)})

	require.NoError(t, h.e.destroy())
	h.e.matches.Add(board.C(1, 1), []board.Coord{board.C(1, 1)})
	require.ErrorIs(t, h.e.destroy(), ErrDestroyInFlight)
}

func TestEmptyDestroySettles(t *testing.T) {
	h := newHarness(t, buildLayout(t, verticalRows...), newSeqSpawner())
	require.NoError(t, h.e.run(h.e.destroy))
	assert.Equal(t, []string{"board-settled"}, h.names())
	assert.Zero(t, h.clk.Pending())
}

func TestPendingPowersOverwriteAtSamePosition(t *testing.T) {
	var p pendingPowers
	p.put(board.C(1, 1), board.PowerLine)
	p.put(board.C(0, 0), board.PowerBomb)
	p.put(board.C(1, 1), board.PowerGravity)

	require.Equal(t, 2, p.len())
	assert.Equal(t, []board.Coord{board.C(1, 1), board.C(0, 0)}, p.keys)
	assert.Equal(t, board.PowerGravity, p.kinds[board.C(1, 1)])
}

func TestSpawnQueueFirstWins(t *testing.T) {
	var q spawnQueue
	assert.True(t, q.add(PowerSpawn{Pos: board.C(1, 1), Kind: board.PowerLine}))
	assert.False(t, q.add(PowerSpawn{Pos: board.C(1, 1), Kind: board.PowerBomb}))
	require.Len(t, q.items, 1)
	assert.Equal(t, board.PowerLine, q.items[0].Kind)
}

func TestMatchSetOrder(t *testing.T) {
	s := NewMatchSet()
	assert.True(t, s.Add(board.C(2, 0), nil))
	assert.True(t, s.Add(board.C(0, 0), nil))
	assert.False(t, s.Add(board.C(2, 0), []board.Coord{board.C(9, 9)}))
	assert.Equal(t, []board.Coord{board.C(2, 0), board.C(0, 0)}, s.Origins())

	s.Clear()
	assert.Zero(t, s.Len())
}

func TestNewPanicsOnNilCollaborator(t *testing.T) {
	b := board.New(3, 3)
	lc := match.NewLineChecker(b, 1)
	sp := newSeqSpawner()
	mv := &motionLog{}
	clk := clock.NewManual()

	assert.Panics(t, func() { New(testConfig(), nil, lc, sp, mv, clk) })
	assert.Panics(t, func() { New(testConfig(), b, nil, sp, mv, clk) })
	assert.Panics(t, func() { New(testConfig(), b, lc, nil, mv, clk) })
	assert.Panics(t, func() { New(testConfig(), b, lc, sp, nil, clk) })
	assert.Panics(t, func() { New(testConfig(), b, lc, sp, mv, nil) })
	assert.NotPanics(t, func() { New(testConfig(), b, lc, sp, mv, clk) })
}
