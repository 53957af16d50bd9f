package match3

import (
	"math"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/match3/board"
	"github.com/vovakirdan/tui-match3/internal/match3/engine"
)

const (
	cellWidth = 3 // screen columns per tile
	hudHeight = 2 // title and status lines above the board
)

// view places the board on screen. origin is the top-left tile character,
// which shows board row Height-1.
type view struct {
	originX int
	originY int
}

// layoutView centers the board and flags screens that cannot hold it.
func (g *Game) layoutView() {
	boardW := g.board.Width()*cellWidth + 2
	boardH := g.board.Height() + 2
	g.tooSmall = g.screenW < boardW || g.screenH < boardH+hudHeight+1

	left := core.Clamp((g.screenW-boardW)/2, 0, g.screenW)
	g.view = view{
		originX: left + 1,
		originY: hudHeight + 1,
	}
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.board != nil {
		g.layoutView()
	}
}

// screenPos returns the screen column and row of the tile at board (x, y).
func (g *Game) screenPos(x, y float64) (int, int) {
	sx := g.view.originX + int(math.Floor(x*cellWidth+0.5))
	sy := g.view.originY + int(math.Floor(float64(g.board.Height()-1)-y+0.5))
	return sx, sy
}

// boardPoint converts a screen cell to board units. Cell (x, y) spans
// [x-0.5, x+0.5) on both axes.
func (g *Game) boardPoint(sx, sy int) engine.Point {
	fx := (float64(sx-g.view.originX)+0.5)/cellWidth - 0.5
	fy := float64(g.board.Height()-1) - float64(sy-g.view.originY)
	return engine.Point{X: fx, Y: fy}
}

// handlePointer turns a mouse press and release into a drag. The press snaps
// to the tile under it so edge columns stay inside the board.
func (g *Game) handlePointer(p core.Pointer) {
	pt := g.boardPoint(p.X, p.Y)
	switch p.Kind {
	case core.PointerPress:
		c := board.C(int(math.Floor(pt.X+0.5)), int(math.Floor(pt.Y+0.5)))
		if g.board.InBounds(c) {
			pt = engine.Point{X: float64(c.X), Y: float64(c.Y)}
			g.cursor = c
		}
		g.pressed = true
		g.grabbed = false
		g.dispatch(engine.PointerDown{Point: pt})
	case core.PointerRelease:
		if !g.pressed {
			return
		}
		g.pressed = false
		g.dispatch(engine.PointerUp{Point: pt})
	}
}

// handleKeys moves the cursor, or swipes the grabbed tile.
func (g *Game) handleKeys(in core.InputFrame) {
	if in.Has(core.ActionBack) {
		g.grabbed = false
	}
	if in.Has(core.ActionConfirm) {
		g.grabbed = !g.grabbed
	}

	var dir board.Dir
	switch {
	case in.Has(core.ActionUp):
		dir = board.DirUp
	case in.Has(core.ActionDown):
		dir = board.DirDown
	case in.Has(core.ActionLeft):
		dir = board.DirLeft
	case in.Has(core.ActionRight):
		dir = board.DirRight
	default:
		return
	}

	if g.grabbed {
		g.grabbed = false
		g.swipeKey(dir)
		return
	}
	if next := g.cursor.Step(dir); g.board.InBounds(next) {
		g.cursor = next
	}
}

// swipeKey replays a keyboard swipe as a drag long enough to clear the
// configured sensitivity.
func (g *Game) swipeKey(dir board.Dir) {
	from := engine.Point{X: float64(g.cursor.X), Y: float64(g.cursor.Y)}
	reach := max(1, g.cfg.Swipe.Sensitivity+0.5)
	dx, dy := dir.Delta()
	to := engine.Point{X: from.X + float64(dx)*reach, Y: from.Y + float64(dy)*reach}

	g.dispatch(engine.PointerDown{Point: from})
	g.dispatch(engine.PointerUp{Point: to})

	if next := g.cursor.Step(dir); g.board.InBounds(next) {
		g.cursor = next
	}
}
