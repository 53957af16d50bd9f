package match3

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/match3/board"
	"github.com/vovakirdan/tui-match3/internal/match3/engine"
)

// tileColors maps tile colors to the screen palette.
var tileColors = [board.ColorCount]core.Color{
	board.ColorRed:    core.ColorBrightRed,
	board.ColorGreen:  core.ColorBrightGreen,
	board.ColorBlue:   core.ColorBrightBlue,
	board.ColorYellow: core.ColorBrightYellow,
	board.ColorPurple: core.ColorBrightMagenta,
	board.ColorOrange: core.ColorOrange,
}

// tileGlyph returns the rune drawn for t.
func tileGlyph(t *board.Tile) rune {
	switch t.Power {
	case board.PowerLine:
		return '✚'
	case board.PowerBomb:
		return '✱'
	case board.PowerGravity:
		return '⇅'
	default:
		return '●'
	}
}

func tileColor(t *board.Tile) core.Color {
	if int(t.Color) < len(tileColors) {
		return tileColors[t.Color]
	}
	return core.ColorWhite
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)

	if g.paused {
		cx := g.view.originX + g.board.Width()*cellWidth/2
		cy := g.view.originY + g.board.Height()/2
		g.drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title and the engine status line.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, g.Title())

	state := "Ready"
	stateColor := core.ColorGreen
	if g.engine.State() == engine.StateWait {
		state = "Wait"
		stateColor = core.ColorYellow
	}
	arrow := "↓"
	if g.engine.Gravity() == board.GravityFlipped {
		arrow = "↑"
	}

	x := g.view.originX - 1
	dst.DrawTextColored(x, 1, state, stateColor)
	info := fmt.Sprintf("  Gravity %s  Moves %d  Powers %d", arrow, g.stats.Moves, g.stats.Powers)
	dst.DrawText(x+len(state), 1, info)
}

// renderBoard draws the frame, resting tiles, tiles in flight and the cursor.
func (g *Game) renderBoard(dst *core.Screen) {
	w, h := g.board.Width(), g.board.Height()
	frame := core.NewRect(g.view.originX-1, g.view.originY-1, w*cellWidth+2, h+2)
	frameColor := core.ColorGray
	if g.engine.Gravity() == board.GravityFlipped {
		frameColor = core.ColorCyan
	}
	dst.DrawBox(frame, frameColor)

	moving := make(map[uint64]bool)
	for _, t := range g.animator.Tweens() {
		if t.Motion.Tile != nil {
			moving[t.Motion.Tile.ID] = true
		}
	}

	for _, c := range g.board.Cells() {
		t := c.Occupant
		if t == nil || moving[t.ID] {
			continue
		}
		sx, sy := g.screenPos(float64(c.Pos.X), float64(c.Pos.Y))
		dst.SetColored(sx+1, sy, tileGlyph(t), tileColor(t))
	}

	inside := core.NewRect(g.view.originX, g.view.originY, w*cellWidth, h)
	for _, t := range g.animator.Tweens() {
		tile := t.Motion.Tile
		if tile == nil {
			continue
		}
		sx, sy := g.screenPos(t.Position())
		if !inside.Contains(sx+1, sy) {
			continue
		}
		dst.SetColored(sx+1, sy, tileGlyph(tile), tileColor(tile))
	}

	open, closed, c := '[', ']', core.ColorWhite
	if g.grabbed {
		open, closed, c = '<', '>', core.ColorBrightYellow
	}
	sx, sy := g.screenPos(float64(g.cursor.X), float64(g.cursor.Y))
	dst.SetColored(sx, sy, open, c)
	dst.SetColored(sx+2, sy, closed, c)
}

// renderFooter shows the last engine error below the board.
func (g *Game) renderFooter(dst *core.Screen) {
	if g.lastErr == nil {
		return
	}
	y := g.view.originY + g.board.Height() + 1
	dst.DrawTextColored(g.view.originX-1, y, g.lastErr.Error(), core.ColorRed)
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH}, core.ColorDefault)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}
