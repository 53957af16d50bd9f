// Package spawn creates tiles for the match-3 engine.
package spawn

import (
	"math/rand"

	"github.com/vovakirdan/tui-match3/internal/match3/board"
)

// Random spawns tiles of random colors from a seeded source.
type Random struct {
	rng    *rand.Rand
	colors int
	nextID uint64
}

// NewRandom creates a spawner drawing from the first colors colors. Values
// outside [2, ColorCount] are clamped.
func NewRandom(seed int64, colors int) *Random {
	if colors < 2 {
		colors = 2
	}
	if colors > int(board.ColorCount) {
		colors = int(board.ColorCount)
	}
	return &Random{
		rng:    rand.New(rand.NewSource(seed)),
		colors: colors,
	}
}

// Reset reseeds the generator. IDs keep increasing.
func (r *Random) Reset(seed int64) {
	r.rng = rand.New(rand.NewSource(seed))
}

// NextID returns a fresh tile ID. IDs start at 1 and never repeat.
func (r *Random) NextID() uint64 {
	r.nextID++
	return r.nextID
}

// SpawnTile creates a plain tile. The position is where the tile enters the
// board and may lie outside it.
func (r *Random) SpawnTile(_ board.Coord) *board.Tile {
	return &board.Tile{ID: r.NextID(), Color: r.color()}
}

// SpawnPower creates a power tile of the given kind and color.
func (r *Random) SpawnPower(kind board.PowerKind, color board.Color, _ board.Coord) *board.Tile {
	return &board.Tile{ID: r.NextID(), Color: color, Power: kind}
}

// Fill places tiles in every empty slot without creating runs of three.
func (r *Random) Fill(b *board.Board) {
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			c := board.C(x, y)
			if b.Occupant(c) != nil {
				continue
			}
			b.Set(c, &board.Tile{ID: r.NextID(), Color: r.safeColor(b, c)})
		}
	}
}

func (r *Random) color() board.Color {
	return board.Color(r.rng.Intn(r.colors))
}

// safeColor picks a color that does not complete a run with the two tiles to
// the left or the two tiles below c.
func (r *Random) safeColor(b *board.Board, c board.Coord) board.Color {
	banned := make(map[board.Color]bool, 2)
	for _, d := range []board.Dir{board.DirLeft, board.DirDown} {
		a := b.Occupant(c.Step(d))
		bb := b.Occupant(c.Step(d).Step(d))
		if a != nil && bb != nil && a.Color == bb.Color {
			banned[a.Color] = true
		}
	}

	start := r.rng.Intn(r.colors)
	for i := 0; i < r.colors; i++ {
		col := board.Color((start + i) % r.colors)
		if !banned[col] {
			return col
		}
	}
	return board.Color(start)
}
