package spawn

import (
	"testing"

	"github.com/vovakirdan/tui-match3/internal/match3/board"
	"github.com/vovakirdan/tui-match3/internal/match3/match"
)

func TestFillHasNoMatches(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		b := board.New(8, 8)
		NewRandom(seed, 4).Fill(b)

		if len(b.EmptyCoords()) != 0 {
			t.Fatalf("seed %d: board has empty slots", seed)
		}
		if match.NewLineChecker(b, 1).HasAnyMatch() {
			t.Errorf("seed %d: filled board has a match:\n%s", seed, b)
		}
	}
}

func TestSameSeedSameBoard(t *testing.T) {
	a, b := board.New(6, 6), board.New(6, 6)
	NewRandom(42, 5).Fill(a)
	NewRandom(42, 5).Fill(b)

	if a.String() != b.String() {
		t.Errorf("boards differ:\n%s\n\n%s", a, b)
	}
}

func TestIDsAreUnique(t *testing.T) {
	r := NewRandom(7, 3)
	seen := map[uint64]bool{}
	for i := 0; i < 100; i++ {
		tile := r.SpawnTile(board.C(0, 8))
		if seen[tile.ID] {
			t.Fatalf("duplicate ID %d", tile.ID)
		}
		seen[tile.ID] = true
		if tile.Color >= 3 {
			t.Errorf("color %v outside the first 3", tile.Color)
		}
	}
}

func TestSpawnPower(t *testing.T) {
	r := NewRandom(1, 6)
	p := r.SpawnPower(board.PowerBomb, board.ColorPurple, board.C(2, 2))
	if p.Power != board.PowerBomb || p.Color != board.ColorPurple {
		t.Errorf("SpawnPower() = %+v, want purple bomb", p)
	}
	if !p.IsPower() {
		t.Error("IsPower() = false")
	}
}

func TestColorClamp(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 2},
		{1, 2},
		{4, 4},
		{99, int(board.ColorCount)},
	}
	for _, tt := range tests {
		if got := NewRandom(1, tt.in).colors; got != tt.want {
			t.Errorf("NewRandom(_, %d).colors = %d, want %d", tt.in, got, tt.want)
		}
	}
}
