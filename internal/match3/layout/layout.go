// Package layout loads fixed board layouts from YAML. Layouts drive the
// headless simulator and the engine scenario tests.
//
// A layout lists rows top first, one character per cell:
//
//	name: corner
//	gravity: normal
//	rows:
//	  - "RGB."
//	  - "RgBR"
//	powers:
//	  - {x: 1, y: 0, kind: bomb}
//
// Uppercase letters are plain tiles, lowercase letters are power tiles and '.'
// is an empty slot. A power tile without an entry in powers is a line power.
package layout

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-match3/internal/match3/board"
)

// Power overrides the kind of a lowercase tile.
type Power struct {
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	Kind string `yaml:"kind"`
}

// Layout is a parsed board description.
type Layout struct {
	Name    string   `yaml:"name"`
	Gravity string   `yaml:"gravity"`
	Rows    []string `yaml:"rows"`
	Powers  []Power  `yaml:"powers"`
}

// Parse decodes and validates a YAML layout.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("layout: parse: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Load reads a layout file.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: read %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// FromRows builds a layout directly from rows, top row first.
func FromRows(rows ...string) (*Layout, error) {
	l := &Layout{Rows: rows}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Width returns the number of columns.
func (l *Layout) Width() int {
	if len(l.Rows) == 0 {
		return 0
	}
	return len([]rune(l.Rows[0]))
}

// Height returns the number of rows.
func (l *Layout) Height() int {
	return len(l.Rows)
}

// Validate checks the grid shape, the tile letters and the power entries.
func (l *Layout) Validate() error {
	if len(l.Rows) == 0 {
		return fmt.Errorf("layout: no rows")
	}
	w := l.Width()
	if w == 0 {
		return fmt.Errorf("layout: empty row")
	}
	for i, row := range l.Rows {
		rs := []rune(row)
		if len(rs) != w {
			return fmt.Errorf("layout: row %d has %d cells, want %d", i, len(rs), w)
		}
		for _, r := range rs {
			if r == '.' {
				continue
			}
			if _, ok := board.ParseColor(string(r)); !ok {
				return fmt.Errorf("layout: row %d: unknown tile %q", i, r)
			}
		}
	}
	if _, ok := board.ParseGravity(l.Gravity); !ok {
		return fmt.Errorf("layout: unknown gravity %q", l.Gravity)
	}
	for _, p := range l.Powers {
		if _, ok := board.ParsePowerKind(p.Kind); !ok {
			return fmt.Errorf("layout: power at (%d,%d): unknown kind %q", p.X, p.Y, p.Kind)
		}
		if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= l.Height() {
			return fmt.Errorf("layout: power at (%d,%d) is outside the board", p.X, p.Y)
		}
	}
	return nil
}

// GravityDir returns the parsed gravity. Validate must have succeeded.
func (l *Layout) GravityDir() board.Gravity {
	g, _ := board.ParseGravity(l.Gravity)
	return g
}

// Build creates a board holding the layout's tiles. nextID assigns tile IDs in
// board order, row 0 first.
func (l *Layout) Build(nextID func() uint64) *board.Board {
	w, h := l.Width(), l.Height()
	kinds := make(map[board.Coord]board.PowerKind, len(l.Powers))
	for _, p := range l.Powers {
		k, _ := board.ParsePowerKind(p.Kind)
		kinds[board.C(p.X, p.Y)] = k
	}

	b := board.New(w, h)
	for y := 0; y < h; y++ {
		// rows are listed top first
		row := []rune(l.Rows[h-1-y])
		for x, r := range row {
			if r == '.' {
				continue
			}
			color, _ := board.ParseColor(string(r))
			t := &board.Tile{ID: nextID(), Color: color}
			if unicode.IsLower(r) {
				t.Power = board.PowerLine
				if k, ok := kinds[board.C(x, y)]; ok && k != board.PowerNone {
					t.Power = k
				}
			}
			b.Set(board.C(x, y), t)
		}
	}
	return b
}

// String renders the layout rows the same way board.Board.String does.
func (l *Layout) String() string {
	return strings.Join(l.Rows, "\n")
}

// Counter returns an ID generator starting at 1.
func Counter() func() uint64 {
	var n uint64
	return func() uint64 {
		n++
		return n
	}
}
