package board

import "strings"

// Color is the match color of a tile.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorPurple
	ColorOrange
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorOrange:
		return "orange"
	default:
		return "unknown"
	}
}

// Char returns a single character representation of the color.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	case ColorPurple:
		return 'P'
	case ColorOrange:
		return 'O'
	default:
		return '?'
	}
}

// ParseColor converts a name or single letter to a Color.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "yellow", "y":
		return ColorYellow, true
	case "purple", "p":
		return ColorPurple, true
	case "orange", "o":
		return ColorOrange, true
	default:
		return ColorRed, false
	}
}

// PowerKind identifies the effect a power tile triggers when it is cleared.
type PowerKind uint8

const (
	PowerNone PowerKind = iota
	PowerLine           // clears the row and column of the tile
	PowerBomb           // clears a square around the tile
	PowerGravity        // flips gravity
)

// String returns the configuration name of the power kind.
func (k PowerKind) String() string {
	switch k {
	case PowerNone:
		return "none"
	case PowerLine:
		return "line"
	case PowerBomb:
		return "bomb"
	case PowerGravity:
		return "gravity"
	default:
		return "unknown"
	}
}

// ParsePowerKind converts a configuration name to a PowerKind.
func ParsePowerKind(s string) (PowerKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return PowerNone, true
	case "line":
		return PowerLine, true
	case "bomb":
		return PowerBomb, true
	case "gravity":
		return PowerGravity, true
	default:
		return PowerNone, false
	}
}

// Tile is the occupant of a cell. Its ID is stable for the tile's lifetime
// and is what moves between slots when tiles are swapped or fall.
type Tile struct {
	ID    uint64
	Color Color
	Power PowerKind
}

// IsPower reports whether the tile is a power item.
func (t *Tile) IsPower() bool {
	return t != nil && t.Power != PowerNone
}
