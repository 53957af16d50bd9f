package board

import "strings"

// Gravity is the direction tiles fall during refill.
type Gravity uint8

const (
	GravityNormal  Gravity = iota // toward row 0, new tiles enter above row H-1
	GravityFlipped                // toward row H-1, new tiles enter below row 0
)

// String returns the configuration name of the gravity direction.
func (g Gravity) String() string {
	if g == GravityFlipped {
		return "flipped"
	}
	return "normal"
}

// Flip returns the opposite gravity.
func (g Gravity) Flip() Gravity {
	if g == GravityFlipped {
		return GravityNormal
	}
	return GravityFlipped
}

// ParseGravity converts a configuration name to a Gravity.
func ParseGravity(s string) (Gravity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal", "down", "":
		return GravityNormal, true
	case "flipped", "up":
		return GravityFlipped, true
	default:
		return GravityNormal, false
	}
}
