package core

// Color is a screen cell's foreground color. The terminal host maps each value
// to an ANSI 256 code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Vivid reports whether c is one of the saturated colors used for tiles.
func (c Color) Vivid() bool {
	return c >= ColorBrightRed && c <= ColorOrange
}
