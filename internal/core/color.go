package core

// Color is a screen cell's foreground. The TUI maps it to a terminal color.
type Color uint8

// Base colors, in ANSI order.
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

// Garden roles.
const (
	ColorWater = ColorBlue
	ColorSun   = ColorYellow
	ColorLeaf  = ColorGreen
	ColorMood  = ColorMagenta
	ColorSoil  = ColorOrange
	ColorPest  = ColorRed
	ColorMuted = ColorGray
)

// Dim returns the quieter variant of c: bright colors drop to their base
// color, everything else to gray.
func (c Color) Dim() Color {
	if c >= ColorBrightRed && c <= ColorBrightWhite {
		return c - (ColorBrightRed - ColorRed)
	}
	return ColorMuted
}
