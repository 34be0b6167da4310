package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
	ColorDarkGray
	ColorPink
	ColorBrown
)

// grayRamp orders the gray-ish colors from darkest to brightest.
var grayRamp = [...]Color{ColorDarkGray, ColorGray, ColorWhite, ColorBrightWhite}

// GrayLevel maps a 0-255 brightness onto the terminal gray ramp.
func GrayLevel(brightness float64) Color {
	idx := int(ClampF(brightness, 0, 255) / 256 * float64(len(grayRamp)))
	return grayRamp[Clamp(idx, 0, len(grayRamp)-1)]
}
