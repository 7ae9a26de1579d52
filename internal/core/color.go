package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI color.
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
)

// palette orders the bright colors for engines that color by small integer ids.
var palette = []Color{
	ColorBrightCyan,
	ColorBrightYellow,
	ColorBrightMagenta,
	ColorBrightGreen,
	ColorBrightRed,
	ColorBrightBlue,
	ColorOrange,
}

// PaletteColor returns a stable color for a 1-based id. Zero maps to the default color.
func PaletteColor(id int) Color {
	if id <= 0 {
		return ColorDefault
	}
	return palette[(id-1)%len(palette)]
}
