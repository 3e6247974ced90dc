package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes in the platform layer.
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

// Dim maps a bright color to its normal-intensity counterpart. Colors
// without a bright variant are returned unchanged. Used to render entities
// that are still on screen but no longer demand attention.
func (c Color) Dim() Color {
	switch c {
	case ColorBrightRed:
		return ColorRed
	case ColorBrightGreen:
		return ColorGreen
	case ColorBrightYellow:
		return ColorYellow
	case ColorBrightBlue:
		return ColorBlue
	case ColorBrightMagenta:
		return ColorMagenta
	case ColorBrightCyan:
		return ColorCyan
	case ColorBrightWhite:
		return ColorWhite
	default:
		return c
	}
}
