package core

// Color represents a foreground color for a screen cell.
// Values below ColorRGBFlag are ANSI palette entries; values with the flag set
// carry a 24-bit 0xRRGGBB color in the low bits.
type Color uint32

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

// ColorRGBFlag marks a Color as a true-color value.
const ColorRGBFlag Color = 1 << 24

// RGB builds a true-color value from 0xRRGGBB.
func RGB(hex uint32) Color {
	return ColorRGBFlag | Color(hex&0xFFFFFF)
}

// IsRGB reports whether the color carries a 24-bit value.
func (c Color) IsRGB() bool {
	return c&ColorRGBFlag != 0
}

// Hex returns the 0xRRGGBB value of a true color, or 0 for palette colors.
func (c Color) Hex() uint32 {
	if !c.IsRGB() {
		return 0
	}
	return uint32(c & 0xFFFFFF)
}
