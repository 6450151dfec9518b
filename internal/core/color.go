package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI color.
type Color uint8

// Palette used by the breakout renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorGreen
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightGreen
)
