package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal color.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorGray
	ColorDarkGray
	ColorLightGray
	ColorBrown
	ColorBlack
	ColorLightGreen
	ColorLightYellow
	ColorLightRed
)
