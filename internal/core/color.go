package core

// Color is a style slot for a screen cell.
// The platform layer maps each slot to a terminal style; core stays free of
// any styling library.
type Color uint8

// Text colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightWhite
)

// Tile colors. These slots carry a background as well as a foreground.
const (
	ColorTileEmpty   Color = iota + 32 // Untyped slot
	ColorTileTyped                     // Letter typed but not submitted
	ColorTileExact                     // Right letter, right place
	ColorTilePresent                   // Right letter, wrong place
	ColorTileAbsent                    // Letter not in the word
)
