package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to a terminal color via Hex.
type Color uint8

// Palette entries. The brick colors follow the wall rows from top to bottom.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorBrickRed
	ColorBrickOrange
	ColorBrickAmber
	ColorBrickOlive
	ColorBrickGreen
	ColorBrickBlue
	ColorTeal
	ColorYellow
	ColorCyan
)

var palette = [...]string{
	ColorDefault:     "",
	ColorWhite:       "#ffffff",
	ColorGray:        "#8e8e8e",
	ColorBrickRed:    "#c84848",
	ColorBrickOrange: "#c66c3a",
	ColorBrickAmber:  "#b47a30",
	ColorBrickOlive:  "#a2a22a",
	ColorBrickGreen:  "#48a048",
	ColorBrickBlue:   "#4248c8",
	ColorTeal:        "#429e82",
	ColorYellow:      "#e0c040",
	ColorCyan:        "#40c0e0",
}

// Hex returns the color as a "#rrggbb" string, or "" for ColorDefault.
func (c Color) Hex() string {
	if int(c) >= len(palette) {
		return ""
	}
	return palette[c]
}

// BrickRowColors lists the color of each wall row, top row first.
var BrickRowColors = [...]Color{
	ColorBrickRed,
	ColorBrickOrange,
	ColorBrickAmber,
	ColorBrickOlive,
	ColorBrickGreen,
	ColorBrickBlue,
}
