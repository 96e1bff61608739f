package core

import "strings"

// Color is a foreground color for a screen cell.
// The platform maps each value to an ANSI color.
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
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// colorNames are the names accepted in game config files.
var colorNames = map[string]Color{
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
	"orange":  ColorOrange,
	"gray":    ColorGray,
	"grey":    ColorGray,
}

// ParseColor maps a config color name to a Color. Unknown names are uncolored.
func ParseColor(name string) Color {
	return colorNames[strings.ToLower(strings.TrimSpace(name))]
}

// String returns the config name of c, or "default" for colors without one.
func (c Color) String() string {
	if c == ColorGray {
		return "gray"
	}
	for name, v := range colorNames {
		if v == c {
			return name
		}
	}
	return "default"
}
