package core

import "fmt"

// Color is a screen cell foreground color: empty for the terminal default,
// otherwise a "#rrggbb" true-color string.
type Color string

// Interface colors used outside the sand itself.
const (
	ColorDefault Color = ""
	ColorWhite   Color = "#ffffff"
	ColorGray    Color = "#8a8a8a"
	ColorDim     Color = "#3a3a3a"
	ColorAccent  Color = "#ff9800"
)

// RGB builds a true-color Color from channel values.
func RGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
