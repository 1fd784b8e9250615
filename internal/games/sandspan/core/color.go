package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB triple. Two colors are the same color exactly when all
// three channels are equal, so plain == comparison is the color identity.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Named reference colors.
var (
	Red     = RGB(255, 0, 0)
	Green   = RGB(0, 255, 0)
	Blue    = RGB(0, 0, 255)
	Yellow  = RGB(255, 255, 0)
	Magenta = RGB(255, 0, 255)
	Cyan    = RGB(0, 255, 255)
	Orange  = RGB(255, 165, 0)
	White   = RGB(255, 255, 255)
	Black   = RGB(0, 0, 0)
)

var colorNames = map[string]Color{
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"yellow":  Yellow,
	"magenta": Magenta,
	"purple":  Magenta,
	"cyan":    Cyan,
	"orange":  Orange,
	"white":   White,
	"black":   Black,
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the color name when known, the hex form otherwise.
func (c Color) String() string {
	for _, name := range []string{"red", "green", "blue", "yellow", "magenta", "cyan", "orange", "white", "black"} {
		if colorNames[name] == c {
			return name
		}
	}
	return c.Hex()
}

// ParseColor converts a color name or "#rrggbb" string to a Color.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colorNames[s]; ok {
		return c, true
	}
	if len(s) != 7 || s[0] != '#' {
		return Color{}, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, false
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), true
}

// Palette is the ordered set of colors sand may take.
type Palette []Color

// DefaultPalette returns the five reference colors.
func DefaultPalette() Palette {
	return Palette{Red, Green, Blue, Yellow, Magenta}
}

// Index returns the position of c in the palette, or -1.
func (p Palette) Index(c Color) int {
	for i, pc := range p {
		if pc == c {
			return i
		}
	}
	return -1
}

// At returns the palette color at i, wrapping around.
func (p Palette) At(i int) Color {
	n := len(p)
	return p[((i%n)+n)%n]
}

// Random picks a palette color using rng.
func (p Palette) Random(rng Rand) Color {
	return p[rng.Intn(len(p))]
}

// ParsePalette parses a list of color strings.
func ParsePalette(specs []string) (Palette, error) {
	p := make(Palette, 0, len(specs))
	for _, s := range specs {
		c, ok := ParseColor(s)
		if !ok {
			return nil, fmt.Errorf("invalid color %q", s)
		}
		p = append(p, c)
	}
	return p, nil
}
