package core

import (
	"fmt"
	"strings"
)

// GridASCII renders a grid one line per row: '.' for empty cells and the
// palette index digit for filled cells ('?' for colors outside the palette).
func GridASCII(g *Grid, palette Palette) string {
	var sb strings.Builder
	sb.Grow(g.Rows * (g.Cols + 1))
	for row := 0; row < g.Rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.Cols; col++ {
			sb.WriteByte(cellChar(g.Get(C(row, col)), palette))
		}
	}
	return sb.String()
}

// RenderASCII renders the simulation like GridASCII, drawing '*' for
// flashing cells on suppressed ticks.
//
// This is used for debugging, screenshots and golden test outputs.
func RenderASCII(s *Sim) string {
	var sb strings.Builder
	g := s.grid
	highlight := s.flash.HighlightTick()
	for row := 0; row < g.Rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.Cols; col++ {
			c := C(row, col)
			if !highlight && s.flash.Contains(c) {
				sb.WriteByte('*')
				continue
			}
			sb.WriteByte(cellChar(g.Get(c), s.cfg.Palette))
		}
	}
	return sb.String()
}

func cellChar(cell Cell, palette Palette) byte {
	if !cell.Filled {
		return '.'
	}
	idx := palette.Index(cell.Color)
	if idx < 0 || idx > 9 {
		return '?'
	}
	return byte('0' + idx)
}

// ParseASCII builds a grid from rows in the GridASCII format.
// All rows must have the same width.
func ParseASCII(rows []string, palette Palette) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("ascii grid: no rows")
	}
	cols := len(rows[0])
	g := NewGrid(len(rows), cols)
	for r, line := range rows {
		if len(line) != cols {
			return nil, fmt.Errorf("ascii grid: row %d has width %d, want %d", r, len(line), cols)
		}
		for c := 0; c < cols; c++ {
			ch := line[c]
			switch {
			case ch == '.' || ch == ' ':
				continue
			case ch >= '0' && ch <= '9':
				idx := int(ch - '0')
				if idx >= len(palette) {
					return nil, fmt.Errorf("ascii grid: palette index %d at (%d,%d) out of range", idx, r, c)
				}
				g.SetColor(C(r, c), palette[idx])
			default:
				return nil, fmt.Errorf("ascii grid: unexpected character %q at (%d,%d)", ch, r, c)
			}
		}
	}
	return g, nil
}
