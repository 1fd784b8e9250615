package core

import (
	"fmt"
	"strings"
)

// Shape is an immutable rectangular stamp mask. Rows are text lines where
// '#' marks a filled offset and '.' an empty one.
type Shape struct {
	name string
	rows []string
}

// ParseShape validates a text mask and returns the Shape.
// All rows must be the same non-zero width and contain only '#' and '.'.
func ParseShape(name string, rows []string) (Shape, error) {
	if len(rows) == 0 {
		return Shape{}, fmt.Errorf("shape %q: no rows", name)
	}
	width := len(rows[0])
	if width == 0 {
		return Shape{}, fmt.Errorf("shape %q: empty row", name)
	}
	filled := 0
	for i, r := range rows {
		if len(r) != width {
			return Shape{}, fmt.Errorf("shape %q: row %d has width %d, want %d", name, i, len(r), width)
		}
		if strings.Trim(r, "#.") != "" {
			return Shape{}, fmt.Errorf("shape %q: row %d has characters other than '#' and '.'", name, i)
		}
		filled += strings.Count(r, "#")
	}
	if filled == 0 {
		return Shape{}, fmt.Errorf("shape %q: no filled cells", name)
	}
	cp := make([]string, len(rows))
	copy(cp, rows)
	return Shape{name: name, rows: cp}, nil
}

func mustShape(name string, rows ...string) Shape {
	s, err := ParseShape(name, rows)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the shape's label.
func (s Shape) Name() string { return s.name }

// Width returns the mask width in cells.
func (s Shape) Width() int {
	if len(s.rows) == 0 {
		return 0
	}
	return len(s.rows[0])
}

// Height returns the mask height in cells.
func (s Shape) Height() int { return len(s.rows) }

// Filled reports whether the offset (row, col) inside the mask is filled.
func (s Shape) Filled(row, col int) bool {
	if row < 0 || row >= len(s.rows) || col < 0 || col >= s.Width() {
		return false
	}
	return s.rows[row][col] == '#'
}

// Offsets returns the filled offsets in row-major order.
func (s Shape) Offsets() []Coord {
	var out []Coord
	for r, line := range s.rows {
		for c := 0; c < len(line); c++ {
			if line[c] == '#' {
				out = append(out, C(r, c))
			}
		}
	}
	return out
}

// The seven tetrominoes, each scaled 2x so one block covers 2x2 cells.
var (
	ShapeI = mustShape("I",
		"########",
		"########",
	)
	ShapeO = mustShape("O",
		"####",
		"####",
		"####",
		"####",
	)
	ShapeT = mustShape("T",
		"..##..",
		"..##..",
		"######",
		"######",
	)
	ShapeL = mustShape("L",
		"##..",
		"##..",
		"##..",
		"##..",
		"####",
		"####",
	)
	ShapeJ = mustShape("J",
		"..##",
		"..##",
		"..##",
		"..##",
		"####",
		"####",
	)
	ShapeS = mustShape("S",
		"..####",
		"..####",
		"####..",
		"####..",
	)
	ShapeZ = mustShape("Z",
		"####..",
		"####..",
		"..####",
		"..####",
	)
)

var tetrominoes = []Shape{ShapeI, ShapeO, ShapeT, ShapeL, ShapeJ, ShapeS, ShapeZ}

// Tetrominoes returns the built-in shapes in I, O, T, L, J, S, Z order.
func Tetrominoes() []Shape {
	out := make([]Shape, len(tetrominoes))
	copy(out, tetrominoes)
	return out
}

// TetrominoAt returns the built-in shape at index i (wrapping).
func TetrominoAt(i int) Shape {
	n := len(tetrominoes)
	return tetrominoes[((i%n)+n)%n]
}

// ShapeByName looks up a built-in shape by its letter.
func ShapeByName(name string) (Shape, bool) {
	for _, s := range tetrominoes {
		if strings.EqualFold(s.name, name) {
			return s, true
		}
	}
	return Shape{}, false
}
