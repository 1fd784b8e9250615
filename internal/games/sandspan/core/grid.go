package core

import (
	"hash/fnv"
)

// Grid is the sand field: Rows × Cols cells stored in row-major order,
// index = row*Cols + col.
type Grid struct {
	Rows  int    // Number of rows
	Cols  int    // Number of columns
	Cells []Cell // Flat array of cells, length Rows*Cols
}

// NewGrid creates an all-empty grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]Cell, rows*cols),
	}
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Row*g.Cols + c.Col
}

// coordAt converts a flat array index back to a coordinate.
func (g *Grid) coordAt(i int) Coord {
	return C(i/g.Cols, i%g.Cols)
}

// InBounds returns true if the coordinate is inside [0,Rows) × [0,Cols).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Get returns the cell at the given coordinate.
// Out-of-bounds reads return the empty sentinel.
func (g *Grid) Get(c Coord) Cell {
	if !g.InBounds(c) {
		return Empty()
	}
	return g.Cells[g.index(c)]
}

// IsEmpty reports whether the in-bounds cell at c holds no sand.
// Out-of-bounds coordinates are never empty, so nothing moves there.
func (g *Grid) IsEmpty(c Coord) bool {
	return g.InBounds(c) && !g.Cells[g.index(c)].Filled
}

// Set writes the cell at the given coordinate.
// Out-of-bounds writes are ignored.
func (g *Grid) Set(c Coord, cell Cell) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = cell
	}
}

// SetColor fills the cell at c with sand of the given color.
func (g *Grid) SetColor(c Coord, color Color) {
	g.Set(c, FilledCell(color))
}

// SetEmpty clears the cell at c.
func (g *Grid) SetEmpty(c Coord) {
	g.Set(c, Empty())
}

// Resize replaces the grid contents with an all-empty grid of the new size.
// Prior contents are discarded.
func (g *Grid) Resize(cols, rows int) {
	fresh := NewGrid(rows, cols)
	g.Rows = fresh.Rows
	g.Cols = fresh.Cols
	g.Cells = fresh.Cells
}

// Clear resets every cell to empty in place.
func (g *Grid) Clear() {
	for i := range g.Cells {
		g.Cells[i] = Empty()
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		Rows:  g.Rows,
		Cols:  g.Cols,
		Cells: cells,
	}
}

// FilledCount returns the number of cells holding sand.
func (g *Grid) FilledCount() int {
	count := 0
	for _, cell := range g.Cells {
		if cell.Filled {
			count++
		}
	}
	return count
}

// IsCleared returns true if all cells are empty.
func (g *Grid) IsCleared() bool {
	return g.FilledCount() == 0
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.Rows != other.Rows || g.Cols != other.Cols {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}

// Hash returns an FNV-64a digest of the grid dimensions and contents.
func (g *Grid) Hash() uint64 {
	h := fnv.New64a()
	buf := []byte{
		byte(g.Rows >> 8), byte(g.Rows),
		byte(g.Cols >> 8), byte(g.Cols),
	}
	h.Write(buf)
	for _, cell := range g.Cells {
		if !cell.Filled {
			h.Write([]byte{0})
			continue
		}
		h.Write([]byte{1, cell.Color.R, cell.Color.G, cell.Color.B})
	}
	return h.Sum64()
}
