package core

import "github.com/kamstrup/intmap"

// Region is a connected set of same-colored cells found by a flood fill.
// Cells are kept in discovery order; membership lookups go through an
// index keyed by flat cell position.
type Region struct {
	Color Color
	Cells []Coord

	cols  int
	index *intmap.Map[int, struct{}]
}

func newRegion(color Color, cols, capacity int) Region {
	return Region{
		Color: color,
		Cells: make([]Coord, 0, capacity),
		cols:  cols,
		index: intmap.New[int, struct{}](capacity),
	}
}

func (r *Region) add(c Coord) {
	r.Cells = append(r.Cells, c)
	r.index.Put(c.Row*r.cols+c.Col, struct{}{})
}

// Len returns the number of cells in the region.
func (r Region) Len() int {
	return len(r.Cells)
}

// IsEmpty returns true for the zero region.
func (r Region) IsEmpty() bool {
	return len(r.Cells) == 0
}

// Contains reports whether c belongs to the region.
func (r Region) Contains(c Coord) bool {
	if r.index == nil || c.Col < 0 || c.Col >= r.cols || c.Row < 0 {
		return false
	}
	_, ok := r.index.Get(c.Row*r.cols + c.Col)
	return ok
}

// TouchesCol reports whether any cell of the region lies in column col.
func (r Region) TouchesCol(col int) bool {
	for _, c := range r.Cells {
		if c.Col == col {
			return true
		}
	}
	return false
}
