package core

// StampShape writes shape onto the grid with the mask centered horizontally
// on anchor.Col and its top row at anchor.Row.
//
// Placement is all-or-nothing: if any filled offset would land out of
// bounds or on an occupied cell, nothing is written and false is returned.
func StampShape(g *Grid, anchor Coord, shape Shape, color Color) bool {
	origin := C(anchor.Row, anchor.Col-shape.Width()/2)
	offsets := shape.Offsets()
	if len(offsets) == 0 {
		return false
	}

	for _, off := range offsets {
		if !g.IsEmpty(origin.Add(off.Row, off.Col)) {
			return false
		}
	}

	for _, off := range offsets {
		g.SetColor(origin.Add(off.Row, off.Col), color)
	}
	return true
}

// Deposit fills every empty cell whose distance from center is at most
// radius cells. Occupied cells are left untouched; partial fills are normal.
// Returns the number of cells written.
func Deposit(g *Grid, center Coord, radius int, color Color) int {
	if radius < 0 {
		return 0
	}
	// No cell is farther than reach, so larger radii fill the same cells.
	reach := max(abs(center.Row), abs(center.Row-(g.Rows-1))) +
		max(abs(center.Col), abs(center.Col-(g.Cols-1)))
	radius = min(radius, reach)
	startRow := max(0, center.Row-radius)
	endRow := min(g.Rows-1, center.Row+radius)
	startCol := max(0, center.Col-radius)
	endCol := min(g.Cols-1, center.Col+radius)

	written := 0
	r2 := radius * radius
	for row := startRow; row <= endRow; row++ {
		for col := startCol; col <= endCol; col++ {
			dr := row - center.Row
			dc := col - center.Col
			if dr*dr+dc*dc > r2 {
				continue
			}
			c := C(row, col)
			if g.IsEmpty(c) {
				g.SetColor(c, color)
				written++
			}
		}
	}
	return written
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
