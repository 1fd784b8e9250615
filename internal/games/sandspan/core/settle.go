package core

import "errors"

// ErrDiagonalConflict is the panic value raised if a single grain ever ends
// up selected to slide both down-left and down-right in the same step.
var ErrDiagonalConflict = errors.New("core: grain selected for both diagonal moves")

// Settle advances gravity by one step and returns how many grains moved.
//
// Rows are processed from Rows-2 up to 0 and each row left to right, so the
// row below is already updated when a grain considers moving into it.
// For every grain:
//  1. If the cell directly below is empty, fall straight down.
//  2. Otherwise check down-left (col > 0) and down-right (col < Cols-1).
//  3. If both are free, pick exactly one with probability 1/2 each.
//  4. If nothing is free, the grain stays.
func Settle(g *Grid, rng Rand) int {
	moved := 0
	for row := g.Rows - 2; row >= 0; row-- {
		for col := 0; col < g.Cols; col++ {
			from := C(row, col)
			cell := g.Cells[g.index(from)]
			if !cell.Filled {
				continue
			}

			below := from.Below()
			if g.IsEmpty(below) {
				moveGrain(g, from, below, cell)
				moved++
				continue
			}

			downLeft := from.Add(1, -1)
			downRight := from.Add(1, 1)
			canLeft := col > 0 && g.IsEmpty(downLeft)
			canRight := col < g.Cols-1 && g.IsEmpty(downRight)

			if canLeft && canRight {
				if rng.Intn(2) == 0 {
					canRight = false
				} else {
					canLeft = false
				}
			}
			if canLeft && canRight {
				panic(ErrDiagonalConflict)
			}

			switch {
			case canLeft:
				moveGrain(g, from, downLeft, cell)
				moved++
			case canRight:
				moveGrain(g, from, downRight, cell)
				moved++
			}
		}
	}
	return moved
}

func moveGrain(g *Grid, from, to Coord, cell Cell) {
	g.Cells[g.index(to)] = cell
	g.Cells[g.index(from)] = Empty()
}
