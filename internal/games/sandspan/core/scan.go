package core

import "github.com/kamstrup/intmap"

// ConnectedRegion returns every cell reachable from start through
// orthogonally adjacent cells whose color equals target.
//
// The search is a FIFO breadth-first flood fill with a visited set keyed by
// flat cell index. A start cell that does not match target yields an empty
// region; empty cells never match, so background is never traversed.
func ConnectedRegion(g *Grid, start Coord, target Color) Region {
	region := newRegion(target, g.Cols, 64)
	if !g.InBounds(start) || !g.Get(start).Matches(target) {
		return region
	}

	visited := intmap.New[int, struct{}](64)
	visited.Put(g.index(start), struct{}{})
	queue := []Coord{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		region.add(cur)

		for _, d := range Dirs4 {
			next := cur.Step(d)
			if !g.InBounds(next) {
				continue
			}
			idx := g.index(next)
			if _, seen := visited.Get(idx); seen {
				continue
			}
			if !g.Cells[idx].Matches(target) {
				continue
			}
			visited.Put(idx, struct{}{})
			queue = append(queue, next)
		}
	}

	return region
}

// FindSpan looks for a same-colored region that connects column 0 to the
// last column. Rows are tried top to bottom, seeding the flood fill at each
// filled column-0 cell; the first spanning region is returned.
func FindSpan(g *Grid) (Region, bool) {
	if g.Cols == 0 {
		return Region{}, false
	}
	lastCol := g.Cols - 1

	var explored []Region
	for row := 0; row < g.Rows; row++ {
		seed := C(row, 0)
		cell := g.Get(seed)
		if !cell.Filled {
			continue
		}
		if alreadyExplored(explored, seed) {
			continue
		}

		region := ConnectedRegion(g, seed, cell.Color)
		if region.TouchesCol(lastCol) {
			return region, true
		}
		explored = append(explored, region)
	}
	return Region{}, false
}

func alreadyExplored(regions []Region, c Coord) bool {
	for _, r := range regions {
		if r.Contains(c) {
			return true
		}
	}
	return false
}
