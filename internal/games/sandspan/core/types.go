// Package core provides the falling-sand simulation behind Sandspan.
// This package is UI-agnostic and deterministic for a given random source.
package core

// Dir represents one of the four orthogonal grid directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// Dirs4 lists the orthogonal directions in flood-fill order.
var Dirs4 = [4]Dir{DirUp, DirRight, DirDown, DirLeft}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (drow, dcol) offset for one step in this direction.
// Up decreases Row, Down increases Row (screen coordinates).
func (d Dir) Delta() (drow, dcol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirRight:
		return 0, 1
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	default:
		return 0, 0
	}
}

// Cell represents a single grid position.
type Cell struct {
	Filled bool  // Whether the cell holds sand
	Color  Color // Valid only when Filled is true
}

// Empty returns the background sentinel.
func Empty() Cell {
	return Cell{}
}

// FilledCell returns a cell holding sand of the given color.
func FilledCell(c Color) Cell {
	return Cell{Filled: true, Color: c}
}

// Matches reports whether the cell holds sand of exactly the target color.
// The empty sentinel never matches.
func (c Cell) Matches(target Color) bool {
	return c.Filled && c.Color == target
}

// Rand is the random source used for tie-breaks and random placements.
// *math/rand.Rand satisfies it; tests inject fixed sources.
type Rand interface {
	Intn(n int) int
}
