// Package scenes provides staged starting layouts for Sandspan.
// This package depends on core but core does not depend on scenes.
package scenes

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/sandspan/internal/games/sandspan/core"
)

// ErrSceneNotFound is returned when no scene matches a requested ID.
var ErrSceneNotFound = errors.New("scenes: scene not found")

// Scene is a starting layout: a grid size, an optional palette, rows of
// pre-settled sand and shapes stamped on top.
type Scene struct {
	ID          string
	Name        string
	Description string
	Cols        int
	Rows        int
	Palette     core.Palette // nil means the session palette
	Layout      []string     // ASCII rows, aligned to the bottom of the grid
	Shapes      []Placement
	FilePath    string
}

// Placement is a shape stamped while building a scene.
type Placement struct {
	Shape  core.Shape
	Anchor core.Coord
	Color  core.Color
}

// ColorsNeeded returns the palette length the layout digits require.
func (sc *Scene) ColorsNeeded() int {
	n := 0
	for _, row := range sc.Layout {
		for _, ch := range row {
			if ch >= '0' && ch <= '9' && int(ch-'0')+1 > n {
				n = int(ch-'0') + 1
			}
		}
	}
	return n
}

// PaletteFor picks the palette a session playing this scene should use:
// the scene's own, else session when it covers every layout index, else
// the default palette scenes are validated against.
func (sc *Scene) PaletteFor(session core.Palette) core.Palette {
	if len(sc.Palette) > 0 {
		return sc.Palette
	}
	if len(session) >= sc.ColorsNeeded() {
		return session
	}
	return core.DefaultPalette()
}

// Grid builds the scene's starting grid. Layout digits index the palette
// chosen by PaletteFor.
func (sc *Scene) Grid(palette core.Palette) (*core.Grid, error) {
	g := core.NewGrid(sc.Rows, sc.Cols)

	if len(sc.Layout) > 0 {
		if len(sc.Layout) > sc.Rows {
			return nil, fmt.Errorf("scenes: %s: layout has %d rows, grid has %d", sc.ID, len(sc.Layout), sc.Rows)
		}
		layout, err := core.ParseASCII(sc.Layout, sc.PaletteFor(palette))
		if err != nil {
			return nil, fmt.Errorf("scenes: %s: %w", sc.ID, err)
		}
		if layout.Cols > sc.Cols {
			return nil, fmt.Errorf("scenes: %s: layout is %d wide, grid is %d", sc.ID, layout.Cols, sc.Cols)
		}
		offset := sc.Rows - layout.Rows
		for row := 0; row < layout.Rows; row++ {
			for col := 0; col < layout.Cols; col++ {
				g.Set(core.C(row+offset, col), layout.Get(core.C(row, col)))
			}
		}
	}

	for i, p := range sc.Shapes {
		if !core.StampShape(g, p.Anchor, p.Shape, p.Color) {
			return nil, fmt.Errorf("scenes: %s: shape %d (%s at %v) does not fit", sc.ID, i, p.Shape.Name(), p.Anchor)
		}
	}
	return g, nil
}

// Apply resizes the simulation to the scene and loads its grid.
func (sc *Scene) Apply(s *core.Sim) error {
	g, err := sc.Grid(s.Palette())
	if err != nil {
		return err
	}
	if err := s.Resize(sc.Cols, sc.Rows); err != nil {
		return fmt.Errorf("scenes: %s: %w", sc.ID, err)
	}
	if err := s.Load(g); err != nil {
		return fmt.Errorf("scenes: %s: %w", sc.ID, err)
	}
	return nil
}
