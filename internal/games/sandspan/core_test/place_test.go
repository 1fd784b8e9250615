package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sandspan/internal/games/sandspan/core"
)

func TestStampShapeCentersOnAnchor(t *testing.T) {
	g := core.NewGrid(10, 20)

	ok := core.StampShape(g, core.C(0, 10), core.ShapeI, core.Red)

	require.True(t, ok)
	assert.Equal(t, 16, g.FilledCount())
	for row := 0; row < 2; row++ {
		for col := 0; col < g.Cols; col++ {
			want := col >= 6 && col <= 13
			assert.Equal(t, want, g.Get(core.C(row, col)).Filled, "cell (%d,%d)", row, col)
		}
	}
}

func TestStampShapeIsAtomic(t *testing.T) {
	testCases := []struct {
		name   string
		anchor core.Coord
		setup  func(g *core.Grid)
	}{
		{
			name:   "overlaps an occupied cell",
			anchor: core.C(2, 5),
			setup:  func(g *core.Grid) { g.SetColor(core.C(3, 5), core.Blue) },
		},
		{
			name:   "crosses the left edge",
			anchor: core.C(0, 1),
		},
		{
			name:   "crosses the right edge",
			anchor: core.C(0, 9),
		},
		{
			name:   "crosses the bottom edge",
			anchor: core.C(5, 5),
		},
		{
			name:   "anchor above the grid",
			anchor: core.C(-1, 5),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGrid(6, 10)
			if tc.setup != nil {
				tc.setup(g)
			}
			before := g.Clone()

			ok := core.StampShape(g, tc.anchor, core.ShapeO, core.Red)

			assert.False(t, ok)
			assert.True(t, g.Equal(before), "grid must be untouched")
		})
	}
}

func TestStampShapeMaskHolesStayEmpty(t *testing.T) {
	g := core.NewGrid(4, 6)

	require.True(t, core.StampShape(g, core.C(0, 3), core.ShapeT, core.Green))

	assert.Equal(t, "..11..\n..11..\n111111\n111111", ascii(g))
}

func TestStampShapeAllowsOverlapWithMaskHoles(t *testing.T) {
	g := core.NewGrid(4, 6)
	g.SetColor(core.C(0, 0), core.Blue)

	require.True(t, core.StampShape(g, core.C(0, 3), core.ShapeT, core.Green))

	assert.Equal(t, core.FilledCell(core.Blue), g.Get(core.C(0, 0)))
}

func TestDepositRadius(t *testing.T) {
	testCases := []struct {
		name   string
		center core.Coord
		radius int
		want   int
	}{
		{"radius zero", core.C(5, 5), 0, 1},
		{"radius one", core.C(5, 5), 1, 5},
		{"radius two", core.C(5, 5), 2, 13},
		{"clipped at corner", core.C(0, 0), 1, 3},
		{"center outside", core.C(-3, -3), 1, 0},
		{"negative radius", core.C(5, 5), -1, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGrid(11, 11)

			written := core.Deposit(g, tc.center, tc.radius, core.Yellow)

			assert.Equal(t, tc.want, written)
			assert.Equal(t, tc.want, g.FilledCount())
		})
	}
}

func TestDepositHugeRadiusFillsGrid(t *testing.T) {
	const huge = int(^uint(0) >> 1)

	for _, center := range []core.Coord{core.C(2, 3), core.C(-50, 70)} {
		g := core.NewGrid(4, 6)
		written := core.Deposit(g, center, huge, core.Red)

		assert.Equal(t, 24, written, "center %v", center)
		assert.Equal(t, 24, g.FilledCount(), "center %v", center)
	}
}

func TestDepositNeverOverwrites(t *testing.T) {
	g := core.NewGrid(5, 5)
	g.SetColor(core.C(2, 2), core.Red)

	written := core.Deposit(g, core.C(2, 2), 1, core.Blue)

	assert.Equal(t, 4, written)
	assert.Equal(t, core.FilledCell(core.Red), g.Get(core.C(2, 2)))
	assert.Equal(t, core.FilledCell(core.Blue), g.Get(core.C(1, 2)))
}

func TestSimPlacementUsesPixelCoordinates(t *testing.T) {
	s := newSim(t, 20, 10, fixedRand(0))

	assert.Equal(t, core.C(0, 10), s.CellAt(105, 0))
	assert.Equal(t, core.C(3, 0), s.CellAt(9, 39))
	assert.Equal(t, core.C(-1, -1), s.CellAt(-1, -1))

	require.True(t, s.PlaceTetromino(105, 0, core.ShapeI, core.Red))
	assert.True(t, s.Cell(0, 6).Filled)
	assert.True(t, s.Cell(1, 13).Filled)
	assert.False(t, s.Cell(0, 5).Filled)
	assert.False(t, s.Cell(0, 14).Filled)

	written := s.PlaceDeposit(55, 55, 0, core.Green)
	assert.Equal(t, 1, written)
	assert.Equal(t, core.FilledCell(core.Green), s.Cell(5, 5))
}

func TestPlaceRandomTetromino(t *testing.T) {
	s := newSim(t, 20, 10, fixedRand(2))

	shape, color, ok := s.PlaceRandomTetromino(core.C(0, 10))

	require.True(t, ok)
	assert.Equal(t, "T", shape.Name())
	assert.Equal(t, core.Blue, color)
	assert.Equal(t, 16, s.Grid().FilledCount())
}

func TestShapeByName(t *testing.T) {
	for _, want := range core.Tetrominoes() {
		got, ok := core.ShapeByName(want.Name())
		require.True(t, ok)
		assert.Equal(t, want.Name(), got.Name())
	}

	_, ok := core.ShapeByName("X")
	assert.False(t, ok)
	assert.Equal(t, "I", core.TetrominoAt(7).Name())
	assert.Equal(t, "Z", core.TetrominoAt(-1).Name())
}

func TestParseShapeErrors(t *testing.T) {
	testCases := []struct {
		name string
		rows []string
	}{
		{"no rows", nil},
		{"ragged", []string{"##", "#"}},
		{"bad character", []string{"#x"}},
		{"nothing filled", []string{"..", ".."}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.ParseShape(tc.name, tc.rows)
			assert.Error(t, err)
		})
	}
}
