package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sandspan/internal/games/sandspan/core"
)

func TestNewGridIsEmpty(t *testing.T) {
	g := core.NewGrid(4, 3)

	assert.Equal(t, 4, g.Rows)
	assert.Equal(t, 3, g.Cols)
	assert.Len(t, g.Cells, 12)
	assert.True(t, g.IsCleared())
}

func TestGridInBounds(t *testing.T) {
	g := core.NewGrid(5, 4)

	testCases := []struct {
		coord    core.Coord
		expected bool
	}{
		{core.C(0, 0), true},
		{core.C(4, 3), true},
		{core.C(-1, 0), false},
		{core.C(0, -1), false},
		{core.C(5, 0), false},
		{core.C(0, 4), false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, g.InBounds(tc.coord), "InBounds(%v)", tc.coord)
	}
}

func TestGridSetGet(t *testing.T) {
	g := core.NewGrid(3, 3)

	g.SetColor(core.C(1, 2), core.Blue)
	assert.Equal(t, core.FilledCell(core.Blue), g.Get(core.C(1, 2)))
	assert.Equal(t, 1, g.FilledCount())

	g.SetEmpty(core.C(1, 2))
	assert.Equal(t, core.Empty(), g.Get(core.C(1, 2)))

	// Out of range writes are dropped and reads return the sentinel.
	g.SetColor(core.C(0, 3), core.Red)
	assert.Equal(t, 0, g.FilledCount())
	assert.Equal(t, core.Empty(), g.Get(core.C(-1, 0)))
}

func TestColorEqualityIsByValue(t *testing.T) {
	a := core.RGB(255, 0, 0)
	b := core.Color{R: 255}

	assert.True(t, a == b)
	assert.True(t, core.FilledCell(a).Matches(b))
	assert.False(t, core.Empty().Matches(core.Black), "empty sentinel never matches")
}

func TestGridResizeDiscardsContents(t *testing.T) {
	g := mustGrid(t,
		"0123",
		"4401",
	)

	g.Resize(40, 50)

	assert.Equal(t, 40, g.Cols)
	assert.Equal(t, 50, g.Rows)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			require.Equal(t, core.Empty(), g.Get(core.C(row, col)))
		}
	}
}

func TestGridClearInPlace(t *testing.T) {
	g := mustGrid(t,
		"01",
		"23",
	)
	cells := g.Cells

	g.Clear()

	assert.True(t, g.IsCleared())
	assert.Equal(t, 2, g.Rows)
	assert.Same(t, &cells[0], &g.Cells[0])
}

func TestGridCloneAndHash(t *testing.T) {
	g := mustGrid(t,
		"0.1",
		"..2",
	)
	clone := g.Clone()

	assert.True(t, g.Equal(clone))
	assert.Equal(t, g.Hash(), clone.Hash())

	clone.SetEmpty(core.C(0, 0))
	assert.False(t, g.Equal(clone))
	assert.NotEqual(t, g.Hash(), clone.Hash())
	assert.Equal(t, core.FilledCell(core.Red), g.Get(core.C(0, 0)), "clone must not alias")
}

func TestASCIIRoundTrip(t *testing.T) {
	rows := []string{
		"..0..",
		".123.",
		"44444",
	}
	g := mustGrid(t, rows...)

	assert.Equal(t, "..0..\n.123.\n44444", ascii(g))

	_, err := core.ParseASCII([]string{"0", "00"}, core.DefaultPalette())
	assert.Error(t, err)
	_, err = core.ParseASCII([]string{"9"}, core.DefaultPalette())
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	testCases := []struct {
		in    string
		want  core.Color
		valid bool
	}{
		{"red", core.Red, true},
		{"Magenta", core.Magenta, true},
		{"#00ff00", core.Green, true},
		{" #0A0B0C ", core.RGB(10, 11, 12), true},
		{"#12345", core.Color{}, false},
		{"chartreuse", core.Color{}, false},
	}

	for _, tc := range testCases {
		got, ok := core.ParseColor(tc.in)
		assert.Equal(t, tc.valid, ok, "ParseColor(%q)", tc.in)
		assert.Equal(t, tc.want, got, "ParseColor(%q)", tc.in)
	}
}

func TestPaletteWraps(t *testing.T) {
	p := core.DefaultPalette()

	assert.Equal(t, core.Red, p.At(5))
	assert.Equal(t, core.Magenta, p.At(-1))
	assert.Equal(t, 2, p.Index(core.Blue))
	assert.Equal(t, -1, p.Index(core.Cyan))
}
