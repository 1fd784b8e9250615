package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sandspan/internal/games/sandspan/core"
)

func TestConnectedRegionHorizontalLine(t *testing.T) {
	g := core.NewGrid(3, 10)
	for col := 0; col < g.Cols; col++ {
		g.SetColor(core.C(1, col), core.Green)
	}

	region := core.ConnectedRegion(g, core.C(1, 0), core.Green)

	assert.Equal(t, 10, region.Len())
	assert.True(t, region.Contains(core.C(1, 9)))
	assert.True(t, region.TouchesCol(g.Cols-1))
}

func TestConnectedRegionFollowsOrthogonalOnly(t *testing.T) {
	g := mustGrid(t,
		"00.",
		".0.",
		"..0",
	)

	region := core.ConnectedRegion(g, core.C(0, 0), core.Red)

	assert.Equal(t, 3, region.Len())
	assert.True(t, region.Contains(core.C(1, 1)))
	assert.False(t, region.Contains(core.C(2, 2)), "diagonal neighbors are not connected")
}

func TestConnectedRegionStopsAtOtherColors(t *testing.T) {
	g := mustGrid(t,
		"0010",
		"0000",
		"1111",
	)

	region := core.ConnectedRegion(g, core.C(0, 0), core.Red)

	assert.Equal(t, 7, region.Len())
	assert.True(t, region.Contains(core.C(0, 3)), "reachable around the green cell")
	assert.False(t, region.Contains(core.C(0, 2)))
	for _, c := range region.Cells {
		assert.Equal(t, core.FilledCell(core.Red), g.Get(c))
	}
}

func TestConnectedRegionBreadthFirstOrder(t *testing.T) {
	g := mustGrid(t, "0000")

	region := core.ConnectedRegion(g, core.C(0, 0), core.Red)

	require.Len(t, region.Cells, 4)
	for i, c := range region.Cells {
		assert.Equal(t, core.C(0, i), c)
	}
}

func TestConnectedRegionNonMatchingStart(t *testing.T) {
	g := mustGrid(t,
		".0",
		"00",
	)

	assert.True(t, core.ConnectedRegion(g, core.C(0, 0), core.Red).IsEmpty(), "empty start")
	assert.True(t, core.ConnectedRegion(g, core.C(0, 1), core.Blue).IsEmpty(), "wrong color")
	assert.True(t, core.ConnectedRegion(g, core.C(5, 5), core.Red).IsEmpty(), "out of bounds")
}

func TestFindSpan(t *testing.T) {
	testCases := []struct {
		name     string
		rows     []string
		spans    bool
		color    core.Color
		cellsLen int
	}{
		{
			name:  "empty grid",
			rows:  []string{"....", "...."},
			spans: false,
		},
		{
			name:  "gap in the line",
			rows:  []string{"....", "00.0"},
			spans: false,
		},
		{
			name:  "mixed colors",
			rows:  []string{"....", "0011"},
			spans: false,
		},
		{
			name:     "straight line",
			rows:     []string{"....", "2222"},
			spans:    true,
			color:    core.Blue,
			cellsLen: 4,
		},
		{
			name:     "winding path",
			rows:     []string{"3...", "33.3", ".333"},
			spans:    true,
			color:    core.Yellow,
			cellsLen: 7,
		},
		{
			name:     "right edge reached from a lower row",
			rows:     []string{"1...", "1..1", "1111"},
			spans:    true,
			color:    core.Green,
			cellsLen: 7,
		},
		{
			name:  "does not start at the left edge",
			rows:  []string{"....", ".000"},
			spans: false,
		},
		{
			name:     "single column grid",
			rows:     []string{".", "4"},
			spans:    true,
			color:    core.Magenta,
			cellsLen: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.rows...)

			region, ok := core.FindSpan(g)

			require.Equal(t, tc.spans, ok)
			if !tc.spans {
				return
			}
			assert.Equal(t, tc.color, region.Color)
			assert.Equal(t, tc.cellsLen, region.Len())
			assert.True(t, region.TouchesCol(0))
			assert.True(t, region.TouchesCol(g.Cols-1))
		})
	}
}

func TestFindSpanPicksTopmostSpanningRow(t *testing.T) {
	g := mustGrid(t,
		"....",
		"1111",
		"0000",
	)

	region, ok := core.FindSpan(g)

	require.True(t, ok)
	assert.Equal(t, core.Green, region.Color)
}
