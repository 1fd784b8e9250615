package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sandspan/internal/games/sandspan/core"
)

func TestSettleFallsStraightDown(t *testing.T) {
	g := mustGrid(t,
		".0.",
		"...",
		"...",
	)

	moved := core.Settle(g, fixedRand(0))

	assert.Equal(t, 1, moved)
	assert.Equal(t, "...\n.0.\n...", ascii(g))
}

func TestSettleSingleDirectionMove(t *testing.T) {
	testCases := []struct {
		name   string
		choice int
		want   string
	}{
		{"tie-break left", 0, "...\n22."},
		{"tie-break right", 1, "...\n.22"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t,
				".2.",
				".2.",
			)

			moved := core.Settle(g, fixedRand(tc.choice))

			assert.Equal(t, 1, moved)
			assert.Equal(t, tc.want, ascii(g))
		})
	}
}

func TestSettleBothDiagonalsExactlyOneReceives(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g := mustGrid(t,
			".1.",
			".1.",
		)
		core.Settle(g, seeded(seed))

		left := g.Get(core.C(1, 0)).Filled
		right := g.Get(core.C(1, 2)).Filled
		require.True(t, left != right, "seed %d: exactly one diagonal must receive the grain", seed)
		require.False(t, g.Get(core.C(0, 1)).Filled)
		require.Equal(t, 2, g.FilledCount())
	}
}

func TestSettleTieBreakOnlyWhenBothFree(t *testing.T) {
	rng := &countingRand{}
	g := mustGrid(t,
		"0.",
		"0.",
	)

	core.Settle(g, rng)

	assert.Equal(t, 0, rng.calls, "only one diagonal was free")
	assert.Equal(t, "..\n00", ascii(g))
}

func TestSettleRightmostColumnNeverSlidesRight(t *testing.T) {
	// A grain in the last column resting on sand may only slide left, even
	// when the random source always prefers right.
	g := mustGrid(t,
		"..3",
		"..3",
	)

	moved := core.Settle(g, fixedRand(1))

	assert.Equal(t, 1, moved)
	assert.Equal(t, "...\n.33", ascii(g))
}

func TestSettleBoundsSafety(t *testing.T) {
	testCases := []struct {
		name string
		rows []string
	}{
		{"single column", []string{"0", "1", ".", "2", "."}},
		{"single row", []string{"0.1.2"}},
		{"single cell", []string{"4"}},
		{"full grid", []string{"01", "23"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.rows...)
			before := g.FilledCount()

			require.NotPanics(t, func() {
				for i := 0; i < 10; i++ {
					core.Settle(g, seeded(int64(i)))
				}
			})
			assert.Equal(t, before, g.FilledCount())
		})
	}
}

func TestSettleSingleRowNeverMoves(t *testing.T) {
	g := mustGrid(t, "0.1.2")
	before := g.Clone()

	assert.Equal(t, 0, core.Settle(g, fixedRand(0)))
	assert.True(t, g.Equal(before))
}

func TestSettleConservation(t *testing.T) {
	rng := seeded(7)
	g := core.NewGrid(30, 20)
	palette := core.DefaultPalette()
	for i := range g.Cells {
		if rng.Intn(3) == 0 {
			g.Cells[i] = core.FilledCell(palette.Random(rng))
		}
	}
	want := g.FilledCount()

	for step := 0; step < 60; step++ {
		core.Settle(g, rng)
		require.Equal(t, want, g.FilledCount(), "step %d", step)
	}
}

func TestSettleEventuallyStops(t *testing.T) {
	g := core.NewGrid(12, 9)
	core.Deposit(g, core.C(2, 4), 2, core.Yellow)

	rng := seeded(3)
	steps := 0
	for core.Settle(g, rng) > 0 {
		steps++
		require.Less(t, steps, 200, "pile should come to rest")
	}

	// Nothing left hanging over an empty cell.
	for row := 0; row < g.Rows-1; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.Get(core.C(row, col)).Filled {
				assert.True(t, g.Get(core.C(row+1, col)).Filled, "grain at (%d,%d) is floating", row, col)
			}
		}
	}
}
