package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sandspan/internal/games/sandspan/core"
)

// fixedRand always returns the same choice (clamped to n).
type fixedRand int

func (f fixedRand) Intn(n int) int {
	v := int(f)
	if v >= n {
		return n - 1
	}
	return v
}

// countingRand records how often a tie-break was requested.
type countingRand struct {
	calls int
	next  int
}

func (c *countingRand) Intn(n int) int {
	c.calls++
	return c.next % n
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func mustGrid(t *testing.T, rows ...string) *core.Grid {
	t.Helper()
	g, err := core.ParseASCII(rows, core.DefaultPalette())
	require.NoError(t, err)
	return g
}

func ascii(g *core.Grid) string {
	return core.GridASCII(g, core.DefaultPalette())
}

func newSim(t *testing.T, cols, rows int, rng core.Rand) *core.Sim {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Cols = cols
	cfg.Rows = rows
	s, err := core.New(cfg, rng)
	require.NoError(t, err)
	return s
}

func fullRow(s *core.Sim, row int, color core.Color) {
	g := s.Grid().Clone()
	for col := 0; col < g.Cols; col++ {
		g.SetColor(core.C(row, col), color)
	}
	if err := s.Load(g); err != nil {
		panic(err)
	}
}
