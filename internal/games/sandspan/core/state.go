package core

import (
	"fmt"
	"hash/fnv"
)

// Sim owns the complete simulation state: the grid, the flashing span, the
// settle timer, the current palette index and the tick counter.
//
// A Sim is not safe for concurrent use. Callers serialize Step, placement,
// Resize and Clear on one event loop, and read the grid only between calls.
type Sim struct {
	cfg        Config
	grid       *Grid
	flash      Flash
	rng        Rand
	idle       int    // Ticks since the last grain moved
	tick       uint64 // Steps taken since construction or Reset
	colorIndex int
}

// New creates a simulation with an empty grid.
func New(cfg Config, rng Rand) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: random source is nil", ErrInvalidConfig)
	}
	palette := make(Palette, len(cfg.Palette))
	copy(palette, cfg.Palette)
	cfg.Palette = palette

	return &Sim{
		cfg:   cfg,
		grid:  NewGrid(cfg.Rows, cfg.Cols),
		flash: NewFlash(cfg.FlashCycles, cfg.FlashToggle),
		rng:   rng,
	}, nil
}

// Config returns the configuration the simulation runs with.
// Cols and Rows track the current grid size.
func (s *Sim) Config() Config {
	cfg := s.cfg
	cfg.Cols = s.grid.Cols
	cfg.Rows = s.grid.Rows
	return cfg
}

// Grid exposes the grid for reading. Callers must not mutate it directly.
func (s *Sim) Grid() *Grid {
	return s.grid
}

// Rows returns the current grid height.
func (s *Sim) Rows() int { return s.grid.Rows }

// Cols returns the current grid width.
func (s *Sim) Cols() int { return s.grid.Cols }

// Cell returns the cell at (row, col).
func (s *Sim) Cell(row, col int) Cell {
	return s.grid.Get(C(row, col))
}

// Tick returns the number of steps taken.
func (s *Sim) Tick() uint64 {
	return s.tick
}

// IdleTicks returns the settle timer: ticks counted since the last movement
// or the last scan.
func (s *Sim) IdleTicks() int {
	return s.idle
}

// Resize replaces the grid with an empty one of the given size. The flash
// and settle timer are reset along with it.
func (s *Sim) Resize(cols, rows int) error {
	if err := ValidateSize(cols, rows); err != nil {
		return err
	}
	s.grid.Resize(cols, rows)
	s.resetTimers()
	return nil
}

// Clear empties every cell in place and cancels any flashing span.
func (s *Sim) Clear() {
	s.grid.Clear()
	s.resetTimers()
}

// Load replaces the grid with a copy of g.
func (s *Sim) Load(g *Grid) error {
	if err := ValidateSize(g.Cols, g.Rows); err != nil {
		return err
	}
	if len(g.Cells) != g.Rows*g.Cols {
		return fmt.Errorf("%w: grid has %d cells, want %d", ErrInvalidConfig, len(g.Cells), g.Rows*g.Cols)
	}
	s.grid = g.Clone()
	s.resetTimers()
	return nil
}

func (s *Sim) resetTimers() {
	s.flash.Reset()
	s.idle = 0
}

// CurrentColor returns the palette color selected for user placements.
func (s *Sim) CurrentColor() Color {
	return s.cfg.Palette.At(s.colorIndex)
}

// CycleColor advances the palette index, wrapping, and returns the new color.
func (s *Sim) CycleColor() Color {
	s.colorIndex = (s.colorIndex + 1) % len(s.cfg.Palette)
	return s.CurrentColor()
}

// Palette returns the palette in use.
func (s *Sim) Palette() Palette {
	return s.cfg.Palette
}

// FlashingCells returns the coordinates of the span being flashed.
func (s *Sim) FlashingCells() []Coord {
	return s.flash.Cells()
}

// IsFlashing reports whether c belongs to the flashing span.
func (s *Sim) IsFlashing(c Coord) bool {
	return s.flash.Contains(c)
}

// Flashing returns true while a span is in its flash lifecycle.
func (s *Sim) Flashing() bool {
	return s.flash.Active()
}

// IsHighlightTick reports whether flashing cells show their color this tick.
func (s *Sim) IsHighlightTick() bool {
	return s.flash.HighlightTick()
}

// FlashRemaining returns the ticks left before the flashing span is removed.
func (s *Sim) FlashRemaining() int {
	return s.flash.Remaining()
}

// Snapshot returns a hash representing the current state.
func (s *Sim) Snapshot() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "G:%d;", s.grid.Hash())
	fmt.Fprintf(h, "F:%d:%d:", s.flash.Ticks(), len(s.flash.span.Cells))
	for _, c := range s.flash.span.Cells {
		fmt.Fprintf(h, "%d,%d;", c.Row, c.Col)
	}
	fmt.Fprintf(h, "I:%d;C:%d;T:%d", s.idle, s.colorIndex, s.tick)
	return h.Sum64()
}
