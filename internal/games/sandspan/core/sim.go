package core

// StepResult describes what happened during one simulation step.
type StepResult struct {
	Tick         uint64
	Moved        int     // Grains that moved during the settling pass
	Scanned      bool    // Whether the span scan ran this step
	SpanStarted  bool    // Whether a new span began flashing
	Span         []Coord // The span that began flashing, if any
	SpanColor    Color
	Cleared      []Coord // Cells emptied by an expiring flash, if any
	ClearedColor Color
}

// Step advances the simulation by one tick.
//
// Order within a step:
//  1. Settling pass (gravity and diagonal slides).
//  2. Span scan, gated by the settle timer: any movement resets the timer;
//     otherwise the timer counts up and, once it has reached SettleDelay,
//     the next step scans and restarts the count.
//  3. Flash tick: a flashing span counts down and is cleared on expiry.
func (s *Sim) Step() StepResult {
	var result StepResult

	result.Moved = Settle(s.grid, s.rng)
	if result.Moved > 0 {
		s.idle = 0
	}

	s.scanForSpan(&result)

	if s.flash.Active() {
		color := s.flash.Color()
		if cleared := s.flash.Advance(s.grid); cleared != nil {
			result.Cleared = cleared
			result.ClearedColor = color
		}
	}

	s.tick++
	result.Tick = s.tick
	return result
}

// scanForSpan runs the connectivity check when the grid has been still long
// enough. A span found while another is flashing would be ignored, so the
// flood fill is skipped entirely in that case.
func (s *Sim) scanForSpan(result *StepResult) {
	if s.idle < s.cfg.SettleDelay {
		s.idle++
		return
	}
	s.idle = 0

	if s.flash.Active() {
		return
	}

	result.Scanned = true
	region, ok := FindSpan(s.grid)
	if !ok {
		return
	}
	if s.flash.Start(region) {
		result.SpanStarted = true
		result.Span = s.flash.Cells()
		result.SpanColor = region.Color
	}
}

// CellAt converts pixel coordinates to a grid coordinate using CellSize.
func (s *Sim) CellAt(x, y int) Coord {
	return C(floorDiv(y, s.cfg.CellSize), floorDiv(x, s.cfg.CellSize))
}

// PlaceTetromino stamps shape at the pixel position (x, y).
// See StampShape for the centering and all-or-nothing rules.
func (s *Sim) PlaceTetromino(x, y int, shape Shape, color Color) bool {
	return s.PlaceTetrominoAt(s.CellAt(x, y), shape, color)
}

// PlaceTetrominoIndex stamps the built-in tetromino at index idx.
func (s *Sim) PlaceTetrominoIndex(x, y, idx int, color Color) bool {
	return s.PlaceTetromino(x, y, TetrominoAt(idx), color)
}

// PlaceTetrominoAt stamps shape anchored at a grid coordinate.
func (s *Sim) PlaceTetrominoAt(anchor Coord, shape Shape, color Color) bool {
	return StampShape(s.grid, anchor, shape, color)
}

// PlaceRandomTetromino stamps a random built-in shape in a random palette
// color at anchor. It returns the shape and color tried.
func (s *Sim) PlaceRandomTetromino(anchor Coord) (Shape, Color, bool) {
	shape := TetrominoAt(s.rng.Intn(len(tetrominoes)))
	color := s.cfg.Palette.Random(s.rng)
	return shape, color, s.PlaceTetrominoAt(anchor, shape, color)
}

// PlaceDeposit drops a filled circle of sand centered on the pixel position
// (x, y). Returns the number of cells written.
func (s *Sim) PlaceDeposit(x, y, radius int, color Color) int {
	return s.PlaceDepositAt(s.CellAt(x, y), radius, color)
}

// PlaceDepositAt drops a filled circle of sand centered on a grid coordinate.
func (s *Sim) PlaceDepositAt(center Coord, radius int, color Color) int {
	return Deposit(s.grid, center, radius, color)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
