package core

// Flash holds a detected span while it blinks, then clears it.
//
// It has two states: idle (no span) and flashing. Start moves idle to
// flashing; Advance counts ticks and, once Duration ticks have elapsed,
// empties every span cell on the grid and returns to idle.
type Flash struct {
	Duration int // Raw ticks from detection to removal
	Toggle   int // Every Toggle-th tick the span is blanked

	span  Region
	ticks int
}

// NewFlash creates an idle controller. cycles is the number of flash
// cycles; each cycle toggles twice, so the span lives cycles*2 ticks.
func NewFlash(cycles, toggle int) Flash {
	if toggle < 1 {
		toggle = 1
	}
	return Flash{
		Duration: cycles * 2,
		Toggle:   toggle,
	}
}

// Active returns true while a span is flashing.
func (f *Flash) Active() bool {
	return !f.span.IsEmpty()
}

// Start begins flashing region. It returns false and changes nothing if a
// span is already flashing or the region is empty.
func (f *Flash) Start(region Region) bool {
	if f.Active() || region.IsEmpty() {
		return false
	}
	f.span = region
	f.ticks = 0
	return true
}

// Advance moves the animation one tick forward. When the counter reaches
// Duration the span cells are emptied and returned; otherwise it returns nil.
func (f *Flash) Advance(g *Grid) []Coord {
	if !f.Active() {
		return nil
	}
	f.ticks++
	if f.ticks < f.Duration {
		return nil
	}

	cleared := f.span.Cells
	for _, c := range cleared {
		g.SetEmpty(c)
	}
	f.Reset()
	return cleared
}

// HighlightTick reports whether span cells should show their own color on
// this tick. The span is blanked on every Toggle-th tick and shown on the
// rest. Always true while idle.
func (f *Flash) HighlightTick() bool {
	if !f.Active() {
		return true
	}
	return f.ticks%f.Toggle != 0
}

// Contains reports whether c is part of the flashing span.
func (f *Flash) Contains(c Coord) bool {
	return f.Active() && f.span.Contains(c)
}

// Cells returns a copy of the flashing coordinates.
func (f *Flash) Cells() []Coord {
	if !f.Active() {
		return nil
	}
	out := make([]Coord, len(f.span.Cells))
	copy(out, f.span.Cells)
	return out
}

// Color returns the color of the flashing span.
func (f *Flash) Color() Color {
	return f.span.Color
}

// Ticks returns how many ticks the current span has been flashing.
func (f *Flash) Ticks() int {
	return f.ticks
}

// Remaining returns the ticks left before the span is removed.
func (f *Flash) Remaining() int {
	if !f.Active() {
		return 0
	}
	return f.Duration - f.ticks
}

// Reset drops the span without touching the grid.
func (f *Flash) Reset() {
	f.span = Region{}
	f.ticks = 0
}
