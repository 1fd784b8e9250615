package sandspan

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/sandspan/internal/config"
	platformcore "github.com/vovakirdan/sandspan/internal/core"
	"github.com/vovakirdan/sandspan/internal/games/sandspan/core"
	"github.com/vovakirdan/sandspan/internal/games/sandspan/scenes"
)

// Mode selects what a primary drop does.
type Mode int

const (
	// ModeSpan drops a random tetromino in a random palette color.
	ModeSpan Mode = iota
	// ModeSandbox drops a circle of the selected color; the alternate drop
	// stamps a tetromino in that color.
	ModeSandbox
)

// ID returns the registry identifier of the mode.
func (m Mode) ID() string {
	if m == ModeSandbox {
		return "sandbox"
	}
	return "sandspan"
}

// Title returns the display name of the mode.
func (m Mode) Title() string {
	if m == ModeSandbox {
		return "Sandbox"
	}
	return "Sandspan"
}

// Description returns a one-line summary for listings.
func (m Mode) Description() string {
	if m == ModeSandbox {
		return "Pour circles of the selected color; middle click drops a tetromino"
	}
	return "Drop random tetrominoes and connect a color from wall to wall"
}

// Modes returns every mode in registration order.
func Modes() []Mode {
	return []Mode{ModeSpan, ModeSandbox}
}

// ModeByID finds the mode registered under id.
func ModeByID(id string) (Mode, bool) {
	for _, m := range Modes() {
		if m.ID() == id {
			return m, true
		}
	}
	return 0, false
}

// Session is one running board: the simulation plus the mode rules, score
// and toggles that every frontend shares. Positions are grid coordinates
// unless a method says pixels.
type Session struct {
	mode     Mode
	sim      *core.Sim
	rng      *rand.Rand
	radius   int
	tickRate int
	scene    string

	score      int
	spans      int
	paused     bool
	showGrid   bool
	shapeIndex int
}

// NewSession builds a session from a loaded config. A non-nil scene sets
// the starting board and, if it carries one, the palette.
func NewSession(mode Mode, cfg config.SandConfig, scene *scenes.Scene, seed int64) (*Session, error) {
	simCfg, err := cfg.SimConfig()
	if err != nil {
		return nil, err
	}
	if scene != nil {
		simCfg.Palette = scene.PaletteFor(simCfg.Palette)
	}

	rng := rand.New(rand.NewSource(seed))
	sim, err := core.New(simCfg, rng)
	if err != nil {
		return nil, fmt.Errorf("sandspan: %w", err)
	}

	s := &Session{
		mode:     mode,
		sim:      sim,
		rng:      rng,
		radius:   simCfg.DepositRadius,
		tickRate: simCfg.TickRate,
		showGrid: cfg.Display.ShowGrid,
	}

	if scene != nil {
		if err := scene.Apply(sim); err != nil {
			return nil, err
		}
		s.scene = scene.ID
	}
	return s, nil
}

// Sim exposes the simulation for rendering.
func (s *Session) Sim() *core.Sim { return s.sim }

// Mode returns the session mode.
func (s *Session) Mode() Mode { return s.mode }

// Score returns the number of cells cleared so far.
func (s *Session) Score() int { return s.score }

// Spans returns the number of spans cleared so far.
func (s *Session) Spans() int { return s.spans }

// Ticks returns the number of simulation steps taken.
func (s *Session) Ticks() uint64 { return s.sim.Tick() }

// SceneID returns the starting scene, or "" for an empty board.
func (s *Session) SceneID() string { return s.scene }

// TickRate returns the configured steps per second.
func (s *Session) TickRate() int { return s.tickRate }

// Paused reports whether stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// ShowGrid reports whether the grid overlay is on.
func (s *Session) ShowGrid() bool { return s.showGrid }

// TogglePause suspends or resumes stepping. Drops still land while paused.
func (s *Session) TogglePause() {
	s.paused = !s.paused
}

// ToggleGrid flips the grid overlay.
func (s *Session) ToggleGrid() {
	s.showGrid = !s.showGrid
}

// CycleColor selects the next palette color.
func (s *Session) CycleColor() core.Color {
	return s.sim.CycleColor()
}

// Clear empties the board. Score is kept.
func (s *Session) Clear() platformcore.Event {
	s.sim.Clear()
	logger.Debug("board cleared", "mode", s.mode.ID())
	return platformcore.Event{Kind: platformcore.EventReset}
}

// Resize replaces the board with an empty one of the given size.
func (s *Session) Resize(cols, rows int) (platformcore.Event, error) {
	if err := s.sim.Resize(cols, rows); err != nil {
		return platformcore.Event{}, err
	}
	logger.Debug("board resized", "cols", cols, "rows", rows)
	return platformcore.Event{Kind: platformcore.EventReset}, nil
}

// Drop performs the mode's primary placement at a grid coordinate.
func (s *Session) Drop(at core.Coord) platformcore.Event {
	switch s.mode {
	case ModeSandbox:
		return s.placed(s.sim.PlaceDepositAt(at, s.radius, s.sim.CurrentColor()))
	default:
		shape, color, ok := s.sim.PlaceRandomTetromino(at)
		logger.Debug("tetromino", "shape", shape.Name(), "color", color, "at", at, "ok", ok)
		return s.stamped(shape, ok)
	}
}

// AltDrop performs the secondary placement: a tetromino in the selected
// color, cycling through the shapes on every drop.
func (s *Session) AltDrop(at core.Coord) platformcore.Event {
	shape := core.TetrominoAt(s.shapeIndex)
	s.shapeIndex++
	return s.stamped(shape, s.sim.PlaceTetrominoAt(at, shape, s.sim.CurrentColor()))
}

// DropAtPixel is Drop for a pixel position, using the board's cell size.
func (s *Session) DropAtPixel(x, y int) platformcore.Event {
	switch s.mode {
	case ModeSandbox:
		return s.placed(s.sim.PlaceDeposit(x, y, s.radius, s.sim.CurrentColor()))
	default:
		shape := core.TetrominoAt(s.rng.Intn(len(core.Tetrominoes())))
		color := s.sim.Palette().Random(s.rng)
		return s.stamped(shape, s.sim.PlaceTetromino(x, y, shape, color))
	}
}

// AltDropAtPixel is AltDrop for a pixel position.
func (s *Session) AltDropAtPixel(x, y int) platformcore.Event {
	idx := s.shapeIndex
	s.shapeIndex++
	shape := core.TetrominoAt(idx)
	return s.stamped(shape, s.sim.PlaceTetrominoIndex(x, y, idx, s.sim.CurrentColor()))
}

func (s *Session) placed(n int) platformcore.Event {
	if n == 0 {
		return platformcore.Event{Kind: platformcore.EventRejected}
	}
	return platformcore.Event{Kind: platformcore.EventPlaced, Value: n}
}

func (s *Session) stamped(shape core.Shape, ok bool) platformcore.Event {
	if !ok {
		return platformcore.Event{Kind: platformcore.EventRejected}
	}
	return platformcore.Event{Kind: platformcore.EventPlaced, Value: len(shape.Offsets())}
}

// Tick advances the simulation one step unless paused, and reports span
// events. Cleared cells are added to the score.
func (s *Session) Tick() []platformcore.Event {
	if s.paused {
		return nil
	}

	res := s.sim.Step()

	var events []platformcore.Event
	if res.SpanStarted {
		logger.Debug("span detected", "color", res.SpanColor, "cells", len(res.Span), "tick", res.Tick)
		events = append(events, platformcore.Event{Kind: platformcore.EventSpan, Value: len(res.Span)})
	}
	if len(res.Cleared) > 0 {
		s.score += len(res.Cleared)
		s.spans++
		logger.Info("span cleared",
			"mode", s.mode.ID(),
			"color", res.ClearedColor,
			"cells", len(res.Cleared),
			"score", s.score,
		)
		events = append(events, platformcore.Event{Kind: platformcore.EventCleared, Value: len(res.Cleared)})
	}
	return events
}
