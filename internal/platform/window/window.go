// Package window runs a Sandspan mode in a desktop window with Ebitengine,
// one square of CellSize pixels per grid cell.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	platformcore "github.com/vovakirdan/sandspan/internal/core"
	"github.com/vovakirdan/sandspan/internal/games/sandspan"
	"github.com/vovakirdan/sandspan/internal/storage"
)

var gridLineColor = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}

// Cues plays a sound for a game event.
type Cues interface {
	Play(kind platformcore.EventKind)
}

// Options configure a window run.
type Options struct {
	Store    *storage.Store // nil disables run saving
	Cues     Cues           // nil for silence
	Logger   *log.Logger    // nil discards
	TickRate int            // 0 uses the configured rate
	Seed     int64          // 0 picks a time-based seed
}

// Game implements ebiten.Game around a Session.
type Game struct {
	mode     sandspan.Mode
	opts     Options
	logger   *log.Logger
	session  *sandspan.Session
	cellSize int
	board    *ebiten.Image
	pixels   []byte
	runSaved bool
}

// New loads a session for mode and prepares the window state.
func New(mode sandspan.Mode, opts Options) (*Game, error) {
	g := &Game{mode: mode, opts: opts, logger: opts.Logger}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if err := g.start(); err != nil {
		return nil, err
	}
	return g, nil
}

// start begins a fresh run.
func (g *Game) start() error {
	seed := g.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session, cfg, err := sandspan.LoadSession(g.mode, seed)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	g.session = session
	g.cellSize = cfg.Grid.CellSize
	g.runSaved = false
	g.allocate()
	return nil
}

// allocate sizes the board image to the grid.
func (g *Game) allocate() {
	sim := g.session.Sim()
	g.pixels = make([]byte, sim.Cols()*sim.Rows()*4)
	if g.board != nil {
		g.board.Deallocate()
	}
	g.board = ebiten.NewImage(sim.Cols(), sim.Rows())
}

// Size returns the window size in pixels.
func (g *Game) Size() (int, int) {
	sim := g.session.Sim()
	return sim.Cols() * g.cellSize, sim.Rows() * g.cellSize
}

// Update handles input and advances the simulation one step.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.saveRun()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.saveRun()
		if err := g.start(); err != nil {
			return err
		}
		g.play(platformcore.EventReset)
		return nil
	}

	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		s.ToggleGrid()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		s.CycleColor()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.play(s.Clear().Kind)
	}

	x, y := ebiten.CursorPosition()
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && shift:
		g.play(s.AltDropAtPixel(x, y).Kind)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.play(s.DropAtPixel(x, y).Kind)
	}

	for _, ev := range s.Tick() {
		g.play(ev.Kind)
	}
	return nil
}

func (g *Game) play(kind platformcore.EventKind) {
	if g.opts.Cues != nil {
		g.opts.Cues.Play(kind)
	}
}

// Draw renders the board scaled to cells, the optional grid and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.FillRGBA(g.pixels)
	g.board.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.cellSize), float64(g.cellSize))
	screen.DrawImage(g.board, op)

	if g.session.ShowGrid() {
		g.drawGrid(screen)
	}

	sim := g.session.Sim()
	hud := fmt.Sprintf("%s  color %s  score %d  spans %d",
		g.mode.Title(), sim.CurrentColor(), g.session.Score(), g.session.Spans())
	if sim.Flashing() {
		hud += fmt.Sprintf("  clearing %d", sim.FlashRemaining())
	}
	if g.session.Paused() {
		hud += "  PAUSED"
	}
	ebitenutil.DebugPrint(screen, hud)
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	w, h := g.Size()
	cs := float32(g.cellSize)
	for c := 1; c < g.session.Sim().Cols(); c++ {
		x := float32(c) * cs
		vector.StrokeLine(screen, x, 0, x, float32(h), 1, gridLineColor, false)
	}
	for r := 1; r < g.session.Sim().Rows(); r++ {
		y := float32(r) * cs
		vector.StrokeLine(screen, 0, y, float32(w), y, 1, gridLineColor, false)
	}
}

// Layout keeps one logical pixel per screen pixel at the board size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.Size()
}

// saveRun records the current run once if it scored.
func (g *Game) saveRun() {
	if g.runSaved || g.opts.Store == nil || g.session.Score() <= 0 {
		return
	}
	run := storage.Run{
		Mode:  g.mode.ID(),
		Score: g.session.Score(),
		Spans: g.session.Spans(),
		Ticks: g.session.Ticks(),
		Scene: g.session.SceneID(),
	}
	if _, err := g.opts.Store.SaveRun(run); err != nil {
		g.logger.Warn("could not save run", "mode", run.Mode, "err", err)
		return
	}
	g.logger.Info("run saved", "mode", run.Mode, "score", run.Score, "spans", run.Spans)
	g.runSaved = true
}

// Run opens the window and blocks until it is closed.
func Run(mode sandspan.Mode, opts Options) error {
	g, err := New(mode, opts)
	if err != nil {
		return err
	}

	tps := g.session.TickRate()
	if opts.TickRate > 0 {
		tps = opts.TickRate
	}

	w, h := g.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(mode.Title())
	ebiten.SetTPS(tps)

	err = ebiten.RunGame(g)
	g.saveRun()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
