// Package sandspan provides the falling-sand span game and its sandbox
// variant for the Sandspan platform.
package sandspan

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sandspan/internal/config"
	platformcore "github.com/vovakirdan/sandspan/internal/core"
	"github.com/vovakirdan/sandspan/internal/games/sandspan/core"
	"github.com/vovakirdan/sandspan/internal/games/sandspan/scenes"
	"github.com/vovakirdan/sandspan/internal/registry"
)

// Terminal layout.
const (
	hudHeight = 1 // Status line above the board
	cellW     = 2 // Terminal columns per grid cell
	minInnerW = 4 * cellW
	minInnerH = 4
	msgTicks  = 40 // How long a status message stays up
)

// Package-level settings, set from the CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	sceneID          string
	sceneDir         string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetScene selects the starting scene by ID. dir holds user scenes in
// addition to the bundled ones. An empty id means an empty board.
func SetScene(id, dir string) {
	sceneID = id
	sceneDir = dir
}

// SetLogger routes game logs to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	for _, m := range Modes() {
		m := m
		registry.Register(m.ID(), func() registry.Game {
			return New(m)
		})
	}
	registry.SetDefault(ModeSpan.ID())
}

// Game adapts a Session to the terminal platform: it maps character-cell
// clicks and keys onto the board and draws it into a Screen.
type Game struct {
	mode      Mode
	session   *Session
	runtime   platformcore.RuntimeConfig
	cfg       config.SandConfig
	fromScene bool
	err       error

	// Layout (computed from screen size)
	board    platformcore.Rect // Outer box including the border
	inner    platformcore.Rect // Drawable cell area
	tooSmall bool

	// Keyboard drop cursor, in grid coordinates
	cursor     core.Coord
	showCursor bool

	message    string
	messageTTL int
	palette    map[core.Color]platformcore.Color
}

// New creates a game in the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.mode.ID()
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.mode.Title()
}

// Description returns the mode summary shown by listings.
func (g *Game) Description() string {
	return g.mode.Description()
}

// LoadSession builds a session for mode from the configured file,
// difficulty preset and scene.
func LoadSession(mode Mode, seed int64) (*Session, config.SandConfig, error) {
	cfg, err := config.LoadSand(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultSandConfig()
	}
	if difficultyPreset != "" {
		config.ApplySandPreset(&cfg, difficultyPreset)
	}

	var scene *scenes.Scene
	if sceneID != "" {
		found, err := scenes.Find(sceneDir, sceneID)
		if err != nil {
			return nil, cfg, err
		}
		scene = &found
	}

	session, err := NewSession(mode, cfg, scene, seed)
	if err != nil {
		return nil, cfg, err
	}
	return session, cfg, nil
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	g.runtime = runtime
	g.err = nil
	g.message = ""
	g.messageTTL = 0
	g.showCursor = false

	session, cfg, err := LoadSession(g.mode, runtime.Seed)
	g.cfg = cfg
	if err != nil {
		logger.Error("cannot start session", "err", err)
		g.err = err
		g.session = nil
		return
	}
	g.fromScene = session.SceneID() != ""
	g.session = session
	g.palette = make(map[core.Color]platformcore.Color)

	g.calculateLayout()
	if cfg.Display.FitToWindow && !g.fromScene {
		g.fitToBoard()
	}
	g.centerCursor()

	logger.Info("session started",
		"mode", g.mode.ID(),
		"cols", session.Sim().Cols(),
		"rows", session.Sim().Rows(),
		"scene", session.SceneID(),
		"seed", runtime.Seed,
	)
}

// Layout adapts to a new screen size without restarting. An empty board
// is refitted when fitting is enabled.
func (g *Game) Layout(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	if g.session == nil {
		return
	}
	g.calculateLayout()
	if g.cfg.Display.FitToWindow && !g.fromScene && g.session.Sim().Grid().IsCleared() {
		g.fitToBoard()
		g.centerCursor()
	}
}

// calculateLayout places the board below the HUD, filling the screen.
func (g *Game) calculateLayout() {
	g.board = platformcore.NewRect(0, hudHeight, g.runtime.ScreenW, g.runtime.ScreenH-hudHeight)
	g.inner = g.board.Inset(1)
	g.tooSmall = g.inner.W < minInnerW || g.inner.H < minInnerH
}

// fitToBoard resizes the grid to the drawable area.
func (g *Game) fitToBoard() bool {
	if g.tooSmall {
		return false
	}
	cols := min(g.inner.W/cellW, core.MaxGridSize)
	rows := min(g.inner.H, core.MaxGridSize)
	if _, err := g.session.Resize(cols, rows); err != nil {
		logger.Warn("cannot fit board", "err", err)
		return false
	}
	return true
}

func (g *Game) centerCursor() {
	g.cursor = core.C(g.viewTop(), g.session.Sim().Cols()/2)
}

// viewTop is the first grid row shown. Boards taller than the screen are
// shown from the bottom, where the sand collects.
func (g *Game) viewTop() int {
	return max(g.session.Sim().Rows()-g.inner.H, 0)
}

// screenToGrid maps a terminal cell to a grid coordinate.
func (g *Game) screenToGrid(x, y int) (core.Coord, bool) {
	if !g.inner.Contains(x, y) {
		return core.Coord{}, false
	}
	c := core.C(g.viewTop()+y-g.inner.Y, (x-g.inner.X)/cellW)
	if !g.session.Sim().Grid().InBounds(c) {
		return core.Coord{}, false
	}
	return c, true
}

func (g *Game) flash(msg string) {
	g.message = msg
	g.messageTTL = msgTicks
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.session == nil || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	var events []platformcore.Event
	emit := func(e platformcore.Event) {
		if e.Kind == platformcore.EventRejected {
			g.flash("no room there")
		}
		events = append(events, e)
	}

	if in.Has(platformcore.ActionPause) {
		g.session.TogglePause()
	}
	if in.Has(platformcore.ActionToggleGrid) {
		g.session.ToggleGrid()
	}
	if in.Has(platformcore.ActionCycleColor) {
		g.flash("color " + g.session.CycleColor().String())
	}
	if in.Has(platformcore.ActionClear) {
		emit(g.session.Clear())
	}
	if in.Has(platformcore.ActionFit) {
		if g.fitToBoard() {
			g.centerCursor()
			emit(platformcore.Event{Kind: platformcore.EventReset})
		}
	}

	g.moveCursor(in)
	if in.Has(platformcore.ActionDrop) {
		emit(g.session.Drop(g.cursor))
	}

	for _, click := range in.Clicks {
		if click.Button == platformcore.ButtonRight {
			g.flash("color " + g.session.CycleColor().String())
			continue
		}
		at, ok := g.screenToGrid(click.X, click.Y)
		if !ok {
			continue
		}
		if click.Button == platformcore.ButtonMiddle || click.Shift {
			emit(g.session.AltDrop(at))
		} else {
			emit(g.session.Drop(at))
		}
	}

	events = append(events, g.session.Tick()...)

	if g.messageTTL > 0 {
		g.messageTTL--
		if g.messageTTL == 0 {
			g.message = ""
		}
	}

	return platformcore.StepResult{State: g.State(), Events: events}
}

func (g *Game) moveCursor(in platformcore.InputFrame) {
	sim := g.session.Sim()
	dr, dc := 0, 0
	if in.Has(platformcore.ActionUp) {
		dr--
	}
	if in.Has(platformcore.ActionDown) {
		dr++
	}
	if in.Has(platformcore.ActionLeft) {
		dc--
	}
	if in.Has(platformcore.ActionRight) {
		dc++
	}
	if dr == 0 && dc == 0 && !in.Has(platformcore.ActionDrop) {
		return
	}
	g.showCursor = true
	g.cursor = core.C(
		platformcore.Clamp(g.cursor.Row+dr, g.viewTop(), sim.Rows()-1),
		platformcore.Clamp(g.cursor.Col+dc, 0, sim.Cols()-1),
	)
}

// State returns the current game state. A sand session never ends on
// its own; the player quits or restarts.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{}
	}
	return platformcore.GameState{
		Score:  g.session.Score(),
		Paused: g.session.Paused(),
	}
}

// Session exposes the running session, or nil if it failed to start.
func (g *Game) Session() *Session {
	return g.session
}

// Spans returns the number of spans cleared.
func (g *Game) Spans() int {
	if g.session == nil {
		return 0
	}
	return g.session.Spans()
}

// Ticks returns the number of simulation steps taken.
func (g *Game) Ticks() uint64 {
	if g.session == nil {
		return 0
	}
	return g.session.Ticks()
}

// SceneID returns the starting scene of the session.
func (g *Game) SceneID() string {
	if g.session == nil {
		return ""
	}
	return g.session.SceneID()
}

// TickRate returns the steps per second the session wants.
func (g *Game) TickRate() int {
	if g.runtime.TickRate > 0 {
		return g.runtime.TickRate
	}
	if g.session == nil {
		return platformcore.DefaultConfig().TickRate
	}
	return g.session.TickRate()
}

// SoundEnabled reports whether the config asks for audio cues.
func (g *Game) SoundEnabled() bool {
	return g.cfg.Sound.Enabled
}

// SoundVolume returns the configured cue volume.
func (g *Game) SoundVolume() float64 {
	return g.cfg.Sound.Volume
}
