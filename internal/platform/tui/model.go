package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sandspan/internal/config"
	"github.com/vovakirdan/sandspan/internal/core"
	"github.com/vovakirdan/sandspan/internal/registry"
	"github.com/vovakirdan/sandspan/internal/storage"
)

// Layouter is implemented by games that adapt to a new screen size
// without restarting.
type Layouter interface {
	Layout(width, height int)
}

// TickRater is implemented by games that choose their own step rate.
type TickRater interface {
	TickRate() int
}

// RunReporter is implemented by games that report run details for the
// score store.
type RunReporter interface {
	Spans() int
	Ticks() uint64
	SceneID() string
}

// Cues plays a sound for a game event.
type Cues interface {
	Play(kind core.EventKind)
}

// Options tune a GameModel.
type Options struct {
	Cues      Cues        // nil for silence
	Logger    *log.Logger // nil discards
	AllowBack bool        // Enable b/esc to return to a menu
}

// GameModel is the Bubble Tea model for one running mode.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	cues       Cues
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	runSaved   bool
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	keys.Back.SetEnabled(opts.AllowBack)
	h := help.New()
	h.Width = cfg.ScreenW

	m := GameModel{
		game:       game,
		store:      store,
		config:     cfg,
		keys:       keys,
		help:       h,
		cues:       opts.Cues,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight())
	return m
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.tickRate())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if click, ok := MapMouse(msg); ok {
			m.inputFrame.AddClick(click)
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.saveRun()
		m.backToMenu = true
		return m, tea.Quit
	case core.ActionRestart:
		m.restart()
		return m, nil
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.relayout()
	return m, nil
}

// relayout resizes the board area after a window or help change.
func (m *GameModel) relayout() {
	m.screen.Resize(m.config.ScreenW, m.boardHeight())
	if l, ok := m.game.(Layouter); ok {
		l.Layout(m.screen.Width(), m.screen.Height())
		return
	}
	m.game.Reset(m.gameConfig())
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.cues != nil {
		for _, ev := range result.Events {
			m.cues.Play(ev.Kind)
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.tickRate())
}

// restart saves the current run and starts a fresh one with a new seed.
func (m *GameModel) restart() {
	m.saveRun()
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.gameConfig())
	m.gameState = m.game.State()
	m.runSaved = false
	m.inputFrame.Clear()
}

// saveRun records the current run once. Runs that cleared nothing are
// not kept.
func (m *GameModel) saveRun() {
	if m.runSaved || m.store == nil {
		return
	}
	state := m.game.State()
	if state.Score <= 0 {
		return
	}

	run := storage.Run{Mode: m.game.ID(), Score: state.Score}
	if r, ok := m.game.(RunReporter); ok {
		run.Spans = r.Spans()
		run.Ticks = r.Ticks()
		run.Scene = r.SceneID()
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "mode", run.Mode, "err", err)
		return
	}
	m.logger.Info("run saved", "mode", run.Mode, "score", run.Score, "spans", run.Spans)
	m.runSaved = true
}

// gameConfig is the runtime config with the board's share of the screen.
func (m GameModel) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.boardHeight()
	return cfg
}

// boardHeight is the screen height left after the help bar.
func (m GameModel) boardHeight() int {
	return max(m.config.ScreenH-lipgloss.Height(m.help.View(m.keys)), 0)
}

// tickRate prefers the game's own rate.
func (m GameModel) tickRate() int {
	if t, ok := m.game.(TickRater); ok {
		if rate := t.TickRate(); rate > 0 {
			return rate
		}
	}
	return m.config.TickRate
}

// saveScreenshot writes the current board as plain text.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := config.UserPath("screenshots")
	if dir == "" {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot dir", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the board and the help bar.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting reports whether the user asked to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user asked to return to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last stepped game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run plays one game in the terminal until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
