package sandspan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sandspan/internal/config"
	platformcore "github.com/vovakirdan/sandspan/internal/core"
	"github.com/vovakirdan/sandspan/internal/games/sandspan"
	"github.com/vovakirdan/sandspan/internal/games/sandspan/core"
	"github.com/vovakirdan/sandspan/internal/games/sandspan/scenes"
)

func newSession(t *testing.T, mode sandspan.Mode, sceneID string) *sandspan.Session {
	t.Helper()
	var scene *scenes.Scene
	if sceneID != "" {
		sc, err := scenes.Find("", sceneID)
		require.NoError(t, err)
		scene = &sc
	}
	s, err := sandspan.NewSession(mode, config.DefaultSandConfig(), scene, 1)
	require.NoError(t, err)
	return s
}

func TestModeIdentity(t *testing.T) {
	assert.Equal(t, "sandspan", sandspan.ModeSpan.ID())
	assert.Equal(t, "sandbox", sandspan.ModeSandbox.ID())
	assert.Equal(t, "Sandspan", sandspan.ModeSpan.Title())
	assert.Equal(t, "Sandbox", sandspan.ModeSandbox.Title())
}

func TestNewSessionUsesConfigSize(t *testing.T) {
	s := newSession(t, sandspan.ModeSpan, "")

	assert.Equal(t, 80, s.Sim().Cols())
	assert.Equal(t, 100, s.Sim().Rows())
	assert.Equal(t, 20, s.TickRate())
	assert.Empty(t, s.SceneID())
	assert.True(t, s.Sim().Grid().IsCleared())
}

func TestNewSessionFromScene(t *testing.T) {
	s := newSession(t, sandspan.ModeSpan, "near-span")

	assert.Equal(t, "near-span", s.SceneID())
	assert.Equal(t, 20, s.Sim().Cols())
	assert.Equal(t, 30, s.Sim().Rows())
	assert.False(t, s.Sim().Grid().IsCleared())
}

func TestEasyPresetStartsEveryBundledScene(t *testing.T) {
	all, err := scenes.Bundled().LoadAll()
	require.NoError(t, err)

	for _, sc := range all {
		t.Run(sc.ID, func(t *testing.T) {
			cfg := config.DefaultSandConfig()
			config.ApplySandPreset(&cfg, config.DifficultyEasy)

			s, err := sandspan.NewSession(sandspan.ModeSpan, cfg, &sc, 1)
			require.NoError(t, err)
			assert.Equal(t, sc.ID, s.SceneID())
			assert.GreaterOrEqual(t, len(s.Sim().Palette()), sc.ColorsNeeded())
		})
	}
}

func TestEasyPresetSceneWithinPaletteKeepsPreset(t *testing.T) {
	sc, err := scenes.Find("", "near-span")
	require.NoError(t, err)
	cfg := config.DefaultSandConfig()
	config.ApplySandPreset(&cfg, config.DifficultyEasy)

	s, err := sandspan.NewSession(sandspan.ModeSpan, cfg, &sc, 1)
	require.NoError(t, err)
	assert.Len(t, s.Sim().Palette(), 3)
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	cfg := config.DefaultSandConfig()
	cfg.Grid.Cols = 0

	_, err := sandspan.NewSession(sandspan.ModeSpan, cfg, nil, 1)
	assert.Error(t, err)
}

func TestSandboxDropDepositsCircle(t *testing.T) {
	s := newSession(t, sandspan.ModeSandbox, "")

	ev := s.Drop(core.C(50, 40))
	assert.Equal(t, platformcore.EventPlaced, ev.Kind)
	assert.Equal(t, 29, ev.Value, "radius 3 circle")
	assert.Equal(t, s.Sim().CurrentColor(), s.Sim().Cell(50, 40).Color)

	ev = s.Drop(core.C(50, 40))
	assert.Equal(t, platformcore.EventRejected, ev.Kind, "deposits never overwrite")
}

func TestSpanDropStampsTetromino(t *testing.T) {
	s := newSession(t, sandspan.ModeSpan, "")

	ev := s.Drop(core.C(0, 40))
	require.Equal(t, platformcore.EventPlaced, ev.Kind)
	assert.Equal(t, ev.Value, s.Sim().Grid().FilledCount())
}

func TestAltDropUsesCurrentColor(t *testing.T) {
	s := newSession(t, sandspan.ModeSpan, "")
	color := s.CycleColor()

	ev := s.AltDrop(core.C(0, 40))
	require.Equal(t, platformcore.EventPlaced, ev.Kind)

	for r := 0; r < s.Sim().Rows(); r++ {
		for c := 0; c < s.Sim().Cols(); c++ {
			if cell := s.Sim().Cell(r, c); cell.Filled {
				assert.Equal(t, color, cell.Color)
			}
		}
	}
}

func TestDropAtPixel(t *testing.T) {
	s := newSession(t, sandspan.ModeSandbox, "")

	ev := s.DropAtPixel(405, 505)
	require.Equal(t, platformcore.EventPlaced, ev.Kind)
	assert.True(t, s.Sim().Cell(50, 40).Filled)

	ev = s.AltDropAtPixel(405, 5)
	assert.Equal(t, platformcore.EventPlaced, ev.Kind)
}

func TestPauseStopsStepping(t *testing.T) {
	s := newSession(t, sandspan.ModeSandbox, "")
	s.Tick()
	require.Equal(t, uint64(1), s.Ticks())

	s.TogglePause()
	assert.True(t, s.Paused())
	assert.Nil(t, s.Tick())
	assert.Equal(t, uint64(1), s.Ticks())

	ev := s.Drop(core.C(10, 10))
	assert.Equal(t, platformcore.EventPlaced, ev.Kind, "drops land while paused")

	s.TogglePause()
	s.Tick()
	assert.Equal(t, uint64(2), s.Ticks())
}

func TestClearKeepsScore(t *testing.T) {
	s := newSession(t, sandspan.ModeSandbox, "")
	s.Drop(core.C(10, 10))

	ev := s.Clear()
	assert.Equal(t, platformcore.EventReset, ev.Kind)
	assert.True(t, s.Sim().Grid().IsCleared())
}

func TestResize(t *testing.T) {
	s := newSession(t, sandspan.ModeSandbox, "")

	ev, err := s.Resize(30, 40)
	require.NoError(t, err)
	assert.Equal(t, platformcore.EventReset, ev.Kind)
	assert.Equal(t, 30, s.Sim().Cols())
	assert.Equal(t, 40, s.Sim().Rows())

	_, err = s.Resize(0, 40)
	assert.Error(t, err)
}

func TestToggleGrid(t *testing.T) {
	s := newSession(t, sandspan.ModeSandbox, "")
	require.False(t, s.ShowGrid())

	s.ToggleGrid()
	assert.True(t, s.ShowGrid())
}

func TestFillingGapClearsSpanAndScores(t *testing.T) {
	s := newSession(t, sandspan.ModeSandbox, "near-span")
	require.Equal(t, core.Red, s.Sim().CurrentColor())

	ev := s.Drop(core.C(29, 8))
	require.Equal(t, platformcore.EventPlaced, ev.Kind)

	var sawSpan, sawCleared bool
	for i := 0; i < 300 && s.Spans() == 0; i++ {
		for _, e := range s.Tick() {
			switch e.Kind {
			case platformcore.EventSpan:
				sawSpan = true
			case platformcore.EventCleared:
				sawCleared = true
				assert.Equal(t, s.Score(), e.Value)
			}
		}
	}

	assert.True(t, sawSpan)
	assert.True(t, sawCleared)
	assert.Equal(t, 1, s.Spans())
	assert.GreaterOrEqual(t, s.Score(), 20)
}

func TestSessionsWithSameSeedMatch(t *testing.T) {
	a := newSession(t, sandspan.ModeSpan, "")
	b := newSession(t, sandspan.ModeSpan, "")

	for i := 0; i < 5; i++ {
		at := core.C(0, 10+i*12)
		a.Drop(at)
		b.Drop(at)
		for j := 0; j < 20; j++ {
			a.Tick()
			b.Tick()
		}
	}

	assert.Equal(t, a.Sim().Snapshot(), b.Sim().Snapshot())
}

func TestFillRGBA(t *testing.T) {
	s := newSession(t, sandspan.ModeSandbox, "")
	_, err := s.Resize(2, 2)
	require.NoError(t, err)
	color := s.Sim().CurrentColor()
	s.Drop(core.C(1, 0))

	pix := make([]byte, 2*2*4)
	s.FillRGBA(pix)

	assert.Equal(t, []byte{color.R, color.G, color.B, 0xff}, pix[0:4])
	assert.Equal(t, []byte{color.R, color.G, color.B, 0xff}, pix[12:16])
}

func TestFillRGBABlanksFlashOffPhase(t *testing.T) {
	s := newSession(t, sandspan.ModeSandbox, "")
	_, err := s.Resize(3, 1)
	require.NoError(t, err)
	s.Drop(core.C(0, 1))

	// The span starts on the first scan; its fifth flash tick is blank.
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	require.True(t, s.Sim().Flashing())
	require.False(t, s.Sim().IsHighlightTick())

	pix := make([]byte, 3*4)
	s.FillRGBA(pix)
	assert.Equal(t, []byte{0, 0, 0, 0xff, 0, 0, 0, 0xff, 0, 0, 0, 0xff}, pix)
}
