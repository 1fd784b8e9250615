package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/sandspan/internal/games/sandspan/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML SandConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &fromYAML))

	assert.Equal(t, DefaultSandConfig(), fromYAML)
}

func TestDefaultSimConfigMatchesCore(t *testing.T) {
	sim, err := DefaultSandConfig().SimConfig()
	require.NoError(t, err)

	assert.Equal(t, core.DefaultConfig(), sim)
}

func TestLoadSandCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sand.yaml")
	data := "grid:\n  cols: 40\npalette: [cyan, orange]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadSand(path)
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Grid.Cols)
	assert.Equal(t, 100, cfg.Grid.Rows, "unset keys keep their defaults")
	assert.Equal(t, []string{"cyan", "orange"}, cfg.Palette)
}

func TestLoadSandCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadSand(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("grid: [1, 2"), 0o600))
	_, err = LoadSand(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("grid:\n  cols: 0\n"), 0o600))
	_, err = LoadSand(invalid)
	assert.ErrorIs(t, err, core.ErrInvalidConfig)
}

func TestLoadSandFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := LoadSand("")
	require.NoError(t, err)

	assert.Equal(t, DefaultSandConfig(), cfg)
}

func TestLoadSandPrefersLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "sand.yaml"), []byte("simulation:\n  tick_rate: 12\n"), 0o600))

	cfg, err := LoadSand("")
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Simulation.TickRate)
}

func TestApplySandPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		colors      int
		tickRate    int
		settleDelay int
	}{
		{DifficultyEasy, 3, 20, 5},
		{DifficultyNormal, 5, 20, 5},
		{DifficultyHard, 5, 30, 3},
		{"", 5, 20, 5},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSandConfig()
			ApplySandPreset(&cfg, tc.preset)

			assert.Len(t, cfg.Palette, tc.colors)
			assert.Equal(t, tc.tickRate, cfg.Simulation.TickRate)
			assert.Equal(t, tc.settleDelay, cfg.Simulation.SettleDelay)

			_, err := cfg.SimConfig()
			assert.NoError(t, err)
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, ok := range []string{"", "easy", "normal", "hard"} {
		_, err := ParseDifficulty(ok)
		assert.NoError(t, err, ok)
	}
	_, err := ParseDifficulty("nightmare")
	assert.Error(t, err)
}

func TestSimConfigRejectsBadPalette(t *testing.T) {
	cfg := DefaultSandConfig()
	cfg.Palette = []string{"red", "chartreuse-ish"}

	_, err := cfg.SimConfig()
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir for Go < 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
