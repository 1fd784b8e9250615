// Package config provides YAML-based configuration loading and difficulty
// presets for Sandspan.
package config

import (
	"fmt"

	"github.com/vovakirdan/sandspan/internal/games/sandspan/core"
)

// SandConfig contains all configuration for a Sandspan session.
type SandConfig struct {
	Grid       SandGrid       `yaml:"grid"`
	Simulation SandSimulation `yaml:"simulation"`
	Placement  SandPlacement  `yaml:"placement"`
	Palette    []string       `yaml:"palette"`
	Display    SandDisplay    `yaml:"display"`
	Sound      SandSound      `yaml:"sound"`
}

// SandGrid defines the board dimensions.
type SandGrid struct {
	Cols     int `yaml:"cols"`
	Rows     int `yaml:"rows"`
	CellSize int `yaml:"cell_size"` // Pixels per cell in the window frontend
}

// SandSimulation defines timing parameters.
type SandSimulation struct {
	TickRate    int `yaml:"tick_rate"`    // Steps per second
	SettleDelay int `yaml:"settle_delay"` // Idle ticks before a span scan
	FlashCycles int `yaml:"flash_cycles"` // Each cycle lasts 2 ticks
	FlashToggle int `yaml:"flash_toggle"` // Ticks per highlight phase
}

// SandPlacement defines how user drops behave.
type SandPlacement struct {
	DepositRadius int `yaml:"deposit_radius"`
}

// SandDisplay defines frontend presentation options.
type SandDisplay struct {
	FitToWindow bool `yaml:"fit_to_window"` // Size the board to the terminal on start
	ShowGrid    bool `yaml:"show_grid"`
}

// SandSound defines audio cue options.
type SandSound struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a flag value to a preset. An empty string means no
// preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplySandPreset modifies the config based on a difficulty preset.
// Easy narrows the palette to three colors, which makes spans far more
// likely; hard speeds the clock up and shortens the settle delay.
func ApplySandPreset(cfg *SandConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		if len(cfg.Palette) > 3 {
			cfg.Palette = cfg.Palette[:3]
		}
	case DifficultyNormal:
		cfg.Palette = DefaultSandConfig().Palette
	case DifficultyHard:
		cfg.Palette = DefaultSandConfig().Palette
		cfg.Simulation.TickRate = 30
		cfg.Simulation.SettleDelay = 3
		cfg.Simulation.FlashCycles = 10
	}
}

// SimConfig converts the YAML view into the simulation's Config and
// validates it.
func (c SandConfig) SimConfig() (core.Config, error) {
	palette, err := core.ParsePalette(c.Palette)
	if err != nil {
		return core.Config{}, fmt.Errorf("config: palette: %w", err)
	}

	sim := core.Config{
		Cols:          c.Grid.Cols,
		Rows:          c.Grid.Rows,
		CellSize:      c.Grid.CellSize,
		SettleDelay:   c.Simulation.SettleDelay,
		FlashCycles:   c.Simulation.FlashCycles,
		FlashToggle:   c.Simulation.FlashToggle,
		DepositRadius: c.Placement.DepositRadius,
		TickRate:      c.Simulation.TickRate,
		Palette:       palette,
	}
	if err := sim.Validate(); err != nil {
		return core.Config{}, fmt.Errorf("config: %w", err)
	}
	return sim, nil
}
