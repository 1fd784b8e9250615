package config

import (
	_ "embed"
)

//go:embed defaults/sand.yaml
var defaultSandYAML []byte

// DefaultSandConfig returns the built-in configuration. It matches the
// embedded defaults/sand.yaml.
func DefaultSandConfig() SandConfig {
	return SandConfig{
		Grid: SandGrid{
			Cols:     80,
			Rows:     100,
			CellSize: 10,
		},
		Simulation: SandSimulation{
			TickRate:    20,
			SettleDelay: 5,
			FlashCycles: 15,
			FlashToggle: 5,
		},
		Placement: SandPlacement{
			DepositRadius: 3,
		},
		Palette: []string{"red", "green", "blue", "yellow", "magenta"},
		Display: SandDisplay{
			FitToWindow: true,
			ShowGrid:    false,
		},
		Sound: SandSound{
			Enabled: false,
			Volume:  0.3,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSandYAML
}
