package core

import (
	"errors"
	"fmt"
)

// MaxGridSize bounds either grid dimension.
const MaxGridSize = 1000

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("core: invalid config")

// Config holds the simulation constants. Every field may be overridden at
// construction; DefaultConfig returns the reference values.
type Config struct {
	Cols          int     // Grid width in cells
	Rows          int     // Grid height in cells
	CellSize      int     // Pixel size of one cell, for pixel-coordinate placement
	SettleDelay   int     // Idle ticks required before a span scan runs
	FlashCycles   int     // Flash cycles before removal; each cycle is 2 ticks
	FlashToggle   int     // Ticks per highlight/suppress phase while flashing
	DepositRadius int     // Default radius for circular deposits, in cells
	TickRate      int     // Target steps per second for frontends
	Palette       Palette // Colors sand may take
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Cols:          80,
		Rows:          100,
		CellSize:      10,
		SettleDelay:   5,
		FlashCycles:   15,
		FlashToggle:   5,
		DepositRadius: 3,
		TickRate:      20,
		Palette:       DefaultPalette(),
	}
}

// FlashTicks returns the raw tick count a span flashes before removal.
func (c Config) FlashTicks() int {
	return c.FlashCycles * 2
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if err := ValidateSize(c.Cols, c.Rows); err != nil {
		return err
	}
	switch {
	case c.CellSize < 1:
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidConfig, c.CellSize)
	case c.SettleDelay < 0:
		return fmt.Errorf("%w: settle delay must not be negative, got %d", ErrInvalidConfig, c.SettleDelay)
	case c.FlashCycles < 1:
		return fmt.Errorf("%w: flash cycles must be positive, got %d", ErrInvalidConfig, c.FlashCycles)
	case c.FlashToggle < 1:
		return fmt.Errorf("%w: flash toggle must be positive, got %d", ErrInvalidConfig, c.FlashToggle)
	case c.DepositRadius < 0:
		return fmt.Errorf("%w: deposit radius must not be negative, got %d", ErrInvalidConfig, c.DepositRadius)
	case c.TickRate < 1:
		return fmt.Errorf("%w: tick rate must be positive, got %d", ErrInvalidConfig, c.TickRate)
	case len(c.Palette) == 0:
		return fmt.Errorf("%w: palette is empty", ErrInvalidConfig)
	}
	return nil
}

// ValidateSize checks grid dimensions.
func ValidateSize(cols, rows int) error {
	if cols < 1 || cols > MaxGridSize {
		return fmt.Errorf("%w: cols must be in [1,%d], got %d", ErrInvalidConfig, MaxGridSize, cols)
	}
	if rows < 1 || rows > MaxGridSize {
		return fmt.Errorf("%w: rows must be in [1,%d], got %d", ErrInvalidConfig, MaxGridSize, rows)
	}
	return nil
}
