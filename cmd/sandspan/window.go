package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sandspan/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play a mode in a desktop window",
	Long: `Open a desktop window with one square of grid.cell_size pixels per
cell. The grid keeps its configured size.

Controls:
  Left click         - Drop (mode-dependent)
  Shift/Middle click - Drop a tetromino of the selected color
  Right click / C    - Next color
  X                  - Clear the board
  G                  - Toggle grid lines
  P                  - Pause
  R                  - Restart (saves the run)
  Q/Esc              - Quit (saves the run)

Examples:
  sandspan window
  sandspan window sandbox --scene staircase`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	addGameFlags(windowCmd)
}

func runWindow(cmd *cobra.Command, args []string) error {
	mode, err := modeFromArgs(args)
	if err != nil {
		return err
	}
	if err := configureGame(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := window.Options{
		Store:  store,
		Logger: logger,
		Seed:   flagSeed,
	}
	if cmd.Flags().Changed("fps") {
		opts.TickRate = flagFPS
	}
	if cues := openCues(); cues != nil {
		defer cues.Close()
		opts.Cues = cues
	}

	return window.Run(mode, opts)
}
