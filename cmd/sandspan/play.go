package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sandspan/internal/platform/tui"
	"github.com/vovakirdan/sandspan/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode in the terminal",
	Long: `Start playing the given mode (default: sandspan).

Modes:
  sandspan  - Left click drops a random tetromino in a random color
  sandbox   - Left click drops a circle of the selected color;
              middle or shift+click drops a tetromino of that color

Controls:
  Mouse        - Left: drop, Right: next color
  Arrows/WASD  - Move the drop cursor, Space/Enter drops
  C            - Next color
  X            - Clear the board
  F            - Fit the board to the terminal
  G            - Toggle grid dots
  P            - Pause
  R            - Restart (saves the run)
  ?            - More help
  Q/Ctrl+C     - Quit (saves the run)

Difficulty options:
  easy   - Three colors
  normal - Five colors
  hard   - Five colors, faster clock, shorter settle delay

Examples:
  sandspan play
  sandspan play sandbox
  sandspan play --scene near-span
  sandspan play --difficulty easy --sound
  sandspan play --config ./my-sand.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	mode, err := modeFromArgs(args)
	if err != nil {
		return err
	}
	if err := configureGame(); err != nil {
		return err
	}

	game, err := registry.Create(mode.ID())
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{Logger: logger}
	if cues := openCues(); cues != nil {
		defer cues.Close()
		opts.Cues = cues
	}

	return tui.Run(game, store, runtimeConfig(cmd), opts)
}
