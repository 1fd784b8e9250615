package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sandspan/internal/platform/tui"
	"github.com/vovakirdan/sandspan/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start Sandspan in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode, Tab for scores.
B or Esc in a game saves the run and returns to the menu.

Examples:
  sandspan menu
  sandspan menu --difficulty easy
  sandspan menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(cmd *cobra.Command, _ []string) error {
	if err := configureGame(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{Logger: logger, AllowBack: true}
	if cues := openCues(); cues != nil {
		defer cues.Close()
		opts.Cues = cues
	}

	cfg := runtimeConfig(cmd)
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("cannot create mode", "mode", result.GameID, "err", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, store, cfg, opts); err != nil {
			return err
		}
	}
}
