package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sandspan/internal/config"
	"github.com/vovakirdan/sandspan/internal/core"
	"github.com/vovakirdan/sandspan/internal/games/sandspan"
	"github.com/vovakirdan/sandspan/internal/games/sandspan/scenes"
	"github.com/vovakirdan/sandspan/internal/platform/audio"
	"github.com/vovakirdan/sandspan/internal/registry"
	"github.com/vovakirdan/sandspan/internal/storage"
)

// Game flags shared by play, menu and window.
var (
	flagConfig     string
	flagDifficulty string
	flagScene      string
	flagScenesDir  string
	flagSound      bool
)

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().StringVar(&flagScene, "scene", "", "Starting scene ID (see 'sandspan scenes')")
	cmd.Flags().StringVar(&flagScenesDir, "scenes-dir", config.UserPath("scenes"), "Directory of user scene files")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues (overrides the config)")
}

// configureGame validates the game flags and hands them to the game package.
func configureGame() error {
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}
	if flagConfig != "" {
		if _, err := config.LoadSand(flagConfig); err != nil {
			return err
		}
	}
	if flagScene != "" {
		if _, err := scenes.Find(flagScenesDir, flagScene); err != nil {
			return fmt.Errorf("%w (run 'sandspan scenes' to list them)", err)
		}
	}

	sandspan.SetConfigPath(flagConfig)
	sandspan.SetDifficultyPreset(flagDifficulty)
	sandspan.SetScene(flagScene, flagScenesDir)
	return nil
}

// modeFromArgs resolves the optional mode argument through the registry.
func modeFromArgs(args []string) (sandspan.Mode, error) {
	id := ""
	if len(args) > 0 {
		id = args[0]
	}
	info, err := registry.Resolve(id)
	if err != nil {
		return 0, err
	}
	mode, ok := sandspan.ModeByID(info.ID)
	if !ok {
		return 0, fmt.Errorf("mode %q is not a sand mode", info.ID)
	}
	return mode, nil
}

// runtimeConfig builds the platform config from the terminal and flags.
// A zero tick rate lets the game use its configured rate.
func runtimeConfig(cmd *cobra.Command) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}
	if cmd.Flags().Changed("fps") {
		cfg.TickRate = flagFPS
	}
	return cfg
}

// openStore opens the score database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores will not be saved", "err", err)
		return nil
	}
	return store
}

// openCues starts audio when enabled by flag or config. It returns nil
// when sound is off or no device is available.
func openCues() *audio.Player {
	cfg, err := config.LoadSand(flagConfig)
	if err != nil {
		cfg = config.DefaultSandConfig()
	}
	if !flagSound && !cfg.Sound.Enabled {
		return nil
	}

	player := audio.NewPlayer(cfg.Sound.Volume)
	if err := player.Init(); err != nil {
		logger.Warn("sound disabled", "err", err)
		return nil
	}
	return player
}
