// sandspan is a falling-sand puzzle for the terminal, the desktop and SSH.
// Drop colored sand; any single-color region that connects the left wall
// to the right wall blinks and is cleared for points.
//
// Usage:
//
//	sandspan list              - List available modes
//	sandspan play [mode]       - Play a mode in the terminal
//	sandspan menu              - Pick modes interactively
//	sandspan window [mode]     - Play a mode in a desktop window
//	sandspan serve             - Start SSH server for remote play
//	sandspan scores [mode]     - Show high scores for a mode
//	sandspan scenes            - List starting scenes
//
// Global flags:
//
//	--fps <rate>        - Override the configured tick rate
//	--seed <value>      - Set RNG seed for reproducible play
//	--db <path>         - Set database path (default: ~/.sandspan/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/sandspan/internal/games/sandspan"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sandspan",
	Short: "Sandspan - connect the walls with falling sand",
	Long: `Sandspan is a falling-sand puzzle. Colored tetrominoes and sand
deposits fall and pile up; a single-color region touching both side walls
blinks and is removed, and its cells are added to your score.

Available commands:
  list     - Show all available modes
  play     - Play a mode in the terminal
  menu     - Interactive mode picker
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  scenes   - List starting scenes

Examples:
  sandspan play
  sandspan play sandbox --scene staircase
  sandspan window --difficulty hard
  sandspan serve --ssh :2222
  sandspan scores sandspan`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(*cobra.Command, []string) { closeLogging() },
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 20, "Tick rate in steps per second (overrides the config when set)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sandspan/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(scenesCmd)
}
