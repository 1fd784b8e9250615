package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sandspan/internal/registry"
	"github.com/vovakirdan/sandspan/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 runs for the given mode, or a summary of every
mode when none is given.

Examples:
  sandspan scores
  sandspan scores sandbox`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		return printSummary(store)
	}

	modeID := args[0]
	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q (run 'sandspan list')", modeID)
	}
	game, err := registry.Create(modeID)
	if err != nil {
		return err
	}

	runs, err := store.TopScores(modeID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sandspan play %s' to set the first high score!\n", modeID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-12s  %s\n", "Rank", "Score", "Spans", "Scene", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-12s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, r := range runs {
		scene := r.Scene
		if scene == "" {
			scene = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-6d  %-12s  %s\n",
			i+1, r.Score, r.Spans, scene, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(modeID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

// printSummary prints one line of totals per mode with recorded runs.
func printSummary(store *storage.Store) error {
	stats, err := store.AllStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-10s  %-5s  %-8s  %-8s  %-6s  %s\n", "Mode", "Runs", "Best", "Avg", "Spans", "Last played")
	for _, g := range registry.List() {
		s, ok := stats[g.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-10s  %-5d  %-8d  %-8.0f  %-6d  %s\n",
			g.ID, s.Runs, s.HighScore, s.AvgScore, s.TotalSpans, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
