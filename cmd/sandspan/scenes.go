package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sandspan/internal/config"
	"github.com/vovakirdan/sandspan/internal/games/sandspan/scenes"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List starting scenes",
	Long: `List the bundled scenes and any user scenes found in --scenes-dir.
A user scene with the same ID replaces the bundled one.

Examples:
  sandspan scenes
  sandspan play --scene staircase`,
	RunE: runScenes,
}

var flagListScenesDir string

func init() {
	scenesCmd.Flags().StringVar(&flagListScenesDir, "scenes-dir", config.UserPath("scenes"), "Directory of user scene files")
}

func runScenes(_ *cobra.Command, _ []string) error {
	all, err := scenes.Catalog(flagListScenesDir)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No scenes available.")
		return nil
	}

	maxIDLen := 2
	for _, sc := range all {
		maxIDLen = max(maxIDLen, len(sc.ID))
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Size", "Description")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "-----------")
	for _, sc := range all {
		size := fmt.Sprintf("%dx%d", sc.Cols, sc.Rows)
		desc := sc.Description
		if desc == "" {
			desc = sc.Name
		}
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, sc.ID, size, desc)
	}

	fmt.Println()
	fmt.Println("Run 'sandspan play --scene <id>' to start from a scene.")
	return nil
}
