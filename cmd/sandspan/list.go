package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sandspan/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows every registered Sandspan mode.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-10s %s\n", maxIDLen, "ID", "Title", "Description")
	fmt.Printf("  %-*s  %-10s %s\n", maxIDLen, "--", "-----", "-----------")
	for _, g := range games {
		title := g.Title
		if g.Default {
			title += "*"
		}
		fmt.Printf("  %-*s  %-10s %s\n", maxIDLen, g.ID, title, g.Description)
	}

	fmt.Println()
	fmt.Println("* default mode. Run 'sandspan play <id>' to play a mode.")
}
