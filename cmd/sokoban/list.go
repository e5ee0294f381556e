package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long: `Shows the built-in levels and the levels found in the --levels directory.

Examples:
  sokoban list
  sokoban list --levels ./maps`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	lvls, err := allLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, lvl := range lvls {
		if len(lvl.ID) > maxIDLen {
			maxIDLen = len(lvl.ID)
		}
	}

	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "ID", "Size", "Goals", "Title")
	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "--", "----", "-----", "-----")

	for _, lvl := range lvls {
		size := fmt.Sprintf("%dx%d", lvl.Width, lvl.Height)
		fmt.Printf("  %-*s  %-7s  %-5d  %s\n", maxIDLen, lvl.ID, size, lvl.Goals, lvl.Title())
	}

	fmt.Println()
	fmt.Println("Run 'sokoban play <id>' to play a level.")
}
