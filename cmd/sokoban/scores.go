package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores <level-id>",
	Short: "Show the best solves of a level",
	Long: `Display the 10 best solves (fewest moves, then fewest pushes) of a level.

Examples:
  sokoban scores 01-first-push
  sokoban scores 01-first-push --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all solves of the level")
}

func runScores(_ *cobra.Command, args []string) {
	levelID := args[0]

	lvl, err := resolveLevel(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'sokoban list' to see available levels.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearSolves(lvl.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared solves of %s.\n", lvl.Title())
		return
	}

	solves, err := store.TopSolves(lvl.ID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		return
	}

	fmt.Printf("Best Solves - %s\n", lvl.Title())
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("Not solved yet.")
		fmt.Println()
		fmt.Printf("Play 'sokoban play %s' to set the first record!\n", lvl.ID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "Rank", "Moves", "Pushes", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %s\n", "----", "-----", "------", "----")

	for i, entry := range solves {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-6d  %s\n", i+1, entry.Moves, entry.Pushes, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetLevelStats(lvl.ID); err == nil {
		fmt.Printf("Solved %d times, average %.1f moves\n", stats.Solves, stats.AvgMoves)
	}
}
