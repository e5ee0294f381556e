package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs [level-id]",
	Short: "List stored runs",
	Long: `List the most recent runs stored in the database, optionally for one level.
Any run can be watched again with 'sokoban play --run <id>'.

Examples:
  sokoban runs
  sokoban runs 01-first-push --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of runs to show")
}

func runRuns(_ *cobra.Command, args []string) {
	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns(levelID, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	if len(runs) == 0 {
		fmt.Println("No runs stored yet.")
		return
	}

	fmt.Printf("  %-36s  %-20s  %-5s  %-4s  %s\n", "ID", "Level", "Moves", "Won", "Date")
	fmt.Printf("  %-36s  %-20s  %-5s  %-4s  %s\n", "--", "-----", "-----", "---", "----")

	for _, run := range runs {
		won := "no"
		if run.Won {
			won = "yes"
		}
		fmt.Printf("  %-36s  %-20s  %-5d  %-4s  %s\n",
			run.ID, run.LevelID, run.Moves, won, run.CreatedAt.Format("2006-01-02 15:04"))
	}
}
