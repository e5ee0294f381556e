// sokoban is a terminal block-pushing puzzle game.
//
// Usage:
//
//	sokoban list                 - List available levels
//	sokoban play <map|level|->   - Play a map file, a level by ID, or a map read from stdin
//	sokoban menu                 - Start the level picker
//	sokoban check <map|dir>      - Validate maps and verify recorded runs
//	sokoban scores <level>       - Show the best solves of a level
//	sokoban runs [level]         - List stored runs
//	sokoban serve                - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--db <path>       - Set database path (default: ~/.sokoban/solves.db)
//	--config <path>   - Use a specific config file
//	--levels <dir>    - Load extra levels from a directory
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagConfig    string
	flagLevelsDir string

	// Loaded in the root pre-run
	settings config.Config
	logger   = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sokoban",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Sokoban - push blocks onto goals in your terminal",
	Long: `Sokoban is a grid puzzle game: push every block onto a goal square,
then walk out through the exit.

Available commands:
  list     - Show all available levels
  play     - Play a level or a map file
  menu     - Interactive level picker
  check    - Validate maps and replay recorded runs
  scores   - View the best solves of a level
  runs     - View stored runs
  serve    - Start SSH server for remote play

Examples:
  sokoban list
  sokoban play 01-first-push
  sokoban play ./maps/room.txt --record room.log
  sokoban play ./maps/room.txt --replay room.log
  sokoban menu --levels ./maps
  sokoban serve --ssh :2222`,
	PersistentPreRun: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sokoban/solves.db", "Path to solves database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with extra level files")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadSettings reads .env, the config file and environment overrides.
// Bad key names only warn; everything else invalid is fatal.
func loadSettings(_ *cobra.Command, _ []string) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("could not load .env", "error", err)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	warnings, err := cfg.Validate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		logger.Warn(w)
	}

	if flagLevelsDir == "" {
		flagLevelsDir = cfg.LevelsDir
	}
	if flagFPS < 1 {
		flagFPS = 60
	}
	settings = cfg
}
