package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the level picker",
	Long: `Start Sokoban in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a level, Tab to see the
best solves. After a level ends, you return to the menu.

Examples:
  sokoban menu
  sokoban menu --levels ./maps
  sokoban menu --db ./solves.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	lvls, err := allLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open solves database", "error", err)
		store = nil
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
	keys := tui.NewKeyMap(settings.KeyBindings)

	for {
		menuResult, err := tui.RunMenu(lvls, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(lvls, store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from the solves board
		}

		lvl, ok := findLevel(lvls, menuResult.LevelID)
		if !ok {
			break
		}

		game, err := sokoban.New(gameOptions(lvl))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if err := tui.Run(game, store, cfg, keys); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}

func findLevel(lvls []levels.Level, id string) (levels.Level, bool) {
	for _, lvl := range lvls {
		if lvl.ID == id {
			return lvl, true
		}
	}
	return levels.Level{}, false
}
