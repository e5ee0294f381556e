package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	platformcore "github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var (
	flagRecord         string
	flagReplay         string
	flagRunID          string
	flagUndoLevel      int
	flagReplayInterval int
)

var playCmd = &cobra.Command{
	Use:   "play [map|level-id|-]",
	Short: "Play a level",
	Long: `Play a map file, a level by ID, or a map definition read from stdin ("-").

With --run the level is taken from the stored run and the argument may be
omitted.

Controls (configurable in the config file):
  Arrows/WASD/HJKL  - Move
  Backspace/U       - Undo
  R                 - Reset the level (play again after a win)
  P                 - Pause a replay
  Q/Ctrl+C          - Quit
  ?                 - More keys

Examples:
  sokoban play 01-first-push
  sokoban play ./maps/room.txt --record room.log
  sokoban play ./maps/room.txt --replay room.log --replay-interval 5
  sokoban play --run 3f1c0a9e-8f5e-4f0a-9d55-0b6a2f0f8e21
  cat room.txt | sokoban play - --undo-level 64`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record the run to this file")
	playCmd.Flags().StringVar(&flagReplay, "replay", "", "Replay a recorded run file")
	playCmd.Flags().StringVar(&flagRunID, "run", "", "Replay a run stored in the database")
	playCmd.Flags().IntVar(&flagUndoLevel, "undo-level", 0, "Undo history size (overrides config)")
	playCmd.Flags().IntVar(&flagReplayInterval, "replay-interval", 0, "Ticks between replayed commands (overrides config)")
	playCmd.MarkFlagsMutuallyExclusive("record", "replay", "run")
}

func runPlay(cmd *cobra.Command, args []string) {
	if cmd.Flags().Changed("undo-level") {
		settings.UndoLevel = flagUndoLevel
	}
	if flagReplayInterval > 0 {
		settings.ReplayInterval = flagReplayInterval
	}

	// Open solves storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open solves database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	var (
		lvl     levels.Level
		replay  []core.Command
		haveLvl bool
	)

	switch {
	case flagRunID != "" && len(args) == 1:
		closeAndExit(store, func() {
			fmt.Fprintln(os.Stderr, "Error: --run takes the level from the stored run; drop the map argument")
		})
	case flagRunID != "":
		lvl, replay = storedRun(store, flagRunID)
		haveLvl = true
	case len(args) == 1:
		lvl, err = resolveLevel(args[0])
		if err != nil {
			closeAndExit(store, func() { printLoadError(args[0], err) })
		}
		haveLvl = true
	}
	if !haveLvl {
		closeAndExit(store, func() {
			fmt.Fprintln(os.Stderr, "Error: a map, level ID or --run is required")
			fmt.Fprintln(os.Stderr, "Run 'sokoban list' to see available levels.")
		})
	}

	if flagReplay != "" {
		replayLog, loadErr := core.LoadReplay(flagReplay)
		if loadErr != nil {
			closeAndExit(store, func() {
				if errors.Is(loadErr, fs.ErrNotExist) {
					fmt.Fprintf(os.Stderr, "Error: run file %s does not exist\n", flagReplay)
					return
				}
				fmt.Fprintf(os.Stderr, "Error: %v\n", loadErr)
			})
		}
		replay = replayLog.Commands()
	}

	opts := gameOptions(lvl)
	opts.RecordPath = flagRecord
	opts.Replay = replay

	game, err := sokoban.New(opts)
	if err != nil {
		closeAndExit(store, func() { printLoadError(lvl.ID, err) })
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := platformcore.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	runErr := tui.Run(game, store, cfg, tui.NewKeyMap(settings.KeyBindings))

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	st := game.State()
	switch {
	case st.Won:
		fmt.Printf("Solved %s in %d moves, %d pushes.\n", game.Title(), st.Moves, st.Pushes)
	case game.Replaying():
		fmt.Printf("Replay of %s ended after %d moves.\n", game.Title(), st.Moves)
	}
}

// storedRun loads a run from the database and the level it was played on.
func storedRun(store *storage.Store, id string) (levels.Level, []core.Command) {
	if store == nil {
		fmt.Fprintln(os.Stderr, "Error: --run needs the solves database")
		os.Exit(1)
	}

	run, err := store.RunByID(id)
	if err != nil {
		closeAndExit(store, func() { fmt.Fprintf(os.Stderr, "Error: %v\n", err) })
	}
	if run == nil {
		closeAndExit(store, func() { fmt.Fprintf(os.Stderr, "Error: no run with ID %s\n", id) })
	}

	cmds, err := core.ReadCommands(strings.NewReader(run.Commands))
	if err != nil {
		closeAndExit(store, func() { fmt.Fprintf(os.Stderr, "Error: stored run %s: %v\n", id, err) })
	}
	if cmds == nil {
		// An empty run still replays, it just ends at once.
		cmds = []core.Command{}
	}

	lvl, err := runLevel(run)
	if err != nil {
		closeAndExit(store, func() { printLoadError(run.LevelID, err) })
	}
	return lvl, cmds
}

// closeAndExit reports an error, closes the store and exits.
func closeAndExit(store *storage.Store, report func()) {
	report()
	if store != nil {
		store.Close()
	}
	os.Exit(1)
}
