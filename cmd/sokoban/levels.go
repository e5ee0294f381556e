package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels/formats"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// allLevels returns the built-in pack plus the levels directory, if one
// is configured. A directory level replaces a built-in one with the same ID.
func allLevels() ([]levels.Level, error) {
	builtin, err := levels.Builtin().LoadAll()
	if err != nil {
		return nil, fmt.Errorf("loading built-in levels: %w", err)
	}
	if flagLevelsDir == "" {
		return builtin, nil
	}

	extra, err := levels.NewLoader(flagLevelsDir).LoadAll()
	if err != nil {
		return nil, fmt.Errorf("loading levels from %s: %w", flagLevelsDir, err)
	}

	byID := make(map[string]int, len(builtin))
	out := append([]levels.Level(nil), builtin...)
	for i, lvl := range out {
		byID[lvl.ID] = i
	}
	for _, lvl := range extra {
		if i, ok := byID[lvl.ID]; ok {
			out[i] = lvl
			continue
		}
		byID[lvl.ID] = len(out)
		out = append(out, lvl)
	}
	return out, nil
}

// resolveLevel finds the level named by arg: "-" reads a map definition
// from stdin, an existing path is loaded as a map file, anything else is
// looked up by ID.
func resolveLevel(arg string) (levels.Level, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return levels.Level{}, fmt.Errorf("reading map from stdin: %w", err)
		}
		return levels.FromDefinition("stdin", string(data))
	}

	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return loadMapFile(arg)
	}

	all, err := allLevels()
	if err != nil {
		return levels.Level{}, err
	}
	for _, lvl := range all {
		if lvl.ID == arg {
			return lvl, nil
		}
	}
	return levels.Level{}, fmt.Errorf("%w: %s", levels.ErrNotFound, arg)
}

// runLevel returns the level a stored run was played on. A pack level
// with the same ID is used while its map is unchanged; otherwise the level
// is rebuilt from the stored definition, which covers maps read from stdin
// or from files outside any pack.
func runLevel(run *storage.Run) (levels.Level, error) {
	all, err := allLevels()
	if err != nil {
		return levels.Level{}, err
	}
	for _, lvl := range all {
		if lvl.ID == run.LevelID && (run.Definition == "" || lvl.Definition == run.Definition) {
			return lvl, nil
		}
	}
	if run.Definition == "" {
		return levels.Level{}, fmt.Errorf("%w: %s", levels.ErrNotFound, run.LevelID)
	}
	return levels.FromDefinition(run.LevelID, run.Definition)
}

// loadMapFile loads a single map file. Files without a known level
// extension are read as a plain map definition.
func loadMapFile(p string) (levels.Level, error) {
	ext := strings.ToLower(filepath.Ext(p))
	for _, known := range formats.FormatExtensions() {
		if ext == known {
			return levels.NewLoader(filepath.Dir(p)).LoadFile(filepath.Base(p))
		}
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return levels.Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}
	return levels.FromDefinition(strings.TrimSuffix(filepath.Base(p), filepath.Ext(p)), string(data))
}

// gameOptions builds game options from the loaded settings.
func gameOptions(lvl levels.Level) sokoban.Options {
	return sokoban.Options{
		Level:          lvl,
		CellSize:       settings.CellSize,
		MaxUndo:        settings.UndoLevel,
		ReplayInterval: settings.ReplayInterval,
		Logger:         logger,
	}
}

// printLoadError prints a map error with its code and line.
func printLoadError(what string, err error) {
	var le *core.LoadError
	if errors.As(err, &le) {
		fmt.Fprintf(os.Stderr, "Error: invalid map %s: %v\n", what, le)
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
