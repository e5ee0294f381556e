// Package levels provides level loading for Sokoban.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// ErrNotFound is returned by LoadByID for unknown IDs.
var ErrNotFound = errors.New("level not found")

// Level represents a complete, validated level definition.
type Level struct {
	ID         string
	Name       string
	Author     string
	Definition string
	Width      int
	Height     int
	Goals      int
	Metadata   map[string]string
	FilePath   string
}

// NewMap creates a fresh playable map from the level.
func (l *Level) NewMap(cellSize, maxUndo int) (*core.Map, error) {
	return core.ParseMap(l.Definition, cellSize, maxUndo)
}

// Title returns the display name, falling back to the ID.
func (l *Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// Loader handles loading levels from a file system.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), root: "."}
}

// NewFSLoader creates a loader over root inside fsys.
func NewFSLoader(fsys fs.FS, root string) *Loader {
	return &Loader{fsys: fsys, root: root}
}

// Builtin returns a loader over the level pack compiled into the binary.
func Builtin() *Loader {
	return NewFSLoader(builtinFS, "builtin")
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	levels, _, err := l.scan()
	return levels, err
}

// Check loads every level file and returns the per-file errors of the
// ones that were rejected, keyed by path.
func (l *Loader) Check() (map[string]error, error) {
	_, problems, err := l.scan()
	return problems, err
}

func (l *Loader) scan() ([]Level, map[string]error, error) {
	var levels []Level
	problems := make(map[string]error)

	err := fs.WalkDir(l.fsys, l.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			problems[p] = err
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking directory %s: %w", l.root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, problems, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := path.Ext(p)
	stem := strings.TrimSuffix(path.Base(p), ext)
	parsed, err := formats.Parse(data, ext, stem)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	lvl, err := FromParsed(parsed)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	lvl.FilePath = p
	return lvl, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// FromParsed validates a parsed level file by building its initial state.
func FromParsed(p formats.Level) (Level, error) {
	state, err := core.ParseState(strings.NewReader(p.Definition))
	if err != nil {
		return Level{}, err
	}
	name := p.Name
	if name == "" {
		name = p.ID
	}
	return Level{
		ID:         p.ID,
		Name:       name,
		Author:     p.Author,
		Definition: p.Definition,
		Width:      state.Grid.W,
		Height:     state.Grid.H,
		Goals:      state.Grid.Goals(),
		Metadata:   p.Metadata,
	}, nil
}

// FromDefinition builds a level from a raw map definition, as read from
// a file outside any pack or from stdin.
func FromDefinition(id, definition string) (Level, error) {
	return FromParsed(formats.Level{ID: id, Name: id, Definition: definition})
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
