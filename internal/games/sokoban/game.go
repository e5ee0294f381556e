// Package sokoban adapts the board engine to the platform Game interface:
// it maps input actions to commands, paces replays and renders the board.
package sokoban

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

// Options configures a game.
type Options struct {
	Level          levels.Level
	CellSize       int
	MaxUndo        int
	ReplayInterval int            // Ticks between replayed commands
	RecordPath     string         // Record live input to this file
	Replay         []core.Command // Drive the session from these commands
	Logger         *log.Logger
}

// Game implements platformcore.Game for one Sokoban level.
type Game struct {
	opts    Options
	logger  *log.Logger
	session *core.Session
	pacer   *core.Pacer
	issued  []core.Command

	take      int // Recording number, advanced by a Reset after Finish
	tick      uint64
	paused    bool
	exhausted bool // Replay ran out of commands
	finished  bool
	screenW   int
	screenH   int
}

// New validates the options and creates a game. The board is built on
// the first Reset.
func New(opts Options) (*Game, error) {
	if opts.RecordPath != "" && opts.Replay != nil {
		return nil, fmt.Errorf("sokoban: cannot record and replay at the same time")
	}
	if opts.CellSize < 1 {
		opts.CellSize = 2
	}
	if opts.MaxUndo == 0 {
		opts.MaxUndo = core.DefaultMaxUndo
	}
	if opts.ReplayInterval < 1 {
		opts.ReplayInterval = 1
	}
	if _, err := opts.Level.NewMap(opts.CellSize, opts.MaxUndo); err != nil {
		return nil, fmt.Errorf("sokoban: level %s: %w", opts.Level.ID, err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	g := &Game{opts: opts, logger: logger, take: 1}
	switch {
	case opts.RecordPath != "":
		logger.Info("new run", "level", opts.Level.ID, "path", opts.RecordPath)
	case opts.Replay != nil:
		logger.Info("loading run", "level", opts.Level.ID, "commands", len(opts.Replay))
	}
	g.reset()
	return g, nil
}

// ID returns the level identifier.
func (g *Game) ID() string {
	return g.opts.Level.ID
}

// Title returns the level display name.
func (g *Game) Title() string {
	return g.opts.Level.Title()
}

// Reset starts the level over with a fresh map and command log. A replay
// restarts from its first command; a recording starts empty.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.reset()
}

func (g *Game) reset() {
	// New already validated the level, so this cannot fail.
	m, _ := g.opts.Level.NewMap(g.opts.CellSize, g.opts.MaxUndo)

	if g.finished && g.opts.RecordPath != "" {
		g.take++
		g.logger.Info("new run", "level", g.opts.Level.ID, "path", recordPath(g.opts.RecordPath, g.take))
	}

	var cmdLog *core.CommandLog
	switch {
	case g.opts.RecordPath != "":
		cmdLog = core.NewRecorder(recordPath(g.opts.RecordPath, g.take))
	case g.opts.Replay != nil:
		cmdLog = core.NewReplay(g.opts.Replay)
	default:
		cmdLog = core.NewInertLog()
	}

	g.session = core.NewSession(m, cmdLog)
	g.pacer = core.NewPacer(g.opts.ReplayInterval)
	g.issued = g.issued[:0]
	g.tick = 0
	g.paused = false
	g.exhausted = false
	g.finished = false
}

// Step advances one tick. Live sessions apply every action of the frame
// in order; replays ignore movement input and issue the next logged
// command every ReplayInterval ticks.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	if g.over() {
		return platformcore.StepResult{State: g.State()}
	}

	if g.Replaying() {
		g.stepReplay(in)
	} else {
		for _, a := range in.Actions {
			if g.session.Over() {
				break
			}
			if cmd, ok := CommandForAction(a); ok {
				g.issue(cmd)
			}
		}
	}

	return platformcore.StepResult{State: g.State()}
}

func (g *Game) stepReplay(in platformcore.InputFrame) {
	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(platformcore.ActionQuit) {
		g.issue(core.CmdQuit)
		return
	}
	if g.paused || !g.pacer.Due(g.tick) {
		return
	}
	cmd, ok := g.session.Log().Next()
	if !ok {
		g.exhausted = true
		return
	}
	g.issue(cmd)
}

func (g *Game) issue(cmd core.Command) core.Outcome {
	if !g.session.Over() && !g.Replaying() {
		g.issued = append(g.issued, cmd)
	}
	return g.session.Issue(cmd)
}

// Issue applies a single command outside the tick loop.
func (g *Game) Issue(cmd core.Command) core.Outcome {
	return g.issue(cmd)
}

func (g *Game) over() bool {
	return g.session.Over() || g.exhausted
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Moves:    g.session.Moves(),
		Pushes:   g.session.Pushes(),
		Won:      g.session.Won(),
		GameOver: g.over(),
		Paused:   g.paused,
	}
}

// Replaying reports whether the session is driven by a stored log.
func (g *Game) Replaying() bool {
	return g.session.Log().Mode() == core.ModeReplaying
}

// Session exposes the underlying session.
func (g *Game) Session() *core.Session {
	return g.session
}

// Commands returns the commands issued by the player since the last reset.
func (g *Game) Commands() []core.Command {
	out := make([]core.Command, len(g.issued))
	copy(out, g.issued)
	return out
}

// MapDefinition returns the level's map definition text.
func (g *Game) MapDefinition() string {
	return g.opts.Level.Definition
}

// RunLog returns the issued commands in log file format.
func (g *Game) RunLog() string {
	return core.FormatCommands(g.issued)
}

// Finish saves the recording, if any. A failed save is reported and
// returned but never interrupts the game.
func (g *Game) Finish() error {
	if g.finished {
		return nil
	}
	g.finished = true

	if err := g.session.Log().Save(); err != nil {
		g.logger.Error("can't save run", "path", g.session.Log().Path(), "err", err)
		return err
	}
	return nil
}

// recordPath names the file of a recording take. The first take keeps
// base; later ones get a -N suffix before the extension.
func recordPath(base string, take int) string {
	if take < 2 {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(base, ext), take, ext)
}

// CommandForAction maps a platform action to an engine command.
func CommandForAction(a platformcore.Action) (core.Command, bool) {
	switch a {
	case platformcore.ActionUp:
		return core.CmdUp, true
	case platformcore.ActionDown:
		return core.CmdDown, true
	case platformcore.ActionLeft:
		return core.CmdLeft, true
	case platformcore.ActionRight:
		return core.CmdRight, true
	case platformcore.ActionUndo:
		return core.CmdUndo, true
	case platformcore.ActionRestart:
		return core.CmdReset, true
	case platformcore.ActionQuit:
		return core.CmdQuit, true
	default:
		return 0, false
	}
}

var (
	_ platformcore.Game      = (*Game)(nil)
	_ platformcore.Finisher  = (*Game)(nil)
	_ platformcore.RunSource = (*Game)(nil)
)
