package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for playing one level.
type Model struct {
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	embedded   bool // Running inside a session model; never sends tea.Quit
	leaving    bool // Quit or back was pressed, stop after this tick
	done       bool
	quitting   bool
	saved      bool // Whether the result has been stored for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, store *storage.Store, cfg core.RuntimeConfig, keys KeyMap) Model {
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		keys:       keys,
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// boardHeight leaves one line for the help bar.
func boardHeight(h int) int {
	return core.Max(1, h-1)
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.stop(true)
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)

	if m.gameState.GameOver {
		switch action {
		case core.ActionQuit, core.ActionBack:
			return m.stop(false)
		case core.ActionRestart:
			m.inputFrame.Set(core.ActionRestart)
		}
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		// The game records the quit; the program stops after the tick.
		m.inputFrame.Set(core.ActionQuit)
		m.leaving = true
	case core.ActionBack:
		m.inputFrame.Set(core.ActionQuit)
		m.leaving = true
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// stop ends the game. Standalone models quit the program; embedded ones
// only flag themselves done so the session can return to the menu.
func (m Model) stop(hard bool) (tea.Model, tea.Cmd) {
	m.persist()
	m.done = true
	if m.embedded && !hard {
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

// handleResize adjusts the screen buffer. The board is centered on every
// render, so the game keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, boardHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if f, ok := m.game.(core.Finisher); ok {
			//nolint:errcheck // Finish logs its own failure
			f.Finish()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.saved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.persist()
	}
	if m.leaving {
		return m.stop(false)
	}

	return m, tickCmd(m.config.TickRate)
}

// persist stores the solve and the run once per game over. Replays are
// never stored again.
func (m *Model) persist() {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	replaying := false
	src, hasRun := m.game.(core.RunSource)
	if hasRun {
		replaying = src.Replaying()
	}
	if replaying {
		return
	}

	state := m.game.State()
	if state.Won {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveSolve(m.game.ID(), state.Moves, state.Pushes)
	}
	if hasRun && src.RunLog() != "" {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveRun(m.game.ID(), src.MapDefinition(), src.RunLog(), state.Moves, state.Won)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".sokoban", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the board and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Done reports whether the player left the game.
func (m Model) Done() bool {
	return m.done
}

// IsQuitting reports whether the player asked to leave the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a game. The recording, if any, is
// saved once the program has left the alternate screen.
func Run(game core.Game, store *storage.Store, cfg core.RuntimeConfig, keys KeyMap) error {
	model := NewModel(game, store, cfg, keys)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()

	if f, ok := game.(core.Finisher); ok {
		//nolint:errcheck // Finish logs its own failure
		f.Finish()
	}
	return err
}
