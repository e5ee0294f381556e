package core

// Game is the interface a playable level implements.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing and rendering.
type Game interface {
	// ID returns the identifier of the loaded level.
	// Used for CLI commands and solve storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}

// Finisher is implemented by games that flush state, such as a recording,
// when the session ends. Finish must be safe to call more than once.
type Finisher interface {
	Finish() error
}

// RunSource is implemented by games that can hand out the commands issued
// during the session so the platform can store them.
type RunSource interface {
	// RunLog returns the issued commands in log file format.
	RunLog() string
	// Replaying reports whether the session is driven by a stored log.
	Replaying() bool
	// MapDefinition returns the map the commands were issued against.
	MapDefinition() string
}
