package core

import "fmt"

// Command is a discrete player command, as issued live or replayed.
type Command uint8

const (
	CmdUp Command = iota
	CmdDown
	CmdLeft
	CmdRight
	CmdUndo
	CmdReset
	CmdQuit
)

// String returns the canonical token used in command log files.
func (c Command) String() string {
	switch c {
	case CmdUp:
		return "Up"
	case CmdDown:
		return "Down"
	case CmdLeft:
		return "Left"
	case CmdRight:
		return "Right"
	case CmdUndo:
		return "Undo"
	case CmdReset:
		return "Reset"
	case CmdQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseCommand parses a canonical command token. Matching is exact.
func ParseCommand(s string) (Command, error) {
	switch s {
	case "Up":
		return CmdUp, nil
	case "Down":
		return CmdDown, nil
	case "Left":
		return CmdLeft, nil
	case "Right":
		return CmdRight, nil
	case "Undo":
		return CmdUndo, nil
	case "Reset":
		return CmdReset, nil
	case "Quit":
		return CmdQuit, nil
	default:
		return 0, fmt.Errorf("unknown command: %s", s)
	}
}

// Dir returns the direction of a move command.
func (c Command) Dir() (Dir, bool) {
	switch c {
	case CmdUp:
		return DirUp, true
	case CmdDown:
		return DirDown, true
	case CmdLeft:
		return DirLeft, true
	case CmdRight:
		return DirRight, true
	default:
		return 0, false
	}
}
