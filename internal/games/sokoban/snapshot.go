package sokoban

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// Snapshot is a plain-text summary of a session, used by the CLI and
// tests.
type Snapshot struct {
	LevelID    string
	Board      string
	Player     core.Coord
	Moves      int
	Pushes     int
	GoalsLeft  int
	HistoryLen int
	Solved     bool
	Won        bool
	Mode       core.Mode
	Hash       uint64 // Fingerprint of the current board state
}

// Snapshot captures the current session.
func (g *Game) Snapshot() Snapshot {
	return Capture(g.ID(), g.session)
}

// Capture summarizes any session.
func Capture(levelID string, s *core.Session) Snapshot {
	m := s.Map()
	return Snapshot{
		LevelID:    levelID,
		Board:      m.String(),
		Player:     m.Player(),
		Moves:      s.Moves(),
		Pushes:     s.Pushes(),
		GoalsLeft:  m.GoalsLeft(),
		HistoryLen: m.HistoryLen(),
		Solved:     m.Solved(),
		Won:        s.Won(),
		Mode:       s.Log().Mode(),
		Hash:       m.Current().Hash(),
	}
}

// String renders the board followed by a status line.
func (s Snapshot) String() string {
	var b strings.Builder
	b.WriteString(s.Board)
	b.WriteString("\n")
	status := "in progress"
	switch {
	case s.Won:
		status = "won"
	case s.Solved:
		status = "solved, exit open"
	}
	fmt.Fprintf(&b, "%s: %s, player %s, %d moves, %d pushes, %d goals left",
		s.LevelID, status, s.Player, s.Moves, s.Pushes, s.GoalsLeft)
	return b.String()
}
