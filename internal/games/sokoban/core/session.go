package core

// Outcome describes what one issued command did.
type Outcome struct {
	Command Command
	Result  Result // Set for move commands
	Undone  bool   // Undo removed a state
	Reset   bool
	Quit    bool
	Won     bool
}

// Session routes commands to a map and records them in a command log.
// Move and pushes counters cover the play since the last reset; undo does
// not refund them.
type Session struct {
	board  *Map
	log    *CommandLog
	moves  int
	pushes int
	won    bool
	quit   bool
}

// NewSession creates a session. A nil log is treated as inert.
func NewSession(m *Map, log *CommandLog) *Session {
	if log == nil {
		log = NewInertLog()
	}
	return &Session{board: m, log: log}
}

// Map returns the session's map.
func (s *Session) Map() *Map { return s.board }

// Log returns the session's command log.
func (s *Session) Log() *CommandLog { return s.log }

// Moves returns accepted moves since the last reset.
func (s *Session) Moves() int { return s.moves }

// Pushes returns moves that displaced a block or crate since the last reset.
func (s *Session) Pushes() int { return s.pushes }

// Won reports whether the session was won.
func (s *Session) Won() bool { return s.won }

// Quit reports whether a Quit command was issued.
func (s *Session) Quit() bool { return s.quit }

// Over reports whether the session accepts no more commands.
func (s *Session) Over() bool { return s.won || s.quit }

// Issue records cmd and applies it. Commands issued after the session is
// over are ignored and not recorded.
func (s *Session) Issue(cmd Command) Outcome {
	out := Outcome{Command: cmd}
	if s.Over() {
		return out
	}
	s.log.Record(cmd)

	if d, ok := cmd.Dir(); ok {
		out.Result = s.board.Apply(d)
		if out.Result.Moved {
			s.moves++
		}
		if out.Result.Pushed {
			s.pushes++
		}
		if out.Result.Won {
			s.won = true
			out.Won = true
		}
		return out
	}

	switch cmd {
	case CmdUndo:
		out.Undone = s.board.Undo()
	case CmdReset:
		s.board.Reset()
		s.moves = 0
		s.pushes = 0
		out.Reset = true
	case CmdQuit:
		s.quit = true
		out.Quit = true
	}
	return out
}

// Replay feeds every remaining command of log into a fresh session over m
// until the log is exhausted or the session ends. The returned session
// does not record.
func Replay(m *Map, log *CommandLog) *Session {
	s := NewSession(m, NewInertLog())
	for !s.Over() {
		cmd, ok := log.Next()
		if !ok {
			break
		}
		s.Issue(cmd)
	}
	return s
}

// Pacer spaces replayed commands by a fixed number of ticks.
type Pacer struct {
	interval uint64
	last     uint64
	started  bool
}

// NewPacer creates a pacer firing every interval ticks; values below 1
// fire on every tick.
func NewPacer(interval int) *Pacer {
	if interval < 1 {
		interval = 1
	}
	return &Pacer{interval: uint64(interval)}
}

// Due reports whether a command should be issued at tick. Ticks must be
// monotonically increasing.
func (p *Pacer) Due(tick uint64) bool {
	if !p.started {
		if tick < p.interval {
			return false
		}
		p.started = true
		p.last = tick
		return true
	}
	if tick-p.last < p.interval {
		return false
	}
	p.last = tick
	return true
}
