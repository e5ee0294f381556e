package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Mode is the state of a command log.
type Mode uint8

const (
	ModeInert Mode = iota
	ModeRecording
	ModeReplaying
)

// String returns the string representation of a mode.
func (m Mode) String() string {
	switch m {
	case ModeInert:
		return "inert"
	case ModeRecording:
		return "recording"
	case ModeReplaying:
		return "replaying"
	default:
		return "unknown"
	}
}

// CommandLog is an ordered command sequence that is either being recorded
// from live input, consumed FIFO during replay, or inert.
type CommandLog struct {
	mode Mode
	path string
	cmds []Command
	pos  int // Next command to replay
}

// NewInertLog returns a log that records and saves nothing.
func NewInertLog() *CommandLog {
	return &CommandLog{mode: ModeInert}
}

// NewRecorder returns a recording log persisted to path on Save.
func NewRecorder(path string) *CommandLog {
	return &CommandLog{
		mode: ModeRecording,
		path: path,
		cmds: make([]Command, 0, 256),
	}
}

// NewReplay returns a replaying log over the given commands.
func NewReplay(cmds []Command) *CommandLog {
	replay := make([]Command, len(cmds))
	copy(replay, cmds)
	return &CommandLog{mode: ModeReplaying, cmds: replay}
}

// LoadReplay reads a persisted log for replay. Any unreadable line or
// unknown token fails the whole load.
func LoadReplay(path string) (*CommandLog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening run %s: %w", path, err)
	}
	defer f.Close()

	cmds, err := ReadCommands(f)
	if err != nil {
		return nil, fmt.Errorf("loading run %s: %w", path, err)
	}
	log := NewReplay(cmds)
	log.path = path
	return log, nil
}

// ReadCommands parses one canonical token per line.
func ReadCommands(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		cmd, err := ParseCommand(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cmds, nil
}

// WriteCommands writes one canonical token per line.
func WriteCommands(w io.Writer, cmds []Command) error {
	bw := bufio.NewWriter(w)
	for _, cmd := range cmds {
		if _, err := bw.WriteString(cmd.String() + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// FormatCommands returns the log file text for cmds.
func FormatCommands(cmds []Command) string {
	var sb strings.Builder
	//nolint:errcheck // strings.Builder never fails
	WriteCommands(&sb, cmds)
	return sb.String()
}

// Mode returns the log mode.
func (l *CommandLog) Mode() Mode { return l.mode }

// Path returns the file the log was loaded from or will be saved to.
func (l *CommandLog) Path() string { return l.path }

// Record appends a command when recording.
func (l *CommandLog) Record(cmd Command) {
	if l.mode != ModeRecording {
		return
	}
	l.cmds = append(l.cmds, cmd)
}

// Next dequeues the next replayed command. ok is false once the replay is
// exhausted or the log is not replaying.
func (l *CommandLog) Next() (cmd Command, ok bool) {
	if l.mode != ModeReplaying || l.pos >= len(l.cmds) {
		return 0, false
	}
	cmd = l.cmds[l.pos]
	l.pos++
	return cmd, true
}

// Remaining returns the number of commands left to replay.
func (l *CommandLog) Remaining() int {
	if l.mode != ModeReplaying {
		return 0
	}
	return len(l.cmds) - l.pos
}

// Commands returns a copy of the recorded or loaded commands.
func (l *CommandLog) Commands() []Command {
	out := make([]Command, len(l.cmds))
	copy(out, l.cmds)
	return out
}

// Save writes a recording to its path, overwriting the file. Inert and
// replaying logs save nothing.
func (l *CommandLog) Save() error {
	if l.mode != ModeRecording {
		return nil
	}
	f, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("creating run %s: %w", l.path, err)
	}
	if err := WriteCommands(f, l.cmds); err != nil {
		f.Close()
		return fmt.Errorf("writing run %s: %w", l.path, err)
	}
	return f.Close()
}
