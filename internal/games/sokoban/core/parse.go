package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Load error codes.
const (
	CodeRead          = "READ"
	CodeBadWidth      = "BAD_WIDTH"
	CodeBadHeight     = "BAD_HEIGHT"
	CodeMissingRow    = "MISSING_ROW"
	CodeShortRow      = "SHORT_ROW"
	CodeLongRow       = "LONG_ROW"
	CodeUnknownCell   = "UNKNOWN_CELL"
	CodeMultipleStart = "MULTIPLE_START"
	CodeMultipleExit  = "MULTIPLE_EXIT"
	CodeMissingStart  = "MISSING_START"
	CodeMissingExit   = "MISSING_EXIT"
	CodeNoGoals       = "NO_GOALS"
	CodeUnbalanced    = "UNBALANCED"
	CodeBadUndoLevel  = "BAD_UNDO_LEVEL"
)

// LoadError describes why a map definition was rejected.
// Line is 1-based and zero when the error is not tied to a line.
type LoadError struct {
	Code    string
	Line    int
	Message string
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] line %d: %s", e.Code, e.Line, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is matches load errors by code, so errors.Is(err, ErrNoGoals) works.
func (e *LoadError) Is(target error) bool {
	t, ok := target.(*LoadError)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is.
var (
	ErrBadWidth      = &LoadError{Code: CodeBadWidth}
	ErrBadHeight     = &LoadError{Code: CodeBadHeight}
	ErrMissingRow    = &LoadError{Code: CodeMissingRow}
	ErrShortRow      = &LoadError{Code: CodeShortRow}
	ErrLongRow       = &LoadError{Code: CodeLongRow}
	ErrUnknownCell   = &LoadError{Code: CodeUnknownCell}
	ErrMultipleStart = &LoadError{Code: CodeMultipleStart}
	ErrMultipleExit  = &LoadError{Code: CodeMultipleExit}
	ErrMissingStart  = &LoadError{Code: CodeMissingStart}
	ErrMissingExit   = &LoadError{Code: CodeMissingExit}
	ErrNoGoals       = &LoadError{Code: CodeNoGoals}
	ErrUnbalanced    = &LoadError{Code: CodeUnbalanced}
	ErrBadUndoLevel  = &LoadError{Code: CodeBadUndoLevel}
)

// Size limits of a map definition. MaxSide bounds both width and height;
// MaxLineBytes bounds a single line including ignored trailing characters.
const (
	MaxSide      = 1000
	MaxLineBytes = 1 << 20
)

func loadErr(code string, line int, format string, args ...any) *LoadError {
	return &LoadError{Code: code, Line: line, Message: fmt.Sprintf(format, args...)}
}

// ParseState parses a map definition into the initial board state.
//
// Format:
//
//	<width>
//	<height>
//	<height rows of at least width characters>
//
// Vocabulary: 's' start, '.' wall, ' ' empty, 'g' goal, 'b' block,
// 'c' crate, 'x' exit. Rows lose only their line terminator, so trailing
// spaces are empty cells; characters past width are ignored.
func ParseState(r io.Reader) (*BoardState, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), MaxLineBytes)
	line := 0

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++
		return sc.Text(), true
	}

	text, ok := next()
	width, err := strconv.Atoi(strings.TrimSpace(text))
	if !ok || err != nil || width <= 0 {
		return nil, loadErr(CodeBadWidth, 1, "can't parse %q as width", text)
	}
	if width > MaxSide {
		return nil, loadErr(CodeBadWidth, 1, "width %d exceeds %d", width, MaxSide)
	}
	text, ok = next()
	height, err := strconv.Atoi(strings.TrimSpace(text))
	if !ok || err != nil || height <= 0 {
		return nil, loadErr(CodeBadHeight, 2, "can't parse %q as height", text)
	}
	if height > MaxSide {
		return nil, loadErr(CodeBadHeight, 2, "height %d exceeds %d", height, MaxSide)
	}

	grid := NewGrid(width, height)
	var (
		player   Coord
		hasStart bool
		hasExit  bool
	)

	for y := 0; y < height; y++ {
		text, ok := next()
		if !ok {
			if err := sc.Err(); errors.Is(err, bufio.ErrTooLong) {
				return nil, loadErr(CodeLongRow, line+1, "row longer than %d bytes", MaxLineBytes)
			} else if err != nil {
				return nil, loadErr(CodeRead, line+1, "read failure: %v", err)
			}
			return nil, loadErr(CodeMissingRow, line+1, "expected %d rows, got %d", height, y)
		}
		row := []rune(text)
		if len(row) < width {
			return nil, loadErr(CodeShortRow, line, "row has %d cells, want %d", len(row), width)
		}
		for x := 0; x < width; x++ {
			var cell Cell
			switch row[x] {
			case 's':
				if hasStart {
					return nil, loadErr(CodeMultipleStart, line, "multiple start points")
				}
				hasStart = true
				player = C(x, y)
				cell = Empty()
			case '.':
				cell = Wall()
			case ' ':
				cell = Empty()
			case 'g':
				cell = GoalCell()
			case 'b':
				cell = Cell{Kind: KindBlock}
			case 'c':
				cell = Cell{Kind: KindCrate}
			case 'x':
				if hasExit {
					return nil, loadErr(CodeMultipleExit, line, "multiple exit points")
				}
				hasExit = true
				cell = Cell{Kind: KindExit}
			default:
				return nil, loadErr(CodeUnknownCell, line, "invalid map character %q", row[x])
			}
			grid.Set(C(x, y), cell)
		}
	}

	if !hasStart {
		return nil, loadErr(CodeMissingStart, 0, "missing start point")
	}
	if !hasExit {
		return nil, loadErr(CodeMissingExit, 0, "missing exit point")
	}
	goals := grid.Goals()
	if goals == 0 {
		return nil, loadErr(CodeNoGoals, 0, "not enough goals")
	}
	if blocks := grid.Blocks(); blocks != goals {
		return nil, loadErr(CodeUnbalanced, 0, "%d goals but %d blocks", goals, blocks)
	}

	return &BoardState{
		Grid:      grid,
		Player:    player,
		GoalsLeft: grid.Unsatisfied(),
	}, nil
}
