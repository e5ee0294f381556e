package core_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

var room = []string{
	".......",
	".s b  .",
	".  g c.",
	". g b .",
	".....x.",
}

func TestSessionCounters(t *testing.T) {
	m := mustMap(t, 16, room...)
	s := core.NewSession(m, nil)

	out := s.Issue(core.CmdRight)
	assert.True(t, out.Result.Moved)
	assert.False(t, out.Result.Pushed)
	out = s.Issue(core.CmdRight)
	assert.True(t, out.Result.Pushed)
	assert.Equal(t, 2, s.Moves())
	assert.Equal(t, 1, s.Pushes())

	out = s.Issue(core.CmdUp)
	assert.False(t, out.Result.Moved)
	assert.Equal(t, 2, s.Moves(), "blocked moves are not counted")

	out = s.Issue(core.CmdUndo)
	assert.True(t, out.Undone)
	assert.Equal(t, 2, s.Moves(), "undo does not refund moves")

	out = s.Issue(core.CmdReset)
	assert.True(t, out.Reset)
	assert.Equal(t, 0, s.Moves())
	assert.Equal(t, 0, s.Pushes())
}

func TestSessionQuitStopsInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	log := core.NewRecorder(path)
	s := core.NewSession(mustMap(t, 16, room...), log)

	s.Issue(core.CmdRight)
	out := s.Issue(core.CmdQuit)
	assert.True(t, out.Quit)
	assert.True(t, s.Over())

	s.Issue(core.CmdDown)
	assert.Equal(t, []core.Command{core.CmdRight, core.CmdQuit}, log.Commands())
	assert.Equal(t, core.C(2, 1), s.Map().Player())
}

func TestSessionWin(t *testing.T) {
	s := core.NewSession(mustMap(t, 16, "xsbg."), core.NewInertLog())
	s.Issue(core.CmdRight)
	s.Issue(core.CmdLeft)
	out := s.Issue(core.CmdLeft)
	assert.True(t, out.Won)
	assert.True(t, s.Won())
	assert.True(t, s.Over())

	out = s.Issue(core.CmdRight)
	assert.False(t, out.Result.Moved, "input after a win is ignored")
}

func TestReplayDeterminism(t *testing.T) {
	cmds := []core.Command{
		core.CmdRight, core.CmdRight, core.CmdDown, core.CmdUndo,
		core.CmdLeft, core.CmdDown, core.CmdRight, core.CmdUp,
		core.CmdReset, core.CmdRight, core.CmdDown, core.CmdDown,
	}

	a := core.Replay(mustMap(t, 4, room...), core.NewReplay(cmds))
	b := core.Replay(mustMap(t, 4, room...), core.NewReplay(cmds))

	assert.True(t, a.Map().Current().Equal(b.Map().Current()))
	assert.Equal(t, a.Map().Current().Hash(), b.Map().Current().Hash())
	assert.Equal(t, a.Map().HistoryLen(), b.Map().HistoryLen())
	assert.Equal(t, a.Moves(), b.Moves())
}

func TestRecordThenReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	live := core.NewSession(mustMap(t, 16, room...), core.NewRecorder(path))

	for _, cmd := range []core.Command{
		core.CmdRight, core.CmdRight, core.CmdDown, core.CmdUndo,
		core.CmdDown, core.CmdLeft, core.CmdLeft, core.CmdDown,
	} {
		live.Issue(cmd)
	}
	require.NoError(t, live.Log().Save())

	log, err := core.LoadReplay(path)
	require.NoError(t, err)
	replayed := core.Replay(mustMap(t, 16, room...), log)

	assert.True(t, live.Map().Current().Equal(replayed.Map().Current()))
	assert.Equal(t, live.Moves(), replayed.Moves())
	assert.Equal(t, live.Pushes(), replayed.Pushes())
	assert.Equal(t, 0, log.Remaining())
}

func TestReplayStopsAtWin(t *testing.T) {
	log := core.NewReplay([]core.Command{
		core.CmdRight, core.CmdLeft, core.CmdLeft, core.CmdRight, core.CmdRight,
	})
	s := core.Replay(mustMap(t, 16, "xsbg."), log)
	assert.True(t, s.Won())
	assert.Equal(t, 2, log.Remaining())
	assert.Equal(t, core.C(0, 0), s.Map().Player())
}

func TestPacer(t *testing.T) {
	p := core.NewPacer(3)
	var fired []uint64
	for tick := uint64(0); tick <= 10; tick++ {
		if p.Due(tick) {
			fired = append(fired, tick)
		}
	}
	assert.Equal(t, []uint64{3, 6, 9}, fired)

	every := core.NewPacer(0)
	assert.True(t, every.Due(1))
	assert.True(t, every.Due(2))
}
