package core_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

func TestCommandRoundTrip(t *testing.T) {
	all := []core.Command{
		core.CmdUp, core.CmdDown, core.CmdLeft, core.CmdRight,
		core.CmdUndo, core.CmdReset, core.CmdQuit,
	}
	for _, cmd := range all {
		got, err := core.ParseCommand(cmd.String())
		require.NoError(t, err)
		assert.Equal(t, cmd, got)
	}
}

func TestParseCommandRejects(t *testing.T) {
	for _, s := range []string{"", "up", "UP", " Up", "Jump"} {
		_, err := core.ParseCommand(s)
		assert.Error(t, err, "token %q", s)
	}
}

func TestCommandDir(t *testing.T) {
	d, ok := core.CmdLeft.Dir()
	require.True(t, ok)
	assert.Equal(t, core.DirLeft, d)

	_, ok = core.CmdUndo.Dir()
	assert.False(t, ok)
}

func TestInertLog(t *testing.T) {
	log := core.NewInertLog()
	log.Record(core.CmdUp)
	assert.Empty(t, log.Commands())
	_, ok := log.Next()
	assert.False(t, ok)
	assert.NoError(t, log.Save())
	assert.Equal(t, core.ModeInert, log.Mode())
}

func TestRecorderSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	log := core.NewRecorder(path)
	log.Record(core.CmdRight)
	log.Record(core.CmdUndo)
	log.Record(core.CmdQuit)

	require.NoError(t, log.Save())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Right\nUndo\nQuit\n", string(data))

	// Saving again overwrites rather than appends.
	require.NoError(t, log.Save())
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Right\nUndo\nQuit\n", string(data))
}

func TestRecorderSaveFailure(t *testing.T) {
	log := core.NewRecorder(filepath.Join(t.TempDir(), "missing", "run.log"))
	log.Record(core.CmdUp)
	assert.Error(t, log.Save())
}

func TestReplayIsFIFO(t *testing.T) {
	log := core.NewReplay([]core.Command{core.CmdUp, core.CmdLeft})
	assert.Equal(t, core.ModeReplaying, log.Mode())
	assert.Equal(t, 2, log.Remaining())

	cmd, ok := log.Next()
	require.True(t, ok)
	assert.Equal(t, core.CmdUp, cmd)
	cmd, ok = log.Next()
	require.True(t, ok)
	assert.Equal(t, core.CmdLeft, cmd)

	_, ok = log.Next()
	assert.False(t, ok)
	assert.Equal(t, 0, log.Remaining())

	log.Record(core.CmdDown)
	assert.Len(t, log.Commands(), 2, "replaying logs do not record")
}

func TestLoadReplay(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.log")
	require.NoError(t, os.WriteFile(good, []byte("Up\r\nDown\nReset\n"), 0o644))
	log, err := core.LoadReplay(good)
	require.NoError(t, err)
	assert.Equal(t, []core.Command{core.CmdUp, core.CmdDown, core.CmdReset}, log.Commands())
	assert.Equal(t, good, log.Path())

	bad := filepath.Join(dir, "bad.log")
	require.NoError(t, os.WriteFile(bad, []byte("Up\nSideways\n"), 0o644))
	_, err = core.LoadReplay(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = core.LoadReplay(filepath.Join(dir, "absent.log"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadCommandsEmpty(t *testing.T) {
	cmds, err := core.ReadCommands(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, cmds)
}

func TestFormatCommands(t *testing.T) {
	got := core.FormatCommands([]core.Command{core.CmdDown, core.CmdRight})
	assert.Equal(t, "Down\nRight\n", got)
}
