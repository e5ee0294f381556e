package sokoban

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

const hudHeight = 2

// glyph is how one board cell is drawn.
type glyph struct {
	r rune
	c platformcore.Color
}

var (
	glyphWall       = glyph{'█', platformcore.ColorDarkGray}
	glyphEmpty      = glyph{'░', platformcore.ColorLightGray}
	glyphGoal       = glyph{'▒', platformcore.ColorLightYellow}
	glyphBlock      = glyph{'▓', platformcore.ColorBrown}
	glyphSatisfied  = glyph{'▓', platformcore.ColorLightGreen}
	glyphCrate      = glyph{'▚', platformcore.ColorBrown}
	glyphExitClosed = glyph{'█', platformcore.ColorBlack}
	glyphExitOpen   = glyph{'█', platformcore.ColorWhite}
	glyphPlayer     = glyph{'█', platformcore.ColorLightRed}
)

// cellGlyph picks the glyph for a cell. The exit is drawn open once the
// board is solved.
func cellGlyph(cell core.Cell, solved bool) glyph {
	switch cell.Kind {
	case core.KindWall:
		return glyphWall
	case core.KindBlock:
		if cell.Goal {
			return glyphSatisfied
		}
		return glyphBlock
	case core.KindCrate:
		return glyphCrate
	case core.KindExit:
		if solved {
			return glyphExitOpen
		}
		return glyphExitClosed
	default:
		if cell.Goal {
			return glyphGoal
		}
		return glyphEmpty
	}
}

// Render draws the HUD and the board centered below it.
func (g *Game) Render(dst *platformcore.Screen) {
	m := g.session.Map()
	state := m.Current()
	cs := m.CellSize()

	g.renderHUD(dst)

	boardW := m.Width() * cs
	boardH := m.Height()
	area := platformcore.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	if boardW > area.W || boardH > area.H {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", platformcore.ColorRed)
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("need %dx%d", boardW, boardH+hudHeight), platformcore.ColorGray)
		return
	}
	origin := area.Centered(boardW, boardH)

	frame := platformcore.NewRect(origin.X-1, origin.Y-1, boardW+2, boardH+2)
	if area.Contains(frame.X, frame.Y) && area.Contains(frame.Right()-1, frame.Bottom()-1) {
		dst.DrawBox(frame, platformcore.ColorDarkGray)
	}

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			gl := cellGlyph(state.Cell(core.C(x, y)), state.Solved)
			if state.Player == core.C(x, y) {
				gl = glyphPlayer
			}
			for i := 0; i < cs; i++ {
				dst.SetColor(origin.X+x*cs+i, origin.Y+y, gl.r, gl.c)
			}
		}
	}

	if banner, color := g.banner(); banner != "" {
		y := platformcore.Clamp(origin.Bottom()+1, hudHeight, dst.Height()-1)
		dst.DrawTextCentered(y, banner, color)
	}
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	m := g.session.Map()
	left := fmt.Sprintf(" %s  moves %d  pushes %d  goals %d",
		g.Title(), g.session.Moves(), g.session.Pushes(), m.GoalsLeft())
	dst.DrawTextColor(0, 0, left, platformcore.ColorWhite)

	right := fmt.Sprintf("undo %d/%d ", m.HistoryLen()-1, m.MaxUndo()-1)
	switch g.session.Log().Mode() {
	case core.ModeRecording:
		right = "REC  " + right
	case core.ModeReplaying:
		right = fmt.Sprintf("REPLAY %d left  ", g.session.Log().Remaining()) + right
	}
	dst.DrawTextColor(dst.Width()-len([]rune(right)), 0, right, platformcore.ColorGray)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColor(x, 1, '─', platformcore.ColorDarkGray)
	}
}

// banner returns the status line shown under the board.
func (g *Game) banner() (string, platformcore.Color) {
	switch {
	case g.session.Won():
		return "SOLVED! r: play again  q: quit", platformcore.ColorGreen
	case g.session.Quit():
		return "Session ended", platformcore.ColorGray
	case g.exhausted:
		return "Replay finished", platformcore.ColorCyan
	case g.paused:
		return "PAUSED", platformcore.ColorYellow
	case g.session.Map().Solved():
		return "All goals covered, the exit is open", platformcore.ColorLightGreen
	}
	return "", platformcore.ColorDefault
}
