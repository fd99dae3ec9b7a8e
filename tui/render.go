package tui

import (
	"fmt"

	"github.com/automoto/rally/config"
	"github.com/automoto/rally/shared/sim"
	"github.com/gdamore/tcell/v2"
)

const (
	paddleRune = '█'
	ballRune   = '●'
	lineRune   = '│'
)

var (
	tableStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	lineStyle  = tableStyle.Foreground(tcell.ColorGray)
	scoreStyle = tableStyle.Bold(true)
	titleStyle = tableStyle.Foreground(tcell.ColorOrange).Bold(true)
	hintStyle  = tableStyle.Foreground(tcell.ColorGray)
)

// grid maps arena units onto terminal cells below the score row.
type grid struct {
	cols, rows int
	top        int
	sx, sy     float64
}

func newGrid(snap sim.Snapshot, width, height int) grid {
	rows := max(height-1, 1)
	return grid{
		cols: width,
		rows: rows,
		top:  1,
		sx:   float64(width) / float64(snap.ArenaWidth),
		sy:   float64(rows) / float64(snap.ArenaHeight),
	}
}

func (g grid) cell(x, y int) (int, int) {
	return int(float64(x) * g.sx), g.top + int(float64(y)*g.sy)
}

// fill covers every cell r touches, at least one.
func (g grid) fill(screen tcell.Screen, r sim.Rect, ch rune, style tcell.Style) {
	x0, y0 := g.cell(r.Left(), r.Top())
	x1, y1 := g.cell(r.Right(), r.Bottom())
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)
	for y := max(y0, g.top); y < min(y1, g.top+g.rows); y++ {
		for x := max(x0, 0); x < min(x1, g.cols); x++ {
			screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// Draw renders snap onto the whole screen. It does not call Show.
func Draw(screen tcell.Screen, snap sim.Snapshot, muted bool) {
	width, height := screen.Size()
	screen.SetStyle(tableStyle)
	screen.Clear()
	if width <= 0 || height <= 0 {
		return
	}
	g := newGrid(snap, width, height)

	for y := g.top; y < g.top+g.rows; y += 2 {
		screen.SetContent(width/2, y, lineRune, nil, lineStyle)
	}

	g.fill(screen, snap.Player, paddleRune, tableStyle)
	g.fill(screen, snap.Opponent, paddleRune, tableStyle)
	g.fill(screen, snap.Ball, ballRune, tableStyle)

	drawCentered(screen, width/4, 0, fmt.Sprintf("%d", snap.PlayerScore), scoreStyle)
	drawCentered(screen, 3*width/4, 0, fmt.Sprintf("%d", snap.OpponentScore), scoreStyle)
	if snap.Rally > 1 {
		drawCentered(screen, width/2, 0, fmt.Sprintf("Rally %d", snap.Rally), hintStyle)
	}
	if muted {
		drawText(screen, 0, 0, "MUTED", hintStyle)
	}

	if snap.Phase != sim.Playing {
		title, hint := overlayText(snap)
		mid := g.top + g.rows/2
		drawCentered(screen, width/2, mid-1, title, titleStyle)
		drawCentered(screen, width/2, mid+1, hint, hintStyle)
	}
}

func overlayText(snap sim.Snapshot) (title, hint string) {
	title = config.GameOver.PlayerWins
	if snap.HasWinner && snap.Winner == sim.SideOpponent {
		title = config.GameOver.OpponentWins
	}
	hint = config.GameOver.RestartHint
	if snap.Phase == sim.AwaitingReplayChoice {
		hint = config.GameOver.ReplayHint
	}
	return title, hint
}

func drawCentered(screen tcell.Screen, cx, y int, s string, style tcell.Style) {
	drawText(screen, cx-len([]rune(s))/2, y, s, style)
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
