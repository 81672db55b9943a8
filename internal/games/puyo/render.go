package puyo

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-puyo/internal/core"
	"github.com/vovakirdan/tui-puyo/internal/games/puyo/engine"
)

const (
	cellW     = 2  // Screen columns per board column
	hudW      = 20 // Side panel width
	hudGap    = 2
	topMargin = 2 // HUD line and separator
)

// layout is the screen placement of the board for one frame.
type layout struct {
	board core.Rect // Outer frame including the border
	hud   core.Rect
}

func (g *Game) layout(w, h int) (layout, bool) {
	boardW := g.rules.Cols*cellW + 2
	boardH := g.rules.VisibleRows() + 2
	totalW := boardW + hudGap + hudW
	if w < totalW || h < boardH+topMargin+1 {
		return layout{}, false
	}
	x := (w - totalW) / 2
	return layout{
		board: core.NewRect(x, topMargin, boardW, boardH),
		hud:   core.NewRect(x+boardW+hudGap, topMargin, hudW, boardH),
	}, true
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.screenW, g.screenH = dst.Width(), dst.Height()

	s := g.eng.State()
	d := s.Display()

	g.renderTitle(dst, d)

	lay, ok := g.layout(dst.Width(), dst.Height())
	if !ok {
		g.renderOverlay(dst, dst.Bounds(), "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst, lay.board, d)
	g.renderHUD(dst, lay.hud, d, s.Settings)
	g.renderHelp(dst, lay.board.Bottom())

	switch d.Phase {
	case engine.PhaseIdle:
		g.renderOverlay(dst, lay.board, "PUYO", "Enter to start")
	case engine.PhasePaused:
		g.renderOverlay(dst, lay.board, "Paused", "P to resume")
	case engine.PhaseGameOver:
		g.renderOverlay(dst, lay.board, "Game Over", fmt.Sprintf("Score %d", d.Score), "R to restart")
	}
}

// renderTitle draws the top status line and separator.
func (g *Game) renderTitle(dst *core.Screen, d engine.Display) {
	title := fmt.Sprintf(" Puyo | Score: %d  Level: %d", d.Score, d.Level+1)
	if d.Chain > 1 {
		title += fmt.Sprintf("  %d chain!", d.Chain)
	}
	dst.DrawText(0, 0, title)
	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// renderBoard draws the frame and the visible rows of the board.
func (g *Game) renderBoard(dst *core.Screen, r core.Rect, d engine.Display) {
	dst.DrawBox(r, core.ColorGray)

	blinkOff := d.Phase == engine.PhasePopping && g.blinkPhase()
	hidden := g.rules.HiddenRows

	for row := hidden; row < d.Board.Rows(); row++ {
		y := r.Y + 1 + row - hidden
		for col := 0; col < d.Board.Cols(); col++ {
			x := r.X + 1 + col*cellW
			cell := d.Board.At(row, col)
			if !cell.Occupied() {
				dst.SetColored(x, y, ' ', core.ColorDefault)
				dst.SetColored(x+1, y, ' ', core.ColorDefault)
				continue
			}

			color := puyoColor(cell.Color)
			var left, right rune
			switch {
			case cell.State == engine.CellGhost:
				left, right = '·', '·'
				color = color.Dim()
			case cell.State == engine.CellFalling:
				left, right = '(', ')'
			case d.IsPopping(row, col):
				if blinkOff {
					continue
				}
				left, right = '*', '*'
			default:
				left, right = settledGlyphs(d.Masks[row][col])
			}
			dst.SetColored(x, y, left, color)
			dst.SetColored(x+1, y, right, color)
		}
	}
}

// settledGlyphs picks the two half-cell runes for a settled puyo so that
// same-colored neighbors visually join: horizontal links fill the touching
// half, vertical links square off the edges.
func settledGlyphs(m engine.Mask) (rune, rune) {
	left, right := '(', ')'
	if m&(engine.MaskUp|engine.MaskDown) != 0 {
		left, right = '[', ']'
	}
	if m&engine.MaskLeft != 0 {
		left = '█'
	}
	if m&engine.MaskRight != 0 {
		right = '█'
	}
	return left, right
}

// blinkPhase toggles roughly ten times a second.
func (g *Game) blinkPhase() bool {
	period := uint64(max(1, g.rcfg.TickRate/10))
	return (g.tick/period)%2 == 1
}

// renderHUD draws the side panel.
func (g *Game) renderHUD(dst *core.Screen, r core.Rect, d engine.Display, st engine.Settings) {
	y := r.Y
	line := func(label string, value any) {
		dst.DrawTextColored(r.X, y, label, core.ColorGray)
		dst.DrawText(r.X+9, y, fmt.Sprint(value))
		y++
	}

	line("Score", d.Score)
	line("Best", max(d.Score, bestScore(d.HighScores)))
	line("Level", d.Level+1)
	line("Chain", d.Chain)
	line("Max", d.MaxChain)
	y++

	dst.DrawTextColored(r.X, y, "Next", core.ColorGray)
	y++
	if d.Phase != engine.PhaseIdle {
		for i, p := range d.Next {
			x := r.X + i*(cellW+2)
			axis, child := puyoColor(p.AxisColor), puyoColor(p.ChildColor)
			if i > 0 {
				axis, child = axis.Dim(), child.Dim()
			}
			dst.DrawTextColored(x, y, "()", child)
			dst.DrawTextColored(x, y+1, "()", axis)
		}
	}
	y += 3

	ghost := "off"
	if st.ShowGhost {
		ghost = "on"
	}
	line("Ghost", ghost)
	line("Sound", fmt.Sprintf("%d%%", int(st.SFXVolume*100+0.5)))
}

// renderHelp draws the key hints under the board.
func (g *Game) renderHelp(dst *core.Screen, y int) {
	if y >= dst.Height() {
		return
	}
	help := "←→ move  ↑/x z rotate  ↓ soft  space drop  g ghost  +/- vol  p pause"
	if utf8.RuneCountInString(help) > dst.Width() {
		help = "←→ move ↑z rotate space drop p pause"
	}
	dst.DrawTextCentered(y, help, core.ColorGray)
}

// renderOverlay draws a box with centered lines inside area.
func (g *Game) renderOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(l))
	}
	box := area.CenterIn(maxLen+4, len(lines)+2)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	for i, l := range lines {
		pad := (box.W - 2 - utf8.RuneCountInString(l)) / 2
		dst.DrawTextColored(box.X+1+pad, box.Y+1+i, l, core.ColorBrightWhite)
	}
}

func bestScore(hs []engine.HighScore) int {
	if len(hs) == 0 {
		return 0
	}
	return hs[0].Score
}

func puyoColor(c engine.Color) core.Color {
	switch c {
	case engine.ColorRed:
		return core.ColorBrightRed
	case engine.ColorGreen:
		return core.ColorBrightGreen
	case engine.ColorBlue:
		return core.ColorBrightBlue
	case engine.ColorYellow:
		return core.ColorBrightYellow
	case engine.ColorPurple:
		return core.ColorBrightMagenta
	default:
		return core.ColorDefault
	}
}
