package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BlockChar  = '█'
)

// Cell scaling limits. A cell never covers less than MinCellW x MinCellH
// pixels; terminals that would need more than the max are too small.
const (
	MinCellW = 5
	MinCellH = 15
	MaxCellW = 10
	MaxCellH = 30
)

// hudRows is the number of rows above the playfield box.
const hudRows = 1

// layout maps playfield pixels to terminal cells.
type layout struct {
	cellW, cellH int // Pixels per cell
	cols, rows   int // Playfield size in cells
	offX, offY   int // Top-left cell of the playfield (inside the border)
}

// computeLayout picks the smallest cell size that fits the playfield
// inside a box under the HUD. Reports whether the screen is too small.
func computeLayout(w, h int) (layout, bool) {
	availW := w - 2
	availH := h - hudRows - 2
	if availW <= 0 || availH <= 0 {
		return layout{}, true
	}

	l := layout{
		cellW: core.Max(MinCellW, ceilDiv(ScreenWidth, availW)),
		cellH: core.Max(MinCellH, ceilDiv(ScreenHeight, availH)),
	}
	if l.cellW > MaxCellW || l.cellH > MaxCellH {
		return layout{}, true
	}

	l.cols = ceilDiv(ScreenWidth, l.cellW)
	l.rows = ceilDiv(ScreenHeight, l.cellH)
	l.offX = (w-(l.cols+2))/2 + 1
	l.offY = hudRows + 1

	return l, false
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// cell converts a pixel position to a screen cell.
func (l layout) cell(px, py int) (int, int) {
	return l.offX + px/l.cellW, l.offY + py/l.cellH
}

// fill paints the cells covered by a pixel rectangle, clipped to the field.
func (l layout) fill(dst *core.Screen, r core.Rect, ch rune, color core.Color) {
	x0 := core.Clamp(r.X, 0, ScreenWidth-1) / l.cellW
	x1 := core.Clamp(r.Right()-1, 0, ScreenWidth-1) / l.cellW
	y0 := core.Clamp(r.Y, 0, ScreenHeight-1) / l.cellH
	y1 := core.Clamp(r.Bottom()-1, 0, ScreenHeight-1) / l.cellH

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetColored(l.offX+x, l.offY+y, ch, color)
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		minW := ceilDiv(ScreenWidth, MaxCellW) + 2
		minH := ceilDiv(ScreenHeight, MaxCellH) + hudRows + 2
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	l := g.layout
	s := g.state

	g.renderHUD(dst)
	dst.DrawBox(core.NewRect(l.offX-1, l.offY-1, l.cols+2, l.rows+2))

	// Blocks
	for i := range s.Blocks {
		block := s.Blocks[i]
		if !block.Exist {
			continue
		}
		l.fill(dst, block.Rect(), BlockChar, block.Color.ScreenColor())
	}

	// Paddle
	paddle := s.Player.Rect()
	if s.Mighty {
		paddle = core.NewRect(0, s.Player.Y, ScreenWidth, PlayerHeight)
	}
	l.fill(dst, paddle, PaddleChar, core.ColorWhite)

	// Ball
	if s.Ball.Exist && s.Ball.Y < ScreenHeight {
		c := s.Ball.Center()
		x, y := l.cell(core.Clamp(c.X, 0, ScreenWidth-1), core.Clamp(c.Y, 0, ScreenHeight-1))
		dst.SetColored(x, y, BallChar, core.ColorYellow)
	}

	g.renderOverlay(dst)
}

// renderHUD draws the title and the 8-digit score readout.
func (g *Game) renderHUD(dst *core.Screen) {
	l := g.layout
	dst.DrawText(l.offX-1, 0, g.Title())

	scoreText := fmt.Sprintf("%8d", g.state.DisplayScore)
	dst.DrawTextColored(l.offX+l.cols+1-len(scoreText), 0, scoreText, core.ColorCyan)
}

// renderOverlay draws the terminal state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	s := g.state
	switch {
	case s.IsOver:
		subtitle := fmt.Sprintf("Score: %d  |  SPACE to restart", s.Score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle, core.ColorBrightRed)
	case s.IsClear:
		subtitle := fmt.Sprintf("Final Score: %d  |  SPACE to restart", s.Score)
		g.drawCenteredBox(dst, "CLEAR!", subtitle, core.ColorBrightGreen)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string, color core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, color)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
