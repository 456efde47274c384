package blocks

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Each board cell is two characters wide so the grid looks square.
const (
	cellW        = 2
	sidebarW     = 14
	sidebarGap   = 2
	filledGlyph  = "[]"
	emptyGlyph   = " ."
	previewCells = 4 // preview box fits the largest bounding box
)

// layoutSize returns the screen area the game needs.
func (g *Game) layoutSize() (int, int) {
	boardW := g.cfg.Board.Width*cellW + 2
	boardH := g.cfg.Board.Height + 2
	return boardW + sidebarGap + sidebarW, core.Max(boardH, previewCells+9)
}

// Render draws the board, the sidebar with score, lines and next piece, and
// any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	totalW, totalH := g.layoutSize()
	originX := core.Max(0, (g.screenW-totalW)/2)
	originY := core.Max(0, (g.screenH-totalH)/2)

	g.renderBoard(dst, originX, originY)

	sideX := originX + g.board.Width()*cellW + 2 + sidebarGap
	g.renderSidebar(dst, sideX, originY)

	g.renderOverlays(dst, originX, originY)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := g.layoutSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", w, h))
}

// renderBoard draws the framed grid. Cells under the falling piece take its
// color; locked cells are white.
func (g *Game) renderBoard(dst *core.Screen, x0, y0 int) {
	b := g.board
	dst.DrawBox(core.NewRect(x0, y0, b.Width()*cellW+2, b.Height()+2))

	live := make(map[Point]bool, 4)
	if !g.gameOver {
		for _, c := range g.current.Cells() {
			live[c] = true
		}
	}

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			px := x0 + 1 + x*cellW
			py := y0 + 1 + y
			switch {
			case !b.Filled(x, y):
				dst.DrawTextColor(px, py, emptyGlyph, core.ColorGray)
			case live[Point{X: x, Y: y}]:
				dst.DrawTextColor(px, py, filledGlyph, g.current.Kind().Color())
			default:
				dst.DrawTextColor(px, py, filledGlyph, core.ColorWhite)
			}
		}
	}
}

// renderSidebar draws score, lines and the next-piece preview.
func (g *Game) renderSidebar(dst *core.Screen, x, y int) {
	dst.DrawTextColor(x, y, "B L O C K S", core.ColorBrightWhite)
	dst.DrawText(x, y+2, fmt.Sprintf("Score: %d", g.score))
	dst.DrawText(x, y+3, fmt.Sprintf("Lines: %d", g.lines))
	dst.DrawText(x, y+5, "Next:")

	previewY := y + 6
	dst.DrawBox(core.NewRect(x, previewY, previewCells*cellW+2, previewCells+2))
	g.renderPreview(dst, x+1, previewY+1)
}

// renderPreview draws the queued piece inside its bounding box.
func (g *Game) renderPreview(dst *core.Screen, x, y int) {
	p := g.next
	for row, h := 0, p.Height(); row < h; row++ {
		for col, w := 0, p.Width(); col < w; col++ {
			if p.Occupied(col, row) {
				dst.DrawTextColor(x+col*cellW, y+row, filledGlyph, p.Kind().Color())
			}
		}
	}
}

// renderOverlays draws game state overlays centered on the board.
func (g *Game) renderOverlays(dst *core.Screen, x0, y0 int) {
	centerX := x0 + (g.board.Width()*cellW+2)/2
	centerY := y0 + (g.board.Height()+2)/2

	if g.gameOver {
		g.drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.score),
			fmt.Sprintf("Lines: %d", g.lines),
		)
		return
	}

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "P to resume")
	}
}

// drawOverlay draws a boxed block of centered lines.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←/→: Move | ↑/↓: Rotate | Space: Drop | P: Pause | Q: Quit"
}
