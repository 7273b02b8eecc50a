package tetris

import (
	"fmt"

	"github.com/rhapsodic-legacy/Arcade-Arcadia/internal/core"
)

const (
	cellW       = 2  // Screen columns per board cell
	panelW      = 16 // Width of the side panel
	panelGap    = 2
	previewRows = 4
)

// layout holds screen positions derived from the board and screen size.
type layout struct {
	well   core.Rect // Border rectangle around the board
	panelX int
}

func (g *Game) layoutFor(screenW, screenH int) (layout, bool) {
	if g.session == nil {
		return layout{}, false
	}
	wellW := g.session.Width()*cellW + 2
	wellH := g.session.Height() + 2
	totalW := wellW + panelGap + panelW
	if screenW < totalW || screenH < wellH+1 {
		return layout{}, false
	}

	x := (screenW - totalW) / 2
	y := 1
	return layout{
		well:   core.NewRect(x, y, wellW, wellH),
		panelX: x + wellW + panelGap,
	}, true
}

func (g *Game) tooSmall() bool {
	_, ok := g.layoutFor(g.screenW, g.screenH)
	return !ok
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		g.renderError(dst)
		return
	}

	l, ok := g.layoutFor(dst.Width(), dst.Height())
	if !ok {
		g.renderTooSmall(dst)
		return
	}

	title := fmt.Sprintf("T E T R I S   Level %d", g.session.Level())
	dst.DrawTextColor(l.well.X+(l.well.W-len(title))/2, 0, title, core.ColorBrightWhite)

	g.renderWell(dst, l)
	g.renderPanel(dst, l)
	g.renderOverlays(dst, l)
}

// renderWell draws the border, settled cells, ghost and falling piece.
func (g *Game) renderWell(dst *core.Screen, l layout) {
	dst.DrawBox(l.well, core.ColorGray)

	ox, oy := l.well.X+1, l.well.Y+1
	board := g.session.Board()
	for y, row := range board {
		for x, c := range row {
			if c.Filled {
				drawBlock(dst, ox+x*cellW, oy+y, '█', c.Color)
			} else {
				dst.SetColor(ox+x*cellW+1, oy+y, '·', core.ColorGray)
			}
		}
	}

	if g.session.IsGameOver() {
		return
	}

	for _, p := range g.session.GhostCells() {
		if p.Y >= 0 {
			drawBlock(dst, ox+p.X*cellW, oy+p.Y, '░', core.ColorGray)
		}
	}

	cells, color := g.session.PieceCells()
	for _, p := range cells {
		if p.Y >= 0 {
			drawBlock(dst, ox+p.X*cellW, oy+p.Y, '█', color)
		}
	}
}

func drawBlock(dst *core.Screen, x, y int, r rune, c core.Color) {
	dst.SetColor(x, y, r, c)
	dst.SetColor(x+1, y, r, c)
}

// renderPanel draws the next-piece preview and the score box.
func (g *Game) renderPanel(dst *core.Screen, l layout) {
	x, y := l.panelX, l.well.Y

	preview := core.NewRect(x, y, panelW, previewRows+2)
	dst.DrawBox(preview, core.ColorGray)
	dst.DrawText(x+2, y, " NEXT ")

	next := g.session.Next()
	offs := Cells(next, 0)
	// Centre the 4-wide preview inside the box.
	px := x + (panelW-4*cellW)/2
	py := y + 1 + (previewRows-Height(next, 0)-1)/2
	for _, o := range offs {
		drawBlock(dst, px+o.DX*cellW, py+o.DY, '█', next.Color())
	}

	y += previewRows + 3
	stats := []struct {
		label string
		value int
	}{
		{"SCORE", g.session.Score()},
		{"LEVEL", g.session.Level()},
		{"LINES", g.session.Lines()},
	}
	for _, s := range stats {
		dst.DrawTextColor(x, y, s.label, core.ColorGray)
		dst.DrawTextColor(x, y+1, fmt.Sprintf("%d", s.value), core.ColorBrightWhite)
		y += 3
	}

	if g.bannerTicks > 0 && g.banner != "" {
		dst.DrawTextColor(x, y, g.banner, core.ColorBrightYellow)
	}
}

// renderOverlays draws pause and game-over boxes over the well.
func (g *Game) renderOverlays(dst *core.Screen, l layout) {
	cx := l.well.X + l.well.W/2
	cy := l.well.Y + l.well.H/2

	switch {
	case g.session.IsGameOver():
		g.drawOverlay(dst, cx, cy,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.session.Score()),
			"R: Restart")
	case g.paused:
		g.drawOverlay(dst, cx, cy, "PAUSED", "P: Resume")
	}
}

// drawOverlay draws a bordered box of centred lines around (centerX, centerY).
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderError(dst *core.Screen) {
	y := dst.Height()/2 - 1
	dst.DrawTextCentered(y, "Cannot start Tetris")
	if g.err != nil {
		dst.DrawTextCentered(y+1, g.err.Error())
	}
	dst.DrawTextCentered(y+3, "Check your tetris.yaml")
}
