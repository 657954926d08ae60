package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	BallChar   = '●'
	PaddleChar = '▀'
	BrickChar  = '▆'
	WallChar   = '█'
)

// Terminal cells are about twice as tall as they are wide.
const cellAspect = 2.0

// Below this the wall no longer fits one cell per brick column pair.
const (
	minFieldCols = 20
	minFieldRows = 12
)

// viewport maps world units onto a block of screen cells.
type viewport struct {
	x, y         int // Screen cell of the field's top-left corner
	cols, rows   int
	cellW, cellH float64
	fieldH       float64
}

func newViewport(fieldW, fieldH float64, screenW, screenH int) (viewport, bool) {
	rows := screenH - 1 // HUD line
	cols := int(math.Floor(float64(rows) * cellAspect * fieldW / fieldH))
	if cols > screenW {
		cols = screenW
		rows = int(math.Floor(float64(cols) * fieldH / (fieldW * cellAspect)))
	}
	if cols < minFieldCols || rows < minFieldRows {
		return viewport{}, false
	}
	return viewport{
		x:      (screenW - cols) / 2,
		y:      1,
		cols:   cols,
		rows:   rows,
		cellW:  fieldW / float64(cols),
		cellH:  fieldH / float64(rows),
		fieldH: fieldH,
	}, true
}

// fill paints every cell r touches. y is flipped: world top is screen row 0.
func (v viewport) fill(dst *core.Screen, r core.RectF, glyph rune, color core.Color) {
	x0 := int(math.Floor(r.X / v.cellW))
	x1 := int(math.Ceil(r.Right() / v.cellW))
	y0 := int(math.Floor((v.fieldH - r.Top()) / v.cellH))
	y1 := int(math.Ceil((v.fieldH - r.Y) / v.cellH))
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)

	for y := max(y0, 0); y < min(y1, v.rows); y++ {
		for x := max(x0, 0); x < min(x1, v.cols); x++ {
			dst.SetColored(v.x+x, v.y+y, glyph, color)
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	cfg := g.world.Config()
	vp, ok := newViewport(cfg.Field.Width, cfg.Field.Height, dst.Width(), dst.Height())
	if !ok {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minFieldCols, minFieldRows+1))
		return
	}

	g.renderHUD(dst)

	w := g.world
	for _, b := range w.border.All() {
		vp.fill(dst, b.Bounds, WallChar, b.Color)
	}
	for _, b := range w.blocks.All() {
		vp.fill(dst, b.Bounds, WallChar, b.Color)
	}
	for _, b := range w.wall.bricks {
		vp.fill(dst, b.Bounds, BrickChar, b.Color)
	}
	vp.fill(dst, w.paddle.Bounds, PaddleChar, w.paddle.Color)
	if !w.IsEnding() && !w.IsEnd() {
		vp.fill(dst, w.ball.Bounds, BallChar, core.ColorWhite)
	}

	g.renderOverlay(dst)
}

// renderHUD draws score, balls left, round and difficulty on row 0.
func (g *Game) renderHUD(dst *core.Screen) {
	w := g.world
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", w.Points()), core.ColorYellow)
	dst.DrawTextCentered(0, fmt.Sprintf("Balls: %d", w.Lives()))

	right := fmt.Sprintf("Round: %d/%d  %s", min(w.Round()+1, g.cfg.Gameplay.MaxRounds), g.cfg.Gameplay.MaxRounds, g.difficulty)
	dst.DrawText(dst.Width()-len(right)-1, 0, right)
}

// renderOverlay draws state messages over the field.
func (g *Game) renderOverlay(dst *core.Screen) {
	w := g.world
	switch w.State() {
	case StateReady:
		dst.DrawTextCentered(dst.Height()-1, "Get ready... SPACE to start")
	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "P resume  R new game  Q quit")
	case StateEnding, StateEnded:
		title := "YOU WIN!"
		if w.IsGameOver() {
			title = "GAME OVER"
		}
		drawCenteredBox(dst, title, fmt.Sprintf("Score: %d  |  R new game", w.Points()))
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorCyan)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
