package breakout

import (
	"slices"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Brick is a destructible wall cell. Row and Col are fixed at creation.
type Brick struct {
	Entity
	Row    int
	Col    int
	Points int
	Speed  bool // Speed bricks double the ball speed once per life
}

// Wall is the ordered brick collection of the current round.
// Bricks are stored row-major, top row first.
type Wall struct {
	bricks []Brick
	perRow int
}

// NewWall builds a full wall for cfg.
func NewWall(cfg config.BreakoutConfig) *Wall {
	w := &Wall{}
	w.rebuild(cfg)
	return w
}

func (w *Wall) rebuild(cfg config.BreakoutConfig) {
	b := cfg.Bricks
	s := cfg.Field.BlockSize
	top := cfg.Field.Height - 2*s - cfg.Field.WallPadding

	w.perRow = b.PerRow
	w.bricks = w.bricks[:0]
	for row := 0; row < b.Rows; row++ {
		color := core.BrickRowColors[min(row, len(core.BrickRowColors)-1)]
		for col := 0; col < b.PerRow; col++ {
			x := s + float64(col)*b.Width
			y := top - float64(row+1)*b.Height
			w.bricks = append(w.bricks, Brick{
				Entity: newEntity(x, y, b.Width, b.Height, color),
				Row:    row,
				Col:    col,
				Points: cfg.BrickPoints(row),
				Speed:  row < b.SpeedRows,
			})
		}
	}
}

// Len returns the number of bricks left.
func (w *Wall) Len() int { return len(w.bricks) }

// Empty reports whether every brick has been destroyed.
func (w *Wall) Empty() bool { return len(w.bricks) == 0 }

// At returns the brick at slot i.
func (w *Wall) At(i int) (Brick, bool) {
	if i < 0 || i >= len(w.bricks) {
		return Brick{}, false
	}
	return w.bricks[i], true
}

// Bricks returns a copy of the remaining bricks in wall order.
func (w *Wall) Bricks() []Brick {
	return slices.Clone(w.bricks)
}

// Remove deletes the brick at slot i, shifting later bricks down by one.
func (w *Wall) Remove(i int) (Brick, bool) {
	b, ok := w.At(i)
	if !ok {
		return Brick{}, false
	}
	w.bricks = slices.Delete(w.bricks, i, i+1)
	return b, true
}

// cells returns the grid index (row*perRow + col) of each remaining brick.
func (w *Wall) cells() []int {
	out := make([]int, len(w.bricks))
	for i, b := range w.bricks {
		out[i] = b.Row*w.perRow + b.Col
	}
	return out
}

// keep rebuilds the full wall and drops every brick whose grid index is not in cells.
func (w *Wall) keep(cfg config.BreakoutConfig, cells []int) {
	w.rebuild(cfg)
	set := make(map[int]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	w.bricks = slices.DeleteFunc(w.bricks, func(b Brick) bool {
		return !set[b.Row*w.perRow+b.Col]
	})
}
