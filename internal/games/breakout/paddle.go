package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Paddle is the player-controlled bar. It also carries the score.
type Paddle struct {
	Entity
	Points   int
	sections int
	minX     float64 // Right edge of the left corner block
	maxRight float64 // Left edge of the right corner block
}

func newPaddle(cfg config.BreakoutConfig, blocks Blocks, x, y float64) *Paddle {
	return &Paddle{
		Entity:   newEntity(x, y, cfg.PaddleWidth(), cfg.Paddle.Height, core.ColorBrickRed),
		sections: cfg.Paddle.Sections,
		minX:     blocks.Left.Width(),
		maxRight: cfg.Field.Width - blocks.Right.Width(),
	}
}

// Sections returns the number of bounce sections.
func (p *Paddle) Sections() int { return p.sections }

// SectionWidth returns the width of one bounce section.
func (p *Paddle) SectionWidth() float64 {
	return p.Width() / float64(p.sections)
}

// Section returns the index of the section under x, counted from the left.
// A point on a boundary belongs to the section on its left; points off the
// paddle map to the nearest end section.
func (p *Paddle) Section(x float64) int {
	i := int(math.Ceil((x-p.Bounds.X)/p.SectionWidth())) - 1
	return max(0, min(i, p.sections-1))
}

// Move shifts the paddle by amount and keeps it between the corner blocks.
// The amount becomes the paddle's horizontal velocity.
func (p *Paddle) Move(amount float64) {
	p.Velocity.X = amount
	p.Bounds.X += amount
	if p.Bounds.Right() > p.maxRight {
		p.Bounds.X = p.maxRight - p.Bounds.W
	} else if p.Bounds.X < p.minX {
		p.Bounds.X = p.minX
	}
	p.syncPosition()
}

// Reset repositions the paddle and zeroes the score.
func (p *Paddle) Reset(x, y float64) {
	p.SetPosition(x, y)
	p.Points = 0
}
