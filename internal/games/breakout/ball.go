package breakout

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Bounce angles in degrees for the middle and the edges of the paddle.
const (
	centerSectionAngle = 15
	outerSectionAngle  = 45
)

// Paddle hits are counted in cycles of hitCycle. Hits 3, 7 and 11 of a cycle
// steepen the bounce; the last hit resets the angle bias and speeds the ball up.
const hitCycle = 12

var angleStepHits = []int{3, 7, 11}

// Arena is the read-only view of the playfield the ball collides against.
type Arena struct {
	Border *Border
	Blocks *Blocks
	Wall   *Wall
	Paddle *Paddle
}

// Ball is the only moving body driven by the simulation clock.
type Ball struct {
	Entity
	Lives         int
	HitCounter    int
	HitCountAngle float64 // Degrees added to every paddle bounce
	Ratio         float64 // tan of the last bounce angle; 1 is 45 degrees
	SpeedBrickHit bool
	StateTime     float64

	baseAcceleration float64
	angleIncrement   float64
	hitSpeedRatio    float64

	hitSlots []int // Bricks already hit during the current Update
}

func newBall(cfg config.BreakoutConfig, x, y float64) *Ball {
	b := &Ball{
		Entity:           newEntity(x, y, cfg.Ball.Size, cfg.Ball.Size, core.ColorBrickRed),
		Lives:            cfg.Ball.Lives,
		baseAcceleration: cfg.BallAcceleration(),
		angleIncrement:   cfg.Ball.AngleIncrement,
		hitSpeedRatio:    cfg.Ball.HitSpeedRatio,
	}
	b.setAcceleration(b.baseAcceleration)
	return b
}

// setAcceleration restores the launch trajectory: down and to the right at 45 degrees.
func (b *Ball) setAcceleration(a float64) {
	b.Acceleration = core.Vec2{X: a, Y: a}
	b.Direction = core.Vec2{X: 1, Y: -1}
	b.Ratio = 1
}

// Reset puts the ball back at its spawn point for a new life.
// Hit counters are kept; only World.NewGame clears them.
func (b *Ball) Reset(x, y float64, lives int) {
	b.SetPosition(x, y)
	b.StateTime = 0
	b.setAcceleration(b.baseAcceleration)
	b.SpeedBrickHit = false
	b.Lives = lives
}

func (b *Ball) resetHits() {
	b.HitCounter = 0
	b.HitCountAngle = 0
}

// Speed multiplies both acceleration components by ratio. Zero is ignored.
func (b *Ball) Speed(ratio float64) {
	if ratio != 0 {
		b.Acceleration = b.Acceleration.Scale(ratio)
	}
}

// Update advances the ball by delta seconds, resolving collisions one axis
// at a time. The arena is not modified; brick hits, ball loss and sounds are
// returned for World to apply.
func (b *Ball) Update(delta float64, a Arena) []Event {
	b.StateTime += delta

	if b.Ratio < 1 {
		b.Velocity.X = b.Direction.X * b.Acceleration.Y * delta * b.Ratio
		b.Velocity.Y = b.Direction.Y * b.Acceleration.Y * delta
	} else {
		b.Velocity.X = b.Direction.X * b.Acceleration.X * delta
		b.Velocity.Y = b.Direction.Y * b.Acceleration.X * delta / b.Ratio
	}

	var events []Event
	b.hitSlots = b.hitSlots[:0]

	b.Bounds.X += b.Velocity.X
	for _, r := range []core.RectF{a.Border.Left.Bounds, a.Border.Right.Bounds, a.Blocks.Left.Bounds, a.Blocks.Right.Bounds} {
		if b.collideX(r) {
			events = append(events, SoundRequested{Kind: SoundSideBorder})
		}
	}
	events = b.collideBricks(a.Wall, b.collideX, events)
	events = b.collidePaddleX(a.Paddle, events)

	b.Bounds.Y += b.Velocity.Y
	if b.collideY(a.Border.Top.Bounds) {
		events = append(events, SoundRequested{Kind: SoundTopBorder})
	}
	events = b.collideBricks(a.Wall, b.collideY, events)
	events = b.collidePaddleY(a.Paddle, events)

	b.syncPosition()

	if b.Position.Y+b.Bounds.H < 0 {
		events = append(events, BallLost{})
	}
	return events
}

// collideBricks tests every brick not yet hit this update.
func (b *Ball) collideBricks(w *Wall, collide func(core.RectF) bool, events []Event) []Event {
	for i, brick := range w.bricks {
		if slices.Contains(b.hitSlots, i) {
			continue
		}
		if collide(brick.Bounds) {
			b.hitSlots = append(b.hitSlots, i)
			events = append(events, BrickHit{Row: brick.Row, Slot: i})
		}
	}
	return events
}

// collideX snaps the ball out of r along x and reflects it.
func (b *Ball) collideX(r core.RectF) bool {
	if !b.Bounds.Overlaps(r) {
		return false
	}
	if b.Velocity.X < 0 {
		b.Bounds.X = r.Right()
	} else if b.Velocity.X > 0 {
		b.Bounds.X = r.X - b.Bounds.W
	}
	b.Direction.X = -b.Direction.X
	return true
}

// collideY snaps the ball out of r along y and reflects it.
func (b *Ball) collideY(r core.RectF) bool {
	if !b.Bounds.Overlaps(r) {
		return false
	}
	if b.Velocity.Y < 0 {
		b.Bounds.Y = r.Top()
	} else if b.Velocity.Y > 0 {
		b.Bounds.Y = r.Y - b.Bounds.H
	}
	b.Direction.Y = -b.Direction.Y
	return true
}

// collidePaddleX handles side hits. A paddle moving with the ball carries it
// instead of reflecting it, and paddle speed always transfers to the ball.
func (b *Ball) collidePaddleX(p *Paddle, events []Event) []Event {
	if !b.Bounds.Overlaps(p.Bounds) {
		return events
	}
	factor := math.Abs(p.Velocity.X) + 1

	if b.Velocity.X < 0 {
		if p.Velocity.X >= 0 {
			b.Bounds.X = p.Bounds.Right()
			b.Direction.X = -b.Direction.X
		} else {
			b.Bounds.X = p.Bounds.X - b.Bounds.W
		}
	} else if b.Velocity.X > 0 {
		if p.Velocity.X <= 0 {
			b.Bounds.X = p.Bounds.X - b.Bounds.W
			b.Direction.X = -b.Direction.X
		} else {
			b.Bounds.X = p.Bounds.Right()
		}
	}

	b.Speed(factor)
	return append(events, SoundRequested{Kind: SoundPaddle})
}

// collidePaddleY handles top hits and shapes the outgoing angle by the
// section of the paddle under the ball's center.
func (b *Ball) collidePaddleY(p *Paddle, events []Event) []Event {
	if !b.Bounds.Overlaps(p.Bounds) {
		return events
	}
	b.countHit()

	section := p.Section(b.CenterX())
	mid := float64(p.Sections()-1) / 2
	angle := sectionAngle(section, p.Sections())

	switch {
	case float64(section) > mid:
		if b.Velocity.X < 0 {
			b.Direction.X = -b.Direction.X
		}
	case float64(section) < mid:
		if b.Velocity.X > 0 {
			b.Direction.X = -b.Direction.X
		}
	}

	b.Ratio = math.Tan((angle + b.HitCountAngle) * math.Pi / 180)

	if b.Velocity.Y < 0 {
		b.Bounds.Y = p.Bounds.Top()
	} else if b.Velocity.Y > 0 {
		b.Bounds.Y = p.Bounds.Y - b.Bounds.H
	}
	b.Direction.Y = -b.Direction.Y
	return append(events, SoundRequested{Kind: SoundPaddle})
}

// sectionAngle maps a paddle section to its bounce angle. Angles fall
// linearly from outerSectionAngle at the ends to centerSectionAngle in the
// middle, so mirrored sections share an angle.
func sectionAngle(section, sections int) float64 {
	mid := float64(sections-1) / 2
	if mid <= 0 {
		return centerSectionAngle
	}
	fromEdge := float64(min(section, sections-1-section))
	return outerSectionAngle - (outerSectionAngle-centerSectionAngle)*fromEdge/mid
}

func (b *Ball) countHit() {
	b.HitCounter++
	m := b.HitCounter % hitCycle

	if slices.Contains(angleStepHits, m) {
		b.HitCountAngle += b.angleIncrement
	} else if m == 0 {
		b.HitCountAngle = 0
		b.Speed(b.hitSpeedRatio)
	}
}
