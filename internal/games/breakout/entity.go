package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Entity is the kinematic and geometric state shared by every model.
// Bounds always mirrors Position plus the fixed width and height.
type Entity struct {
	Position     core.Vec2
	Velocity     core.Vec2
	Direction    core.Vec2
	Acceleration core.Vec2
	Bounds       core.RectF
	Color        core.Color
}

func newEntity(x, y, w, h float64, color core.Color) Entity {
	return Entity{
		Position: core.Vec2{X: x, Y: y},
		Bounds:   core.NewRectF(x, y, w, h),
		Color:    color,
	}
}

// SetPosition moves the entity and its bounds.
func (e *Entity) SetPosition(x, y float64) {
	e.Position = core.Vec2{X: x, Y: y}
	e.Bounds.X = x
	e.Bounds.Y = y
}

// syncPosition copies the bounds origin back into Position after collision
// code has moved the bounds directly.
func (e *Entity) syncPosition() {
	e.Position = core.Vec2{X: e.Bounds.X, Y: e.Bounds.Y}
}

// Width returns the entity width.
func (e Entity) Width() float64 { return e.Bounds.W }

// Height returns the entity height.
func (e Entity) Height() float64 { return e.Bounds.H }

// CenterX returns the horizontal center of the bounds.
func (e Entity) CenterX() float64 { return e.Bounds.CenterX() }
