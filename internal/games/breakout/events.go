package breakout

// Event is emitted by Ball.Update and applied by World after the collision pass.
type Event interface {
	event()
}

// BrickHit reports a collision with the brick at Slot of the wall.
type BrickHit struct {
	Row  int
	Slot int
}

// BallLost reports that the ball left the bottom of the field.
type BallLost struct{}

// SoundRequested asks World to play a collision sound.
type SoundRequested struct {
	Kind Sound
}

func (BrickHit) event()       {}
func (BallLost) event()       {}
func (SoundRequested) event() {}

// Sound names a collision sound emitted by the ball.
type Sound int

const (
	SoundPaddle Sound = iota
	SoundTopBorder
	SoundSideBorder
)

func (s Sound) String() string {
	switch s {
	case SoundPaddle:
		return "paddle"
	case SoundTopBorder:
		return "top_border"
	case SoundSideBorder:
		return "side_border"
	default:
		return "unknown"
	}
}
