package core

// SoundPlayer receives semantic sound events. Implementations own their audio
// resources; games only name the event.
type SoundPlayer interface {
	PlayPaddleSound()
	PlayTopBorderSound()
	PlaySideBorderSound()
	PlayBallOutSound()
	PlayBrickSound(row int)
	PlayButtonSound()
}

// NopSound discards every sound event.
type NopSound struct{}

func (NopSound) PlayPaddleSound() {}
func (NopSound) PlayTopBorderSound() {}
func (NopSound) PlaySideBorderSound() {}
func (NopSound) PlayBallOutSound() {}
func (NopSound) PlayBrickSound(int) {}
func (NopSound) PlayButtonSound() {}
