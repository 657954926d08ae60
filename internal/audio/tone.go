// Package audio synthesizes the game's sound effects as short sine tones and
// plays them through oto.
package audio

import (
	"math"
	"time"
)

const (
	SampleRate     = 48000
	ChannelCount   = 1
	bytesPerSample = 4 // float32 LE

	fadeSamples = 240 // 5ms ramp at both ends
	amplitude   = 0.35
)

// Tone is a single sine beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

const beep = 100 * time.Millisecond

// Tone table. Brick tones descend from the top row down.
var (
	ToneButton     = Tone{Freq: 600, Duration: beep}
	TonePaddle     = Tone{Freq: 587.3, Duration: beep}
	ToneTopBorder  = Tone{Freq: 1760, Duration: beep}
	ToneSideBorder = Tone{Freq: 1046.5, Duration: beep}
	ToneBallOut    = Tone{Freq: 490, Duration: 257 * time.Millisecond}

	BrickTones = [...]Tone{
		{Freq: 466.2, Duration: beep},
		{Freq: 392, Duration: beep},
		{Freq: 311.1, Duration: beep},
		{Freq: 277.2, Duration: beep},
		{Freq: 233.1, Duration: beep},
		{Freq: 185, Duration: beep},
	}
)

// BrickTone returns the tone for a brick row. Rows past the table reuse the last tone.
func BrickTone(row int) Tone {
	row = max(0, min(row, len(BrickTones)-1))
	return BrickTones[row]
}

// Samples returns the number of mono frames the tone lasts.
func (t Tone) Samples() int {
	return int(t.Duration.Seconds() * SampleRate)
}

// PCM renders the tone as mono float32 little-endian samples.
func (t Tone) PCM() []byte {
	n := t.Samples()
	buf := make([]byte, n*bytesPerSample)
	step := 2 * math.Pi * t.Freq / SampleRate
	for i := 0; i < n; i++ {
		env := 1.0
		if i < fadeSamples {
			env = float64(i) / fadeSamples
		} else if n-i < fadeSamples {
			env = float64(n-i) / fadeSamples
		}
		putF32(buf, i, amplitude*env*math.Sin(step*float64(i)))
	}
	return buf
}

func putF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*4] = byte(v)
	buf[i*4+1] = byte(v >> 8)
	buf[i*4+2] = byte(v >> 16)
	buf[i*4+3] = byte(v >> 24)
}
