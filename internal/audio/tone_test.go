package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func sample(buf []byte, i int) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:])))
}

func TestTonePCM(t *testing.T) {
	pcm := ToneButton.PCM()
	require.Len(t, pcm, 4800*4)
	assert.Zero(t, sample(pcm, 0), "fade in starts from silence")

	peak := 0.0
	for i := 0; i < len(pcm)/4; i++ {
		peak = math.Max(peak, math.Abs(sample(pcm, i)))
	}
	assert.LessOrEqual(t, peak, amplitude+1e-6)
	assert.GreaterOrEqual(t, peak, amplitude*0.9)
}

func TestToneDurations(t *testing.T) {
	assert.Equal(t, 12336, ToneBallOut.Samples())
	assert.Equal(t, SampleRate/10, TonePaddle.Samples())
}

func TestBrickTone(t *testing.T) {
	tests := []struct {
		row  int
		freq float64
	}{
		{-1, 466.2},
		{0, 466.2},
		{2, 311.1},
		{5, 185},
		{9, 185},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.freq, BrickTone(tc.row).Freq, "row %d", tc.row)
	}

	for i := 1; i < len(BrickTones); i++ {
		assert.Less(t, BrickTones[i].Freq, BrickTones[i-1].Freq, "brick tones descend at row %d", i)
	}
}

func TestNewDisabled(t *testing.T) {
	s, closeFn := New(false, nil)
	assert.IsType(t, core.NopSound{}, s)
	assert.NoError(t, closeFn())
}
