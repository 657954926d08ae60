package audio

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// readyTimeout bounds how long Open waits for the audio driver.
const readyTimeout = 2 * time.Second

// oto allows a single context per process.
var (
	ctxOnce   sync.Once
	sharedCtx *oto.Context
	ctxReady  chan struct{}
	ctxErr    error
)

func device() (*oto.Context, chan struct{}, error) {
	ctxOnce.Do(func() {
		sharedCtx, ctxReady, ctxErr = oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	})
	return sharedCtx, ctxReady, ctxErr
}

// Player plays tones on the default audio device. It implements core.SoundPlayer.
type Player struct {
	logger *log.Logger
	play   func(pcm []byte) // Blocks until the tone has finished

	cache  sync.Map // Tone -> []byte
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

var _ core.SoundPlayer = (*Player)(nil)

// Open initializes the audio device and waits until it can play.
func Open(logger *log.Logger) (*Player, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ctx, ready, err := device()
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open device: %w", err)
	}
	select {
	case <-ready:
	case <-time.After(readyTimeout):
		return nil, fmt.Errorf("audio: device not ready after %s", readyTimeout)
	}

	return &Player{
		logger: logger,
		play:   func(pcm []byte) { playOn(ctx, pcm, logger) },
	}, nil
}

func playOn(ctx *oto.Context, pcm []byte, logger *log.Logger) {
	pl := ctx.NewPlayer(bytes.NewReader(pcm))
	pl.Play()
	for pl.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	if err := pl.Close(); err != nil {
		logger.Debug("close tone player", "err", err)
	}
}

// New returns a Player when enabled and the device opens, and a silent
// player otherwise. The returned close func is always safe to call.
func New(enabled bool, logger *log.Logger) (core.SoundPlayer, func() error) {
	nop := func() error { return nil }
	if !enabled {
		return core.NopSound{}, nop
	}
	p, err := Open(logger)
	if err != nil {
		if logger != nil {
			logger.Warn("sound disabled", "err", err)
		}
		return core.NopSound{}, nop
	}
	return p, p.Close
}

// Play starts the tone and returns immediately. Tones requested after Close
// are dropped.
func (p *Player) Play(t Tone) {
	pcm := p.pcm(t)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		p.play(pcm)
	}()
}

func (p *Player) pcm(t Tone) []byte {
	if v, ok := p.cache.Load(t); ok {
		return v.([]byte)
	}
	v, _ := p.cache.LoadOrStore(t, t.PCM())
	return v.([]byte)
}

// Close stops accepting tones and waits for the ones in flight.
func (p *Player) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	p.wg.Wait()
	return nil
}

func (p *Player) PlayPaddleSound() { p.Play(TonePaddle) }
func (p *Player) PlayTopBorderSound() { p.Play(ToneTopBorder) }
func (p *Player) PlaySideBorderSound() { p.Play(ToneSideBorder) }
func (p *Player) PlayBallOutSound() { p.Play(ToneBallOut) }
func (p *Player) PlayBrickSound(row int) { p.Play(BrickTone(row)) }
func (p *Player) PlayButtonSound() { p.Play(ToneButton) }
