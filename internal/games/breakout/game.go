package breakout

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Variant IDs. Scores are kept per variant so difficulties never share a table.
const (
	IDEasy   = "breakout-easy"
	IDNormal = "breakout"
	IDHard   = "breakout-hard"
)

// VariantID returns the registry ID for a difficulty.
func VariantID(d config.Difficulty) string {
	switch d {
	case config.DifficultyEasy:
		return IDEasy
	case config.DifficultyHard:
		return IDHard
	default:
		return IDNormal
	}
}

// Game adapts World to the platform's fixed-tick game interface.
type Game struct {
	difficulty config.Difficulty
	opts       registry.Options
	logger     *log.Logger
	sound      core.SoundPlayer

	runtime core.RuntimeConfig
	cfg     config.BreakoutConfig
	world   *World
	dt      float64
	tick    uint64
}

// New creates a game for the given difficulty.
func New(d config.Difficulty, opts registry.Options) *Game {
	g := &Game{difficulty: d, opts: opts, logger: opts.Logger, sound: opts.Sound}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.sound == nil {
		g.sound = core.NopSound{}
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return VariantID(g.difficulty)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	switch g.difficulty {
	case config.DifficultyEasy:
		return "Breakout (Easy)"
	case config.DifficultyHard:
		return "Breakout (Hard)"
	default:
		return "Breakout"
	}
}

// Reset loads configuration and builds a fresh world in the READY state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.dt = runtime.DeltaTime()
	g.tick = 0

	cfg, err := config.LoadBreakout(g.opts.ConfigPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultBreakoutConfig()
	}
	if err := config.ApplyBreakoutPreset(&cfg, g.difficulty); err != nil {
		g.logger.Warn("config invalid for difficulty, using defaults", "difficulty", g.difficulty, "err", err)
		cfg = config.DefaultBreakoutConfig()
		cfg.Difficulty = g.difficulty
	}
	g.cfg = cfg

	g.world = NewWorld(cfg,
		WithLogger(g.logger.With("game", g.ID())),
		WithSound(g.sound),
	)
}

// World exposes the simulation for tests and headless runs.
func (g *Game) World() *World { return g.world }

// Tick returns the number of steps since Reset.
func (g *Game) Tick() uint64 { return g.tick }

// Step applies one frame of input and advances the world by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	w := g.world
	g.tick++

	if in.Has(core.ActionPause) {
		switch {
		case w.IsResumed():
			g.sound.PlayButtonSound()
			w.Pause()
		case w.IsPaused():
			g.sound.PlayButtonSound()
			w.Resume()
		}
	}
	if in.Has(core.ActionLaunch) || in.Has(core.ActionConfirm) {
		w.Touch()
	}
	if in.Has(core.ActionRestart) && (w.IsPaused() || w.IsEnd()) {
		g.sound.PlayButtonSound()
		w.NewGame()
	}

	if w.IsResumed() {
		left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
		switch {
		case left && !right:
			w.MovePaddle(-g.cfg.Paddle.KeyStep)
		case right && !left:
			w.MovePaddle(g.cfg.Paddle.KeyStep)
		default:
			w.MovePaddle(0)
		}
	}

	w.Update(g.dt)

	if w.IsBoardChanged() {
		w.ResetBoardChanged()
		if w.IsEnding() {
			w.End()
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	w := g.world
	return core.GameState{
		Score:    w.Points(),
		Round:    w.Round(),
		Lives:    w.Lives(),
		GameOver: w.IsEnding() || w.IsEnd(),
		Paused:   w.IsPaused(),
		Waiting:  w.IsReady(),
	}
}

// Snapshot returns the current game state including the tick counter.
func (g *Game) Snapshot() Snapshot {
	snap := g.world.Snapshot()
	snap.Tick = g.tick
	return snap
}

// Restore applies a saved snapshot. A game saved mid-play comes back paused.
func (g *Game) Restore(snap Snapshot) error {
	if err := g.world.ApplySnapshot(snap); err != nil {
		return err
	}
	g.tick = snap.Tick
	if g.world.IsResumed() {
		g.world.Pause()
	}
	g.world.ResetBoardChanged()
	return nil
}

// MarshalState encodes the current snapshot for a saved game.
func (g *Game) MarshalState() ([]byte, error) {
	return MarshalSnapshot(g.Snapshot())
}

// RestoreState applies a saved game produced by MarshalState.
func (g *Game) RestoreState(data []byte) error {
	snap, err := UnmarshalSnapshot(data)
	if err != nil {
		return err
	}
	return g.Restore(snap)
}

// Autopilot returns input that keeps the paddle under the ball and skips the
// ready countdown. Used by headless runs.
func (g *Game) Autopilot() core.InputFrame {
	w := g.world
	var in core.InputFrame
	if w.IsReady() {
		in.Set(core.ActionLaunch)
		return in
	}

	ball, paddle := w.ball, w.paddle
	diff := ball.CenterX() - paddle.CenterX()
	step := g.cfg.Paddle.KeyStep
	if diff > step {
		in.Set(core.ActionRight)
	} else if diff < -step {
		in.Set(core.ActionLeft)
	}
	return in
}

func init() {
	for _, d := range config.Difficulties {
		registry.Register(VariantID(d), func(opts registry.Options) registry.Game {
			return New(d, opts)
		})
	}
}
